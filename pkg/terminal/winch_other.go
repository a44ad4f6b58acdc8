//go:build !unix

package terminal

import "os"

// notifyResize is a no-op on platforms without SIGWINCH; the tcell backend
// reports resizes through its own event stream there.
func notifyResize(ch chan<- os.Signal) {}
