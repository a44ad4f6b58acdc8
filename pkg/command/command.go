// Package command defines the commands an application sends to a component's
// behavior layer (move, scroll, type, submit, ...) and the results a
// component reports back. Commands are values; widgets translate incoming
// events into commands and interpret them in Perform.
package command

import "gitlab.com/tinyland/lab/weft/pkg/state"

// Direction is a movement or scroll direction.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// PositionKind discriminates a GoTo target.
type PositionKind uint8

const (
	PositionBegin PositionKind = iota
	PositionEnd
	PositionAt
)

// Position is a GoTo target: the beginning, the end, or an absolute index.
type Position struct {
	Kind PositionKind
	Idx  int // set when Kind is PositionAt
}

// Begin returns the beginning position.
func Begin() Position { return Position{Kind: PositionBegin} }

// End returns the end position.
func End() Position { return Position{Kind: PositionEnd} }

// At returns the absolute position idx.
func At(idx int) Position { return Position{Kind: PositionAt, Idx: idx} }

// CmdKind discriminates a command. The zero Cmd is the no-op command.
type CmdKind uint8

const (
	CmdNone CmdKind = iota
	CmdMove
	CmdScroll
	CmdGoTo
	CmdType
	CmdSubmit
	CmdDelete
	CmdCancel
	CmdToggle
	CmdCustom
)

// Cmd is a single behavior command. Cmd values are comparable with ==.
type Cmd struct {
	kind   CmdKind
	dir    Direction
	pos    Position
	ch     rune
	custom string
}

// Move builds a cursor/selection movement command.
func Move(d Direction) Cmd { return Cmd{kind: CmdMove, dir: d} }

// Scroll builds a scroll command.
func Scroll(d Direction) Cmd { return Cmd{kind: CmdScroll, dir: d} }

// GoTo builds an absolute positioning command.
func GoTo(p Position) Cmd { return Cmd{kind: CmdGoTo, pos: p} }

// Type builds a character insertion command.
func Type(ch rune) Cmd { return Cmd{kind: CmdType, ch: ch} }

// Submit builds the submit command.
func Submit() Cmd { return Cmd{kind: CmdSubmit} }

// Delete builds the delete command.
func Delete() Cmd { return Cmd{kind: CmdDelete} }

// Cancel builds the cancel command.
func Cancel() Cmd { return Cmd{kind: CmdCancel} }

// Toggle builds the toggle command.
func Toggle() Cmd { return Cmd{kind: CmdToggle} }

// Custom builds an application-defined command identified by name.
func Custom(name string) Cmd { return Cmd{kind: CmdCustom, custom: name} }

// Kind returns the command's discriminant.
func (c Cmd) Kind() CmdKind { return c.kind }

// Dir returns the direction of a Move or Scroll command.
func (c Cmd) Dir() Direction { return c.dir }

// Pos returns the target of a GoTo command.
func (c Cmd) Pos() Position { return c.pos }

// Ch returns the character of a Type command.
func (c Cmd) Ch() rune { return c.ch }

// CustomName returns the name of a Custom command.
func (c Cmd) CustomName() string { return c.custom }

// ResultKind discriminates a command result. The zero CmdResult means the
// command had no observable effect.
type ResultKind uint8

const (
	ResultNone ResultKind = iota
	ResultChanged
	ResultSubmitted
	ResultBatch
	ResultInvalid
)

// CmdResult is what Perform reports back to the caller.
type CmdResult struct {
	kind    ResultKind
	state   state.State
	batch   []CmdResult
	invalid Cmd
}

// Changed reports that the component's state changed to st.
func Changed(st state.State) CmdResult {
	return CmdResult{kind: ResultChanged, state: st}
}

// Submitted reports that the component submitted st.
func Submitted(st state.State) CmdResult {
	return CmdResult{kind: ResultSubmitted, state: st}
}

// Batch groups several results into one.
func Batch(rs ...CmdResult) CmdResult {
	return CmdResult{kind: ResultBatch, batch: rs}
}

// Invalid reports that the component does not handle cmd.
func Invalid(cmd Cmd) CmdResult {
	return CmdResult{kind: ResultInvalid, invalid: cmd}
}

// Kind returns the result's discriminant.
func (r CmdResult) Kind() ResultKind { return r.kind }

// State returns the state carried by a Changed or Submitted result.
func (r CmdResult) State() state.State { return r.state }

// Batch returns the grouped results. The slice is shared, not copied.
func (r CmdResult) Batch() []CmdResult { return r.batch }

// Invalid returns the rejected command.
func (r CmdResult) Invalid() Cmd { return r.invalid }
