package props

import (
	"strings"
	"unicode"
)

// InputTypeKind discriminates the input validation modes.
type InputTypeKind uint8

const (
	InputKindText InputTypeKind = iota
	InputKindNumber
	InputKindEmail
	InputKindTelephone
	InputKindColor
	InputKindPassword
)

// InputType tells text-entry widgets what they accept and how to echo it.
type InputType struct {
	kind InputTypeKind
	mask rune
}

// The stock input modes.
var (
	InputText      = InputType{kind: InputKindText}
	InputNumber    = InputType{kind: InputKindNumber}
	InputEmail     = InputType{kind: InputKindEmail}
	InputTelephone = InputType{kind: InputKindTelephone}
	InputColor     = InputType{kind: InputKindColor}
)

// InputPassword echoes every typed rune as mask.
func InputPassword(mask rune) InputType {
	return InputType{kind: InputKindPassword, mask: mask}
}

// Kind returns the input mode.
func (t InputType) Kind() InputTypeKind { return t.kind }

// Mask returns the echo rune for password inputs, zero otherwise.
func (t InputType) Mask() rune { return t.mask }

// AcceptRune reports whether ch may be typed into an input of this type.
// Submit-time validity is checked by Valid.
func (t InputType) AcceptRune(ch rune) bool {
	switch t.kind {
	case InputKindNumber:
		return unicode.IsDigit(ch) || ch == '-' || ch == '+' || ch == '.'
	case InputKindTelephone:
		return unicode.IsDigit(ch) || strings.ContainsRune("+-() ", ch)
	case InputKindColor:
		return unicode.IsDigit(ch) || strings.ContainsRune("#abcdefABCDEF(),rgb ", ch)
	default:
		return unicode.IsPrint(ch)
	}
}

// Valid reports whether the whole value is acceptable for this input type.
func (t InputType) Valid(value string) bool {
	switch t.kind {
	case InputKindNumber:
		if value == "" {
			return false
		}
		for i, ch := range value {
			if unicode.IsDigit(ch) {
				continue
			}
			if (ch == '-' || ch == '+') && i == 0 {
				continue
			}
			return false
		}
		return true
	case InputKindEmail:
		at := strings.Index(value, "@")
		return at > 0 && strings.Contains(value[at:], ".")
	case InputKindColor:
		_, err := ParseColor(value)
		return err == nil
	default:
		return true
	}
}
