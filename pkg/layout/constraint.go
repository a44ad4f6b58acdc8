package layout

import "fmt"

// ConstraintKind discriminates the constraint variants.
type ConstraintKind uint8

const (
	KindLength ConstraintKind = iota
	KindPercentage
	KindRatio
	KindMin
	KindMax
	KindFill
)

// Constraint tells the solver how much of the split axis one region wants.
type Constraint struct {
	kind     ConstraintKind
	value    int
	num, den int
}

// Length requests exactly n cells.
func Length(n int) Constraint {
	return Constraint{kind: KindLength, value: max(n, 0)}
}

// Percentage requests p percent of the available space, clamped to 0..100.
func Percentage(p int) Constraint {
	return Constraint{kind: KindPercentage, value: min(max(p, 0), 100)}
}

// Ratio requests num/den of the available space.
func Ratio(num, den int) Constraint {
	return Constraint{kind: KindRatio, num: max(num, 0), den: den}
}

// Min requests at least n cells and grows to absorb leftover space.
func Min(n int) Constraint {
	return Constraint{kind: KindMin, value: max(n, 0)}
}

// Max requests at most n cells.
func Max(n int) Constraint {
	return Constraint{kind: KindMax, value: max(n, 0)}
}

// Fill requests a share of the leftover space proportional to weight.
// Weights below one count as one.
func Fill(weight int) Constraint {
	return Constraint{kind: KindFill, value: max(weight, 1)}
}

// Kind returns the constraint variant.
func (c Constraint) Kind() ConstraintKind { return c.kind }

// String renders the constraint for debug output.
func (c Constraint) String() string {
	switch c.kind {
	case KindLength:
		return fmt.Sprintf("Length(%d)", c.value)
	case KindPercentage:
		return fmt.Sprintf("Percentage(%d)", c.value)
	case KindRatio:
		return fmt.Sprintf("Ratio(%d/%d)", c.num, c.den)
	case KindMin:
		return fmt.Sprintf("Min(%d)", c.value)
	case KindMax:
		return fmt.Sprintf("Max(%d)", c.value)
	default:
		return fmt.Sprintf("Fill(%d)", c.value)
	}
}
