package model

import "fmt"

// Sense is the direction of a branching bound.
type Sense uint8

const (
	// AtLeast tightens the lower bound: x ≥ Value.
	AtLeast Sense = iota + 1
	// AtMost tightens the upper bound: x ≤ Value.
	AtMost
)

// Override is a temporary bound on a single variable, used for branching.
// It never changes the Model itself.
type Override struct {
	Var   int
	Sense Sense
	Value float64
}

// Include returns x_v ≥ 1.
func Include(v int) Override { return Override{Var: v, Sense: AtLeast, Value: 1} }

// Exclude returns x_v ≤ 0.
func Exclude(v int) Override { return Override{Var: v, Sense: AtMost, Value: 0} }

// String implements fmt.Stringer, e.g. "x3>=1".
func (o Override) String() string {
	op := "<="
	if o.Sense == AtLeast {
		op = ">="
	}
	return fmt.Sprintf("x%d%s%g", o.Var, op, o.Value)
}

// Bounds intersects the domain [0,1] of every variable of m with ov and
// returns per-variable lower and upper bounds.
//
// Errors:
//   - ErrUnknownVar, ErrBadSense for a malformed override.
//   - ErrEmptyDomain when some variable ends up with lower > upper.
func (m *Model) Bounds(ov []Override) (lo, hi []float64, err error) {
	n := len(m.vertex)
	lo = make([]float64, n)
	hi = make([]float64, n)
	for i := range hi {
		hi[i] = 1
	}
	for _, o := range ov {
		if o.Var < 0 || o.Var >= n {
			return nil, nil, fmt.Errorf("%w: %s (have %d)", ErrUnknownVar, o, n)
		}
		switch o.Sense {
		case AtLeast:
			lo[o.Var] = max(lo[o.Var], o.Value)
		case AtMost:
			hi[o.Var] = min(hi[o.Var], o.Value)
		default:
			return nil, nil, fmt.Errorf("%w: %d on x%d", ErrBadSense, o.Sense, o.Var)
		}
	}
	for i := range lo {
		if lo[i] > hi[i] {
			return nil, nil, fmt.Errorf("%w: x%d in [%g,%g]", ErrEmptyDomain, i, lo[i], hi[i])
		}
	}
	return lo, hi, nil
}
