package bcnum

import (
	"github.com/pkg/errors"

	"github.com/govalues/bcnum/internal/bc"
)

// Condition decides whether a conditional operation such as [Number.AddIf]
// is carried out.
// A condition is called exactly once per operation, before the operand is
// converted. A nil condition is true.
type Condition func() (bool, error)

// When returns a condition with a fixed outcome.
func When(ok bool) Condition {
	return func() (bool, error) {
		return ok, nil
	}
}

// WhenFunc returns a condition that calls f.
func WhenFunc(f func() bool) Condition {
	return func() (bool, error) {
		return f(), nil
	}
}

func (c Condition) eval() (bool, error) {
	if c == nil {
		return true, nil
	}
	return c()
}

// when calls f if c holds and returns n unchanged otherwise.
func (n Number) when(c Condition, f func() (Number, error)) (Number, error) {
	ok, err := c.eval()
	if err != nil {
		return Number{}, err
	}
	if !ok {
		return n, nil
	}
	return f()
}

type binaryOp func(a, b string, scale int) (string, error)

// apply converts x to the scale of n and computes op at the scale of n.
func (n Number) apply(f binaryOp, sym string, x any) (Number, error) {
	e, err := from(x, n.scale)
	if err != nil {
		return Number{}, errors.Wrapf(err, "computing [%v %v %v]", n, sym, x)
	}
	t, err := f(n.val(), e.val(), n.scale)
	if err != nil {
		return Number{}, errors.Wrapf(err, "computing [%v %v %v]", n, sym, e)
	}
	return Number{text: t, scale: n.scale}, nil
}

// Add returns the sum of n and x truncated to the scale of n.
//
// Add returns an error if x cannot be converted to a number.
func (n Number) Add(x any) (Number, error) {
	return n.apply(bc.Add, "+", x)
}

// Sub returns the difference of n and x truncated to the scale of n.
//
// Sub returns an error if x cannot be converted to a number.
func (n Number) Sub(x any) (Number, error) {
	return n.apply(bc.Sub, "-", x)
}

// Mul returns the product of n and x truncated to the scale of n.
//
// Mul returns an error if x cannot be converted to a number.
func (n Number) Mul(x any) (Number, error) {
	return n.apply(bc.Mul, "*", x)
}

// Div returns the quotient of n and x truncated to the scale of n.
//
// Div returns an error if:
//   - x cannot be converted to a number;
//   - x is 0 at the scale of n.
func (n Number) Div(x any) (Number, error) {
	return n.apply(bc.Div, "/", x)
}

// Mod returns the remainder of n divided by x, computed as n - x * trunc(n / x)
// and truncated to the scale of n.
// The sign of a non-zero remainder is the sign of n.
//
// Mod returns an error if:
//   - x cannot be converted to a number;
//   - x is 0 at the scale of n.
func (n Number) Mod(x any) (Number, error) {
	return n.apply(bc.Mod, "%", x)
}

// Pow returns n raised to the power of x truncated to the scale of n.
// For negative powers the result is 1 / n^|x|.
//
// Pow returns an error if:
//   - x cannot be converted to a number;
//   - x has a non-zero fractional part or does not fit into int64;
//   - n is 0 and x is negative.
func (n Number) Pow(x any) (Number, error) {
	return n.apply(bc.Pow, "^", x)
}

// PowMod returns (n ^ e) mod m formatted with the scale of n.
// It uses modular exponentiation, so the power is never materialized.
//
// PowMod returns an error if:
//   - e or m cannot be converted to a number;
//   - n, e or m has a non-zero fractional part;
//   - e is negative;
//   - m is 0.
func (n Number) PowMod(e, m any) (Number, error) {
	f, err := from(e, n.scale)
	if err != nil {
		return Number{}, errors.Wrapf(err, "computing [%v ^ %v mod %v]", n, e, m)
	}
	g, err := from(m, n.scale)
	if err != nil {
		return Number{}, errors.Wrapf(err, "computing [%v ^ %v mod %v]", n, e, m)
	}
	t, err := bc.PowMod(n.val(), f.val(), g.val(), n.scale)
	if err != nil {
		return Number{}, errors.Wrapf(err, "computing [%v ^ %v mod %v]", n, f, g)
	}
	return Number{text: t, scale: n.scale}, nil
}

// Sqrt returns the square root of n truncated to the scale of n.
//
// Sqrt returns an error if n is negative.
func (n Number) Sqrt() (Number, error) {
	t, err := bc.Sqrt(n.val(), n.scale)
	if err != nil {
		return Number{}, errors.Wrapf(err, "computing sqrt(%v)", n)
	}
	return Number{text: t, scale: n.scale}, nil
}

// AddIf is like [Number.Add] but only if c holds.
// Otherwise n is returned unchanged.
func (n Number) AddIf(x any, c Condition) (Number, error) {
	return n.when(c, func() (Number, error) { return n.Add(x) })
}

// SubIf is like [Number.Sub] but only if c holds.
// Otherwise n is returned unchanged.
func (n Number) SubIf(x any, c Condition) (Number, error) {
	return n.when(c, func() (Number, error) { return n.Sub(x) })
}

// MulIf is like [Number.Mul] but only if c holds.
// Otherwise n is returned unchanged.
func (n Number) MulIf(x any, c Condition) (Number, error) {
	return n.when(c, func() (Number, error) { return n.Mul(x) })
}

// DivIf is like [Number.Div] but only if c holds.
// Otherwise n is returned unchanged.
func (n Number) DivIf(x any, c Condition) (Number, error) {
	return n.when(c, func() (Number, error) { return n.Div(x) })
}

// ModIf is like [Number.Mod] but only if c holds.
// Otherwise n is returned unchanged.
func (n Number) ModIf(x any, c Condition) (Number, error) {
	return n.when(c, func() (Number, error) { return n.Mod(x) })
}

// PowIf is like [Number.Pow] but only if c holds.
// Otherwise n is returned unchanged.
func (n Number) PowIf(x any, c Condition) (Number, error) {
	return n.when(c, func() (Number, error) { return n.Pow(x) })
}

// PowModIf is like [Number.PowMod] but only if c holds.
// Otherwise n is returned unchanged.
func (n Number) PowModIf(e, m any, c Condition) (Number, error) {
	return n.when(c, func() (Number, error) { return n.PowMod(e, m) })
}

// SqrtIf is like [Number.Sqrt] but only if c holds.
// Otherwise n is returned unchanged.
func (n Number) SqrtIf(c Condition) (Number, error) {
	return n.when(c, n.Sqrt)
}

// RescaleIf is like [Number.Rescale] but only if c holds.
// Otherwise n is returned unchanged.
func (n Number) RescaleIf(scale int, c Condition) (Number, error) {
	return n.when(c, func() (Number, error) { return n.Rescale(scale) })
}
