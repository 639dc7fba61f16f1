package bcnum

import (
	"github.com/pkg/errors"

	"github.com/govalues/bcnum/internal/bc"
)

// Cmp compares n and x at the scale of n and returns:
//
//	-1 if n < x
//	 0 if n == x
//	+1 if n > x
//
// Digits of x beyond the scale of n are ignored, so 1.00 is equal to 1.0001
// when n has a scale of 2.
//
// Cmp returns an error if x cannot be converted to a number.
func (n Number) Cmp(x any) (int, error) {
	e, err := from(x, n.scale)
	if err != nil {
		return 0, errors.Wrapf(err, "comparing %v with %v", n, x)
	}
	return n.cmp(e)
}

func (n Number) cmp(e Number) (int, error) {
	r, err := bc.Comp(n.val(), e.val(), n.scale)
	if err != nil {
		return 0, errors.Wrapf(err, "comparing %v with %v", n, e)
	}
	return r, nil
}

// Equal returns true if n == x.
// Also see method [Number.Cmp].
func (n Number) Equal(x any) (bool, error) {
	r, err := n.Cmp(x)
	return r == 0 && err == nil, err
}

// GreaterThan returns true if n > x.
// Also see method [Number.Cmp].
func (n Number) GreaterThan(x any) (bool, error) {
	r, err := n.Cmp(x)
	return r > 0, err
}

// GreaterThanOrEqual returns true if n >= x.
// Also see method [Number.Cmp].
func (n Number) GreaterThanOrEqual(x any) (bool, error) {
	r, err := n.Cmp(x)
	return r >= 0 && err == nil, err
}

// LessThan returns true if n < x.
// Also see method [Number.Cmp].
func (n Number) LessThan(x any) (bool, error) {
	r, err := n.Cmp(x)
	return r < 0, err
}

// LessThanOrEqual returns true if n <= x.
// Also see method [Number.Cmp].
func (n Number) LessThanOrEqual(x any) (bool, error) {
	r, err := n.Cmp(x)
	return r <= 0 && err == nil, err
}

// Min returns the smaller of n and x.
// If they are equal, n is returned.
// A number operand is returned with its own scale, any other operand
// is converted to the scale of n.
func (n Number) Min(x any) (Number, error) {
	e, err := from(x, n.scale)
	if err != nil {
		return Number{}, errors.Wrapf(err, "computing min(%v, %v)", n, x)
	}
	r, err := n.cmp(e)
	if err != nil {
		return Number{}, err
	}
	if r <= 0 {
		return n, nil
	}
	return e, nil
}

// Max returns the larger of n and x.
// If they are equal, n is returned.
// A number operand is returned with its own scale, any other operand
// is converted to the scale of n.
func (n Number) Max(x any) (Number, error) {
	e, err := from(x, n.scale)
	if err != nil {
		return Number{}, errors.Wrapf(err, "computing max(%v, %v)", n, x)
	}
	r, err := n.cmp(e)
	if err != nil {
		return Number{}, err
	}
	if r >= 0 {
		return n, nil
	}
	return e, nil
}

// Clamp limits n to the interval [min, max].
// The upper bound is applied first and the lower bound last,
// so if min > max the result is min.
// Also see methods [Number.Min], [Number.Max].
func (n Number) Clamp(min, max any) (Number, error) {
	m, err := n.Min(max)
	if err != nil {
		return Number{}, err
	}
	return m.Max(min)
}
