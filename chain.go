package bcnum

import (
	"github.com/pkg/errors"
)

// Chain is a sequence of operations on a number that stops at the first error.
// Each step returns a new chain, so a chain can be shared and extended
// from several places.
// Once a step fails, the remaining steps are skipped and [Chain.Result]
// reports the error of the failed step.
//
//	n, err := bcnum.Fnum(10).Chain().
//		Add(5).
//		MulIf(2, bcnum.When(discount)).
//		Sqrt().
//		Result()
type Chain struct {
	n    Number
	err  error
	step int
}

// Chain starts a chain of operations on n.
func (n Number) Chain() Chain {
	return Chain{n: n}
}

// NewChain starts a chain of operations on a number created by [New].
// A construction error is reported by [Chain.Result].
func NewChain(value any, scale int) Chain {
	n, err := New(value, scale)
	if err != nil {
		return Chain{err: errors.WithMessage(err, "step 0 (New)")}
	}
	return Chain{n: n}
}

func (c Chain) then(name string, f func(Number) (Number, error)) Chain {
	if c.err != nil {
		return c
	}
	step := c.step + 1
	n, err := f(c.n)
	if err != nil {
		return Chain{n: c.n, err: errors.WithMessagef(err, "step %v (%v)", step, name), step: step}
	}
	return Chain{n: n, step: step}
}

// Result returns the number computed by the chain, or the first error.
func (c Chain) Result() (Number, error) {
	if c.err != nil {
		return Number{}, c.err
	}
	return c.n, nil
}

// Err returns the first error of the chain, if any.
func (c Chain) Err() error {
	return c.err
}

// Must is like [Chain.Result] but panics if any step failed.
func (c Chain) Must() Number {
	if c.err != nil {
		panic(c.err.Error())
	}
	return c.n
}

func (c Chain) Add(x any) Chain {
	return c.then("Add", func(n Number) (Number, error) { return n.Add(x) })
}

func (c Chain) Sub(x any) Chain {
	return c.then("Sub", func(n Number) (Number, error) { return n.Sub(x) })
}

func (c Chain) Mul(x any) Chain {
	return c.then("Mul", func(n Number) (Number, error) { return n.Mul(x) })
}

func (c Chain) Div(x any) Chain {
	return c.then("Div", func(n Number) (Number, error) { return n.Div(x) })
}

func (c Chain) Mod(x any) Chain {
	return c.then("Mod", func(n Number) (Number, error) { return n.Mod(x) })
}

func (c Chain) Pow(x any) Chain {
	return c.then("Pow", func(n Number) (Number, error) { return n.Pow(x) })
}

func (c Chain) PowMod(e, m any) Chain {
	return c.then("PowMod", func(n Number) (Number, error) { return n.PowMod(e, m) })
}

func (c Chain) Sqrt() Chain {
	return c.then("Sqrt", Number.Sqrt)
}

func (c Chain) Rescale(scale int) Chain {
	return c.then("Rescale", func(n Number) (Number, error) { return n.Rescale(scale) })
}

func (c Chain) AddIf(x any, cond Condition) Chain {
	return c.then("AddIf", func(n Number) (Number, error) { return n.AddIf(x, cond) })
}

func (c Chain) SubIf(x any, cond Condition) Chain {
	return c.then("SubIf", func(n Number) (Number, error) { return n.SubIf(x, cond) })
}

func (c Chain) MulIf(x any, cond Condition) Chain {
	return c.then("MulIf", func(n Number) (Number, error) { return n.MulIf(x, cond) })
}

func (c Chain) DivIf(x any, cond Condition) Chain {
	return c.then("DivIf", func(n Number) (Number, error) { return n.DivIf(x, cond) })
}

func (c Chain) ModIf(x any, cond Condition) Chain {
	return c.then("ModIf", func(n Number) (Number, error) { return n.ModIf(x, cond) })
}

func (c Chain) PowIf(x any, cond Condition) Chain {
	return c.then("PowIf", func(n Number) (Number, error) { return n.PowIf(x, cond) })
}

func (c Chain) PowModIf(e, m any, cond Condition) Chain {
	return c.then("PowModIf", func(n Number) (Number, error) { return n.PowModIf(e, m, cond) })
}

func (c Chain) SqrtIf(cond Condition) Chain {
	return c.then("SqrtIf", func(n Number) (Number, error) { return n.SqrtIf(cond) })
}

func (c Chain) RescaleIf(scale int, cond Condition) Chain {
	return c.then("RescaleIf", func(n Number) (Number, error) { return n.RescaleIf(scale, cond) })
}

func (c Chain) Abs() Chain {
	return c.then("Abs", func(n Number) (Number, error) { return n.Abs(), nil })
}

func (c Chain) Neg() Chain {
	return c.then("Neg", func(n Number) (Number, error) { return n.Neg(), nil })
}

func (c Chain) Min(x any) Chain {
	return c.then("Min", func(n Number) (Number, error) { return n.Min(x) })
}

func (c Chain) Max(x any) Chain {
	return c.then("Max", func(n Number) (Number, error) { return n.Max(x) })
}

func (c Chain) Clamp(min, max any) Chain {
	return c.then("Clamp", func(n Number) (Number, error) { return n.Clamp(min, max) })
}
