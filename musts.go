package bcnum

import "fmt"

// MustAdd is like [Number.Add] but panics if computing error.
func (n Number) MustAdd(x any) Number {
	m, err := n.Add(x)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", x, err))
	}
	return m
}

// MustSub is like [Number.Sub] but panics if computing error.
func (n Number) MustSub(x any) Number {
	m, err := n.Sub(x)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", x, err))
	}
	return m
}

// MustMul is like [Number.Mul] but panics if computing error.
func (n Number) MustMul(x any) Number {
	m, err := n.Mul(x)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", x, err))
	}
	return m
}

// MustDiv is like [Number.Div] but panics if computing error.
func (n Number) MustDiv(x any) Number {
	m, err := n.Div(x)
	if err != nil {
		panic(fmt.Sprintf("MustDiv(%v) failed: %v", x, err))
	}
	return m
}

// MustMod is like [Number.Mod] but panics if computing error.
func (n Number) MustMod(x any) Number {
	m, err := n.Mod(x)
	if err != nil {
		panic(fmt.Sprintf("MustMod(%v) failed: %v", x, err))
	}
	return m
}

// MustPow is like [Number.Pow] but panics if computing error.
func (n Number) MustPow(x any) Number {
	m, err := n.Pow(x)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", x, err))
	}
	return m
}

// MustPowMod is like [Number.PowMod] but panics if computing error.
func (n Number) MustPowMod(e, m any) Number {
	f, err := n.PowMod(e, m)
	if err != nil {
		panic(fmt.Sprintf("MustPowMod(%v, %v) failed: %v", e, m, err))
	}
	return f
}

// MustSqrt is like [Number.Sqrt] but panics if computing error.
func (n Number) MustSqrt() Number {
	m, err := n.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("MustSqrt() failed: %v", err))
	}
	return m
}

// MustRescale is like [Number.Rescale] but panics if the scale is out of range.
func (n Number) MustRescale(scale int) Number {
	m, err := n.Rescale(scale)
	if err != nil {
		panic(fmt.Sprintf("MustRescale(%v) failed: %v", scale, err))
	}
	return m
}
