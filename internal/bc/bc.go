// Package bc implements arbitrary-precision decimal arithmetic on numeric strings.
//
// Every function takes its operands as decimal strings, computes the result
// exactly and then truncates it toward zero to the requested scale.
// Results are formatted with exactly scale digits after the decimal point and
// never use exponent notation or a signed zero.
//
// The accepted input grammar is:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	numeric-string ::= [sign] significand
package bc

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidNumeric  = errors.New("not a well-formed number")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrInvalidOperand  = errors.New("invalid operand")
	ErrScaleRange      = errors.New("scale out of range")
	errExponentRange   = errors.New("exponent too large")
	errFractionalValue = errors.New("value cannot have a fractional part")
)

// Add returns a + b truncated to scale.
func Add(a, b string, scale int) (string, error) {
	x, y, err := parse2(a, b, scale)
	if err != nil {
		return "", err
	}
	return format(x.Add(y), scale), nil
}

// Sub returns a - b truncated to scale.
func Sub(a, b string, scale int) (string, error) {
	x, y, err := parse2(a, b, scale)
	if err != nil {
		return "", err
	}
	return format(x.Sub(y), scale), nil
}

// Mul returns a * b truncated to scale.
// Mul(a, "1", scale) is the canonical way to bring any numeric string to scale.
func Mul(a, b string, scale int) (string, error) {
	x, y, err := parse2(a, b, scale)
	if err != nil {
		return "", err
	}
	return format(x.Mul(y), scale), nil
}

// Div returns a / b truncated to scale.
func Div(a, b string, scale int) (string, error) {
	x, y, err := parse2(a, b, scale)
	if err != nil {
		return "", err
	}
	if y.IsZero() {
		return "", ErrDivisionByZero
	}
	q, _ := x.QuoRem(y, int32(scale))
	return format(q, scale), nil
}

// Mod returns a - b * trunc(a / b) truncated to scale.
// The sign of a non-zero result is the sign of a.
func Mod(a, b string, scale int) (string, error) {
	x, y, err := parse2(a, b, scale)
	if err != nil {
		return "", err
	}
	if y.IsZero() {
		return "", ErrDivisionByZero
	}
	_, r := x.QuoRem(y, 0)
	return format(r, scale), nil
}

// Pow returns a raised to the integral power e, truncated to scale.
// For negative e the result is 1 / a^|e|.
func Pow(a, e string, scale int) (string, error) {
	x, y, err := parse2(a, e, scale)
	if err != nil {
		return "", err
	}
	if !isInt(y) {
		return "", errors.Wrapf(ErrInvalidOperand, "exponent %v: %v", e, errFractionalValue)
	}
	n := y.BigInt()
	if !n.IsInt64() {
		return "", errors.Wrapf(ErrInvalidOperand, "exponent %v: %v", e, errExponentRange)
	}
	exp := n.Int64()

	// Special case: zero exponent
	if exp == 0 {
		return format(decimal.New(1, 0), scale), nil
	}

	neg := exp < 0
	if neg {
		exp = -exp
	}
	z := powInt(x, exp)
	if !neg {
		return format(z, scale), nil
	}
	if z.IsZero() {
		return "", ErrDivisionByZero
	}
	q, _ := decimal.New(1, 0).QuoRem(z, int32(scale))
	return format(q, scale), nil
}

// powInt computes x^n exactly by binary exponentiation.
func powInt(x decimal.Decimal, n int64) decimal.Decimal {
	z := decimal.New(1, 0)
	for n > 0 {
		if n&1 == 1 {
			z = z.Mul(x)
		}
		n >>= 1
		if n > 0 {
			x = x.Mul(x)
		}
	}
	return z
}

// PowMod returns (a ^ e) mod m formatted with scale digits.
// All operands must be integral and e must not be negative.
// The sign of a non-zero result is the sign of a^e.
func PowMod(a, e, m string, scale int) (string, error) {
	if scale < 0 {
		return "", ErrScaleRange
	}
	x, err := parse(a)
	if err != nil {
		return "", err
	}
	y, err := parse(e)
	if err != nil {
		return "", err
	}
	z, err := parse(m)
	if err != nil {
		return "", err
	}
	switch {
	case !isInt(x):
		return "", errors.Wrapf(ErrInvalidOperand, "base %v: %v", a, errFractionalValue)
	case !isInt(y):
		return "", errors.Wrapf(ErrInvalidOperand, "exponent %v: %v", e, errFractionalValue)
	case !isInt(z):
		return "", errors.Wrapf(ErrInvalidOperand, "modulus %v: %v", m, errFractionalValue)
	case y.IsNegative():
		return "", errors.Wrapf(ErrInvalidOperand, "exponent %v cannot be negative", e)
	case z.IsZero():
		return "", ErrDivisionByZero
	}

	base := x.BigInt()
	exp := y.BigInt()
	mod := z.BigInt()

	neg := base.Sign() < 0 && exp.Bit(0) == 1
	r := new(big.Int).Exp(new(big.Int).Abs(base), exp, new(big.Int).Abs(mod))
	if neg {
		r.Neg(r)
	}
	return format(decimal.NewFromBigInt(r, 0), scale), nil
}

// Sqrt returns the square root of a truncated to scale.
func Sqrt(a string, scale int) (string, error) {
	if scale < 0 {
		return "", ErrScaleRange
	}
	x, err := parse(a)
	if err != nil {
		return "", err
	}
	if x.IsNegative() {
		return "", errors.Wrapf(ErrInvalidOperand, "square root of negative number %v", a)
	}
	// floor(sqrt(x * 10^2s)) / 10^s
	n := x.Shift(int32(2 * scale)).BigInt()
	n.Sqrt(n)
	return format(decimal.NewFromBigInt(n, -int32(scale)), scale), nil
}

// Comp compares a and b truncated to scale and returns:
//
//	-1 if a < b
//	 0 if a == b
//	+1 if a > b
func Comp(a, b string, scale int) (int, error) {
	x, y, err := parse2(a, b, scale)
	if err != nil {
		return 0, err
	}
	s := int32(scale)
	return x.Truncate(s).Cmp(y.Truncate(s)), nil
}

// Scale returns the number of digits after the decimal point in a.
func Scale(a string) (int, error) {
	if err := validate(a); err != nil {
		return 0, err
	}
	for i := 0; i < len(a); i++ {
		if a[i] == '.' {
			return len(a) - i - 1, nil
		}
	}
	return 0, nil
}

func parse2(a, b string, scale int) (decimal.Decimal, decimal.Decimal, error) {
	if scale < 0 {
		return decimal.Decimal{}, decimal.Decimal{}, ErrScaleRange
	}
	x, err := parse(a)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}
	y, err := parse(b)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}
	return x, y, nil
}

func parse(a string) (decimal.Decimal, error) {
	if err := validate(a); err != nil {
		return decimal.Decimal{}, err
	}
	d, err := decimal.NewFromString(a)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(ErrInvalidNumeric, "%q: %v", a, err)
	}
	return d, nil
}

// validate rejects everything decimal.NewFromString would accept beyond
// the plain numeric-string grammar, such as exponents.
func validate(a string) error {
	var (
		pos    int
		width  int
		digits bool
	)

	width = len(a)

	// Sign
	if pos < width && (a[pos] == '-' || a[pos] == '+') {
		pos++
	}

	// Integer
	for pos < width && a[pos] >= '0' && a[pos] <= '9' {
		digits = true
		pos++
	}

	// Fraction
	if pos < width && a[pos] == '.' {
		pos++
		for pos < width && a[pos] >= '0' && a[pos] <= '9' {
			digits = true
			pos++
		}
	}

	if pos != width {
		return errors.Wrapf(ErrInvalidNumeric, "%q: invalid character at position %v", a, pos)
	}
	if !digits {
		return errors.Wrapf(ErrInvalidNumeric, "%q: no digits", a)
	}
	return nil
}

func isInt(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(0))
}

func format(d decimal.Decimal, scale int) string {
	s := int32(scale)
	return d.Truncate(s).StringFixed(s)
}
