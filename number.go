package bcnum

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/govalues/bcnum/internal/bc"
)

// Number type is a representation of a decimal number bound to a fixed scale.
// The zero value is the numeric value of 0 with a scale of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A number is a pair of parameters:
//
//   - Text: the canonical decimal representation of the value, truncated
//     to Scale digits after the decimal point.
//   - Scale: a non-negative integer indicating how many digits after
//     the decimal point are kept.
//
// For example, a number with a scale of 4 created from 0.01111 holds the
// text "0.0111", and 10 at the same scale holds "10.0000".
// Numbers are never modified: every operation returns a new number.
type Number struct {
	text  string // canonical representation, empty for the zero value
	scale int    // the number of digits after the decimal point
}

const (
	DefaultScale = 4              // scale used by [Fnum] when none is given
	MaxScale     = math.MaxInt16 // maximum number of digits after the decimal point
)

var (
	ErrInvalidNumeric = bc.ErrInvalidNumeric
	ErrDivisionByZero = bc.ErrDivisionByZero
	ErrInvalidOperand = bc.ErrInvalidOperand
	ErrScaleRange     = bc.ErrScaleRange
)

// New returns a number equal to value truncated to the given scale.
// The value can be one of the following types:
//
//   - [Number], *[Number];
//   - int, int8, int16, int32, int64;
//   - uint, uint8, uint16, uint32, uint64;
//   - float32, float64;
//   - string, []byte, [json.Number];
//   - *[big.Int];
//   - [decimal.Decimal].
//
// Strings must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	.5
//
// Floats are converted to the shortest decimal string that represents them
// exactly before truncation, so New(0.01111, 2) is 0.01.
//
// New returns an error if:
//   - the value is not a well-formed number, NaN or an infinity;
//   - the value has an unsupported type;
//   - the scale is less than 0 or greater than [MaxScale].
func New(value any, scale int) (Number, error) {
	if scale < 0 || scale > MaxScale {
		return Number{}, errors.Wrapf(ErrScaleRange, "scale %v", scale)
	}
	s, err := numeric(value)
	if err != nil {
		return Number{}, err
	}
	t, err := bc.Mul(s, "1", scale)
	if err != nil {
		return Number{}, err
	}
	return Number{text: t, scale: scale}, nil
}

// MustNew is like [New] but panics if the number cannot be constructed.
// It simplifies safe initialization of global variables holding numbers.
func MustNew(value any, scale int) Number {
	n, err := New(value, scale)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", value, scale, err))
	}
	return n
}

// Fnum is a shorthand for [MustNew].
// If scale is omitted, [DefaultScale] is used.
func Fnum(value any, scale ...int) Number {
	s := DefaultScale
	if len(scale) > 0 {
		s = scale[0]
	}
	return MustNew(value, s)
}

// Parse converts a string to a number.
// The scale of the number is the count of digits after the decimal point in s,
// so Parse("1.230") has a scale of 3.
// Also see function [New].
func Parse(s string) (Number, error) {
	scale, err := bc.Scale(s)
	if err != nil {
		return Number{}, err
	}
	return New(s, scale)
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return n
}

// numeric returns the decimal string form of a supported operand.
func numeric(value any) (string, error) {
	switch v := value.(type) {
	case Number:
		return v.val(), nil
	case *Number:
		if v == nil {
			return "", errors.Wrap(ErrInvalidOperand, "nil *bcnum.Number")
		}
		return v.val(), nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case json.Number:
		return string(v), nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return "", errors.Wrapf(ErrInvalidNumeric, "%v", v)
		}
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "", errors.Wrapf(ErrInvalidNumeric, "%v", v)
		}
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case *big.Int:
		if v == nil {
			return "", errors.Wrap(ErrInvalidOperand, "nil *big.Int")
		}
		return v.String(), nil
	case decimal.Decimal:
		return v.String(), nil
	default:
		return "", errors.Wrapf(ErrInvalidOperand, "unsupported type %T", value)
	}
}

// from converts an operand to a number with the given scale.
// A number operand is returned as is, keeping its own scale.
func from(x any, scale int) (Number, error) {
	switch v := x.(type) {
	case Number:
		return v, nil
	case *Number:
		if v != nil {
			return *v, nil
		}
	}
	return New(x, scale)
}

func (n Number) val() string {
	if n.text == "" {
		return "0"
	}
	return n.text
}

// String method implements the [fmt.Stringer] interface and returns
// the canonical representation of a number.
// The returned string has exactly [Number.Scale] digits after the decimal point,
// does not use exponent notation and is formatted according to the following
// formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (n Number) String() string {
	return n.val()
}

// Float64 returns the nearest binary floating-point number to n.
// Digits beyond the precision of float64 are lost.
func (n Number) Float64() float64 {
	f, _ := strconv.ParseFloat(n.val(), 64)
	return f
}

// Int64 returns the integer part of n, discarding the fractional digits.
// If the integer part does not fit into int64, the boolean is false.
func (n Number) Int64() (int64, bool) {
	i := n.BigInt()
	if !i.IsInt64() {
		return 0, false
	}
	return i.Int64(), true
}

// BigInt returns the integer part of n, discarding the fractional digits.
func (n Number) BigInt() *big.Int {
	s := n.val()
	if p := strings.IndexByte(s, '.'); p >= 0 {
		s = s[:p]
	}
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Sprintf("%q.BigInt() failed: %v", n, ErrInvalidNumeric)) // unexpected by design
	}
	return i
}

// Decimal returns n as a [decimal.Decimal].
func (n Number) Decimal() decimal.Decimal {
	return decimal.RequireFromString(n.val())
}

// Scale returns number of digits after the decimal point.
func (n Number) Scale() int {
	return n.scale
}

// Rescale returns n truncated or zero-padded to the given scale.
// This is the only operation that produces a number with a different scale.
//
// Rescale returns an error if the scale is less than 0 or greater than [MaxScale].
func (n Number) Rescale(scale int) (Number, error) {
	return New(n.val(), scale)
}

// Sign returns:
//
//	-1 if n < 0
//	 0 if n == 0
//	+1 if n > 0
func (n Number) Sign() int {
	c, err := bc.Comp(n.val(), "0", n.scale)
	if err != nil {
		panic(fmt.Sprintf("%q.Sign() failed: %v", n, err)) // unexpected by design
	}
	return c
}

// IsZero returns true if n == 0.
func (n Number) IsZero() bool {
	return n.Sign() == 0
}

// IsPos returns true if n > 0.
func (n Number) IsPos() bool {
	return n.Sign() > 0
}

// IsNeg returns true if n < 0.
func (n Number) IsNeg() bool {
	return n.Sign() < 0
}

// IsInt returns true if the fractional part of n is zero.
func (n Number) IsInt() bool {
	return n.rem("1").IsZero()
}

// IsEven returns true if n mod 2 is zero at the scale of n.
// A number with a non-zero fractional part is never even.
func (n Number) IsEven() bool {
	return n.rem("2").IsZero()
}

// IsOdd returns true if n is not even.
func (n Number) IsOdd() bool {
	return !n.IsEven()
}

func (n Number) rem(m string) Number {
	t, err := bc.Mod(n.val(), m, n.scale)
	if err != nil {
		panic(fmt.Sprintf("%q.Mod(%v) failed: %v", n, m, err)) // unexpected by design
	}
	return Number{text: t, scale: n.scale}
}

// Abs returns the absolute value of n.
// A non-negative n is returned as is.
func (n Number) Abs() Number {
	if n.IsNeg() {
		return n.Neg()
	}
	return n
}

// Neg returns n with the opposite sign.
func (n Number) Neg() Number {
	t, err := bc.Mul(n.val(), "-1", n.scale)
	if err != nil {
		panic(fmt.Sprintf("%q.Neg() failed: %v", n, err)) // unexpected by design
	}
	return Number{text: t, scale: n.scale}
}
