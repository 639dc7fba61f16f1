/*
Package bcnum implements immutable arbitrary-precision decimal numbers with
a fixed scale.
It is specifically designed for exact fixed-point calculations, such as
financial ones, written in a fluent style.

# Representation

[Number] is a struct with two fields:

  - Text: the canonical decimal representation of the value, for example
    "-12.3400".
  - Scale: a non-negative integer indicating how many digits after the
    decimal point are kept.
    For example, a number with a scale of 2 created from 123.456 represents
    the value 123.45.

The text always has exactly Scale digits after the decimal point, padded with
trailing zeros if needed, and has no decimal point at all when the scale is 0.
Zero is never signed.

The scale is chosen when a number is created and never changes, with the single
exception of [Number.Rescale], which returns a new number with a different scale.

# Constraints

There is no limit on the number of digits in the integer part.
The scale must be between 0 and [MaxScale] inclusive.

Special values such as NaN, Infinity, or negative zeros are not supported.
This ensures that arithmetic operations always produce either valid numbers
or errors.

# Conversions

The package provides methods for converting numbers:

  - from/to string:
    [New], [Parse], [Number.String], [Number.Format].
  - from/to float64:
    [New], [Number.Float64].
  - from/to int64 and [big.Int]:
    [New], [Number.Int64], [Number.BigInt].
  - from/to [decimal.Decimal]:
    [New], [Number.Decimal].

Every value enters a number through a single gate: it is multiplied by 1 at the
requested scale.
Floats are first converted to the shortest decimal string that represents them,
so [New](0.01111, 2) is 0.01 rather than a binary approximation.

# Operations

Each arithmetic operation takes one operand, which is either a [Number]
or a raw value accepted by [New], and is carried out in two steps:

 1. A raw operand is converted to a number with the scale of the receiver.
    A [Number] operand is used as is, keeping all of its digits.

 2. The exact result is computed with arbitrary precision and then truncated
    to the scale of the receiver.

Comparisons follow the same steps, but both sides are truncated to the scale
of the receiver before they are compared.
This means that for a receiver with a scale of 2, 1.00 is equal to 1.0001.

# Conditional operations

For every arithmetic operation there is a conditional variant, such as
[Number.AddIf] or [Number.SqrtIf].
It takes a [Condition], which is evaluated exactly once.
If the condition holds, the result of the operation is returned,
otherwise the receiver is returned unchanged.
Use [When] for a fixed outcome and [WhenFunc] for a predicate.

A [Chain] keeps the fluent style without checking an error after every step:

	n, err := bcnum.Fnum(10).Chain().
		Add(5).
		MulIf(2, bcnum.When(discount)).
		Sqrt().
		Result()

# Rounding

All operations truncate toward zero.
For example, 2 / 3 with a scale of 4 is 0.6666, and -2 / 3 is -0.6666.
[Number.Pow] computes the power exactly before truncation.
[Number.Mod] returns n - x * trunc(n / x), so the remainder has the sign
of the receiver.

# Errors

All methods are pure.
Errors are returned in the following cases:

  - Invalid Numeric.
    A string is not a well-formed number, or a float is NaN or an infinity.
    See [ErrInvalidNumeric].

  - Division by Zero.
    [Number.Div], [Number.Mod] and [Number.PowMod] return an error when
    the divisor or modulus is 0, and [Number.Pow] when 0 is raised to a
    negative power.
    See [ErrDivisionByZero].

  - Invalid Operand.
    The square root of a negative number, a power with a fractional exponent,
    [Number.PowMod] with fractional operands or a negative exponent, or an
    operand of an unsupported type.
    See [ErrInvalidOperand].

  - Scale Range.
    The scale is less than 0 or greater than [MaxScale].
    See [ErrScaleRange].

Errors can be tested with [errors.Is].
Methods with the Must prefix, such as [Number.MustAdd], panic instead.

[big.Int]: https://pkg.go.dev/math/big#Int
[decimal.Decimal]: https://pkg.go.dev/github.com/shopspring/decimal#Decimal
[errors.Is]: https://pkg.go.dev/errors#Is
*/
package bcnum
