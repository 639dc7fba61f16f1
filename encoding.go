package bcnum

import (
	"database/sql/driver"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// The scale is taken from the text, also see function [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (n *Number) UnmarshalText(text []byte) error {
	var err error
	*n, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Number.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalJSON implements [json.Unmarshaler] interface.
// Both JSON strings and JSON numbers are accepted, null leaves n unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return n.UnmarshalText([]byte(s))
}

// Scan implements the [sql.Scanner] interface.
// See also method [Parse].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *Number) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*n, err = Parse(value)
	case []byte:
		*n, err = Parse(string(value))
	case int64:
		*n, err = New(value, 0)
	case float64:
		*n, err = Parse(strconv.FormatFloat(value, 'f', -1, 64))
	default:
		err = errors.Wrapf(ErrInvalidOperand, "failed to convert from %T to %T", value, Number{})
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n Number) Value() (driver.Value, error) {
	return n.String(), nil
}

// NullNumber represents a number that can be null.
// Its zero value is null.
// NullNumber is not thread-safe.
type NullNumber struct {
	Number Number
	Valid  bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Number.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullNumber) Scan(value any) error {
	if value == nil {
		n.Number = Number{}
		n.Valid = false
		return nil
	}
	err := n.Number.Scan(value)
	if err != nil {
		n.Number = Number{}
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [Number.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullNumber) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Number.Value()
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%f, %s, %v: -123.456
//	%q:        "-123.456"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// Precision is only supported for %f verb.
// The default precision is equal to the scale of the number, a different
// precision truncates or zero-pads the fractional part.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (n Number) Format(state fmt.State, verb rune) {

	// Rescaling
	if verb == 'f' || verb == 'F' {
		if p, ok := state.Precision(); ok && p != n.Scale() && p <= MaxScale {
			m, err := n.Rescale(p)
			if err == nil {
				n = m
			}
		}
	}

	// Digits
	digits := n.String()
	neg := digits[0] == '-'
	if neg {
		digits = digits[1:]
	}

	// Arithmetic sign
	rsign := 0
	if neg || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + len(digits) + tquote
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if lquote > 0 {
		buf = append(buf, '"')
	}
	if rsign > 0 {
		switch {
		case neg:
			buf = append(buf, '-')
		case state.Flag('+'):
			buf = append(buf, '+')
		default:
			buf = append(buf, ' ')
		}
	}
	for i := 0; i < lzeroes; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, digits...)
	if tquote > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(bcnum.Number="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
