package bcnum_test

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/govalues/bcnum"
)

const calcScale = 2

func evaluate(input string) (bcnum.Number, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return bcnum.Number{}, fmt.Errorf("parsing tokens: %w", err)
	}
	stack, err := processTokens(tokens)
	if err != nil {
		return bcnum.Number{}, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return bcnum.Number{}, fmt.Errorf("post-processed stack contains %v, expected exactly one item", stack)
	}
	return stack[0], nil
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no tokens")
	}
	return tokens, nil
}

func processTokens(tokens []string) ([]bcnum.Number, error) {
	stack := make([]bcnum.Number, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", "/", "%", "^":
			stack, err = processOperator(stack, token)
		default:
			stack, err = processOperand(stack, token)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func processOperator(stack []bcnum.Number, token string) ([]bcnum.Number, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands")
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result bcnum.Number
	var err error
	switch token {
	case "+":
		result, err = left.Add(right)
	case "-":
		result, err = left.Sub(right)
	case "*":
		result, err = left.Mul(right)
	case "/":
		result, err = left.Div(right)
	case "%":
		result, err = left.Mod(right)
	case "^":
		result, err = left.Pow(right)
	}
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%s %s %s\": %w", left, token, right, err)
	}
	return append(stack, result), nil
}

func processOperand(stack []bcnum.Number, token string) ([]bcnum.Number, error) {
	n, err := bcnum.New(token, calcScale)
	if err != nil {
		return nil, err
	}
	return append(stack, n), nil
}

// This example implements a simple calculator that evaluates mathematical
// expressions written in postfix (or reverse Polish) notation.
// Every operand is truncated to two digits after the decimal point.
func Example_postfixCalculator() {
	n, err := evaluate("* 10 + 1.23 4.56")
	if err != nil {
		panic(err)
	}
	fmt.Println(n)
	// Output:
	// 57.90
}

// This example prices a shopping cart where the member discount
// and the coupon are only applied when they are available.
func Example_shoppingCart() {
	member := true
	coupon := "SAVE5"

	total, err := bcnum.NewChain("19.99", 2).
		Mul(3).
		MulIf("0.90", bcnum.When(member)).
		SubIf(5, bcnum.WhenFunc(func() bool { return coupon != "" })).
		Max(0).
		Result()
	fmt.Println(total, err)
	// Output:
	// 48.97 <nil>
}

func ExampleNew() {
	fmt.Println(bcnum.New(0.01111, 2))
	fmt.Println(bcnum.New("-12.345", 4))
	fmt.Println(bcnum.New(10, 2))
	// Output:
	// 0.01 <nil>
	// -12.3450 <nil>
	// 10.00 <nil>
}

func ExampleFnum() {
	fmt.Println(bcnum.Fnum(10))
	fmt.Println(bcnum.Fnum(10, 2))
	// Output:
	// 10.0000
	// 10.00
}

func ExampleParse() {
	fmt.Println(bcnum.Parse("-1.230"))
	fmt.Println(bcnum.Parse("1e3"))
	// Output:
	// -1.230 <nil>
	// 0 "1e3": invalid character at position 1: not a well-formed number
}

func ExampleNumber_Add() {
	n := bcnum.MustNew("0.01111", 2)
	fmt.Println(n)
	fmt.Println(n.Add(0.01))
	fmt.Println(n.Add(bcnum.MustNew("0.005", 3)))
	// Output:
	// 0.01
	// 0.02 <nil>
	// 0.01 <nil>
}

func ExampleNumber_Sub() {
	n := bcnum.MustNew("0.03", 2)
	fmt.Println(n.Sub("0.01"))
	// Output: 0.02 <nil>
}

func ExampleNumber_Mul() {
	n := bcnum.MustNew("1.5", 1)
	fmt.Println(n.Mul("1.5"))
	// Output: 2.2 <nil>
}

func ExampleNumber_Div() {
	n := bcnum.MustNew(2, 4)
	fmt.Println(n.Div(3))
	fmt.Println(n.Div(0))
	// Output:
	// 0.6666 <nil>
	// 0 computing [2.0000 / 0.0000]: division by zero
}

func ExampleNumber_Mod() {
	fmt.Println(bcnum.MustNew(10, 2).Mod(3))
	fmt.Println(bcnum.MustNew(-7, 0).Mod(3))
	// Output:
	// 1.00 <nil>
	// -1 <nil>
}

func ExampleNumber_Pow() {
	fmt.Println(bcnum.MustNew("4.2", 2).Pow(3))
	fmt.Println(bcnum.MustNew(2, 4).Pow(-2))
	// Output:
	// 74.08 <nil>
	// 0.2500 <nil>
}

func ExampleNumber_PowMod() {
	n := bcnum.MustNew(4, 0)
	fmt.Println(n.PowMod(13, 497))
	// Output: 445 <nil>
}

func ExampleNumber_Sqrt() {
	fmt.Println(bcnum.MustNew(10, 4).Sqrt())
	fmt.Println(bcnum.MustNew(2, 10).Sqrt())
	// Output:
	// 3.1622 <nil>
	// 1.4142135623 <nil>
}

func ExampleNumber_Rescale() {
	n := bcnum.MustNew("1.2345", 4)
	fmt.Println(n.Rescale(2))
	fmt.Println(n.Rescale(6))
	// Output:
	// 1.23 <nil>
	// 1.234500 <nil>
}

func ExampleNumber_AddIf() {
	n := bcnum.MustNew("0.01", 2)
	fmt.Println(n.AddIf("0.01", bcnum.When(false)))
	fmt.Println(n.AddIf("0.01", bcnum.When(true)))
	// Output:
	// 0.01 <nil>
	// 0.02 <nil>
}

func ExampleNumber_MulIf() {
	isMember := func() bool { return true }
	n := bcnum.MustNew("59.97", 2)
	fmt.Println(n.MulIf("0.9", bcnum.WhenFunc(isMember)))
	// Output: 53.97 <nil>
}

func ExampleCondition() {
	limit := func() (bool, error) {
		return false, fmt.Errorf("limit unknown")
	}
	n := bcnum.MustNew(5, 0)
	fmt.Println(n.SubIf(1, limit))
	// Output: 0 limit unknown
}

func ExampleNumber_Cmp() {
	n := bcnum.MustNew("1.00", 2)
	fmt.Println(n.Cmp("1.0001"))
	fmt.Println(n.Cmp(2))
	// Output:
	// 0 <nil>
	// -1 <nil>
}

func ExampleNumber_Equal() {
	n := bcnum.MustNew("1.00", 2)
	fmt.Println(n.Equal(bcnum.MustNew("1.0049", 4)))
	// Output: true <nil>
}

func ExampleNumber_Min() {
	n := bcnum.MustNew("1.50", 2)
	fmt.Println(n.Min(bcnum.MustNew("1.2345", 4)))
	fmt.Println(n.Min("1.5"))
	// Output:
	// 1.2345 <nil>
	// 1.50 <nil>
}

func ExampleNumber_Max() {
	n := bcnum.MustNew("1.50", 2)
	fmt.Println(n.Max("2.999"))
	// Output: 2.99 <nil>
}

func ExampleNumber_Clamp() {
	fmt.Println(bcnum.MustNew(5, 0).Clamp(1, 10))
	fmt.Println(bcnum.MustNew(11, 0).Clamp(1, 10))
	fmt.Println(bcnum.MustNew(5, 0).Clamp(10, 1))
	// Output:
	// 5 <nil>
	// 10 <nil>
	// 10 <nil>
}

func ExampleNumber_IsEven() {
	fmt.Println(bcnum.MustNew(4, 0).IsEven())
	fmt.Println(bcnum.MustNew("2.5", 1).IsEven())
	// Output:
	// true
	// false
}

func ExampleNumber_Int64() {
	fmt.Println(bcnum.MustNew("-12.99", 2).Int64())
	// Output: -12 true
}

func ExampleNumber_Float64() {
	fmt.Println(bcnum.MustNew("0.10", 2).Float64())
	// Output: 0.1
}

func ExampleNumber_Abs() {
	fmt.Println(bcnum.MustNew("-2.50", 2).Abs())
	// Output: 2.50
}

func ExampleNumber_Neg() {
	fmt.Println(bcnum.MustNew("2.50", 2).Neg())
	// Output: -2.50
}

func ExampleNumber_Format() {
	n := bcnum.MustNew("-123.456", 3)
	fmt.Printf("%s\n", n)
	fmt.Printf("%.2f\n", n)
	fmt.Printf("%q\n", n)
	fmt.Printf("%10v|\n", n)
	// Output:
	// -123.456
	// -123.45
	// "-123.456"
	//   -123.456|
}

type item struct {
	Price bcnum.Number `json:"price"`
}

func ExampleNumber_MarshalText() {
	b, err := json.Marshal(item{Price: bcnum.MustNew("9.9", 2)})
	fmt.Println(string(b), err)
	// Output: {"price":"9.90"} <nil>
}

func ExampleNumber_UnmarshalJSON() {
	var it item
	err := json.Unmarshal([]byte(`{"price":12.345}`), &it)
	fmt.Println(it.Price, it.Price.Scale(), err)
	// Output: 12.345 3 <nil>
}

func ExampleNumber_Scan() {
	var n bcnum.Number
	err := n.Scan([]byte("4.20"))
	fmt.Println(n, err)
	// Output: 4.20 <nil>
}

func ExampleNumber_Chain() {
	fmt.Println(bcnum.Fnum(10).Chain().
		Add(5).
		MulIf(2, bcnum.When(true)).
		Sqrt().
		Result())
	// Output: 5.4772 <nil>
}

func ExampleNewChain() {
	fmt.Println(bcnum.NewChain("abc", 2).Add(1).Result())
	// Output: 0 step 0 (New): "abc": invalid character at position 0: not a well-formed number
}
