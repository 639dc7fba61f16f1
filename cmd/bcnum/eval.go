package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/govalues/bcnum"
)

var errUsage = errors.New("invalid expression")

// arity is the number of operands each operation takes.
var arity = map[string]int{
	"add":     1,
	"sub":     1,
	"mul":     1,
	"div":     1,
	"mod":     1,
	"pow":     1,
	"powmod":  2,
	"sqrt":    0,
	"rescale": 1,
	"abs":     0,
	"neg":     0,
	"min":     1,
	"max":     1,
	"clamp":   2,
}

// conditional lists the operations that accept an if= suffix.
var conditional = map[string]bool{
	"add":     true,
	"sub":     true,
	"mul":     true,
	"div":     true,
	"mod":     true,
	"pow":     true,
	"powmod":  true,
	"sqrt":    true,
	"rescale": true,
}

type step struct {
	op   string
	ok   bool
	args []string
}

func (s step) String() string {
	return strings.TrimSpace(fmt.Sprintf("%v %v", s.op, strings.Join(s.args, " ")))
}

// parseSteps splits args into operations with their operands.
// An operation is written as "op" or "op:if=<bool>".
func parseSteps(args []string) ([]step, error) {
	var steps []step
	for i := 0; i < len(args); {
		token := args[i]
		name, cond, hasCond := strings.Cut(token, ":")
		n, ok := arity[name]
		if !ok {
			return nil, errors.Wrapf(errUsage, "unknown operation %q", token)
		}
		s := step{op: name, ok: true}
		if hasCond {
			if !conditional[name] {
				return nil, errors.Wrapf(errUsage, "operation %q cannot be conditional", name)
			}
			v, found := strings.CutPrefix(cond, "if=")
			if !found {
				return nil, errors.Wrapf(errUsage, "unknown modifier %q", cond)
			}
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, errors.Wrapf(errUsage, "condition %q: %v", v, err)
			}
			s.ok = b
		}
		if i+1+n > len(args) {
			return nil, errors.Wrapf(errUsage, "operation %q needs %v operand(s)", name, n)
		}
		s.args = args[i+1 : i+1+n]
		steps = append(steps, s)
		i += 1 + n
	}
	return steps, nil
}

func (s step) apply(c bcnum.Chain) (bcnum.Chain, error) {
	when := bcnum.When(s.ok)
	switch s.op {
	case "add":
		return c.AddIf(s.args[0], when), nil
	case "sub":
		return c.SubIf(s.args[0], when), nil
	case "mul":
		return c.MulIf(s.args[0], when), nil
	case "div":
		return c.DivIf(s.args[0], when), nil
	case "mod":
		return c.ModIf(s.args[0], when), nil
	case "pow":
		return c.PowIf(s.args[0], when), nil
	case "powmod":
		return c.PowModIf(s.args[0], s.args[1], when), nil
	case "sqrt":
		return c.SqrtIf(when), nil
	case "rescale":
		scale, err := strconv.Atoi(s.args[0])
		if err != nil {
			return c, errors.Wrapf(errUsage, "rescale %q: %v", s.args[0], err)
		}
		return c.RescaleIf(scale, when), nil
	case "abs":
		return c.Abs(), nil
	case "neg":
		return c.Neg(), nil
	case "min":
		return c.Min(s.args[0]), nil
	case "max":
		return c.Max(s.args[0]), nil
	case "clamp":
		return c.Clamp(s.args[0], s.args[1]), nil
	}
	return c, errors.Wrapf(errUsage, "unknown operation %q", s.op) // unexpected by design
}

// evaluate creates a number from value at the given scale
// and applies the operations in args to it from left to right.
func evaluate(log *zap.Logger, value string, scale int, args []string) (bcnum.Number, error) {
	steps, err := parseSteps(args)
	if err != nil {
		return bcnum.Number{}, err
	}
	c := bcnum.NewChain(value, scale)
	for i, s := range steps {
		c, err = s.apply(c)
		if err != nil {
			return bcnum.Number{}, err
		}
		n, err := c.Result()
		if err != nil {
			log.Debug("step failed", zap.Int("step", i+1), zap.Stringer("op", s), zap.Error(err))
			break
		}
		log.Debug("step",
			zap.Int("step", i+1),
			zap.Stringer("op", s),
			zap.Bool("applied", s.ok),
			zap.Stringer("result", n))
	}
	return c.Result()
}

func compare(a, b string, scale int) (int, error) {
	n, err := bcnum.New(a, scale)
	if err != nil {
		return 0, err
	}
	return n.Cmp(b)
}

func (a *app) newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <value> [<op>[:if=<bool>] <operand>...]...",
		Short: "evaluate a chain of operations",
		Long: "eval creates a number from value at --scale and applies the operations from left to right.\n" +
			"Operations: add, sub, mul, div, mod, pow, powmod, sqrt, rescale, abs, neg, min, max, clamp.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scale, err := a.scale()
			if err != nil {
				return err
			}
			a.log.Debug("evaluating", zap.String("value", args[0]), zap.Int("scale", scale), zap.Strings("ops", args[1:]))
			n, err := evaluate(a.log, args[0], scale, args[1:])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func (a *app) newCmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp <a> <b>",
		Short: "compare two numbers at --scale",
		Long:  "cmp prints -1, 0 or 1 when a is less than, equal to or greater than b after both are truncated to --scale.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scale, err := a.scale()
			if err != nil {
				return err
			}
			r, err := compare(args[0], args[1], scale)
			if err != nil {
				return err
			}
			a.log.Debug("compared", zap.String("a", args[0]), zap.String("b", args[1]), zap.Int("scale", scale), zap.Int("result", r))
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		},
	}
}
