// Package history provides the "history" command, which prints the session's
// calculations, optionally only those of one operation.
package history

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"go-calc/internal/calculator"
	"go-calc/internal/command"
)

// Plugin registers the "history" command.
var Plugin = command.NewPlugin("history", func(env command.Env) (command.Command, error) {
	if env.Calculator == nil {
		return nil, errors.New("no calculator in plugin env")
	}
	return &Command{history: env.Calculator.History()}, nil
})

// Command prints a session history.
type Command struct {
	history *calculator.History
}

func (c *Command) Execute(ctx context.Context, operands ...decimal.Decimal) (command.Result, error) {
	if len(operands) != 0 {
		return command.Result{}, &command.OperandCountError{Name: "history", Want: 0, Got: len(operands)}
	}
	return c.ExecuteText(ctx)
}

// ExecuteText lists every calculation, or with one argument only the
// calculations of that operation.
func (c *Command) ExecuteText(_ context.Context, args ...string) (command.Result, error) {
	switch len(args) {
	case 0:
		return command.TextResult(render(c.history.All(), c.history)), nil
	case 1:
		return command.TextResult(render(c.history.Filter(args[0]), c.history)), nil
	default:
		return command.Result{}, &command.OperandCountError{Name: "history", Want: 1, Got: len(args)}
	}
}

func render(calcs []calculator.Calculation, h *calculator.History) string {
	if len(calcs) == 0 {
		return "History is empty."
	}

	var b strings.Builder
	b.WriteString("History:")
	for _, c := range calcs {
		b.WriteString("\n - ")
		b.WriteString(c.String())
	}
	if latest, ok := h.Latest(); ok {
		b.WriteString("\nLatest: ")
		b.WriteString(latest.String())
	}
	return b.String()
}
