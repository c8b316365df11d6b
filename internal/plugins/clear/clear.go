// Package clear provides the "clear" command, which empties the session
// history.
package clear

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"go-calc/internal/calculator"
	"go-calc/internal/command"
)

// Plugin registers the "clear" command.
var Plugin = command.NewPlugin("clear", func(env command.Env) (command.Command, error) {
	if env.Calculator == nil {
		return nil, errors.New("no calculator in plugin env")
	}
	return &Command{calc: env.Calculator}, nil
})

// Command clears a calculator's history.
type Command struct {
	calc *calculator.Calculator
}

func (c *Command) Execute(ctx context.Context, _ ...decimal.Decimal) (command.Result, error) {
	c.calc.ClearHistory(ctx)
	return command.TextResult("History cleared."), nil
}
