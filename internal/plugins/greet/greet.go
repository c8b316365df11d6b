// Package greet provides the "greet" command.
package greet

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"go-calc/internal/command"
)

// Plugin registers the "greet" command.
var Plugin = command.NewPlugin("greet", func(env command.Env) (command.Command, error) {
	logger := env.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Command{logger: logger}, nil
})

// Command says hello.
type Command struct {
	logger *zap.Logger
}

func (c *Command) Execute(context.Context, ...decimal.Decimal) (command.Result, error) {
	c.logger.Info("Hello, World!")
	return command.TextResult("Hello, World!"), nil
}
