package plugins

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"go-calc/internal/calculator"
	"go-calc/internal/command"
)

var errNoCalculator = errors.New("no calculator in plugin env")

// binaryCommand performs one arithmetic operation through the session
// calculator, so every successful call lands in history.
type binaryCommand struct {
	calc *calculator.Calculator
	op   calculator.Operation
}

func (c *binaryCommand) Execute(ctx context.Context, operands ...decimal.Decimal) (command.Result, error) {
	if len(operands) != 2 {
		return command.Result{}, &command.OperandCountError{Name: c.op.Name, Want: 2, Got: len(operands)}
	}

	result, err := c.calc.Perform(ctx, operands[0], operands[1], c.op)
	if err != nil {
		return command.Result{}, err
	}
	return command.ValueResult(result), nil
}

func binary(op calculator.Operation) command.Plugin {
	return command.NewPlugin(op.Name, func(env command.Env) (command.Command, error) {
		if env.Calculator == nil {
			return nil, errNoCalculator
		}
		return &binaryCommand{calc: env.Calculator, op: op}, nil
	})
}
