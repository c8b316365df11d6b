package dispatch

import (
	"errors"
	"fmt"
	"strings"

	"go-calc/internal/calculator"
	"go-calc/internal/command"
)

// InvalidOperandError is returned when operand text is not a decimal number.
// Tokens holds every operand of the request, not only the bad one.
type InvalidOperandError struct {
	Tokens []string
	Err    error
}

func (e *InvalidOperandError) Error() string {
	return fmt.Sprintf("invalid operands %q: %v", e.Tokens, e.Err)
}

func (e *InvalidOperandError) Unwrap() error {
	return e.Err
}

// Message converts an error from Perform into the text shown to the user.
func Message(err error) string {
	var (
		invalid *InvalidOperandError
		unknown *command.UnknownCommandError
		count   *command.OperandCountError
	)

	switch {
	case errors.Is(err, calculator.ErrDivisionByZero):
		return "Error: " + calculator.ErrDivisionByZero.Error()
	case errors.As(err, &invalid):
		return fmt.Sprintf("Invalid number input: %s is not a valid number.", strings.Join(invalid.Tokens, " or "))
	case errors.As(err, &unknown):
		return "Unknown operation: " + unknown.Name
	case errors.As(err, &count) && count.Want == 2:
		return fmt.Sprintf("Usage: %s <a> <b>", count.Name)
	default:
		return "Error: " + err.Error()
	}
}
