package calculator

import "errors"

// ErrDivisionByZero is returned when a calculation divides by an operand
// equal to zero.
var ErrDivisionByZero = errors.New("Cannot divide by zero")
