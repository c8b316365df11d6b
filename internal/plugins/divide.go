package plugins

import "go-calc/internal/calculator"

// Divide registers the "divide" command. A zero divisor fails with
// calculator.ErrDivisionByZero.
var Divide = binary(calculator.Divide)
