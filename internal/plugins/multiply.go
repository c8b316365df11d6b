package plugins

import "go-calc/internal/calculator"

// Multiply registers the "multiply" command.
var Multiply = binary(calculator.Multiply)
