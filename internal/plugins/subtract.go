package plugins

import "go-calc/internal/calculator"

// Subtract registers the "subtract" command.
var Subtract = binary(calculator.Subtract)
