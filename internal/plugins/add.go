package plugins

import "go-calc/internal/calculator"

// Add registers the "add" command.
var Add = binary(calculator.Add)
