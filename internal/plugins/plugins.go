// Package plugins holds the built-in command plugins. Each arithmetic plugin
// lives in a file named after its command; each introspection plugin lives in
// a subdirectory whose name is its command.
package plugins

import (
	"go-calc/internal/command"
	"go-calc/internal/plugins/clear"
	"go-calc/internal/plugins/greet"
	"go-calc/internal/plugins/history"
	"go-calc/internal/plugins/menu"
)

// Core returns every plugin compiled into the binary, in registration order.
// Add a plugin by appending it here.
func Core() []command.Plugin {
	return []command.Plugin{
		Add,
		Subtract,
		Multiply,
		Divide,
		menu.Plugin,
		history.Plugin,
		clear.Plugin,
		greet.Plugin,
	}
}
