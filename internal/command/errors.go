package command

import "fmt"

// UnknownCommandError is returned when no command is registered under Name.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Name)
}

// OperandCountError is returned when a command receives the wrong number of
// operands.
type OperandCountError struct {
	Name string
	Want int
	Got  int
}

func (e *OperandCountError) Error() string {
	return fmt.Sprintf("%s: expected %d operands, got %d", e.Name, e.Want, e.Got)
}

// PluginDiscoveryError reports a plugin that could not be loaded. It is
// logged and the plugin skipped; it never aborts loading.
type PluginDiscoveryError struct {
	Plugin string
	Err    error
}

func (e *PluginDiscoveryError) Error() string {
	return fmt.Sprintf("plugin %q: %v", e.Plugin, e.Err)
}

func (e *PluginDiscoveryError) Unwrap() error {
	return e.Err
}
