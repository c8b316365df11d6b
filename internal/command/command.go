// Package command defines the Command capability, the Registry that binds
// commands to names, and the Loader that registers plugins at startup.
package command

import (
	"context"

	"github.com/shopspring/decimal"
)

// Command is a unit of behaviour reachable by name from the dispatcher.
// Arithmetic commands receive their operands already parsed.
type Command interface {
	Execute(ctx context.Context, operands ...decimal.Decimal) (Result, error)
}

// TextCommand is implemented by commands that take their arguments
// unparsed, such as introspection commands. The dispatcher prefers
// ExecuteText when a command implements it.
type TextCommand interface {
	Command
	ExecuteText(ctx context.Context, args ...string) (Result, error)
}

// Kind tells which field of a Result carries the output.
type Kind int

const (
	// KindValue results carry a decimal in Value.
	KindValue Kind = iota
	// KindText results carry output in Text, which may be empty.
	KindText
)

// Result is what a command produces. Arithmetic commands set Value;
// introspection commands set Text.
type Result struct {
	Kind  Kind
	Value decimal.Decimal
	Text  string
}

// IsText reports whether the result carries text output instead of a value.
func (r Result) IsText() bool {
	return r.Kind == KindText
}

// ValueResult wraps an operand as a Result.
func ValueResult(v decimal.Decimal) Result {
	return Result{Kind: KindValue, Value: v}
}

// TextResult wraps text output as a Result.
func TextResult(s string) Result {
	return Result{Kind: KindText, Text: s}
}

// Func adapts a function to the Command interface.
type Func func(ctx context.Context, operands ...decimal.Decimal) (Result, error)

// Execute calls f.
func (f Func) Execute(ctx context.Context, operands ...decimal.Decimal) (Result, error) {
	return f(ctx, operands...)
}
