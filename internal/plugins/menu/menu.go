// Package menu provides the "menu" command, which lists the registered
// commands.
package menu

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"go-calc/internal/command"
)

// Plugin registers the "menu" command.
var Plugin = command.NewPlugin("menu", func(env command.Env) (command.Command, error) {
	if env.Registry == nil {
		return nil, errors.New("no registry in plugin env")
	}
	return New(env.Registry), nil
})

// Command lists the commands of a live registry.
type Command struct {
	registry *command.Registry
}

// New returns a menu over reg.
func New(reg *command.Registry) *Command {
	return &Command{registry: reg}
}

func (c *Command) Execute(ctx context.Context, _ ...decimal.Decimal) (command.Result, error) {
	return c.ExecuteText(ctx)
}

func (c *Command) ExecuteText(context.Context, ...string) (command.Result, error) {
	return command.TextResult(Listing(c.registry.Names())), nil
}

// Listing renders names as the menu text.
func Listing(names []string) string {
	var b strings.Builder
	b.WriteString("Available commands:")
	for _, name := range names {
		b.WriteString("\n - ")
		b.WriteString(name)
	}
	return b.String()
}
