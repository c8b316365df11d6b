package command

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Registry binds command names to commands. Registering a name again
// replaces the command but keeps the name's original position in Names.
type Registry struct {
	commands map[string]Command
	order    []string
	logger   *zap.Logger
}

// NewRegistry returns an empty registry. A nil logger discards log output.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		commands: make(map[string]Command),
		logger:   logger,
	}
}

// Register binds cmd to name. The last registration for a name wins.
func (r *Registry) Register(name string, cmd Command) {
	if _, exists := r.commands[name]; !exists {
		r.order = append(r.order, name)
	}
	r.commands[name] = cmd
	r.logger.Info("command registered", zap.String("command", name))
}

// Get returns the command bound to name.
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.order)
}

// Execute resolves name and runs it with operands. Errors from the command
// itself are returned unchanged.
func (r *Registry) Execute(ctx context.Context, name string, operands ...decimal.Decimal) (Result, error) {
	cmd, ok := r.Get(name)
	if !ok {
		return Result{}, &UnknownCommandError{Name: name}
	}
	return cmd.Execute(ctx, operands...)
}

// ExecuteText resolves name and runs it with unparsed args. ok is false, and
// nothing runs, when the command does not implement TextCommand.
func (r *Registry) ExecuteText(ctx context.Context, name string, args ...string) (res Result, ok bool, err error) {
	cmd, found := r.Get(name)
	if !found {
		return Result{}, false, &UnknownCommandError{Name: name}
	}
	tc, isText := cmd.(TextCommand)
	if !isText {
		return Result{}, false, nil
	}
	res, err = tc.ExecuteText(ctx, args...)
	return res, true, err
}
