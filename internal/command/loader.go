package command

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"go-calc/internal/calculator"
)

// Env carries the session collaborators handed to plugin factories.
type Env struct {
	Calculator *calculator.Calculator
	Registry   *Registry
	Logger     *zap.Logger
}

// Plugin contributes one command. Name is the name the command is
// registered under.
type Plugin interface {
	Name() string
	New(env Env) (Command, error)
}

type plugin struct {
	name    string
	factory func(Env) (Command, error)
}

func (p plugin) Name() string { return p.name }

func (p plugin) New(env Env) (Command, error) { return p.factory(env) }

// NewPlugin returns a Plugin that builds its command with factory.
func NewPlugin(name string, factory func(Env) (Command, error)) Plugin {
	return plugin{name: name, factory: factory}
}

var errNotBuilt = errors.New("plugin returned no command")

// Loader registers plugin commands into a registry.
type Loader struct {
	registry *Registry
	env      Env
	logger   *zap.Logger
}

// NewLoader returns a Loader that registers into reg. env.Registry is set to
// reg when empty.
func NewLoader(reg *Registry, env Env, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if env.Registry == nil {
		env.Registry = reg
	}
	if env.Logger == nil {
		env.Logger = logger
	}
	return &Loader{registry: reg, env: env, logger: logger}
}

// Load registers every plugin whose name is in allow, or every plugin when
// allow is empty. A plugin that fails to build, or an allow entry naming no
// plugin, is logged and returned as a *PluginDiscoveryError; the remaining
// plugins still load.
func (l *Loader) Load(plugins []Plugin, allow []string) []error {
	var errs []error

	known := make(map[string]struct{}, len(plugins))
	for _, p := range plugins {
		known[p.Name()] = struct{}{}
		if len(allow) > 0 && !slices.Contains(allow, p.Name()) {
			continue
		}
		if err := l.loadOne(p); err != nil {
			errs = append(errs, err)
		}
	}

	for _, name := range allow {
		if _, ok := known[name]; ok {
			continue
		}
		err := &PluginDiscoveryError{Plugin: name, Err: errors.New("no such plugin")}
		l.logger.Error("plugin discovery failed", zap.String("plugin", name), zap.Error(err))
		errs = append(errs, err)
	}

	l.logger.Info("plugins loaded",
		zap.Int("registered", l.registry.Len()),
		zap.Int("failed", len(errs)),
	)

	return errs
}

func (l *Loader) loadOne(p Plugin) (err error) {
	name := p.Name()

	defer func() {
		if r := recover(); r != nil {
			err = &PluginDiscoveryError{Plugin: name, Err: fmt.Errorf("panic: %v", r)}
		}
		if err != nil {
			l.logger.Error("plugin discovery failed", zap.String("plugin", name), zap.Error(err))
		}
	}()

	cmd, err := p.New(l.env)
	if err != nil {
		return &PluginDiscoveryError{Plugin: name, Err: err}
	}
	if cmd == nil {
		return &PluginDiscoveryError{Plugin: name, Err: errNotBuilt}
	}

	l.registry.Register(name, cmd)
	return nil
}
