package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"go-calc/internal/calculator"
	"go-calc/internal/command"
	"go-calc/internal/config"
	"go-calc/internal/dispatch"
	"go-calc/internal/observability"
	"go-calc/internal/plugins"
	"go-calc/internal/server"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := run(ctx, os.Stdin, os.Stdout, os.Args[1:])
	stop()

	if err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		observability.Exitf("%v", err)
	}
}

// run starts one calculator session. With no command arguments it runs the
// interactive prompt; otherwise it runs the one command and any failure
// becomes a non-zero exit status.
func run(ctx context.Context, in io.Reader, out io.Writer, args []string) error {
	opts, shouldExit, err := parseArgs(args, out)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	if err := loadDotEnv(dotEnvFile); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	// Logger
	if err := observability.InitLogger(cfg.LogLevel); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	defer observability.SyncLogger()

	// Tracing, metrics, OTLP logs
	shutdown, err := initTelemetry(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			observability.Logger.Warn("telemetry shutdown failed", zap.Error(err))
		}
	}()

	ctx = observability.ContextWithSessionID(ctx, observability.NewID())
	logger := observability.LoggerWithTrace(ctx)
	logger.Info("Environment variables loaded.", zap.String("environment", cfg.Environment))

	// Session
	calc := calculator.New(calculator.NewHistory(), logger)
	registry := command.NewRegistry(logger)
	command.NewLoader(registry, command.Env{Calculator: calc}, logger).Load(plugins.Core(), cfg.Plugins)
	dispatcher := dispatch.New(registry, out, logger)

	// Diagnostics
	if cfg.DiagnosticsAddr != "" {
		go func() {
			if err := server.Serve(ctx, cfg.DiagnosticsAddr, server.NewRouter(calc.History())); err != nil {
				logger.Error("diagnostics server failed", zap.Error(err))
			}
		}()
	}

	if len(opts.args) == 0 {
		return dispatcher.RunREPL(ctx, in)
	}

	if err := dispatcher.Display(ctx, opts.args[0], opts.args[1:]); err != nil {
		return &ExitError{Code: 1}
	}
	return nil
}
