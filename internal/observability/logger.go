package observability

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process logger. It writes JSON to stderr so stdout stays
// free for calculator output.
var Logger = zap.NewNop()

// InitLogger builds the production logger at the given level ("debug",
// "info", "warn", "error").
func InitLogger(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	Logger, err = cfg.Build()
	if err != nil {
		return err
	}

	return nil
}

func SyncLogger() {
	// Sync on stderr fails with EINVAL on some platforms.
	_ = Logger.Sync()
}

// LoggerWithTrace is WithTrace applied to Logger.
func LoggerWithTrace(ctx context.Context) *zap.Logger {
	return WithTrace(ctx, Logger)
}

// WithTrace returns a child of logger carrying the session id from ctx and,
// when a span is active, its trace_id and span_id.
//
// The span's ctx is also attached as a zap.Any("context", ctx) field. The
// otelzap bridge looks for a context.Context field and passes it to Emit,
// which fills the native TraceID/SpanID of the exported OTLP log record.
func WithTrace(ctx context.Context, logger *zap.Logger) *zap.Logger {
	if id := SessionIDFromContext(ctx); id != "" {
		logger = logger.With(zap.String("session_id", id))
	}

	span := trace.SpanContextFromContext(ctx)
	if !span.IsValid() {
		return logger
	}

	return logger.With(
		zap.Any("context", ctx),
		zap.String("trace_id", span.TraceID().String()),
		zap.String("span_id", span.SpanID().String()),
	)
}

// Exitf writes a formatted message to stderr and exits with status 1. For
// failures before the logger exists.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
