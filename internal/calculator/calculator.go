// Package calculator implements exact-decimal arithmetic, the calculation
// record, and the per-session calculation history.
package calculator

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Calculator performs calculations and records the successful ones in a
// History.
type Calculator struct {
	history *History
	logger  *zap.Logger
}

// New returns a Calculator that records into history. A nil logger discards
// log output.
func New(history *History, logger *zap.Logger) *Calculator {
	if history == nil {
		history = NewHistory()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{history: history, logger: logger}
}

// History returns the history this calculator records into.
func (c *Calculator) History() *History {
	return c.history
}

// Perform evaluates op on a and b. On success the calculation is appended to
// the history; failed calculations are not recorded.
func (c *Calculator) Perform(ctx context.Context, a, b decimal.Decimal, op Operation) (decimal.Decimal, error) {
	calc := NewCalculation(a, b, op)
	attrs := metric.WithAttributes(attribute.String("operation", op.Name))

	start := time.Now()
	result, err := calc.Operate()
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		errorCounter.Add(ctx, 1, attrs)
		c.logger.Debug("calculation failed",
			zap.Stringer("calculation", calc),
			zap.Error(err),
		)
		return decimal.Decimal{}, err
	}

	c.history.Add(calc)

	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, result.InexactFloat64(), attrs)
	historyRecords.Add(ctx, 1)

	c.logger.Debug("calculation recorded",
		zap.Stringer("calculation", calc),
		zap.String("result", Format(result)),
		zap.Int("history_size", c.history.Len()),
	)

	return result, nil
}

// ClearHistory empties the history.
func (c *Calculator) ClearHistory(ctx context.Context) {
	n := c.history.Len()
	c.history.Clear()
	historyRecords.Add(ctx, int64(-n))
	c.logger.Debug("history cleared", zap.Int("removed", n))
}

// Add performs and records a + b.
func (c *Calculator) Add(ctx context.Context, a, b decimal.Decimal) (decimal.Decimal, error) {
	return c.Perform(ctx, a, b, Add)
}

// Subtract performs and records a - b.
func (c *Calculator) Subtract(ctx context.Context, a, b decimal.Decimal) (decimal.Decimal, error) {
	return c.Perform(ctx, a, b, Subtract)
}

// Multiply performs and records a * b.
func (c *Calculator) Multiply(ctx context.Context, a, b decimal.Decimal) (decimal.Decimal, error) {
	return c.Perform(ctx, a, b, Multiply)
}

// Divide performs and records a / b.
func (c *Calculator) Divide(ctx context.Context, a, b decimal.Decimal) (decimal.Decimal, error) {
	return c.Perform(ctx, a, b, Divide)
}
