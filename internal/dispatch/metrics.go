package dispatch

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Metric instruments. They are no-ops until InitMetrics runs.
var (
	commandsCounter metric.Int64Counter = noop.Int64Counter{}
	errorCounter    metric.Int64Counter = noop.Int64Counter{}
)

// InitMetrics registers the dispatcher's OTel metric instruments.
func InitMetrics() error {
	meter := otel.Meter("dispatch")

	var err error

	commandsCounter, err = meter.Int64Counter("dispatch.commands.total",
		metric.WithDescription("Total number of commands dispatched"),
		metric.WithUnit("{command}"),
	)
	if err != nil {
		return fmt.Errorf("creating commands counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("dispatch.errors.total",
		metric.WithDescription("Total number of dispatched commands that failed"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	return nil
}
