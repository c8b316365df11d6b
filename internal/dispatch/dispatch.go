// Package dispatch turns user input into command invocations and command
// outcomes into user-facing text.
package dispatch

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"go-calc/internal/calculator"
	"go-calc/internal/command"
	"go-calc/internal/observability"
)

var tracer = otel.Tracer("dispatch")

// Dispatcher resolves command names against a registry and writes results
// to out.
type Dispatcher struct {
	registry *command.Registry
	out      io.Writer
	logger   *zap.Logger
}

// New returns a Dispatcher. A nil logger discards log output.
func New(reg *command.Registry, out io.Writer, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{registry: reg, out: out, logger: logger}
}

// Perform runs the command called name. Commands implementing
// command.TextCommand get args as-is; all others get args parsed as
// decimals. Errors are returned, not printed.
func (d *Dispatcher) Perform(ctx context.Context, name string, args []string) (command.Result, error) {
	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", name),
		trace.WithAttributes(
			attribute.String("calculator.operation", name),
			attribute.StringSlice("calculator.args", args),
			attribute.String("session.id", observability.SessionIDFromContext(ctx)),
		),
	)
	defer span.End()

	logger := observability.WithTrace(ctx, d.logger)

	res, err := d.perform(ctx, name, args)
	commandsCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("command", name)))
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, name, Message(err), err)
		return command.Result{}, err
	}

	if res.IsText() {
		span.SetAttributes(attribute.Int("calculator.output_lines", strings.Count(res.Text, "\n")+1))
	} else {
		span.SetAttributes(attribute.String("calculator.result", calculator.Format(res.Value)))
	}
	span.SetStatus(codes.Ok, "")

	logger.Info("command executed",
		zap.String("command", name),
		zap.Strings("args", args),
		zap.String("result", render(res)),
	)

	return res, nil
}

func (d *Dispatcher) perform(ctx context.Context, name string, args []string) (command.Result, error) {
	res, handled, err := d.registry.ExecuteText(ctx, name, args...)
	if handled || err != nil {
		return res, err
	}

	operands, err := ParseOperands(args)
	if err != nil {
		return command.Result{}, err
	}
	return d.registry.Execute(ctx, name, operands...)
}

// Evaluate runs one REPL line of the form "<name> <arg>..." and prints
// "Result: <value>", the command's text, or the error message. Blank lines
// are ignored.
func (d *Dispatcher) Evaluate(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	res, err := d.Perform(ctx, fields[0], fields[1:])
	if err != nil {
		fmt.Fprintln(d.out, Message(err))
		return err
	}

	if res.IsText() {
		fmt.Fprintln(d.out, res.Text)
		return nil
	}
	fmt.Fprintf(d.out, "Result: %s\n", calculator.Format(res.Value))
	return nil
}

// Display runs name with args for a one-shot invocation and prints
// "The result of <a> <name> <b> is <value>" for binary calculations.
func (d *Dispatcher) Display(ctx context.Context, name string, args []string) error {
	res, err := d.Perform(ctx, name, args)
	if err != nil {
		fmt.Fprintln(d.out, Message(err))
		return err
	}

	switch {
	case res.IsText():
		fmt.Fprintln(d.out, res.Text)
	case len(args) == 2:
		fmt.Fprintf(d.out, "The result of %s %s %s is %s\n", args[0], name, args[1], calculator.Format(res.Value))
	default:
		fmt.Fprintf(d.out, "Result: %s\n", calculator.Format(res.Value))
	}
	return nil
}

// ParseOperands parses each token as an exact decimal.
func ParseOperands(tokens []string) ([]decimal.Decimal, error) {
	operands := make([]decimal.Decimal, 0, len(tokens))
	for _, tok := range tokens {
		v, err := decimal.NewFromString(tok)
		if err != nil {
			return nil, &InvalidOperandError{Tokens: tokens, Err: err}
		}
		operands = append(operands, v)
	}
	return operands, nil
}

func render(res command.Result) string {
	if res.IsText() {
		return res.Text
	}
	return calculator.Format(res.Value)
}
