package dispatch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Prompt is written before each REPL line is read.
const Prompt = ">>> "

// RunREPL reads lines from in and evaluates each one until "exit", end of
// input, or ctx is done. Command failures are reported and the loop goes on;
// only a read error is returned.
func (d *Dispatcher) RunREPL(ctx context.Context, in io.Reader) error {
	lines, readErr, stop := readLines(in)
	defer stop()

	d.logger.Info("Application started. Type 'exit' to exit.")
	defer d.logger.Info("Application shutdown.")

	for {
		fmt.Fprint(d.out, Prompt)

		select {
		case <-ctx.Done():
			d.interrupted()
			return nil

		case line, ok := <-lines:
			// A line and an interrupt can arrive together.
			if ctx.Err() != nil {
				d.interrupted()
				return nil
			}

			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				fmt.Fprintln(d.out)
				d.logger.Info("Application exit.", zap.String("reason", "end of input"))
				return nil
			}

			line = strings.TrimSpace(line)
			if strings.EqualFold(line, "exit") {
				d.logger.Info("Application exit.")
				return nil
			}

			// Errors are already printed and logged by Evaluate.
			_ = d.Evaluate(ctx, line)
		}
	}
}

func (d *Dispatcher) interrupted() {
	fmt.Fprintln(d.out)
	d.logger.Info("Application interrupted and exiting gracefully.")
}

// readLines scans in on its own goroutine so the loop can also wait on ctx.
// stop releases the goroutine if the loop returns before input ends.
func readLines(in io.Reader) (<-chan string, <-chan error, func()) {
	lines := make(chan string)
	errc := make(chan error, 1)
	done := make(chan struct{})

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc, func() { close(done) }
}
