package main

import (
	"flag"
	"fmt"
	"io"
)

// ExitError carries the process exit status for a failed run.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

type options struct {
	logLevel string
	args     []string
}

// parseArgs parses flags. shouldExit is true when help was printed.
func parseArgs(args []string, out io.Writer) (opts options, shouldExit bool, err error) {
	flagSet := flag.NewFlagSet("calc", flag.ContinueOnError)
	flagSet.SetOutput(out)

	flagSet.Usage = func() {
		fmt.Fprint(out, `
calc - an exact-decimal calculator.

Usage:
  calc [options]                      start the interactive prompt
  calc [options] <command> [args...]  run one command and exit

Commands:
  add, subtract, multiply, divide <a> <b>
  menu, history [operation], clear, greet

Options:
`)
		flagSet.PrintDefaults()
	}

	flagSet.StringVar(&opts.logLevel, "log-level", "", "Logging level: 'debug', 'info', 'warn' or 'error'. Overrides CALC_LOG_LEVEL.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return options{}, true, nil
		}
		return options{}, false, &ExitError{Code: 2, Message: err.Error()}
	}

	opts.args = flagSet.Args()
	return opts, false, nil
}
