// Command clia-example searches files for lines containing a query.
// It declares its command line with clia and is hosted in a cobra command that
// leaves flag parsing to clia.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes follow application lifecycle: lower numbers are earlier failures
const (
	ExitSuccess             = 0
	ExitOptionsParseError   = 1
	ExitKnownRuntimeError   = 4
	ExitUnknownRuntimeError = 5
)

const (
	author      = "Anthony Rubick"
	description = "Searches files for lines containing QUERY"
)

// exitError carries the process exit code of a failure
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	_, _ = fmt.Fprintln(stderr, "Error:", err)
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	return ExitUnknownRuntimeError
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:                "clia-example [OPTIONS]... PATH QUERY",
		Short:              description,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Name(), args, stdout, stderr)
		},
	}
}
