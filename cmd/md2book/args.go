package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks command line errors.
var ErrUsage = errors.New("invalid arguments")

// cliOptions holds what the command line can set: only the PDF path.
type cliOptions struct {
	output string // Empty selects the dated default name
}

// parseArgs parses everything after the program name. It accepts at most
// one positional argument and no flags besides -h/--help, which prints
// usage to w and returns flag.ErrHelp.
func parseArgs(args []string, w io.Writer) (*cliOptions, error) {
	fs := flag.NewFlagSet("md2book", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(w)
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	rest := fs.Args()
	switch len(rest) {
	case 0:
		return &cliOptions{}, nil
	case 1:
		if rest[0] == "" {
			return nil, fmt.Errorf("%w: output path is empty", ErrUsage)
		}
		return &cliOptions{output: rest[0]}, nil
	default:
		return nil, fmt.Errorf("%w: expected at most one output path, got %d arguments", ErrUsage, len(rest))
	}
}
