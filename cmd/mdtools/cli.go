package main

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for CLI operations.
var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrUnknownAction    = errors.New("unknown edit action")
	ErrNoInput          = errors.New("no input specified")
	ErrReadSource       = errors.New("failed to read source file")
	ErrWriteResult      = errors.New("failed to write result file")
	ErrInvalidFormat    = errors.New("invalid output format")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
)

// run dispatches to the selected subcommand.
func run(args []string, env *Environment) error {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return fmt.Errorf("%w: no command given", ErrUnknownCommand)
	}

	ctx := context.Background()
	cmd, rest := args[1], args[2:]
	switch cmd {
	case "convert":
		flags, positional, err := parseConvertFlags(rest)
		if err != nil {
			return err
		}
		return runConvert(ctx, positional, flags, env)
	case "edit":
		flags, positional, err := parseEditFlags(rest)
		if err != nil {
			return err
		}
		return runEdit(positional, flags, env)
	case "version":
		fmt.Fprintf(env.Stdout, "mdtools %s\n", Version)
		return nil
	case "help", "-h", "--help":
		runHelp(rest, env)
		return nil
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}
