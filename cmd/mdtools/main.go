package main

import (
	"errors"
	"fmt"
	"os"

	mdtools "github.com/Hongruirui11/markdown-tools"
	"github.com/Hongruirui11/markdown-tools/internal/assets"
	"github.com/Hongruirui11/markdown-tools/internal/config"
	"github.com/Hongruirui11/markdown-tools/internal/hints"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	env := DefaultEnv()
	if err := run(os.Args, env); err != nil {
		fmt.Fprintln(env.Stderr, err.Error()+hintFor(err))
		os.Exit(exitCodeFor(err))
	}
}

// hintFor returns actionable guidance appended after known error messages.
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.ConfigDirName)
	case errors.Is(err, assets.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.StyleNames())
	case errors.Is(err, mdtools.ErrUnknownNumberingStyle), errors.Is(err, config.ErrInvalidStyle):
		return hints.ForNumberingStyle()
	}
	return ""
}
