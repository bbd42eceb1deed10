package main

import (
	"errors"
	"os"

	mdtools "github.com/Hongruirui11/markdown-tools"
	"github.com/Hongruirui11/markdown-tools/internal/assets"
	"github.com/Hongruirui11/markdown-tools/internal/config"
)

// Exit codes for the mdtools CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, mdtools.ErrReadInput) ||
		errors.Is(err, mdtools.ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadSource) ||
		errors.Is(err, ErrWriteResult) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrInvalidStyle) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, mdtools.ErrEmptyMarkdown) ||
		errors.Is(err, mdtools.ErrUnknownNumberingStyle) ||
		errors.Is(err, mdtools.ErrEmptyTemplates) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUnknownAction) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidExtension) {
		return ExitUsage
	}

	return ExitGeneral
}
