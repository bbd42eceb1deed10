package mdtools

import (
	"errors"

	"github.com/Hongruirui11/markdown-tools/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrReadInput     = errors.New("failed to read input file")
	ErrWriteOutput   = errors.New("failed to write output file")

	// ErrHTMLConversion wraps failures of the Markdown to HTML stage.
	ErrHTMLConversion = pipeline.ErrHTMLConversion

	// Heading numbering errors.
	ErrUnknownNumberingStyle = errors.New("unknown numbering style")
	ErrEmptyTemplates        = errors.New("numbering templates cannot be empty")
)
