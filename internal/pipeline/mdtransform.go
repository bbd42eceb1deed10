package pipeline

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)

	// Fullwidth-space directive [FULLWIDTH SPACES:N], case-insensitive,
	// with an optional space or underscore between the words.
	fullwidthSpaces = regexp.MustCompile(`(?i)\[FULLWIDTH[ _]?SPACES:(\d+)\]`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// CommonMarkPreprocessor applies transformations before CommonMark conversion.
type CommonMarkPreprocessor struct{}

// PreprocessMarkdown applies all transformations to prepare Markdown for
// conversion.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = normalizeLineEndings(content)
	content = expandFullwidthSpaces(content)
	content = compressBlankLines(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to 2 maximum.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// expandFullwidthSpaces replaces each [FULLWIDTH SPACES:N] directive with
// N ideographic spaces (U+3000). The directive survives Markdown parsing
// as plain text, so expanding it before conversion keeps the spaces
// attached to the surrounding inline content.
func expandFullwidthSpaces(content string) string {
	return fullwidthSpaces.ReplaceAllStringFunc(content, func(m string) string {
		sub := fullwidthSpaces.FindStringSubmatch(m)
		n, err := strconv.Atoi(sub[1])
		if err != nil || n < 0 {
			return m
		}
		return strings.Repeat("　", n)
	})
}
