package mdtools

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Hongruirui11/markdown-tools/internal/pipeline"
)

var blankRuns = regexp.MustCompile(`\n{3,}`)

// ExportHTML converts Markdown to a standalone HTML document with chroma
// syntax highlighting classes on fenced code blocks. Front matter is
// stripped before conversion.
func (c *Converter) ExportHTML(ctx context.Context, markdown string) (string, error) {
	if markdown == "" {
		return "", ErrEmptyMarkdown
	}
	content, _ := pipeline.StripFrontMatter(markdown)
	content = c.preprocessor.PreprocessMarkdown(ctx, content)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	out, err := pipeline.NewHighlightingConverter().ToHTML(ctx, content)
	if err != nil {
		return "", fmt.Errorf("converting to HTML: %w", err)
	}
	if c.cfg.htmlStyle != "" {
		css, err := c.styles.LoadStyle(c.cfg.htmlStyle)
		if err != nil {
			return "", fmt.Errorf("loading stylesheet: %w", err)
		}
		out = strings.Replace(out, "</head>", "<style>\n"+css+"</style>\n</head>", 1)
	}
	return out, nil
}

// ExportText converts Markdown to plain text by rendering it to HTML and
// extracting the text content, which resolves links, emphasis and entity
// references the way a reader sees them.
func (c *Converter) ExportText(ctx context.Context, markdown string) (string, error) {
	if markdown == "" {
		return "", ErrEmptyMarkdown
	}
	content, _ := pipeline.StripFrontMatter(markdown)
	content = c.preprocessor.PreprocessMarkdown(ctx, content)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	htmlContent, err := c.htmlConverter.ToHTML(ctx, content)
	if err != nil {
		return "", fmt.Errorf("converting to HTML: %w", err)
	}
	body, err := pipeline.ParseBody(htmlContent)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}
	text := pipeline.Text(body)
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text) + "\n", nil
}
