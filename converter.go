package mdtools

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Hongruirui11/markdown-tools/internal/assets"
	"github.com/Hongruirui11/markdown-tools/internal/dateutil"
	"github.com/Hongruirui11/markdown-tools/internal/docx"
	"github.com/Hongruirui11/markdown-tools/internal/engine"
	"github.com/Hongruirui11/markdown-tools/internal/fileutil"
	"github.com/Hongruirui11/markdown-tools/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
)

// Converter orchestrates the markdown-to-docx conversion pipeline.
// Create with NewConverter and reuse freely; conversions are independent
// and safe to run concurrently.
type Converter struct {
	cfg           converterConfig
	logger        *slog.Logger
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	template      *docx.Template
	styles        *assets.StyleResolver
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTemplatePath, WithLogger).
//
// A configured template that fails to load is logged as a warning and
// skipped: output falls back to the builtin blank-document styles rather
// than failing the construction.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		logger:        slog.Default(),
		preprocessor:  &pipeline.CommonMarkPreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
	}
	c.cfg.htmlStyle = assets.DefaultStyle
	for _, opt := range opts {
		opt(c)
	}

	styles, err := assets.NewStyleResolver(c.cfg.styleDir)
	if err != nil {
		return nil, fmt.Errorf("loading style directory: %w", err)
	}
	c.styles = styles

	switch {
	case c.cfg.templateBytes != nil:
		tpl, err := docx.LoadTemplateBytes(c.cfg.templateBytes)
		if err != nil {
			c.logger.Warn("template unusable, using blank document",
				"error", err)
		} else {
			c.template = tpl
		}
	case c.cfg.templatePath != "":
		tpl, err := docx.LoadTemplate(c.cfg.templatePath)
		if err != nil {
			c.logger.Warn("template unusable, using blank document",
				"path", c.cfg.templatePath, "error", err)
		} else {
			c.template = tpl
		}
	}
	return c, nil
}

// HasTemplate reports whether a template was loaded successfully.
func (c *Converter) HasTemplate() bool { return c.template != nil }

// Convert runs the full pipeline and returns the .docx bytes along with
// the intermediate HTML and the parsed front matter metadata.
// Recovers from internal panics to prevent crashes from propagating to
// callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	content, meta := pipeline.StripFrontMatter(input.Markdown)
	if meta.Date != "" {
		resolved, err := dateutil.ResolveDate(meta.Date, time.Now())
		if err != nil {
			c.logger.Warn("front matter date not resolvable, keeping raw value",
				"date", meta.Date, "error", err)
		} else {
			meta.Date = resolved
		}
	}
	content = c.preprocessor.PreprocessMarkdown(ctx, content)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	htmlContent, err := c.htmlConverter.ToHTML(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	body, err := pipeline.ParseBody(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var doc *docx.Document
	if c.template != nil {
		doc = docx.NewFromTemplate(c.template)
	} else {
		doc = docx.New()
	}
	doc.SetCoreProperties(docx.CoreProperties{
		Title:       meta.Title,
		Author:      meta.Author,
		Description: meta.Description,
		Date:        meta.Date,
	})

	engine.New(doc).ConvertBody(body)
	doc.TrimTrailingEmptyParagraphs()

	data, err := doc.Bytes()
	if err != nil {
		return nil, fmt.Errorf("assembling document: %w", err)
	}
	return &ConvertResult{
		DOCX: data,
		HTML: []byte(htmlContent),
		Meta: Metadata(meta),
	}, nil
}

// ConvertFile reads a Markdown file, converts it, and writes the .docx
// atomically. An empty outputPath derives the destination from the input
// path by swapping the extension for .docx.
func (c *Converter) ConvertFile(ctx context.Context, inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	result, err := c.Convert(ctx, Input{Markdown: string(data)})
	if err != nil {
		return err
	}
	if outputPath == "" {
		outputPath = fileutil.ReplaceExt(inputPath, ".docx")
	}
	if err := fileutil.WriteFileAtomic(outputPath, result.DOCX, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
