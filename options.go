package mdtools

import "log/slog"

// Option configures a Converter at construction time.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	templatePath  string
	templateBytes []byte
	htmlStyle     string
	styleDir      string
}

// WithTemplatePath sets the template .docx supplying named styles and
// page geometry for output documents.
func WithTemplatePath(path string) Option {
	return func(c *Converter) {
		c.cfg.templatePath = path
	}
}

// WithTemplateBytes sets the template from an in-memory .docx package.
// Takes precedence over WithTemplatePath when both are given.
func WithTemplateBytes(data []byte) Option {
	return func(c *Converter) {
		c.cfg.templateBytes = data
	}
}

// WithHTMLStyle selects the stylesheet embedded in ExportHTML output.
// The default is "default"; pass an empty name to emit unstyled HTML.
func WithHTMLStyle(name string) Option {
	return func(c *Converter) {
		c.cfg.htmlStyle = name
	}
}

// WithStyleDir sets a directory of custom stylesheets for ExportHTML,
// laid out as {dir}/styles/{name}.css. Styles found there override the
// embedded ones of the same name.
func WithStyleDir(dir string) Option {
	return func(c *Converter) {
		c.cfg.styleDir = dir
	}
}

// WithLogger sets the structured logger used for non-fatal warnings.
// Panics on nil (programmer error).
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("mdtools: WithLogger logger must not be nil")
	}
	return func(c *Converter) {
		c.logger = logger
	}
}
