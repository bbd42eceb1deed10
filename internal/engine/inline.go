package engine

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/Hongruirui11/markdown-tools/internal/docx"
	"github.com/Hongruirui11/markdown-tools/internal/styles"
)

// blockTags are elements the structural walk owns. The inline composer
// never descends into them; list items and table cells hand them back to
// the engine instead.
var blockTags = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"blockquote": true, "pre": true, "table": true,
	"ul": true, "ol": true, "hr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// composeInline walks the inline content of n and appends styled runs to p.
// Formatting flags accumulate down the subtree: <strong><em>x</em></strong>
// yields one bold italic run.
func (e *Engine) composeInline(p *docx.Paragraph, n *html.Node, ctx Context, role styles.Role, bold, italic bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		e.composeNode(p, c, ctx, role, bold, italic)
	}
}

// composeNode appends the runs for a single inline node.
func (e *Engine) composeNode(p *docx.Paragraph, c *html.Node, ctx Context, role styles.Role, bold, italic bool) {
	switch c.Type {
	case html.TextNode:
		e.emitText(p, c.Data, ctx, role, bold, italic)
	case html.ElementNode:
		switch c.Data {
		case "strong", "b":
			e.composeInline(p, c, ctx, role, true, italic)
		case "em", "i":
			e.composeInline(p, c, ctx, role, bold, true)
		case "code":
			e.composeInline(p, c, ctx, styles.Code, bold, italic)
		case "br":
			p.AddBreak()
		default:
			if blockTags[c.Data] {
				return
			}
			// span, a, u, del and any other inline wrapper:
			// formatting context from its style attribute applies
			// to its subtree only.
			e.composeInline(p, c, ctx.merge(contextFromNode(c)), role, bold, italic)
		}
	}
}

// emitText appends one run for a text fragment. Whitespace-only fragments
// are dropped unless they begin with an ideographic space, which is a
// deliberate fullwidth indent that must survive. Soft newlines never reach
// the output: goldmark leaves one after every <br> it emits, and carrying
// it into a run would render as a spurious line break.
func (e *Engine) emitText(p *docx.Paragraph, text string, ctx Context, role styles.Role, bold, italic bool) {
	if strings.TrimSpace(text) == "" && !strings.HasPrefix(text, "　") {
		return
	}
	r := p.AddRun(strings.ReplaceAll(text, "\n", ""))
	e.styleRun(p, r, ctx, role, bold, italic)
}

// styleRun applies character formatting with explicit context taking
// precedence over the role's registry attributes. A named style supplied
// by a bound template is authoritative: the registry attributes stay off
// the run, leaving only explicit context overrides and inline emphasis.
func (e *Engine) styleRun(p *docx.Paragraph, r *docx.Run, ctx Context, role styles.Role, bold, italic bool) {
	var attrs styles.Attrs
	if !e.templateStyled(p) {
		attrs = styles.Resolve(role)
	}
	font := attrs.Font
	if ctx.Font != "" {
		font = ctx.Font
	}
	if font != "" {
		r.SetFont(font)
	}
	size := attrs.Size
	if ctx.Size != nil {
		size = *ctx.Size
	}
	if size > 0 {
		r.SetSize(size)
	}
	if attrs.Color != "" {
		r.SetColor(attrs.Color)
	}
	if bold || attrs.Bold {
		r.SetBold(true)
	}
	if italic || attrs.Italic {
		r.SetItalic(true)
	}
}

// templateStyled reports whether the paragraph carries a named style that
// a bound template resolves.
func (e *Engine) templateStyled(p *docx.Paragraph) bool {
	return e.doc.Template() != nil && p.Style() != ""
}
