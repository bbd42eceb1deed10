package docx

import "strings"

// Alignment values for paragraphs.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// Paragraph is a block of runs with optional paragraph-level formatting.
// Style names are resolved to style IDs when the document is marshalled;
// a name the bound document does not define is silently dropped, which is
// the "style unavailable" path of the fallback chain.
type Paragraph struct {
	style      string
	align      string
	firstLine  *float64 // first-line indent, points
	leftIndent *float64 // left indent, points
	spaceAfter *float64 // spacing after, points
	runs       []*Run
}

func (p *Paragraph) isBlock() {}

// AddRun appends a text run to the paragraph.
func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{text: text}
	p.runs = append(p.runs, r)
	return r
}

// AddBreak appends a manual in-paragraph line break.
func (p *Paragraph) AddBreak() {
	p.runs = append(p.runs, &Run{breakType: "textWrapping"})
}

// AddPageBreak appends a forced page break.
func (p *Paragraph) AddPageBreak() {
	p.runs = append(p.runs, &Run{breakType: "page"})
}

// SetStyle records the named style to apply. The name is looked up in the
// bound document's style table at marshal time.
func (p *Paragraph) SetStyle(name string) { p.style = name }

// Style returns the recorded style name.
func (p *Paragraph) Style() string { return p.style }

// SetAlignment sets the paragraph alignment (AlignLeft/Center/Right).
// Unknown values are ignored.
func (p *Paragraph) SetAlignment(align string) {
	switch align {
	case AlignLeft, AlignCenter, AlignRight:
		p.align = align
	}
}

// Alignment returns the paragraph alignment, or "" when unset.
func (p *Paragraph) Alignment() string { return p.align }

// SetFirstLineIndent sets the first-line indent in points.
// Zero is a meaningful value (no indent), distinct from unset.
func (p *Paragraph) SetFirstLineIndent(pt float64) { p.firstLine = &pt }

// FirstLineIndent returns the first-line indent in points and whether it is set.
func (p *Paragraph) FirstLineIndent() (float64, bool) {
	if p.firstLine == nil {
		return 0, false
	}
	return *p.firstLine, true
}

// SetLeftIndent sets the left indent in points.
func (p *Paragraph) SetLeftIndent(pt float64) { p.leftIndent = &pt }

// SetSpaceAfter sets the spacing after the paragraph in points.
func (p *Paragraph) SetSpaceAfter(pt float64) { p.spaceAfter = &pt }

// SpaceAfter returns the spacing after the paragraph and whether it is set.
func (p *Paragraph) SpaceAfter() (float64, bool) {
	if p.spaceAfter == nil {
		return 0, false
	}
	return *p.spaceAfter, true
}

// Runs returns the paragraph's runs in order.
func (p *Paragraph) Runs() []*Run { return p.runs }

// Text returns the concatenated run text. Break-only runs contribute nothing.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.runs {
		b.WriteString(r.text)
	}
	return b.String()
}

// Run is a span of text sharing one set of character attributes.
type Run struct {
	text      string
	breakType string // "", "textWrapping", "page"
	font      string
	size      *float64 // points
	color     string   // RRGGBB hex
	bold      *bool
	italic    *bool
}

// Text returns the run's text content.
func (r *Run) Text() string { return r.text }

// SetFont sets the run font. The same name is written to the ascii, hAnsi
// and eastAsia attributes so mixed-script text renders consistently.
func (r *Run) SetFont(name string) { r.font = name }

// Font returns the run font name, or "" when unset.
func (r *Run) Font() string { return r.font }

// SetSize sets the font size in points.
func (r *Run) SetSize(pt float64) { r.size = &pt }

// Size returns the font size in points and whether it is set.
func (r *Run) Size() (float64, bool) {
	if r.size == nil {
		return 0, false
	}
	return *r.size, true
}

// SetColor sets the text color as RRGGBB hex.
func (r *Run) SetColor(hex string) { r.color = hex }

// SetBold sets the bold flag.
func (r *Run) SetBold(v bool) { r.bold = &v }

// Bold reports whether the run is bold.
func (r *Run) Bold() bool { return r.bold != nil && *r.bold }

// SetItalic sets the italic flag.
func (r *Run) SetItalic(v bool) { r.italic = &v }

// Italic reports whether the run is italic.
func (r *Run) Italic() bool { return r.italic != nil && *r.italic }
