// Package docx builds WordprocessingML documents from an in-memory block
// model and packages them as OPC zip archives. It supports starting from a
// blank document with a built-in style sheet or from a template .docx whose
// styles and section geometry carry over into the output.
package docx

import (
	"strings"

	"github.com/Hongruirui11/markdown-tools/internal/fileutil"
)

// Block is a top-level body element: a Paragraph or a Table.
type Block interface {
	isBlock()
}

// CoreProperties become docProps/core.xml metadata in the package.
type CoreProperties struct {
	Title       string
	Author      string
	Description string
	Date        string
}

// Document accumulates blocks and marshals them into a .docx package.
// The zero value is a blank document using the built-in style sheet.
type Document struct {
	blocks   []Block
	template *Template
	props    CoreProperties
}

// New returns an empty document with no bound template.
func New() *Document {
	return &Document{}
}

// NewFromTemplate returns an empty document whose output package reuses
// the template's parts, styles and section geometry. The template's own
// body content is discarded.
func NewFromTemplate(tpl *Template) *Document {
	return &Document{template: tpl}
}

// Template returns the bound template, or nil.
func (d *Document) Template() *Template { return d.template }

// SetCoreProperties sets package metadata written to docProps/core.xml.
func (d *Document) SetCoreProperties(props CoreProperties) {
	d.props = props
}

// AddParagraph appends an empty paragraph to the body.
func (d *Document) AddParagraph() *Paragraph {
	p := &Paragraph{}
	d.blocks = append(d.blocks, p)
	return p
}

// AddTable appends a table with the given column count to the body.
func (d *Document) AddTable(cols int) *Table {
	t := NewTable(cols)
	d.blocks = append(d.blocks, t)
	return t
}

// Blocks returns the body blocks in order.
func (d *Document) Blocks() []Block { return d.blocks }

// HasStyle reports whether the named style is available to this document,
// either from the bound template or from the built-in style sheet.
func (d *Document) HasStyle(name string) bool {
	if d.template != nil {
		_, ok := d.template.styleIDs[name]
		return ok
	}
	_, ok := builtinStyleIDs[name]
	return ok
}

// TrimTrailingEmptyParagraphs removes empty paragraphs from the end of the
// body. Trimming stops at the first non-empty paragraph or at any table.
// A paragraph counts as empty when it has no text and no break runs.
func (d *Document) TrimTrailingEmptyParagraphs() {
	for len(d.blocks) > 0 {
		last, ok := d.blocks[len(d.blocks)-1].(*Paragraph)
		if !ok || !paragraphEmpty(last) {
			return
		}
		d.blocks = d.blocks[:len(d.blocks)-1]
	}
}

func paragraphEmpty(p *Paragraph) bool {
	for _, r := range p.runs {
		if r.breakType != "" {
			return false
		}
		if strings.TrimSpace(r.text) != "" {
			return false
		}
	}
	return true
}

// Save marshals the document and writes it to path atomically.
func (d *Document) Save(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(path, data, 0o644)
}
