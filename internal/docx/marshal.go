package docx

import (
	"fmt"
	"strings"
)

const documentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
<w:body>`

const documentFooter = `</w:body>
</w:document>`

// defaultSectPr is US Letter with one-inch margins, matching the blank
// document defaults of desktop word processors.
const defaultSectPr = `<w:sectPr><w:pgSz w:w="12240" w:h="15840"/><w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720" w:gutter="0"/></w:sectPr>`

// twips converts points to twentieths of a point, the unit WordprocessingML
// uses for indents and spacing.
func twips(pt float64) int {
	return int(pt*20 + 0.5)
}

// halfPoints converts points to half-points, the unit used for font sizes.
func halfPoints(pt float64) int {
	return int(pt*2 + 0.5)
}

func escapeXML(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// styleID resolves a style name to the style ID of the bound document.
// The empty string means the style is unavailable and must be omitted.
func (d *Document) styleID(name string) string {
	if name == "" {
		return ""
	}
	if d.template != nil {
		return d.template.styleIDs[name]
	}
	return builtinStyleIDs[name]
}

// documentXML renders the word/document.xml part.
func (d *Document) documentXML() string {
	var b strings.Builder
	b.WriteString(documentHeader)
	for _, blk := range d.blocks {
		switch v := blk.(type) {
		case *Paragraph:
			d.writeParagraph(&b, v)
		case *Table:
			d.writeTable(&b, v)
		}
	}
	if d.template != nil && len(d.template.sectPr) > 0 {
		b.Write(d.template.sectPr)
	} else {
		b.WriteString(defaultSectPr)
	}
	b.WriteString(documentFooter)
	return b.String()
}

func (d *Document) writeParagraph(b *strings.Builder, p *Paragraph) {
	b.WriteString("<w:p>")
	d.writeParagraphProps(b, p)
	for _, r := range p.runs {
		writeRun(b, r)
	}
	b.WriteString("</w:p>")
}

func (d *Document) writeParagraphProps(b *strings.Builder, p *Paragraph) {
	var props strings.Builder
	if id := d.styleID(p.style); id != "" {
		fmt.Fprintf(&props, `<w:pStyle w:val="%s"/>`, escapeXML(id))
	}
	if p.spaceAfter != nil {
		fmt.Fprintf(&props, `<w:spacing w:after="%d"/>`, twips(*p.spaceAfter))
	}
	if p.firstLine != nil || p.leftIndent != nil {
		props.WriteString("<w:ind")
		if p.leftIndent != nil {
			fmt.Fprintf(&props, ` w:left="%d"`, twips(*p.leftIndent))
		}
		if p.firstLine != nil {
			fmt.Fprintf(&props, ` w:firstLine="%d"`, twips(*p.firstLine))
		}
		props.WriteString("/>")
	}
	if p.align != "" {
		fmt.Fprintf(&props, `<w:jc w:val="%s"/>`, p.align)
	}
	if props.Len() > 0 {
		b.WriteString("<w:pPr>")
		b.WriteString(props.String())
		b.WriteString("</w:pPr>")
	}
}

func writeRun(b *strings.Builder, r *Run) {
	b.WriteString("<w:r>")
	var props strings.Builder
	if r.font != "" {
		f := escapeXML(r.font)
		fmt.Fprintf(&props, `<w:rFonts w:ascii="%s" w:hAnsi="%s" w:eastAsia="%s"/>`, f, f, f)
	}
	if r.bold != nil && *r.bold {
		props.WriteString("<w:b/>")
	}
	if r.italic != nil && *r.italic {
		props.WriteString("<w:i/>")
	}
	if r.color != "" {
		fmt.Fprintf(&props, `<w:color w:val="%s"/>`, escapeXML(r.color))
	}
	if r.size != nil {
		hp := halfPoints(*r.size)
		fmt.Fprintf(&props, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, hp, hp)
	}
	if props.Len() > 0 {
		b.WriteString("<w:rPr>")
		b.WriteString(props.String())
		b.WriteString("</w:rPr>")
	}
	switch r.breakType {
	case "page":
		b.WriteString(`<w:br w:type="page"/>`)
	case "textWrapping":
		b.WriteString("<w:br/>")
	default:
		writeRunText(b, r.text)
	}
	b.WriteString("</w:r>")
}

// writeRunText emits the run text, converting embedded newlines to manual
// line breaks. xml:space is preserved so leading and trailing spaces,
// including ideographic spaces, survive.
func writeRunText(b *strings.Builder, text string) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			b.WriteString("<w:br/>")
		}
		b.WriteString(`<w:t xml:space="preserve">`)
		b.WriteString(escapeXML(line))
		b.WriteString("</w:t>")
	}
}

func (d *Document) writeTable(b *strings.Builder, t *Table) {
	b.WriteString("<w:tbl>")
	b.WriteString("<w:tblPr>")
	if id := d.styleID(t.style); id != "" {
		fmt.Fprintf(b, `<w:tblStyle w:val="%s"/>`, escapeXML(id))
	}
	b.WriteString(`<w:tblW w:w="0" w:type="auto"/>`)
	b.WriteString(`<w:tblBorders><w:top w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:left w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:bottom w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:right w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:insideH w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:insideV w:val="single" w:sz="4" w:space="0" w:color="auto"/></w:tblBorders>`)
	b.WriteString("</w:tblPr>")
	b.WriteString("<w:tblGrid>")
	for i := 0; i < t.cols; i++ {
		b.WriteString("<w:gridCol/>")
	}
	b.WriteString("</w:tblGrid>")
	for _, row := range t.rows {
		b.WriteString("<w:tr>")
		for _, cell := range row.cells {
			b.WriteString("<w:tc><w:tcPr><w:tcW w:w=\"0\" w:type=\"auto\"/></w:tcPr>")
			d.writeParagraph(b, cell.para)
			b.WriteString("</w:tc>")
		}
		b.WriteString("</w:tr>")
	}
	b.WriteString("</w:tbl>")
}
