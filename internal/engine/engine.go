// Package engine converts a parsed HTML tree into a docx block model.
// The walk mirrors the document structure: block elements become
// paragraphs and tables, inline elements become styled runs, and
// formatting context inherits downward through container elements.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/Hongruirui11/markdown-tools/internal/docx"
	"github.com/Hongruirui11/markdown-tools/internal/pipeline"
	"github.com/Hongruirui11/markdown-tools/internal/styles"
)

// pseudoList matches manually numbered paragraphs like "(1) item".
// They read as list entries, so the spacing after them is suppressed.
var pseudoList = regexp.MustCompile(`^\(\d+\)\s+`)

// Indent step applied per nesting level of lists, in points.
const listIndentStepPt = 21

// Engine walks an HTML body and appends the equivalent blocks to a
// document. One engine converts one document; it is not safe for
// concurrent use.
type Engine struct {
	doc *docx.Document
}

// New returns an engine appending to doc.
func New(doc *docx.Document) *Engine {
	return &Engine{doc: doc}
}

// ConvertBody converts every child of the <body> element in order.
func (e *Engine) ConvertBody(body *html.Node) {
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		e.processBlock(c, Context{})
	}
}

func (e *Engine) processBlock(n *html.Node, ctx Context) {
	switch n.Type {
	case html.TextNode:
		// Bare text at block level still deserves a paragraph.
		if strings.TrimSpace(n.Data) == "" {
			return
		}
		p := e.newBodyParagraph(ctx)
		e.emitText(p, n.Data, ctx, styles.Paragraph, false, false)
	case html.ElementNode:
		switch n.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			e.heading(n, int(n.Data[1]-'0'), ctx)
		case "p":
			e.paragraph(n, ctx)
		case "pre":
			e.codeBlock(n)
		case "table":
			e.table(n, ctx)
		case "ul":
			e.list(n, false, ctx, 0)
		case "ol":
			e.list(n, true, ctx, 0)
		case "hr":
			e.doc.AddParagraph().AddPageBreak()
		default:
			// Containers pass their formatting context down and let
			// their children decide the block structure.
			merged := ctx.merge(contextFromNode(n))
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				e.processBlock(c, merged)
			}
		}
	}
}

// pickStyle returns the first named style the document can resolve.
// The empty string means none applies and direct formatting stands alone.
func (e *Engine) pickStyle(names ...string) string {
	for _, name := range names {
		if e.doc.HasStyle(name) {
			return name
		}
	}
	return ""
}

// newBodyParagraph creates a body-text paragraph with the context's
// alignment and indent applied. Without an explicit indent the default
// first-line indent stands, matching the two-character opening indent
// convention of Chinese body text.
func (e *Engine) newBodyParagraph(ctx Context) *docx.Paragraph {
	p := e.doc.AddParagraph()
	if ctx.Align != "" {
		p.SetAlignment(ctx.Align)
	}
	if ctx.Indent != nil {
		p.SetFirstLineIndent(*ctx.Indent)
	} else {
		p.SetFirstLineIndent(styles.DefaultFirstLineIndentPt)
	}
	return p
}

func (e *Engine) heading(n *html.Node, level int, ctx Context) {
	merged := ctx.merge(contextFromNode(n))

	if level >= 5 {
		// Deep headings render as plain body text with no opening indent.
		p := e.doc.AddParagraph()
		p.SetFirstLineIndent(0)
		if merged.Align != "" {
			p.SetAlignment(merged.Align)
		}
		e.composeInline(p, n, merged, styles.Paragraph, false, false)
		return
	}

	p := e.doc.AddParagraph()
	if style := e.pickStyle(fmt.Sprintf("标题 %d", level), fmt.Sprintf("Heading %d", level)); style != "" {
		p.SetStyle(style)
	}
	if merged.Align != "" {
		p.SetAlignment(merged.Align)
	}
	e.composeInline(p, n, merged, styles.HeadingRole(level), false, false)
}

// paragraph converts a <p>. Manual <br> breaks split it into separate
// output paragraphs that share the source paragraph's alignment and
// indent, so a hard-wrapped block reads as individual paragraphs.
func (e *Engine) paragraph(n *html.Node, ctx Context) {
	merged := ctx.merge(contextFromNode(n))
	for _, seg := range splitAtBreaks(n) {
		text := nodesText(seg)
		if strings.TrimSpace(text) == "" && !strings.HasPrefix(text, "　") {
			continue
		}
		p := e.newBodyParagraph(merged)
		if pseudoList.MatchString(text) {
			p.SetSpaceAfter(0)
		}
		for _, c := range seg {
			e.composeNode(p, c, merged, styles.Paragraph, false, false)
		}
	}
}

// splitAtBreaks partitions the element's children into segments separated
// by <br> elements. The breaks themselves are dropped.
func splitAtBreaks(n *html.Node) [][]*html.Node {
	var segments [][]*html.Node
	var cur []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "br" {
			segments = append(segments, cur)
			cur = nil
			continue
		}
		cur = append(cur, c)
	}
	segments = append(segments, cur)
	return segments
}

func nodesText(nodes []*html.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(pipeline.Text(n))
	}
	return b.String()
}

// codeBlock renders a <pre> verbatim as a single monospace paragraph.
// Embedded newlines become manual line breaks in the output.
func (e *Engine) codeBlock(n *html.Node) {
	text := strings.TrimRight(pipeline.Text(n), "\n")
	p := e.doc.AddParagraph()
	if style := e.pickStyle("代码块"); style != "" {
		p.SetStyle(style)
	}
	r := p.AddRun(text)
	e.styleRun(p, r, Context{}, styles.Code, false, false)
}

func (e *Engine) table(n *html.Node, ctx Context) {
	rows := tableRows(n)
	if len(rows) == 0 {
		return
	}
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	tbl := e.doc.AddTable(cols)
	if style := e.pickStyle("Table Grid"); style != "" {
		tbl.SetStyle(style)
	}
	for i, cells := range rows {
		header := i == 0
		row := tbl.AddRow()
		for j, cellNode := range cells {
			para := row.Cells()[j].Paragraph()
			role := styles.TableCell
			styleNames := []string{"表内"}
			if header {
				role = styles.TableHeader
				styleNames = []string{"表头"}
			}
			if style := e.pickStyle(styleNames...); style != "" {
				para.SetStyle(style)
			}
			cellCtx := ctx.merge(contextFromNode(cellNode))
			e.composeCell(para, cellNode, cellCtx, role, header)
		}
	}
}

// tableRows flattens thead/tbody sections into an ordered row list of
// th/td cell nodes.
func tableRows(table *html.Node) [][]*html.Node {
	var rows [][]*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "thead", "tbody", "tfoot":
				walk(c)
			case "tr":
				var cells []*html.Node
				for cell := c.FirstChild; cell != nil; cell = cell.NextSibling {
					if cell.Type == html.ElementNode && (cell.Data == "th" || cell.Data == "td") {
						cells = append(cells, cell)
					}
				}
				rows = append(rows, cells)
			}
		}
	}
	walk(table)
	return rows
}

// composeCell fills a cell paragraph. Block children collapse into the
// single cell paragraph with line breaks between them.
func (e *Engine) composeCell(p *docx.Paragraph, cell *html.Node, ctx Context, role styles.Role, bold bool) {
	first := true
	for c := cell.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "p" || c.Data == "div") {
			if !first {
				p.AddBreak()
			}
			first = false
			e.composeInline(p, c, ctx.merge(contextFromNode(c)), role, bold, false)
			continue
		}
		e.composeNode(p, c, ctx, role, bold, false)
	}
}

// list renders ul/ol items as "List Paragraph" entries with literal
// bullet or number prefixes. Nested lists follow their parent item as
// separate paragraphs indented one step further.
func (e *Engine) list(n *html.Node, ordered bool, ctx Context, depth int) {
	merged := ctx.merge(contextFromNode(n))
	index := 1
	if start := pipeline.Attr(n, "start"); start != "" {
		if v, err := strconv.Atoi(start); err == nil && v > 0 {
			index = v
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		prefix := "• "
		if ordered {
			prefix = fmt.Sprintf("%d. ", index)
			index++
		}
		e.listItem(c, prefix, merged, depth)
	}
}

func (e *Engine) listItem(li *html.Node, prefix string, ctx Context, depth int) {
	p := e.doc.AddParagraph()
	if style := e.pickStyle("List Paragraph"); style != "" {
		p.SetStyle(style)
	}
	if depth > 0 {
		p.SetLeftIndent(float64(depth) * listIndentStepPt)
	}
	r := p.AddRun(prefix)
	e.styleRun(p, r, ctx, styles.Paragraph, false, false)

	var nested []*html.Node
	first := true
	for c := li.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			switch c.Data {
			case "ul", "ol":
				nested = append(nested, c)
				continue
			case "p", "div":
				// Loose list items wrap their body in <p>.
				if !first {
					p.AddBreak()
				}
				first = false
				e.composeInline(p, c, ctx.merge(contextFromNode(c)), styles.Paragraph, false, false)
				continue
			}
		}
		e.composeNode(p, c, ctx, styles.Paragraph, false, false)
	}

	for _, sub := range nested {
		e.list(sub, sub.Data == "ol", ctx, depth+1)
	}
}
