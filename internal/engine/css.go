package engine

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/Hongruirui11/markdown-tools/internal/pipeline"
)

// cssLength matches a leading decimal number with an optional unit.
// Trailing garbage after the unit is ignored.
var cssLength = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(pt|px|em|rem)?`)

// parseCSSLength converts a CSS length to points. px assumes 96dpi
// (1px = 0.75pt); em and rem are relative to the 11pt body size;
// a bare number is taken as points already.
func parseCSSLength(s string) (float64, bool) {
	m := cssLength.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	switch m[2] {
	case "px":
		return n * 0.75, true
	case "em", "rem":
		return n * 11, true
	default: // "pt" or unitless
		return n, true
	}
}

// styleDecls splits a style attribute into property/value pairs.
// Malformed declarations are skipped; later duplicates win.
func styleDecls(style string) map[string]string {
	decls := make(map[string]string)
	for _, part := range strings.Split(style, ";") {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		k = strings.ToLower(strings.TrimSpace(k))
		v = strings.TrimSpace(v)
		if k != "" && v != "" {
			decls[k] = v
		}
	}
	return decls
}

// firstFontFamily extracts the first font in a font-family list,
// stripping surrounding quotes.
func firstFontFamily(v string) string {
	first, _, _ := strings.Cut(v, ",")
	first = strings.TrimSpace(first)
	first = strings.Trim(first, `"'`)
	return first
}

// contextFromNode reads inline CSS and presentation attributes off an
// element and returns the formatting context they describe. Only the
// properties the converter honors are read; everything else is ignored.
func contextFromNode(n *html.Node) Context {
	var ctx Context
	decls := styleDecls(pipeline.Attr(n, "style"))
	if v, ok := decls["font-family"]; ok {
		ctx.Font = firstFontFamily(v)
	}
	if v, ok := decls["font-size"]; ok {
		if pt, ok := parseCSSLength(v); ok {
			ctx.Size = &pt
		}
	}
	if v, ok := decls["text-align"]; ok {
		ctx.Align = normalizeAlign(v)
	}
	if v, ok := decls["text-indent"]; ok {
		if pt, ok := parseCSSLength(v); ok {
			ctx.Indent = &pt
		}
	}
	// Legacy align attribute, used when CSS does not set alignment.
	if ctx.Align == "" {
		ctx.Align = normalizeAlign(pipeline.Attr(n, "align"))
	}
	return ctx
}

func normalizeAlign(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "left":
		return "left"
	case "center":
		return "center"
	case "right":
		return "right"
	}
	return ""
}
