// Package styles holds the builtin style attributes used when no template
// style covers a structural role. The table is closed and immutable; callers
// resolve roles, they never mutate entries.
package styles

import "fmt"

// Role is a structural category used as the key into the registry.
type Role string

// Structural roles.
const (
	Heading1    Role = "heading-1"
	Heading2    Role = "heading-2"
	Heading3    Role = "heading-3"
	Heading4    Role = "heading-4"
	Heading5    Role = "heading-5"
	Heading6    Role = "heading-6"
	Paragraph   Role = "paragraph"
	Code        Role = "code"
	Strong      Role = "strong"
	Emphasis    Role = "emphasis"
	TableHeader Role = "table-header"
	TableCell   Role = "table-cell"
)

// Document-level defaults.
const (
	// BodyFont is the default body font. East-Asian text requires the
	// eastAsia font attribute to carry the same name as the ASCII one.
	BodyFont = "宋体"

	// BodySizePt is the default body font size in points. CSS em/rem
	// lengths convert at this rate.
	BodySizePt = 11

	// CodeFont is the monospace font for code spans and blocks.
	CodeFont = "Courier New"

	// DefaultFirstLineIndentPt is the body-text first-line indent applied
	// when no context override exists (two full-width characters at 11pt).
	DefaultFirstLineIndentPt = 21

	// MarginInches is the page margin applied to all four sides.
	MarginInches = 1.0
)

// Attrs are manual run-level attributes for a role. Zero values mean
// "inherit": an empty Font or Color and a zero Size leave the run untouched
// for that property.
type Attrs struct {
	Font   string
	Size   float64 // points
	Color  string  // RRGGBB hex
	Bold   bool
	Italic bool
}

// HeadingRole maps a heading level (1-6) to its role.
// Panics on an out-of-range level; levels are validated by the caller.
func HeadingRole(level int) Role {
	switch level {
	case 1:
		return Heading1
	case 2:
		return Heading2
	case 3:
		return Heading3
	case 4:
		return Heading4
	case 5:
		return Heading5
	case 6:
		return Heading6
	}
	panic(fmt.Sprintf("styles: invalid heading level %d", level))
}

// Resolve returns the builtin attributes for a role. Unknown roles are a
// programming error, not a runtime condition, so Resolve panics on them.
func Resolve(role Role) Attrs {
	switch role {
	case Heading1:
		return Attrs{Font: BodyFont, Size: 16, Color: "000000", Bold: true}
	case Heading2:
		return Attrs{Font: BodyFont, Size: 14, Color: "000000", Bold: true}
	case Heading3:
		return Attrs{Font: BodyFont, Size: 12, Color: "000000", Bold: true}
	case Heading4, Heading5, Heading6:
		return Attrs{Font: BodyFont, Size: BodySizePt, Color: "000000", Bold: true}
	case Paragraph:
		return Attrs{Font: BodyFont, Size: BodySizePt, Color: "000000"}
	case Code:
		return Attrs{Font: CodeFont, Size: 10, Color: "A9A9A9"}
	case Strong:
		return Attrs{Font: BodyFont, Color: "000000", Bold: true}
	case Emphasis:
		return Attrs{Font: BodyFont, Color: "000000", Italic: true}
	case TableHeader:
		return Attrs{Font: BodyFont, Color: "000000", Bold: true}
	case TableCell:
		return Attrs{Font: BodyFont, Color: "000000"}
	}
	panic(fmt.Sprintf("styles: unknown role %q", role))
}
