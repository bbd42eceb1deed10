package engine

// Context carries inheritable formatting down the HTML tree. Fields are
// nil or empty when unset; merging never mutates the receiver, so sibling
// subtrees cannot leak formatting into each other.
type Context struct {
	Font   string
	Size   *float64 // points
	Align  string
	Indent *float64 // first-line indent, points; zero means "no indent"
}

// merge overlays child values onto the parent and returns the result.
// Set child fields win; unset fields inherit.
func (c Context) merge(child Context) Context {
	out := c
	if child.Font != "" {
		out.Font = child.Font
	}
	if child.Size != nil {
		out.Size = child.Size
	}
	if child.Align != "" {
		out.Align = child.Align
	}
	if child.Indent != nil {
		out.Indent = child.Indent
	}
	return out
}
