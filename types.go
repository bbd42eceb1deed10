package mdtools

// Input carries the source content for a single conversion.
type Input struct {
	// Markdown is the source text. YAML front matter, when present, is
	// stripped and becomes the output document's core properties.
	Markdown string
}

// Metadata is the document information parsed from YAML front matter.
type Metadata struct {
	Title       string
	Author      string
	Description string
	Date        string
}

// ConvertResult holds the conversion outputs. The intermediate HTML is
// retained for debugging.
type ConvertResult struct {
	DOCX []byte
	HTML []byte
	Meta Metadata
}
