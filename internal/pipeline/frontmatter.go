package pipeline

import (
	"strings"

	"github.com/adrg/frontmatter"
)

// Metadata holds document properties parsed from YAML front matter.
type Metadata struct {
	Title       string `yaml:"title"`
	Author      string `yaml:"author"`
	Description string `yaml:"description"`
	Date        string `yaml:"date"`
}

// StripFrontMatter extracts YAML front matter from the source and returns
// the remaining content plus the parsed metadata. Extraction is best
// effort: content without front matter, or with front matter that fails to
// parse, comes back unchanged with empty metadata.
func StripFrontMatter(content string) (string, Metadata) {
	var meta Metadata
	rest, err := frontmatter.Parse(strings.NewReader(content), &meta)
	if err != nil {
		return content, Metadata{}
	}
	return string(rest), meta
}
