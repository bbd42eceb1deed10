package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
)

var (
	// ErrNotZip means the template file is not a zip archive.
	ErrNotZip = errors.New("template is not a zip archive")
	// ErrNoDocumentPart means the archive lacks word/document.xml and is
	// therefore not a WordprocessingML package.
	ErrNoDocumentPart = errors.New("template has no word/document.xml part")
)

// sectPrRe captures the first section-properties element of a document
// body. Only the first section's geometry carries over into output.
var sectPrRe = regexp.MustCompile(`(?s)<w:sectPr[\s>].*?</w:sectPr>`)

// Template is a parsed .docx whose parts, style table and first-section
// geometry seed new documents.
type Template struct {
	parts    map[string][]byte
	order    []string
	styleIDs map[string]string // display name -> styleId
	sectPr   []byte
}

// LoadTemplate reads and parses a template .docx from disk.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	return LoadTemplateBytes(data)
}

// LoadTemplateBytes parses a template .docx from memory.
func LoadTemplateBytes(data []byte) (*Template, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotZip, err)
	}
	tpl := &Template{parts: make(map[string][]byte), styleIDs: make(map[string]string)}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open part %s: %w", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read part %s: %w", f.Name, err)
		}
		tpl.parts[f.Name] = content
		tpl.order = append(tpl.order, f.Name)
	}
	doc, ok := tpl.parts["word/document.xml"]
	if !ok {
		return nil, ErrNoDocumentPart
	}
	tpl.sectPr = sectPrRe.Find(doc)
	if styles, ok := tpl.parts["word/styles.xml"]; ok {
		ids, err := parseStyleIDs(styles)
		if err != nil {
			return nil, fmt.Errorf("parse styles: %w", err)
		}
		tpl.styleIDs = ids
	}
	return tpl, nil
}

// StyleNames returns the display names of all styles the template defines.
func (t *Template) StyleNames() []string {
	names := make([]string, 0, len(t.styleIDs))
	for name := range t.styleIDs {
		names = append(names, name)
	}
	return names
}

// HasStyle reports whether the template defines the named style.
func (t *Template) HasStyle(name string) bool {
	_, ok := t.styleIDs[name]
	return ok
}

// StyleID returns the styleId registered for the display name.
func (t *Template) StyleID(name string) (string, bool) {
	id, ok := t.styleIDs[name]
	return id, ok
}

// parseStyleIDs walks word/styles.xml and maps each style's display name
// to its styleId. Styles without a name element are skipped.
func parseStyleIDs(stylesXML []byte) (map[string]string, error) {
	ids := make(map[string]string)
	dec := xml.NewDecoder(bytes.NewReader(stylesXML))
	var curID string
	var depth int
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "style":
				depth = 1
				curID = ""
				for _, a := range el.Attr {
					if a.Name.Local == "styleId" {
						curID = a.Value
					}
				}
			case "name":
				// Only direct children of w:style name the style itself.
				if curID != "" && depth == 1 {
					for _, a := range el.Attr {
						if a.Name.Local == "val" {
							ids[a.Value] = curID
						}
					}
				}
				depth++
			default:
				if curID != "" {
					depth++
				}
			}
		case xml.EndElement:
			if el.Name.Local == "style" {
				curID = ""
				depth = 0
			} else if curID != "" {
				depth--
			}
		}
	}
	return ids, nil
}
