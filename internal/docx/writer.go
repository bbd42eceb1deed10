package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
</Types>`

const rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

func (d *Document) corePropertiesXML() string {
	p := d.props
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
<dc:title>%s</dc:title>
<dc:creator>%s</dc:creator>
<dc:description>%s</dc:description>
<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>
</cp:coreProperties>`,
		escapeXML(p.Title), escapeXML(p.Author), escapeXML(p.Description), escapeXML(p.Date))
}

// Bytes marshals the document into a complete .docx package. With a bound
// template every template part carries over unchanged except the main
// document part and, when core properties are set, docProps/core.xml.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	var err error
	if d.template != nil {
		err = d.writeFromTemplate(zw)
	} else {
		err = d.writeFresh(zw)
	}
	if err != nil {
		zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close package: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *Document) writeFromTemplate(zw *zip.Writer) error {
	hasProps := d.props != CoreProperties{}
	_, hasCorePart := d.template.parts["docProps/core.xml"]
	addCore := hasProps && !hasCorePart
	for _, name := range d.template.order {
		content := d.template.parts[name]
		switch {
		case name == "word/document.xml":
			content = []byte(d.documentXML())
		case name == "docProps/core.xml" && hasProps:
			content = []byte(d.corePropertiesXML())
		case name == "[Content_Types].xml" && addCore:
			content = addCorePropsOverride(content)
		case name == "_rels/.rels" && addCore:
			content = addCorePropsRelationship(content)
		}
		if err := writePart(zw, name, content); err != nil {
			return err
		}
	}
	if addCore {
		if err := writePart(zw, "docProps/core.xml", []byte(d.corePropertiesXML())); err != nil {
			return err
		}
	}
	return nil
}

const (
	corePropsOverride     = `<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>`
	corePropsRelationship = `<Relationship Id="rIdCoreProps" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>`
)

// addCorePropsOverride registers the core-properties content type in a
// template's [Content_Types].xml that never declared it.
func addCorePropsOverride(content []byte) []byte {
	if bytes.Contains(content, []byte("core-properties")) {
		return content
	}
	return bytes.Replace(content, []byte("</Types>"), []byte(corePropsOverride+"</Types>"), 1)
}

// addCorePropsRelationship points the package relationships at the added
// core-properties part.
func addCorePropsRelationship(content []byte) []byte {
	if bytes.Contains(content, []byte("core-properties")) {
		return content
	}
	return bytes.Replace(content, []byte("</Relationships>"), []byte(corePropsRelationship+"</Relationships>"), 1)
}

func (d *Document) writeFresh(zw *zip.Writer) error {
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
		{"docProps/core.xml", d.corePropertiesXML()},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", defaultStylesXML},
		{"word/document.xml", d.documentXML()},
	}
	for _, p := range parts {
		if err := writePart(zw, p.name, []byte(p.content)); err != nil {
			return err
		}
	}
	return nil
}

func writePart(zw *zip.Writer, name string, content []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("create part %s: %w", name, err)
	}
	if _, err := w.Write(content); err != nil {
		return fmt.Errorf("write part %s: %w", name, err)
	}
	return nil
}
