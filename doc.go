// Package mdtools converts Markdown documents to Word (.docx) files and
// provides heading editing utilities for Markdown sources.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv, err := mdtools.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, mdtools.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.docx", result.DOCX, 0644)
//
// ConvertFile handles reading the source and writing the output atomically:
//
//	err := conv.ConvertFile(ctx, "report.md", "")  // writes report.docx
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Front matter extraction (title/author/date become document properties)
//  2. Markdown preprocessing (line normalization, fullwidth-space directives)
//  3. Markdown to HTML conversion via Goldmark (GFM)
//  4. HTML tree walk producing styled paragraphs, tables and lists
//  5. WordprocessingML packaging with atomic file persistence
//
// # Templates
//
// A template .docx supplies named styles and page geometry for the output:
//
//	conv, err := mdtools.NewConverter(
//	    mdtools.WithTemplatePath("company-template.docx"),
//	)
//
// Structural elements prefer the template's Chinese style names (标题 1,
// 表头, 表内, 代码块), falling back to builtin style names and finally to
// direct formatting when neither is available. A template that cannot be
// loaded logs a warning and conversion proceeds with a blank document.
//
// # Other Output Formats
//
// ExportHTML produces a standalone HTML document with syntax-highlighted
// code blocks and an embedded stylesheet; ExportText produces plain text
// with all markup resolved:
//
//	html, err := conv.ExportHTML(ctx, src)
//	txt, err := conv.ExportText(ctx, src)
//
// # Heading Editing
//
// The package also edits Markdown heading structure in place:
//
//	out := mdtools.UpgradeHeadings(src)                    // ## → #
//	out := mdtools.RemoveHeadingNumbers(src)               // strip 一、 1.2. (A) ...
//	out, err := mdtools.AddHeadingNumbers(src, mdtools.NumberingTech)
package mdtools
