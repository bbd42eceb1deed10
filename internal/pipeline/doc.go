// Package pipeline implements the Markdown processing stages shared by the
// converter: source preprocessing, Markdown to HTML conversion, HTML tree
// parsing and front matter extraction. Each stage accepts a context and is
// safe for concurrent use.
package pipeline
