package main

import (
	"fmt"
	"io"
)

func printUsage(w io.Writer) {
	fmt.Fprint(w, `mdtools converts Markdown documents to Word, HTML, or plain text,
and edits Markdown heading structure.

Usage:
  mdtools <command> [flags] [arguments]

Commands:
  convert   Convert a markdown file or directory
  edit      Transform headings in a markdown file
  version   Print the version
  help      Show help for a command

Run "mdtools help <command>" for command details.
`)
}

func printConvertUsage(w io.Writer) {
	fmt.Fprint(w, `Convert a markdown file, or every .md/.markdown file under a directory.

Usage:
  mdtools convert [flags] <file-or-directory>

Flags:
  -o, --output    output file or directory (default: next to the source)
  -f, --format    output format: docx, html, txt (default docx)
  -T, --template  .docx template supplying named styles and page geometry
      --html-style  stylesheet name for html output (default "default")
      --style-dir   directory of custom stylesheets for html output
  -w, --workers   parallel workers for directory conversion (0 = auto)
  -c, --config    config file name or path
  -q, --quiet     only show errors
  -v, --verbose   show per-file details

Examples:
  mdtools convert report.md
  mdtools convert -T company.docx -o out/ docs/
  mdtools convert -f html notes.md
`)
}

func printEditUsage(w io.Writer) {
	fmt.Fprint(w, `Transform the headings of a markdown file.

Usage:
  mdtools edit <action> [flags] <file>

Actions:
  upgrade          promote headings one level (## becomes #)
  downgrade        demote headings one level (# becomes ##)
  remove-numbers   strip numbering prefixes from headings
  add-numbers      renumber headings with a preset or custom scheme

Flags:
  -o, --output    output file (default: rewrite the input in place)
      --style     numbering style: tech, academic, chinese_bidding, chinese_book
      --template  JSON file mapping levels "1".."6" to numbering templates
  -c, --config    config file name or path
  -q, --quiet     only show errors

Examples:
  mdtools edit add-numbers --style chinese_book spec.md
  mdtools edit remove-numbers -o clean.md spec.md
`)
}

// runHelp prints usage for the named command, or general usage.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}
	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "edit":
		printEditUsage(env.Stdout)
	default:
		printUsage(env.Stdout)
	}
}
