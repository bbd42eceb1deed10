package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output    string
	format    string
	template  string
	htmlStyle string
	styleDir  string
	workers   int
}

// editFlags holds all flags for the edit command.
type editFlags struct {
	common       commonFlags
	output       string
	style        string
	templateFile string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file details")
}

// parseConvertFlags parses arguments for the convert command.
// Returns the flags and remaining positional arguments.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&f.format, "format", "f", "docx", "output format: docx, html, txt")
	fs.StringVarP(&f.template, "template", "T", "", "template .docx supplying styles and page geometry")
	fs.StringVar(&f.htmlStyle, "html-style", "", "stylesheet name for html output (default \"default\")")
	fs.StringVar(&f.styleDir, "style-dir", "", "directory of custom stylesheets for html output")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseEditFlags parses arguments for the edit command.
func parseEditFlags(args []string) (*editFlags, []string, error) {
	f := &editFlags{}
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: rewrite input in place)")
	fs.StringVar(&f.style, "style", "", "numbering style: tech, academic, chinese_bidding, chinese_book")
	fs.StringVar(&f.templateFile, "template", "", "custom numbering template JSON file")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
