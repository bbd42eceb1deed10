package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	mdtools "github.com/Hongruirui11/markdown-tools"
	"github.com/Hongruirui11/markdown-tools/internal/config"
	"github.com/Hongruirui11/markdown-tools/internal/fileutil"
)

// runEdit applies a heading transformation to a markdown file.
func runEdit(positional []string, flags *editFlags, env *Environment) error {
	if len(positional) < 1 {
		printEditUsage(env.Stderr)
		return fmt.Errorf("%w: no action given", ErrUnknownAction)
	}
	action := positional[0]
	if len(positional) < 2 {
		return fmt.Errorf("%w: pass a markdown file to edit", ErrNoInput)
	}
	inputPath := positional[1]
	if !isMarkdownFile(inputPath) {
		return fmt.Errorf("%w: %s", ErrInvalidExtension, inputPath)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadSource, err)
	}
	content := string(data)

	var edited string
	switch action {
	case "upgrade":
		edited = mdtools.UpgradeHeadings(content)
	case "downgrade":
		edited = mdtools.DowngradeHeadings(content)
	case "remove-numbers":
		edited = mdtools.RemoveHeadingNumbers(content)
	case "add-numbers":
		edited, err = addNumbers(content, flags)
		if err != nil {
			return err
		}
	default:
		printEditUsage(env.Stderr)
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = inputPath
	}
	if err := fileutil.WriteFileAtomic(outputPath, []byte(edited), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteResult, err)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "✓ %s\n", outputPath)
	}
	return nil
}

// addNumbers resolves the numbering source for the add-numbers action.
// A --template file wins over --style, which wins over the config default.
func addNumbers(content string, flags *editFlags) (string, error) {
	if flags.templateFile != "" {
		templates, err := loadNumberingTemplates(flags.templateFile)
		if err != nil {
			return "", err
		}
		return mdtools.AddHeadingNumbersTemplate(content, templates)
	}

	style := flags.style
	if style == "" && flags.common.config != "" {
		cfg, err := config.LoadConfig(flags.common.config)
		if err != nil {
			return "", fmt.Errorf("loading config: %w", err)
		}
		style = cfg.Numbering.Style
	}
	if style == "" {
		style = string(mdtools.NumberingTech)
	}
	return mdtools.AddHeadingNumbers(content, mdtools.NumberingStyle(style))
}

// loadNumberingTemplates reads a JSON file mapping heading levels ("1".."6")
// to numbering templates, e.g. {"1": "第{level1:chinese}章 ", "2": "{level1}.{level2} "}.
func loadNumberingTemplates(path string) (map[int]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing numbering templates: %w", err)
	}
	templates := make(map[int]string, len(raw))
	for key, tmpl := range raw {
		level, err := strconv.Atoi(key)
		if err != nil || level < 1 || level > 6 {
			return nil, fmt.Errorf("parsing numbering templates: invalid heading level %q", key)
		}
		templates[level] = tmpl
	}
	return templates, nil
}
