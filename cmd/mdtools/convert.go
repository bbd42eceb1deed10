package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	mdtools "github.com/Hongruirui11/markdown-tools"
	"github.com/Hongruirui11/markdown-tools/internal/config"
	"github.com/Hongruirui11/markdown-tools/internal/fileutil"
	"github.com/Hongruirui11/markdown-tools/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// fileToConvert represents a single file to process.
type fileToConvert struct {
	inputPath  string
	outputPath string
}

// conversionResult holds the outcome of a single conversion.
type conversionResult struct {
	inputPath  string
	outputPath string
	err        error
	duration   time.Duration
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positional []string, flags *convertFlags, env *Environment) error {
	format := strings.ToLower(flags.format)
	switch format {
	case "docx", "html", "txt":
	default:
		return fmt.Errorf("%w: %q (must be docx, html, or txt)", ErrInvalidFormat, flags.format)
	}

	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// CLI flags win over config values.
	templatePath := cfg.Template.Path
	if flags.template != "" {
		templatePath = flags.template
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputPath, flags.output, cfg, format)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no markdown files found in %s", inputPath)
	}

	var opts []mdtools.Option
	if templatePath != "" {
		opts = append(opts, mdtools.WithTemplatePath(templatePath))
	}
	if flags.htmlStyle != "" {
		opts = append(opts, mdtools.WithHTMLStyle(flags.htmlStyle))
	}
	if flags.styleDir != "" {
		opts = append(opts, mdtools.WithStyleDir(flags.styleDir))
	}
	// The CLI reports template problems itself; route the library's
	// structured log to stderr only in verbose mode.
	logDest := io.Discard
	if flags.common.verbose {
		logDest = env.Stderr
	}
	opts = append(opts, mdtools.WithLogger(slog.New(slog.NewTextHandler(logDest, nil))))
	conv, err := mdtools.NewConverter(opts...)
	if err != nil {
		return err
	}
	if templatePath != "" && !conv.HasTemplate() {
		fmt.Fprintf(env.Stderr, "warning: template %s unusable, using built-in styles%s\n",
			templatePath, hints.ForTemplateLoad())
	}

	results := convertBatch(ctx, conv, files, format, flags.workers)

	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%d conversion(s) failed", failed)
	}
	return nil
}

// resolveInputPath picks the input from positional args or the config's
// default input directory.
func resolveInputPath(positional []string, cfg *config.Config) (string, error) {
	if len(positional) > 0 {
		return positional[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", fmt.Errorf("%w: pass an input file or set input.defaultDir in config", ErrNoInput)
}

func isMarkdownFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

func outputExt(format string) string {
	return "." + format
}

// discoverFiles expands the input path into conversion jobs. A file input
// yields one job; a directory is walked recursively for markdown sources,
// mirroring its layout under the output directory.
func discoverFiles(inputPath, output string, cfg *config.Config, format string) ([]fileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}

	outputDir := output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	if !info.IsDir() {
		if !isMarkdownFile(inputPath) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidExtension, inputPath)
		}
		out := output
		switch {
		case out == "":
			if cfg.Output.DefaultDir != "" {
				out = filepath.Join(cfg.Output.DefaultDir, fileutil.ReplaceExt(filepath.Base(inputPath), outputExt(format)))
			} else {
				out = fileutil.ReplaceExt(inputPath, outputExt(format))
			}
		case isDir(out):
			out = filepath.Join(out, fileutil.ReplaceExt(filepath.Base(inputPath), outputExt(format)))
		}
		return []fileToConvert{{inputPath: inputPath, outputPath: out}}, nil
	}

	if outputDir == "" {
		outputDir = inputPath
	}
	var files []fileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isMarkdownFile(path) {
			return nil
		}
		rel, err := filepath.Rel(inputPath, path)
		if err != nil {
			return err
		}
		out := filepath.Join(outputDir, fileutil.ReplaceExt(rel, outputExt(format)))
		files = append(files, fileToConvert{inputPath: path, outputPath: out})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(files, func(i, j int) bool { return files[i].inputPath < files[j].inputPath })
	return files, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// convertBatch converts files concurrently with a bounded worker count.
func convertBatch(ctx context.Context, conv *mdtools.Converter, files []fileToConvert, format string, workers int) []conversionResult {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(files) {
		workers = len(files)
	}

	jobs := make(chan int)
	results := make([]conversionResult, len(files))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				start := time.Now()
				err := convertOne(ctx, conv, files[i], format)
				results[i] = conversionResult{
					inputPath:  files[i].inputPath,
					outputPath: files[i].outputPath,
					err:        err,
					duration:   time.Since(start),
				}
			}
		}()
	}
	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

func convertOne(ctx context.Context, conv *mdtools.Converter, file fileToConvert, format string) error {
	if dir := filepath.Dir(file.outputPath); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteResult, err)
		}
	}

	if format == "docx" {
		return conv.ConvertFile(ctx, file.inputPath, file.outputPath)
	}

	data, err := os.ReadFile(file.inputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadSource, err)
	}
	var out string
	switch format {
	case "html":
		out, err = conv.ExportHTML(ctx, string(data))
	case "txt":
		out, err = conv.ExportText(ctx, string(data))
	}
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(file.outputPath, []byte(out), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteResult, err)
	}
	return nil
}

// printResults reports per-file outcomes and returns the failure count.
func printResults(results []conversionResult, quiet, verbose bool, env *Environment) int {
	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "✗ %s: %v\n", r.inputPath, r.err)
			continue
		}
		if quiet {
			continue
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "✓ %s → %s (%s)\n", r.inputPath, r.outputPath, r.duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "✓ %s\n", r.outputPath)
		}
	}
	if !quiet {
		fmt.Fprintf(env.Stdout, "%d converted, %d failed\n", len(results)-failed, failed)
	}
	return failed
}
