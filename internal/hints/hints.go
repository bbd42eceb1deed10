// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to
// error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"
)

// ForTemplateLoad returns hints for .docx template loading errors.
func ForTemplateLoad() string {
	return formatHints([]string{
		"the template must be a .docx package saved by Word or WPS, not .doc or .rtf",
		"define the named styles (标题 1, 表头, 代码块, ...) in the template before saving",
	})
}

// ForConfigNotFound returns hints listing where config files are searched.
func ForConfigNotFound(configDirName string) string {
	hints := []string{
		"pass a path like ./mdtools.yaml, or a bare name searched in standard locations",
		"named configs resolve against the working directory first (.yaml, then .yml)",
	}
	if dir, err := os.UserConfigDir(); err == nil {
		hints = append(hints, "then against "+filepath.Join(dir, configDirName))
	}
	return formatHints(hints)
}

// ForStyleNotFound returns hints for unknown HTML stylesheet names.
func ForStyleNotFound(available []string) string {
	hints := []string{
		"custom styles live at {style-dir}/styles/{name}.css",
	}
	if len(available) > 0 {
		hints = append(hints, "built-in styles: "+strings.Join(available, ", "))
	}
	return formatHints(hints)
}

// ForNumberingStyle returns hints for unknown heading numbering styles.
func ForNumberingStyle() string {
	return formatHints([]string{
		"valid styles: tech, academic, chinese_bidding, chinese_book",
		"or pass --template with a JSON file mapping levels \"1\"..\"6\" to templates",
	})
}

// formatHints joins hints with consistent indentation.
// Returns empty string if no hints.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, h := range hints {
		sb.WriteString("\n  hint: ")
		sb.WriteString(h)
	}
	return sb.String()
}
