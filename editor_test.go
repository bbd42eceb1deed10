package mdtools

import "testing"

func TestUpgradeHeadings(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"h2 to h1", "## Section", "# Section"},
		{"h1 stays h1", "# Top", "# Top"},
		{"h6 to h5", "###### Deep", "##### Deep"},
		{"body untouched", "not # a heading", "not # a heading"},
		{
			"mixed document",
			"# A\n\n## B\n\ntext\n\n### C",
			"# A\n\n# B\n\ntext\n\n## C",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := UpgradeHeadings(tt.input); got != tt.want {
				t.Errorf("UpgradeHeadings(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDowngradeHeadings(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"h1 to h2", "# Top", "## Top"},
		{"h5 to h6", "##### Deep", "###### Deep"},
		{"h6 stays h6", "###### Floor", "###### Floor"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DowngradeHeadings(tt.input); got != tt.want {
				t.Errorf("DowngradeHeadings(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRemoveHeadingNumbers(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"chinese", "# 一、概述", "# 概述"},
		{"chinese upper", "# 壹、总则", "# 总则"},
		{"numeric", "## 1. 背景", "## 背景"},
		{"multi-level numeric", "### 1.2.3. 细节", "### 细节"},
		{"numeric without trailing dot", "## 2 方案", "## 方案"},
		{"roman", "# IV. History", "# History"},
		{"letter", "## A. Appendix", "## Appendix"},
		{"parenthesized numeric", "## (1) 条款", "## 条款"},
		{"parenthesized chinese", "## (三) 条款", "## 条款"},
		{"fullwidth comma", "# 1、目录", "# 目录"},
		{"fullwidth paren", "## 2） 附件", "## 附件"},
		{"chapter", "# 第一章 总则", "# 总则"},
		{"book part", "# 第二篇 实施", "# 实施"},
		{"unnumbered untouched", "# 概述", "# 概述"},
		{"body text untouched", "1. list item", "1. list item"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := RemoveHeadingNumbers(tt.input); got != tt.want {
				t.Errorf("RemoveHeadingNumbers(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
