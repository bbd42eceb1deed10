package mdtools

import (
	"errors"
	"strings"
	"testing"
)

func TestAddHeadingNumbers_Tech(t *testing.T) {
	t.Parallel()
	input := "# One\n\n## Sub\n\n## Sub2\n\n# Two\n\n## Sub\n"
	got, err := AddHeadingNumbers(input, NumberingTech)
	if err != nil {
		t.Fatal(err)
	}
	wants := []string{
		"# 1 One",
		"## 1.1 Sub",
		"## 1.2 Sub2",
		"# 2 Two",
		"## 2.1 Sub",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\ngot:\n%s", want, got)
		}
	}
}

func TestAddHeadingNumbers_ChildCountersReset(t *testing.T) {
	t.Parallel()
	input := "# A\n\n## B\n\n### C\n\n## D\n\n### E\n"
	got, err := AddHeadingNumbers(input, NumberingTech)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "### 1.2.1 E") {
		t.Errorf("child counter not reset:\n%s", got)
	}
}

func TestAddHeadingNumbers_MissingParentsInitialized(t *testing.T) {
	t.Parallel()
	got, err := AddHeadingNumbers("### orphan\n", NumberingTech)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "### 1.1.1 orphan") {
		t.Errorf("parents not initialized:\n%s", got)
	}
}

func TestAddHeadingNumbers_ReplacesExisting(t *testing.T) {
	t.Parallel()
	got, err := AddHeadingNumbers("# 三、旧编号\n", NumberingChineseBidding)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "# 一、旧编号") {
		t.Errorf("existing numbering not replaced:\n%s", got)
	}
}

func TestAddHeadingNumbers_Presets(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		style NumberingStyle
		input string
		want  string
	}{
		{"academic roman", NumberingAcademic, "# Intro", "# I. Intro"},
		{"bidding chinese", NumberingChineseBidding, "# 概述", "# 一、概述"},
		{"book chapter", NumberingChineseBook, "# 开端", "# 第一篇 开端"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := AddHeadingNumbers(tt.input, tt.style)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("AddHeadingNumbers(%q, %s) = %q, want contains %q", tt.input, tt.style, got, tt.want)
			}
		})
	}
}

func TestAddHeadingNumbers_UnknownStyle(t *testing.T) {
	t.Parallel()
	if _, err := AddHeadingNumbers("# x", "fancy"); !errors.Is(err, ErrUnknownNumberingStyle) {
		t.Fatalf("err = %v, want ErrUnknownNumberingStyle", err)
	}
}

func TestAddHeadingNumbersTemplate(t *testing.T) {
	t.Parallel()
	templates := map[int]string{
		1: "第{level1:chinese_upper}章 ",
		2: "{level1}-{level2:alpha_lower}) ",
	}
	input := strings.Repeat("# H\n\n", 11) + "## S\n"
	got, err := AddHeadingNumbersTemplate(input, templates)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "第拾壹章 H") {
		t.Errorf("chinese_upper rendering wrong:\n%s", got)
	}
	if !strings.Contains(got, "## 11-a) S") {
		t.Errorf("custom level-2 template wrong:\n%s", got)
	}
}

func TestAddHeadingNumbersTemplate_Empty(t *testing.T) {
	t.Parallel()
	if _, err := AddHeadingNumbersTemplate("# x", nil); !errors.Is(err, ErrEmptyTemplates) {
		t.Fatalf("err = %v, want ErrEmptyTemplates", err)
	}
}

func TestNumberToChinese(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    int
		want string
	}{
		{1, "一"}, {9, "九"}, {10, "十"}, {15, "十五"}, {20, "二十"},
		{101, "一百零一"}, {110, "一百一十"}, {1000, "一千"},
	}
	for _, tt := range tests {
		tt := tt
		if got := numberToChinese(tt.n); got != tt.want {
			t.Errorf("numberToChinese(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestNumberToChineseUpper(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    int
		want string
	}{
		{1, "壹"}, {5, "伍"}, {10, "拾"}, {15, "拾伍"},
	}
	for _, tt := range tests {
		tt := tt
		if got := numberToChineseUpper(tt.n); got != tt.want {
			t.Errorf("numberToChineseUpper(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestNumberToRoman(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    int
		want string
	}{
		{1, "I"}, {4, "IV"}, {9, "IX"}, {14, "XIV"}, {1994, "MCMXCIV"},
		{0, "0"}, {4000, "4000"},
	}
	for _, tt := range tests {
		tt := tt
		if got := numberToRoman(tt.n); got != tt.want {
			t.Errorf("numberToRoman(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestNumberToAlpha(t *testing.T) {
	t.Parallel()
	if got := numberToAlpha(1, true); got != "A" {
		t.Errorf("alpha(1) = %q", got)
	}
	if got := numberToAlpha(26, false); got != "z" {
		t.Errorf("alpha_lower(26) = %q", got)
	}
	if got := numberToAlpha(27, true); got != "27" {
		t.Errorf("alpha(27) = %q", got)
	}
}
