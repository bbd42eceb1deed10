package pipeline

import (
	"context"
	"strings"
	"testing"
)

func TestPreprocessMarkdown(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "normalizes CRLF",
			input: "a\r\nb\rc",
			want:  "a\nb\nc",
		},
		{
			name:  "compresses blank lines",
			input: "a\n\n\n\n\nb",
			want:  "a\n\nb",
		},
		{
			name:  "expands fullwidth spaces",
			input: "[FULLWIDTH SPACES:2]缩进",
			want:  "　　缩进",
		},
		{
			name:  "fullwidth directive is case-insensitive",
			input: "[fullwidth spaces:1]x",
			want:  "　x",
		},
		{
			name:  "underscore form",
			input: "[FULLWIDTH_SPACES:3]",
			want:  "　　　",
		},
		{
			name:  "zero count removes the directive",
			input: "a[FULLWIDTH SPACES:0]b",
			want:  "ab",
		},
		{
			name:  "non-directive text untouched",
			input: "[FULLWIDTH SPACES:]",
			want:  "[FULLWIDTH SPACES:]",
		},
	}
	p := &CommonMarkPreprocessor{}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := p.PreprocessMarkdown(context.Background(), tt.input)
			if got != tt.want {
				t.Errorf("PreprocessMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPreprocessMarkdown_CanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := &CommonMarkPreprocessor{}
	input := "a\r\nb"
	if got := p.PreprocessMarkdown(ctx, input); got != input {
		t.Errorf("canceled context should return input unchanged, got %q", got)
	}
}

func TestExpandFullwidthSpaces_Multiple(t *testing.T) {
	t.Parallel()
	got := expandFullwidthSpaces("[FULLWIDTH SPACES:1]a[FULLWIDTH SPACES:2]b")
	if strings.Count(got, "　") != 3 {
		t.Errorf("want 3 ideographic spaces, got %q", got)
	}
}
