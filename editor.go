package mdtools

import (
	"regexp"
	"strings"
)

// headingLine matches an ATX heading at the start of a line: the hash
// marks, the separating whitespace, and the heading text.
var headingLine = regexp.MustCompile(`(?m)^(#{1,6})([ \t]*)(.+)$`)

// numberingPatterns strip the recognized numbering schemes off a heading,
// applied in order so compound prefixes come apart pass by pass.
var numberingPatterns = []*regexp.Regexp{
	// Chinese numbering: 一、 二、 三、
	regexp.MustCompile(`^([一二三四五六七八九十百千万]+、)+`),
	// Chinese uppercase: 壹、 贰、 叁、
	regexp.MustCompile(`^([壹贰叁肆伍陆柒捌玖拾佰仟万]+、)+`),
	// Roman numerals with dot: I. II. III.
	regexp.MustCompile(`(?i)^[IVXLCDM]+\.\s*`),
	// Numeric numbering, including multi-level: 1. 1.1. 1.1.1.
	regexp.MustCompile(`^(\d+\.)*\d+\.?\s*`),
	// Numeric + letter (academic): 1.1.1.A
	regexp.MustCompile(`^(\d+\.)*(\d+\.[A-Za-z])+\s*`),
	// Numeric with parentheses: (1) (2)
	regexp.MustCompile(`^\(\d+\)\s*`),
	// Chinese with parentheses: (一) (二)
	regexp.MustCompile(`^\([一二三四五六七八九十百千万]+\)\s*`),
	// Full-width comma numbering: 1、 2、
	regexp.MustCompile(`^(\d+、)+`),
	// Roman with parentheses: (I) (II)
	regexp.MustCompile(`(?i)^\([IVXLCDM]+\)\s*`),
	// Letter numbering: A. b.
	regexp.MustCompile(`^[A-Za-z]\.\s*`),
	// Multi-level letter numbering: .A .A.A
	regexp.MustCompile(`^(\.[A-Za-z])+\s*`),
	// Letter with parentheses: (A) (b)
	regexp.MustCompile(`^\([A-Za-z]\)\s*`),
	// Full-width closing paren: 1） 一）
	regexp.MustCompile(`^(\d+|[一二三四五六七八九十百千万]+)）\s*`),
	// Chinese book format: 第一篇
	regexp.MustCompile(`^第[一二三四五六七八九十百千万]+篇`),
	// Chinese chapter format: 第一章
	regexp.MustCompile(`^第[一二三四五六七八九十百千万]+章`),
}

// UpgradeHeadings promotes every heading one level: ## becomes #, ###
// becomes ##. Level-1 headings stay level 1.
func UpgradeHeadings(content string) string {
	return headingLine.ReplaceAllStringFunc(content, func(line string) string {
		m := headingLine.FindStringSubmatch(line)
		hashes := m[1]
		if len(hashes) > 1 {
			hashes = hashes[1:]
		}
		return hashes + m[2] + m[3]
	})
}

// DowngradeHeadings demotes every heading one level: # becomes ##, ##
// becomes ###. Level-6 headings stay level 6.
func DowngradeHeadings(content string) string {
	return headingLine.ReplaceAllStringFunc(content, func(line string) string {
		m := headingLine.FindStringSubmatch(line)
		hashes := m[1]
		if len(hashes) < 6 {
			hashes = "#" + hashes
		}
		return hashes + m[2] + m[3]
	})
}

// RemoveHeadingNumbers strips numbering prefixes from every heading:
// Chinese (一、 壹、 第一章), numeric and multi-level (1. 1.1.), Roman
// (I.), letters (A.), and the parenthesized and full-width variants of
// each. Body text is left untouched.
func RemoveHeadingNumbers(content string) string {
	return headingLine.ReplaceAllStringFunc(content, func(line string) string {
		m := headingLine.FindStringSubmatch(line)
		text := m[3]
		for _, re := range numberingPatterns {
			text = re.ReplaceAllString(text, "")
		}
		return m[1] + m[2] + strings.TrimSpace(text)
	})
}
