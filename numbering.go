package mdtools

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// NumberingStyle selects a preset heading numbering scheme.
type NumberingStyle string

// Preset numbering styles.
const (
	// NumberingTech numbers headings 1. / 1.1 / 1.1.1.
	NumberingTech NumberingStyle = "tech"
	// NumberingAcademic numbers headings I. / 1.1 / 1.1.1.A.
	NumberingAcademic NumberingStyle = "academic"
	// NumberingChineseBidding numbers headings 一、 / 1.1 / 1.1.1.
	NumberingChineseBidding NumberingStyle = "chinese_bidding"
	// NumberingChineseBook numbers headings 第一篇 / 1.1 / 1.1.1.
	NumberingChineseBook NumberingStyle = "chinese_book"
)

// presetTemplates maps each style to its per-level templates. Placeholders
// are {levelN} for Arabic numbers or {levelN:format} where format is one of
// number, chinese, chinese_upper, roman, alpha, alpha_lower.
var presetTemplates = map[NumberingStyle]map[int]string{
	NumberingTech: {
		1: "{level1} ",
		2: "{level1}.{level2} ",
		3: "{level1}.{level2}.{level3} ",
		4: "{level1}.{level2}.{level3}.{level4} ",
		5: "{level1}.{level2}.{level3}.{level4}.{level5} ",
		6: "{level1}.{level2}.{level3}.{level4}.{level5}.{level6} ",
	},
	NumberingAcademic: {
		1: "{level1:roman}. ",
		2: "{level1}.{level2} ",
		3: "{level1}.{level2}.{level3} ",
		4: "{level1}.{level2}.{level3}.{level4:alpha} ",
		5: "{level1}.{level2}.{level3}.{level4:alpha}.{level5:alpha} ",
		6: "{level1}.{level2}.{level3}.{level4:alpha}.{level5:alpha}.{level6:alpha} ",
	},
	NumberingChineseBidding: {
		1: "{level1:chinese}、",
		2: "{level1}.{level2} ",
		3: "{level1}.{level2}.{level3} ",
		4: "{level1}.{level2}.{level3}.{level4} ",
		5: "{level1}.{level2}.{level3}.{level4}.{level5} ",
		6: "{level1}.{level2}.{level3}.{level4}.{level5}.{level6} ",
	},
	NumberingChineseBook: {
		1: "第{level1:chinese}篇 ",
		2: "{level1}.{level2} ",
		3: "{level1}.{level2}.{level3} ",
		4: "{level1}.{level2}.{level3}.{level4} ",
		5: "{level1}.{level2}.{level3}.{level4}.{level5} ",
		6: "{level1}.{level2}.{level3}.{level4}.{level5}.{level6} ",
	},
}

// Placeholder forms inside numbering templates.
var (
	placeholderWithFormat = regexp.MustCompile(`\{level(\d+):([a-z_]+)\}`)
	placeholderSimple     = regexp.MustCompile(`\{level(\d+)\}`)
)

// AddHeadingNumbers renumbers every heading using the preset style.
// Existing numbering is removed first so repeated application stays
// idempotent.
func AddHeadingNumbers(content string, style NumberingStyle) (string, error) {
	templates, ok := presetTemplates[style]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownNumberingStyle, style)
	}
	return addNumbers(content, templates), nil
}

// AddHeadingNumbersTemplate renumbers headings using caller-supplied
// per-level templates. Levels without a template fall back to a plain
// Arabic number.
func AddHeadingNumbersTemplate(content string, templates map[int]string) (string, error) {
	if len(templates) == 0 {
		return "", ErrEmptyTemplates
	}
	return addNumbers(content, templates), nil
}

func addNumbers(content string, templates map[int]string) string {
	content = RemoveHeadingNumbers(content)
	counters := make(map[int]int)

	return headingLine.ReplaceAllStringFunc(content, func(line string) string {
		m := headingLine.FindStringSubmatch(line)
		level := len(m[1])

		counters[level]++
		// A deeper heading appearing before its parents implies the
		// parents exist at count one.
		for l := 1; l < level; l++ {
			if counters[l] == 0 {
				counters[l] = 1
			}
		}
		// Entering a section resets all child counters.
		for l := level + 1; l <= 6; l++ {
			delete(counters, l)
		}

		tmpl, ok := templates[level]
		if !ok {
			tmpl = fmt.Sprintf("{level%d} ", level)
		}
		return m[1] + m[2] + renderNumbering(tmpl, counters) + m[3]
	})
}

// renderNumbering substitutes placeholders with counter values. Unknown
// levels and formats render as plain numbers; placeholders for levels
// without a counter stay literal.
func renderNumbering(tmpl string, counters map[int]int) string {
	out := placeholderWithFormat.ReplaceAllStringFunc(tmpl, func(ph string) string {
		sub := placeholderWithFormat.FindStringSubmatch(ph)
		level, _ := strconv.Atoi(sub[1])
		n, ok := counters[level]
		if !ok {
			return ph
		}
		switch sub[2] {
		case "chinese":
			return numberToChinese(n)
		case "chinese_upper":
			return numberToChineseUpper(n)
		case "roman":
			return numberToRoman(n)
		case "alpha":
			return numberToAlpha(n, true)
		case "alpha_lower":
			return numberToAlpha(n, false)
		default:
			return strconv.Itoa(n)
		}
	})
	return placeholderSimple.ReplaceAllStringFunc(out, func(ph string) string {
		sub := placeholderSimple.FindStringSubmatch(ph)
		level, _ := strconv.Atoi(sub[1])
		n, ok := counters[level]
		if !ok {
			return ph
		}
		return strconv.Itoa(n)
	})
}

var (
	chineseDigits      = []string{"", "一", "二", "三", "四", "五", "六", "七", "八", "九"}
	chineseUnits       = []string{"", "十", "百", "千", "万"}
	chineseUpperDigits = []string{"", "壹", "贰", "叁", "肆", "伍", "陆", "柒", "捌", "玖"}
	chineseUpperUnits  = []string{"", "拾", "佰", "仟", "万"}
)

// numberToChinese renders n with lowercase Chinese numerals (一、二、三).
// 10 through 19 follow common usage and drop the leading 一 (十五, not
// 一十五).
func numberToChinese(n int) string {
	if n == 0 {
		return "零"
	}
	if n < 0 {
		return "负" + numberToChinese(-n)
	}
	s := strconv.Itoa(n)
	var b strings.Builder
	pendingZero := false
	for i, ch := range s {
		d := int(ch - '0')
		place := len(s) - i - 1
		if d == 0 {
			pendingZero = true
			continue
		}
		if pendingZero {
			b.WriteString("零")
			pendingZero = false
		}
		b.WriteString(chineseDigits[d])
		if place < len(chineseUnits) {
			b.WriteString(chineseUnits[place])
		}
	}
	out := b.String()
	if n >= 10 && n <= 19 {
		out = strings.TrimPrefix(out, "一")
	}
	return out
}

// numberToChineseUpper renders n with financial-grade numerals (壹、贰).
// Unlike the lowercase form, the teens keep their unit marker (拾伍).
func numberToChineseUpper(n int) string {
	if n == 0 {
		return "零"
	}
	if n < 0 {
		return "负" + numberToChineseUpper(-n)
	}
	s := strconv.Itoa(n)
	var out string
	for i, ch := range s {
		d := int(ch - '0')
		place := len(s) - i - 1
		if d == 0 {
			if out != "" && !strings.HasSuffix(out, "零") {
				out += "零"
			}
			continue
		}
		if strings.HasSuffix(out, "零") && place > 0 {
			out = strings.TrimSuffix(out, "零")
		}
		out += chineseUpperDigits[d]
		if place < len(chineseUpperUnits) {
			out += chineseUpperUnits[place]
		}
	}
	if n >= 10 && n <= 19 {
		runes := []rune(out)
		if len(runes) > 2 {
			out = "拾" + string(runes[2:])
		} else {
			out = "拾"
		}
	}
	return out
}

var romanNumerals = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// numberToRoman renders 1-3999 as Roman numerals; values out of range
// fall back to Arabic digits.
func numberToRoman(n int) string {
	if n <= 0 || n >= 4000 {
		return strconv.Itoa(n)
	}
	var b strings.Builder
	for _, rn := range romanNumerals {
		for n >= rn.value {
			b.WriteString(rn.symbol)
			n -= rn.value
		}
	}
	return b.String()
}

// numberToAlpha renders 1-26 as letters; values out of range fall back
// to Arabic digits.
func numberToAlpha(n int, uppercase bool) string {
	if n <= 0 || n > 26 {
		return strconv.Itoa(n)
	}
	base := byte('a')
	if uppercase {
		base = 'A'
	}
	return string(base + byte(n) - 1)
}
