package mdtools_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	mdtools "github.com/Hongruirui11/markdown-tools"
)

// Example demonstrates basic markdown to .docx conversion.
func Example() {
	conv, err := mdtools.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), mdtools.Input{
		Markdown: "# Hello World\n\nThis is a test.",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// .docx output is a zip package
	if bytes.HasPrefix(result.DOCX, []byte("PK")) {
		fmt.Println("document generated successfully")
	}
	// Output: document generated successfully
}

// Example_frontMatter demonstrates metadata extraction from YAML front matter.
func Example_frontMatter() {
	conv, err := mdtools.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), mdtools.Input{
		Markdown: "---\ntitle: 年度报告\nauthor: 张三\n---\n# 概述\n\n正文。",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.Meta.Title, result.Meta.Author)
	// Output: 年度报告 张三
}

// Example_headingNumbers demonstrates renumbering headings in place.
func Example_headingNumbers() {
	content := "# 概述\n\n## 范围\n\n## 术语\n"

	numbered, err := mdtools.AddHeadingNumbers(content, mdtools.NumberingChineseBidding)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(numbered)
	// Output:
	// # 一、概述
	//
	// ## 1.1 范围
	//
	// ## 1.2 术语
}

// Example_concurrent demonstrates that a single Converter is safe for
// concurrent use.
func Example_concurrent() {
	conv, err := mdtools.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			md := fmt.Sprintf("# Document %d\n\nBody text.", i)
			_, errs[i] = conv.Convert(context.Background(), mdtools.Input{Markdown: md})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			fmt.Println("error:", err)
			return
		}
	}
	fmt.Println("all conversions succeeded")
	// Output: all conversions succeeded
}

// Example_exportHTML demonstrates standalone HTML export with syntax
// highlighting classes.
func Example_exportHTML() {
	conv, err := mdtools.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	html, err := conv.ExportHTML(context.Background(), "```go\npackage main\n```\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if strings.Contains(html, `class="chroma"`) {
		fmt.Println("highlighted HTML generated")
	}
	// Output: highlighted HTML generated
}
