package report

import (
	"fmt"
	"strings"

	"github.com/yeisme/colorsift/pkg/diagnose"
	"github.com/yeisme/colorsift/pkg/extract"
)

// Markdown 生成 Markdown 报告：状态、匹配表、清理后的 CSS 与诊断提示
func Markdown(res extract.Result, diag diagnose.Report) string {
	var b strings.Builder

	b.WriteString("# Color extraction\n\n")
	fmt.Fprintf(&b, "**STATUS:** %s · **MAPPED:** %d\n\n", strings.ToUpper(StatusComplete), res.Count())

	if !res.Empty() {
		b.WriteString("| Selector | Property | Value | Swatch |\n")
		b.WriteString("| --- | --- | --- | --- |\n")
		for _, row := range Rows(res.Matches) {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				code(row[0]), row[1], code(row[2]), row[3])
		}
		b.WriteString("\n")
	}

	b.WriteString("```css\n")
	b.WriteString(strings.TrimRight(res.CleanedText, "\n"))
	b.WriteString("\n```\n")

	if warnings := diag.Warnings(); len(warnings) > 0 {
		b.WriteString("\n## Not examined\n\n")
		for _, w := range warnings {
			b.WriteString("- " + w + "\n")
		}
	}
	return b.String()
}

// code 把文本包成行内代码并转义表格竖线
//
// 内容含反引号时使用比最长连续反引号多一个的围栏，两侧补空格
func code(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	if longest == 0 {
		return "`" + s + "`"
	}
	fence := strings.Repeat("`", longest+1)
	return fence + " " + s + " " + fence
}
