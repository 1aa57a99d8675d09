package style

import (
	"io"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown 渲染 Markdown 文本并写入 w
//
// width <= 0 时使用终端宽度，结果限制在 [60, 120]；theme 为空时使用 "dark"
func RenderMarkdown(w io.Writer, input string, width int, theme string) error {
	if theme == "" {
		theme = "dark"
	}
	if width <= 0 {
		width = TerminalWidth(w, 80)
	}
	width = max(60, min(width, 120))

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}

	out, err := r.Render(input)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
