package style

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/list"
)

// PrintList 渲染一个带主题样式的圆点列表
func PrintList(w io.Writer, items ...any) error {
	return printList(w, list.Bullet, ColorAccentPrimary, ColorText, items)
}

// PrintWarnings 渲染诊断提示，使用醒目的枚举符
func PrintWarnings(w io.Writer, warnings []string) error {
	items := make([]any, len(warnings))
	for i, s := range warnings {
		items[i] = s
	}
	warn := func(list.Items, int) string { return "!" }
	return printList(w, warn, ColorDanger, ColorText, items)
}

func printList(w io.Writer, enum list.Enumerator, enumColor, itemColor lipgloss.TerminalColor, items []any) error {
	l := list.New(items...).
		Enumerator(enum).
		EnumeratorStyle(lipgloss.NewStyle().Foreground(enumColor).MarginRight(1)).
		ItemStyle(lipgloss.NewStyle().Foreground(itemColor))

	_, err := fmt.Fprintln(w, l)
	return err
}
