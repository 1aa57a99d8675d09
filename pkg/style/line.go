package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PrintHeading 打印一个区块标题
func PrintHeading(w io.Writer, title string) error {
	s := lipgloss.NewStyle().
		Foreground(ColorAccentText).
		Background(ColorAccentPrimary).
		Bold(true).
		Padding(0, 1)
	_, err := fmt.Fprintln(w, s.Render(strings.ToUpper(title)))
	return err
}

// PrintStatus 打印状态行与计数，例如 "STATUS: COMPLETE  MAPPED: 3"
func PrintStatus(w io.Writer, status string, mapped int) error {
	statusStyle := lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	if mapped == 0 {
		statusStyle = statusStyle.Foreground(ColorMuted)
	}
	counterStyle := lipgloss.NewStyle().Foreground(ColorAccentPrimary)
	_, err := fmt.Fprintf(w, "%s  %s\n",
		statusStyle.Render("STATUS: "+strings.ToUpper(status)),
		counterStyle.Render(fmt.Sprintf("MAPPED: %d", mapped)))
	return err
}
