package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	swatchWidth  = 10
	swatchHeight = 3
	cardGap      = 2
)

// Card 是终端中的一张色块卡片
type Card struct {
	Selector   string
	Property   string
	Value      string
	Kind       string
	Background string // 色块背景色（#rrggbb），为空时渲染为透明格纹
	Foreground string // 色块上文字的颜色
	Label      string // 色块上的说明，如最接近的颜色名
}

// RenderCard 将卡片渲染为字符串；width 为整张卡片的可用宽度
func RenderCard(c Card, width int) string {
	textWidth := max(width-swatchWidth-cardGap, 16)

	block := lipgloss.NewStyle().
		Width(swatchWidth).
		Height(swatchHeight).
		Align(lipgloss.Center, lipgloss.Center)
	var swatch string
	if c.Background == "" {
		pattern := strings.Repeat("░▒", swatchWidth/2)
		rows := make([]string, swatchHeight)
		for i := range rows {
			rows[i] = pattern
		}
		swatch = block.Foreground(ColorBorder).Render(strings.Join(rows, "\n"))
	} else {
		block = block.Background(lipgloss.Color(c.Background))
		if c.Foreground != "" {
			block = block.Foreground(lipgloss.Color(c.Foreground))
		}
		swatch = block.Render(runewidth.Truncate(c.Label, swatchWidth, ""))
	}

	selStyle := lipgloss.NewStyle().Foreground(ColorMuted)
	propStyle := lipgloss.NewStyle().Foreground(ColorKey).Bold(true)
	valStyle := lipgloss.NewStyle().Foreground(ColorText)
	kindStyle := lipgloss.NewStyle().Foreground(ColorPunct).Italic(true)

	decl := runewidth.Truncate(c.Property+": "+c.Value, textWidth, "…")
	prop, val, _ := strings.Cut(decl, ":")
	info := strings.Join([]string{
		selStyle.Render(fit(c.Selector, textWidth)),
		propStyle.Render(prop+":") + valStyle.Render(val),
		kindStyle.Render(fit(c.Kind, textWidth)),
	}, "\n")

	return lipgloss.JoinHorizontal(lipgloss.Top, swatch, strings.Repeat(" ", cardGap), info)
}

// PrintCards 依次输出所有卡片，卡片之间空一行
func PrintCards(w io.Writer, cards []Card, width int) error {
	if width <= 0 {
		width = TerminalWidth(w, 80)
	}
	for i, c := range cards {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, RenderCard(c, width)); err != nil {
			return err
		}
	}
	return nil
}

// fit 按显示宽度截断并右侧补齐
func fit(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}
