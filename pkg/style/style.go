// Package style 提供终端中的样式化输出：表格、列表、树、Markdown 与色块卡片
package style

import "github.com/charmbracelet/lipgloss"

// 定义一套颜色，方便管理和修改
const (
	// 主题强调色，用于标题背景等需要吸引注意力的元素
	ColorAccentPrimary = lipgloss.Color("#F36C00")

	// 强调背景上的文本色
	ColorAccentText = lipgloss.Color("#FFFFFF")

	// 主要文本颜色
	ColorText = lipgloss.Color("#E4E4E4")

	// 次要文本颜色（选择器、说明）
	ColorMuted = lipgloss.Color("#8A8A8A")

	// 边框颜色
	ColorBorder = lipgloss.Color("#444444")

	// 危险/错误强调色
	ColorDanger = lipgloss.Color("#FF5555")

	// 成功
	ColorSuccess = lipgloss.Color("#22C55E")

	// 高亮颜色：键名、数字、布尔、标点
	ColorKey    = lipgloss.Color("#55BCF4")
	ColorNumber = lipgloss.Color("#D4EC19")
	ColorBool   = lipgloss.Color("#DFAB49")
	ColorPunct  = lipgloss.Color("#6B7280")
)
