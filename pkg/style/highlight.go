package style

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// PrintJSON 以缩进并高亮键名的方式输出 JSON
func PrintJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, highlight(string(b), ':', `"`))
	return err
}

// PrintYAML 以两空格缩进并高亮键名的方式输出 YAML
func PrintYAML(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal to YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to close YAML encoder: %w", err)
	}
	_, err := fmt.Fprint(w, highlight(buf.String(), ':', ""))
	return err
}

// PrintTOML 以高亮键名的方式输出 TOML
func PrintTOML(w io.Writer, v any) error {
	b, err := toml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal to TOML: %w", err)
	}
	_, err = fmt.Fprint(w, highlight(string(b), '=', ""))
	return err
}

// highlight 对逐行的 key<sep>value 文本做轻量着色
//
// 只处理每行第一个分隔符；表头 ([section]) 和列表项按标点着色，其余保持原样
func highlight(s string, sep byte, quote string) string {
	keyStyle := lipgloss.NewStyle().Foreground(ColorKey).Bold(true)
	punctStyle := lipgloss.NewStyle().Foreground(ColorPunct)

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") && sep == '=' {
			lines[i] = indent + keyStyle.Render(trimmed)
			continue
		}

		idx := keyIndex(trimmed, sep, quote)
		if idx <= 0 {
			lines[i] = indent + colorValue(trimmed, punctStyle)
			continue
		}
		key, rest := trimmed[:idx], trimmed[idx+1:]
		lines[i] = indent + keyStyle.Render(key) + punctStyle.Render(string(sep)) + colorValue(rest, punctStyle)
	}
	return strings.Join(lines, "\n")
}

// keyIndex 返回键与值之间分隔符的位置；键被 quote 包裹时跳过其中的分隔符
func keyIndex(line string, sep byte, quote string) int {
	start := 0
	if quote != "" && strings.HasPrefix(line, quote) {
		end := strings.Index(line[1:], quote)
		if end < 0 {
			return -1
		}
		start = end + 2
	}
	idx := strings.IndexByte(line[start:], sep)
	if idx < 0 {
		return -1
	}
	return start + idx
}

// colorValue 给值着色：数字、布尔、null 和纯标点各有颜色
func colorValue(v string, punct lipgloss.Style) string {
	core := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), ","))
	lead := v[:len(v)-len(strings.TrimLeft(v, " "))]
	trail := ""
	if strings.HasSuffix(strings.TrimSpace(v), ",") {
		trail = punct.Render(",")
	}

	switch {
	case core == "":
		return v
	case core == "true" || core == "false":
		return lead + lipgloss.NewStyle().Foreground(ColorBool).Render(core) + trail
	case core == "null" || core == "~":
		return lead + lipgloss.NewStyle().Foreground(ColorPunct).Render(core) + trail
	case isNumber(core):
		return lead + lipgloss.NewStyle().Foreground(ColorNumber).Render(core) + trail
	case strings.Trim(core, "{}[]-") == "":
		return lead + punct.Render(core) + trail
	}
	return v
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	dot := false
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '-' && i == 0 && len(s) > 1:
		case r == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return true
}
