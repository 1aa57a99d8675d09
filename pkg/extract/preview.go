package extract

import (
	"regexp"
	"strings"
)

// SwatchKind 描述色块应如何渲染
type SwatchKind string

const (
	// KindCSSValue 原样作为 background 值使用（可能是渐变、纯色或图片）
	KindCSSValue SwatchKind = "css-value"
	// KindFilter 在固定高亮色上应用 filter 效果
	KindFilter SwatchKind = "filter"
	// KindSolid 从值中提取出的单一颜色
	KindSolid SwatchKind = "solid"
	// KindNone 没有可识别的颜色，渲染为透明
	KindNone SwatchKind = "none"
)

// HighlightColor 是 filter 色块的底色
const HighlightColor = "var(--highlight-color)"

var colorTokenPattern = regexp.MustCompile(`(?i)(#[a-f0-9]{3,8}|rgba?\(.+?\)|hsla?\(.+?\))`)

// Swatch 是一条匹配对应的预览描述
type Swatch struct {
	Kind  SwatchKind `json:"kind" yaml:"kind"`
	Value string     `json:"value" yaml:"value"`
}

// CSS 返回该色块的内联样式
func (s Swatch) CSS() string {
	switch s.Kind {
	case KindCSSValue:
		return "background: " + s.Value + ";"
	case KindFilter:
		return "background: " + HighlightColor + "; filter: " + s.Value + ";"
	default:
		return "background-color: " + s.Value + ";"
	}
}

// FindColorToken 返回值中第一个 hex / rgb[a]() / hsl[a]() 颜色片段
func FindColorToken(value string) (string, bool) {
	tok := colorTokenPattern.FindString(value)
	return tok, tok != ""
}

// PreviewColorFor 将匹配映射为色块描述，永不失败
func PreviewColorFor(m Match) Swatch {
	prop := strings.ToLower(m.Property)
	switch {
	case strings.Contains(prop, "background") || strings.Contains(prop, "image"):
		return Swatch{Kind: KindCSSValue, Value: m.Value}
	case prop == "filter":
		return Swatch{Kind: KindFilter, Value: m.Value}
	}

	if tok, ok := FindColorToken(m.Value); ok {
		return Swatch{Kind: KindSolid, Value: tok}
	}
	return Swatch{Kind: KindNone, Value: "transparent"}
}

// Previews 为一组匹配生成色块，顺序与输入一致
func Previews(matches []Match) []Swatch {
	out := make([]Swatch, 0, len(matches))
	for _, m := range matches {
		out = append(out, PreviewColorFor(m))
	}
	return out
}
