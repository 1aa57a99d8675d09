package extract

import (
	"slices"
	"strings"
)

// colorProperties 是会携带颜色的属性白名单，运行期不可修改
var colorProperties = []string{
	"background", "background-image", "background-color",
	"filter", "box-shadow", "text-shadow", "color",
	"border", "border-top", "border-bottom", "border-left", "border-right",
	"border-color", "border-top-color", "border-bottom-color",
	"border-left-color", "border-right-color", "outline-color", "fill", "stroke",
}

// colorHints 值中出现任意一项即视为带颜色
var colorHints = []string{
	"#", "rgb", "hsl", "var(", "gradient", "drop-shadow",
	"white", "black", "red", "blue", "green", "yellow", "orange", "purple",
	"transparent", "currentcolor",
}

// declarationIndent 清理后输出中每条声明的缩进
const declarationIndent = "    "

// Match 是一条被保留的颜色声明
type Match struct {
	Selector string `json:"selector" yaml:"selector" toml:"selector"`
	Property string `json:"property" yaml:"property" toml:"property"`
	Value    string `json:"value" yaml:"value" toml:"value"`
}

// ColorProperties 返回属性白名单的副本
func ColorProperties() []string {
	return slices.Clone(colorProperties)
}

// IsColorProperty 判断属性名是否在白名单中（大小写不敏感）
func IsColorProperty(property string) bool {
	return slices.Contains(colorProperties, strings.ToLower(trim(property)))
}

// HasColor 判断值在字面上是否像颜色
//
// 这是子串匹配而非按词匹配，例如 "shredded" 也会因为包含 "red" 而命中
func HasColor(value string) bool {
	v := strings.ToLower(value)
	for _, hint := range colorHints {
		if strings.Contains(v, hint) {
			return true
		}
	}
	return false
}

// FilterBlock 过滤一个块中的声明，返回清理后的规则文本与匹配列表
//
// 没有声明被保留时返回空字符串和 nil
func FilterBlock(b Block) (string, []Match) {
	var (
		lines   []string
		matches []Match
	)

	for _, decl := range strings.Split(b.Body, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(trim(prop))
		val = trim(val)

		if !IsColorProperty(prop) || !HasColor(val) {
			continue
		}
		lines = append(lines, declarationIndent+prop+": "+val+";")
		matches = append(matches, Match{Selector: b.Selector, Property: prop, Value: val})
	}

	if len(lines) == 0 {
		return "", nil
	}
	return b.Selector + " {\n" + strings.Join(lines, "\n") + "\n}\n\n", matches
}
