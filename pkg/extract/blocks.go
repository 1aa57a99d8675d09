package extract

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// commentPattern 匹配 /* ... */ 注释（非贪婪，可跨行）
	commentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)

	// blockPattern 只匹配不含嵌套的规则块
	blockPattern = regexp.MustCompile(`[^{}]+\{[^{}]+\}`)
)

// Block 表示一个扁平的规则块
type Block struct {
	Selector string `json:"selector" yaml:"selector"`
	Body     string `json:"body" yaml:"body"`
}

// bom 是 UTF-8 字节序标记，Windows 保存的样式表常以它开头
const bom = '\uFEFF'

// trim 去掉首尾空白，同时去掉 BOM（strings.TrimSpace 不处理 U+FEFF）
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r == bom || unicode.IsSpace(r)
	})
}

// StripComments 移除所有 /* ... */ 注释
func StripComments(raw string) string {
	return commentPattern.ReplaceAllString(raw, "")
}

// SplitBlocks 去掉注释后按花括号将原始 CSS 切分为有序的规则块
//
// 无法识别的内容（嵌套规则、@media 等）会被跳过，不会返回错误；
// 没有匹配时返回 nil
func SplitBlocks(raw string) []Block {
	spans := blockPattern.FindAllString(StripComments(raw), -1)
	if len(spans) == 0 {
		return nil
	}

	blocks := make([]Block, 0, len(spans))
	for _, span := range spans {
		// span 中恰好有一个 '{'，并以 '}' 结尾
		open := strings.IndexByte(span, '{')
		blocks = append(blocks, Block{
			Selector: trim(span[:open]),
			Body:     trim(span[open+1 : len(span)-1]),
		})
	}
	return blocks
}
