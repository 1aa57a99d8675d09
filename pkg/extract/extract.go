package extract

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// NoDataSentinel 表示「已运行但没有找到颜色数据」，不同于空字符串（尚未运行）
const NoDataSentinel = "/* BRAK_DANYCH_KOLORYSTYCZNYCH */"

// ErrInvalidInput 输入不是文本（非法 UTF-8）
var ErrInvalidInput = errors.New("invalid argument: input is not valid UTF-8 text")

// Result 是一次提取的完整结果
type Result struct {
	CleanedText string  `json:"cleaned_text" yaml:"cleaned_text" toml:"cleaned_text"`
	Matches     []Match `json:"matches" yaml:"matches" toml:"matches"`
}

// Count 返回匹配数量
func (r Result) Count() int {
	return len(r.Matches)
}

// Empty 报告本次提取是否没有任何结果
func (r Result) Empty() bool {
	return len(r.Matches) == 0
}

// Extract 对整段 CSS 运行块切分和声明过滤
//
// 清理后的片段按块顺序拼接，匹配按文档顺序累积；
// 没有任何声明被保留时 CleanedText 为 NoDataSentinel
func Extract(raw string) Result {
	var (
		out     strings.Builder
		matches []Match
	)

	for _, b := range SplitBlocks(raw) {
		text, found := FilterBlock(b)
		if len(found) == 0 {
			continue
		}
		out.WriteString(text)
		matches = append(matches, found...)
	}

	if out.Len() == 0 {
		return Result{CleanedText: NoDataSentinel}
	}
	return Result{CleanedText: out.String(), Matches: matches}
}

// ExtractBytes 与 Extract 相同，但会先校验输入是否为合法文本
func ExtractBytes(data []byte) (Result, error) {
	if !utf8.Valid(data) {
		return Result{}, ErrInvalidInput
	}
	return Extract(string(data)), nil
}

// ExtractReader 读取 r 的全部内容后执行提取
func ExtractReader(r io.Reader) (Result, error) {
	if r == nil {
		return Result{}, fmt.Errorf("nil reader: %w", ErrInvalidInput)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("read css input: %w", err)
	}
	return ExtractBytes(data)
}
