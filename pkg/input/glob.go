package input

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchAny 判断路径是否命中任一 doublestar 模式
//
// 模式同时与完整路径和文件名比较，因此 "*.css" 也能匹配子目录中的文件
func MatchAny(patterns []string, path string) bool {
	p := filepath.ToSlash(path)
	base := filepath.Base(path)
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		if ok, _ := doublestar.Match(pattern, p); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

// Accept 按过滤与忽略规则判断是否处理该文件；filters 为空表示全部接受
func Accept(filters, ignores []string, path string) bool {
	if MatchAny(ignores, path) {
		return false
	}
	if len(filters) == 0 {
		return true
	}
	return MatchAny(filters, path)
}
