package report

import (
	"fmt"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/yeisme/colorsift/pkg/extract"
)

// FilterMatches 按选择器模糊过滤匹配，空查询返回全部
func FilterMatches(matches []extract.Match, query string) []extract.Match {
	q := strings.TrimSpace(query)
	if q == "" {
		return matches
	}
	var out []extract.Match
	for _, m := range matches {
		if fuzzy.MatchFold(q, m.Selector) || strings.Contains(strings.ToLower(m.Selector), strings.ToLower(q)) {
			out = append(out, m)
		}
	}
	return out
}

// InteractiveSelect 使用 fuzzyfinder 选择一条或多条匹配
func InteractiveSelect(matches []extract.Match) ([]extract.Match, error) {
	if len(matches) == 0 {
		return nil, fmt.Errorf("no matches to select")
	}
	idx, err := fuzzyfinder.FindMulti(matches, func(i int) string {
		m := matches[i]
		return fmt.Sprintf("%s  %s: %s", m.Selector, m.Property, m.Value)
	}, fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
		if i < 0 {
			return ""
		}
		sw := extract.PreviewColorFor(matches[i])
		return fmt.Sprintf("%s\n\nkind: %s\nstyle: %s", matches[i].Selector, sw.Kind, sw.CSS())
	}))
	if err != nil {
		return nil, err
	}
	out := make([]extract.Match, 0, len(idx))
	for _, i := range idx {
		if i >= 0 && i < len(matches) {
			out = append(out, matches[i])
		}
	}
	return out, nil
}
