// Package diagnose reports CSS content that the heuristic extractor skips.
//
// The extractor only understands flat `selector { body }` blocks. Scan runs the
// real tokenizer from tdewolff/parse over the same input and reports at-rules,
// nesting and unbalanced braces, so callers can warn that part of the input was
// never examined. It never changes extraction output.
package diagnose

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Report summarizes the structure of a stylesheet.
type Report struct {
	AtRules       []string `json:"at_rules,omitempty" yaml:"at_rules,omitempty"`
	MaxDepth      int      `json:"max_depth" yaml:"max_depth"`
	Comments      int      `json:"comments" yaml:"comments"`
	UnclosedOpen  int      `json:"unclosed_open" yaml:"unclosed_open"`
	StrayClose    int      `json:"stray_close" yaml:"stray_close"`
	TokenizeError string   `json:"tokenize_error,omitempty" yaml:"tokenize_error,omitempty"`
}

// Clean reports whether everything in the input is visible to the extractor.
func (r Report) Clean() bool {
	return len(r.AtRules) == 0 && r.MaxDepth <= 1 && r.UnclosedOpen == 0 && r.StrayClose == 0 && r.TokenizeError == ""
}

// Warnings renders the report as human readable lines.
func (r Report) Warnings() []string {
	var out []string
	if len(r.AtRules) > 0 {
		out = append(out, fmt.Sprintf("%d at-rule(s) skipped: %v", len(r.AtRules), r.AtRules))
	}
	if r.MaxDepth > 1 {
		out = append(out, fmt.Sprintf("nested blocks (depth %d) are only partially examined", r.MaxDepth))
	}
	if r.UnclosedOpen > 0 {
		out = append(out, fmt.Sprintf("%d unclosed '{'", r.UnclosedOpen))
	}
	if r.StrayClose > 0 {
		out = append(out, fmt.Sprintf("%d stray '}'", r.StrayClose))
	}
	if r.TokenizeError != "" {
		out = append(out, "tokenizer stopped early: "+r.TokenizeError)
	}
	return out
}

// Scan tokenizes raw and collects structural findings.
func Scan(raw string) Report {
	var r Report
	l := css.NewLexer(parse.NewInput(bytes.NewBufferString(raw)))

	depth := 0
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				r.TokenizeError = err.Error()
			}
			r.UnclosedOpen = depth
			return r
		case css.AtKeywordToken:
			r.AtRules = append(r.AtRules, string(data))
		case css.CommentToken:
			r.Comments++
		case css.LeftBraceToken:
			depth++
			r.MaxDepth = max(r.MaxDepth, depth)
		case css.RightBraceToken:
			if depth == 0 {
				r.StrayClose++
				continue
			}
			depth--
		}
	}
}
