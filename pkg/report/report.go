// Package report 将提取结果按配置的输出格式写出
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/yeisme/colorsift/pkg/configs"
	"github.com/yeisme/colorsift/pkg/diagnose"
	"github.com/yeisme/colorsift/pkg/extract"
	"github.com/yeisme/colorsift/pkg/style"
	"github.com/yeisme/colorsift/pkg/swatch"
)

// StatusComplete 提取完成后的状态文字
const StatusComplete = "complete"

// Options 输出选项
type Options struct {
	Format      configs.OutputFormat
	Color       bool
	Width       int
	Theme       string
	Diagnostics diagnose.Report
}

// Document 结构化输出（json/yaml/toml）的文档形式
type Document struct {
	CleanedText string       `json:"cleaned_text" yaml:"cleaned_text" toml:"cleaned_text"`
	Count       int          `json:"count" yaml:"count" toml:"count"`
	Matches     []MatchEntry `json:"matches" yaml:"matches" toml:"matches"`
	Warnings    []string     `json:"warnings,omitempty" yaml:"warnings,omitempty" toml:"warnings,omitempty"`
}

// MatchEntry 一条匹配及其色块
type MatchEntry struct {
	extract.Match `yaml:",inline"`
	Swatch        extract.Swatch `json:"swatch" yaml:"swatch" toml:"swatch"`
}

// NewDocument 构建结构化文档
func NewDocument(res extract.Result, diag diagnose.Report) Document {
	entries := make([]MatchEntry, 0, len(res.Matches))
	for _, m := range res.Matches {
		entries = append(entries, MatchEntry{Match: m, Swatch: extract.PreviewColorFor(m)})
	}
	return Document{
		CleanedText: res.CleanedText,
		Count:       res.Count(),
		Matches:     entries,
		Warnings:    diag.Warnings(),
	}
}

// Write 按 opts.Format 写出结果
func Write(w io.Writer, res extract.Result, opts Options) error {
	switch opts.Format {
	case configs.FormatText, "":
		_, err := io.WriteString(w, res.CleanedText)
		if err == nil && !strings.HasSuffix(res.CleanedText, "\n") {
			_, err = io.WriteString(w, "\n")
		}
		return err
	case configs.FormatJSON, configs.FormatYAML, configs.FormatTOML:
		return configs.OutputData(NewDocument(res, opts.Diagnostics), opts.Format, w, opts.Color)
	case configs.FormatTable:
		if res.Empty() {
			_, err := fmt.Fprintln(w, res.CleanedText)
			return err
		}
		return style.PrintTable(w, TableHeaders(), Rows(res.Matches), opts.Width)
	case configs.FormatTree:
		return style.PrintTree(w, Tree(res))
	case configs.FormatMarkdown:
		md := Markdown(res, opts.Diagnostics)
		if !opts.Color {
			_, err := io.WriteString(w, md)
			return err
		}
		return style.RenderMarkdown(w, md, opts.Width, opts.Theme)
	default:
		return fmt.Errorf("unsupported output format: %s", opts.Format)
	}
}

// TableHeaders 表格列名
func TableHeaders() []string {
	return []string{"selector", "property", "value", "swatch", "nearest"}
}

// Rows 每条匹配一行
func Rows(matches []extract.Match) [][]string {
	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		r := swatch.Resolve(extract.PreviewColorFor(m))
		sw := r.Hex
		if r.Transparent() {
			sw = "transparent"
		}
		rows = append(rows, []string{m.Selector, m.Property, m.Value, sw, r.Nearest})
	}
	return rows
}

// Tree 按选择器分组；同一选择器出现多次时各自成组，保持文档顺序
func Tree(res extract.Result) style.TreeNode {
	root := style.TreeNode{Text: fmt.Sprintf("%d color declarations", res.Count())}
	if res.Empty() {
		root.Children = []style.TreeNode{{Text: res.CleanedText}}
		return root
	}
	for _, m := range res.Matches {
		n := len(root.Children)
		leaf := style.TreeNode{Text: m.Property + ": " + m.Value}
		if n > 0 && root.Children[n-1].Text == m.Selector {
			root.Children[n-1].Children = append(root.Children[n-1].Children, leaf)
			continue
		}
		root.Children = append(root.Children, style.TreeNode{Text: m.Selector, Children: []style.TreeNode{leaf}})
	}
	return root
}

// Cards 为预览命令生成色块卡片
func Cards(matches []extract.Match) []style.Card {
	cards := make([]style.Card, 0, len(matches))
	for _, m := range matches {
		r := swatch.Resolve(extract.PreviewColorFor(m))
		c := style.Card{
			Selector: m.Selector,
			Property: m.Property,
			Value:    m.Value,
			Kind:     string(r.Kind),
		}
		if !r.Transparent() {
			c.Background = r.Hex
			c.Foreground = r.Foreground
			c.Label = r.Nearest
		}
		cards = append(cards, c)
	}
	return cards
}
