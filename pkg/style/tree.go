package style

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

// TreeNode 定义了用于构建树的数据结构
type TreeNode struct {
	Text     string
	Children []TreeNode
}

// PrintTree 渲染一个带主题样式的树形结构
func PrintTree(w io.Writer, rootNode TreeNode) error {
	rootStyle := lipgloss.NewStyle().Foreground(ColorAccentPrimary).Bold(true)
	itemStyle := lipgloss.NewStyle().Foreground(ColorText)
	enumeratorStyle := lipgloss.NewStyle().Foreground(ColorBorder)

	var build func(TreeNode) *tree.Tree
	build = func(node TreeNode) *tree.Tree {
		t := tree.New().Root(node.Text)
		for _, child := range node.Children {
			if len(child.Children) == 0 {
				t.Child(child.Text)
				continue
			}
			t.Child(build(child))
		}
		return t
	}

	t := build(rootNode).
		Enumerator(tree.RoundedEnumerator).
		RootStyle(rootStyle).
		ItemStyle(itemStyle).
		EnumeratorStyle(enumeratorStyle)

	_, err := fmt.Fprintln(w, t)
	return err
}
