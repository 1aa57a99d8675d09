// Package extract 从 CSS 文本中提取与颜色相关的声明
//
// 这不是一个真正的 CSS 解析器：块切分基于正则，只识别扁平的
// `selector { body }` 结构，嵌套规则与 @ 规则会被静默跳过；
// 颜色判断是简单的子串匹配，允许误报
//
// 处理流程是单向的：
//
//	原始文本 -> SplitBlocks -> FilterBlock -> Extract(Result) -> PreviewColorFor(Swatch)
//
// 包内没有任何可变的全局状态，所有函数都可以并发调用
package extract
