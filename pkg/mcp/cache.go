package mcp

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// cachedResult 只缓存文本与错误标记，每次命中都重新构造结果对象
type cachedResult struct {
	text    string
	isError bool
}

func cacheKey(tool string, parts ...string) string {
	h := sha256.New()
	h.Write([]byte(tool))
	for _, p := range parts {
		h.Write([]byte{0})
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}

func (c cachedResult) toResult() *mcp.CallToolResult {
	if c.isError {
		return mcp.NewToolResultError(c.text)
	}
	return mcp.NewToolResultText(c.text)
}

// remember 缓存成功的文本结果
func (s *Server) remember(key, text string) *mcp.CallToolResult {
	s.cache.Add(key, cachedResult{text: text})
	return mcp.NewToolResultText(text)
}

func (s *Server) lookup(key string) (*mcp.CallToolResult, bool) {
	c, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	return c.toResult(), true
}

func normalizeFormat(f string) string {
	return strings.ToLower(strings.TrimSpace(f))
}
