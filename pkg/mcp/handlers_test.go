package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeisme/colorsift/pkg/configs"
	"github.com/yeisme/colorsift/pkg/extract"
)

// --- helpers ---

func testServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer(configs.ServerConfig{Name: "colorsift-test", CacheSize: 8}, "test")
	require.NoError(t, err)
	return s
}

func callTool(t *testing.T, s *Server, req mcp.CallToolRequest) *mcp.CallToolResult {
	t.Helper()
	var handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
	switch req.Params.Name {
	case toolExtractColors:
		handler = s.handleExtractColors
	case toolPreviewColor:
		handler = s.handlePreviewColor
	default:
		t.Fatalf("unknown tool: %s", req.Params.Name)
	}

	// 与真实调用一致，经过日志中间件
	result, err := s.loggingMiddleware()(handler)(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func makeRequest(toolName string, args map[string]any) mcp.CallToolRequest {
	var arguments any
	if args != nil {
		arguments = args
	}
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      toolName,
			Arguments: arguments,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return textContent.Text
}

const sampleCSS = ".a { color: red; margin: 0; }\n.b { padding: 1px; }"

// --- extract_colors ---

func TestHandleExtractColors_Text(t *testing.T) {
	s := testServer(t)
	result := callTool(t, s, makeRequest(toolExtractColors, map[string]any{"css": sampleCSS}))
	assert.False(t, result.IsError)
	assert.Equal(t, ".a {\n    color: red;\n}\n\n", resultText(t, result))
}

func TestHandleExtractColors_JSON(t *testing.T) {
	s := testServer(t)
	result := callTool(t, s, makeRequest(toolExtractColors, map[string]any{
		"css":    sampleCSS,
		"format": "json",
	}))
	assert.False(t, result.IsError)

	var resp struct {
		CleanedText string          `json:"cleaned_text"`
		Matches     []extract.Match `json:"matches"`
		Count       int             `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, extract.Match{Selector: ".a", Property: "color", Value: "red"}, resp.Matches[0])
}

func TestHandleExtractColors_NoMatches(t *testing.T) {
	s := testServer(t)
	result := callTool(t, s, makeRequest(toolExtractColors, map[string]any{"css": "p { margin: 0; }"}))
	assert.False(t, result.IsError)
	assert.Equal(t, extract.NoDataSentinel, resultText(t, result))

	result = callTool(t, s, makeRequest(toolExtractColors, map[string]any{"css": "", "format": "json"}))
	assert.False(t, result.IsError)
	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
	assert.Equal(t, float64(0), resp["count"])
	assert.Equal(t, []any{}, resp["matches"])
}

func TestHandleExtractColors_Warnings(t *testing.T) {
	s := testServer(t)
	css := "@media (min-width: 1px) { .a { color: red; } }"
	result := callTool(t, s, makeRequest(toolExtractColors, map[string]any{"css": css, "format": "json"}))
	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
	assert.NotEmpty(t, resp["warnings"])
}

func TestHandleExtractColors_MissingCSS(t *testing.T) {
	s := testServer(t)
	result := callTool(t, s, makeRequest(toolExtractColors, nil))
	assert.True(t, result.IsError)
}

func TestHandleExtractColors_BadFormat(t *testing.T) {
	s := testServer(t)
	result := callTool(t, s, makeRequest(toolExtractColors, map[string]any{"css": sampleCSS, "format": "xml"}))
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "unsupported format")
}

func TestHandleExtractColors_Cached(t *testing.T) {
	s := testServer(t)
	req := makeRequest(toolExtractColors, map[string]any{"css": sampleCSS})
	first := resultText(t, callTool(t, s, req))
	assert.Equal(t, 1, s.cache.Len())
	second := resultText(t, callTool(t, s, req))
	assert.Equal(t, first, second)
	assert.Equal(t, 1, s.cache.Len())
}

// --- preview_color ---

func TestHandlePreviewColor(t *testing.T) {
	s := testServer(t)
	result := callTool(t, s, makeRequest(toolPreviewColor, map[string]any{
		"property": "background",
		"value":    "rgba(243, 108, 0, 0.1)",
		"selector": ".example",
	}))
	assert.False(t, result.IsError)

	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
	assert.Equal(t, ".example", resp["selector"])
	assert.Equal(t, "css-value", resp["kind"])
	assert.Equal(t, "rgba(243, 108, 0, 0.1)", resp["value"])
	assert.Equal(t, "background: rgba(243, 108, 0, 0.1);", resp["css"])
}

func TestHandlePreviewColor_Filter(t *testing.T) {
	s := testServer(t)
	result := callTool(t, s, makeRequest(toolPreviewColor, map[string]any{
		"property": "filter",
		"value":    "drop-shadow(0 0 2px black)",
	}))
	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
	assert.Equal(t, "filter", resp["kind"])
	assert.Equal(t, "drop-shadow(0 0 2px black)", resp["value"])
	assert.Equal(t, "#f36c00", resp["hex"])
}

func TestHandlePreviewColor_MissingValue(t *testing.T) {
	s := testServer(t)
	result := callTool(t, s, makeRequest(toolPreviewColor, map[string]any{"property": "color"}))
	assert.True(t, result.IsError)
}
