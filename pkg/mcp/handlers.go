package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/yeisme/colorsift/pkg/diagnose"
	"github.com/yeisme/colorsift/pkg/extract"
	"github.com/yeisme/colorsift/pkg/swatch"
)

// extractResponse extract_colors 的 JSON 输出
type extractResponse struct {
	CleanedText string          `json:"cleaned_text"`
	Matches     []extract.Match `json:"matches"`
	Count       int             `json:"count"`
	Warnings    []string        `json:"warnings,omitempty"`
}

// previewResponse preview_color 的 JSON 输出
type previewResponse struct {
	Selector string `json:"selector,omitempty"`
	swatch.Resolved
	CSS string `json:"css"`
}

func (s *Server) handleExtractColors(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	css, err := req.RequireString("css")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	format := normalizeFormat(req.GetString("format", "text"))
	if format != "text" && format != "json" {
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format %q (want text or json)", format)), nil
	}

	key := cacheKey(toolExtractColors, format, css)
	if r, ok := s.lookup(key); ok {
		return r, nil
	}

	res, err := extract.ExtractBytes([]byte(css))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if format == "text" {
		return s.remember(key, res.CleanedText), nil
	}

	matches := res.Matches
	if matches == nil {
		matches = []extract.Match{}
	}
	data, err := json.MarshalIndent(extractResponse{
		CleanedText: res.CleanedText,
		Matches:     matches,
		Count:       res.Count(),
		Warnings:    diagnose.Scan(css).Warnings(),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode extract result: %w", err)
	}
	return s.remember(key, string(data)), nil
}

func (s *Server) handlePreviewColor(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	property, err := req.RequireString("property")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	value, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	selector := req.GetString("selector", "")

	key := cacheKey(toolPreviewColor, selector, property, value)
	if r, ok := s.lookup(key); ok {
		return r, nil
	}

	sw := extract.PreviewColorFor(extract.Match{Selector: selector, Property: property, Value: value})
	data, err := json.MarshalIndent(previewResponse{
		Selector: selector,
		Resolved: swatch.Resolve(sw),
		CSS:      sw.CSS(),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode swatch: %w", err)
	}
	return s.remember(key, string(data)), nil
}
