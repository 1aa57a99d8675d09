package mcp

import "github.com/mark3labs/mcp-go/mcp"

const (
	toolExtractColors = "extract_colors"
	toolPreviewColor  = "preview_color"
)

func extractColorsTool() mcp.Tool {
	return mcp.NewTool(toolExtractColors,
		mcp.WithDescription("Extract color-related declarations from a CSS stylesheet. "+
			"Returns the cleaned text, or a JSON object with the matched declarations."),
		mcp.WithString("css",
			mcp.Required(),
			mcp.Description("Raw CSS source text"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: text (default) or json"),
			mcp.Enum("text", "json"),
		),
	)
}

func previewColorTool() mcp.Tool {
	return mcp.NewTool(toolPreviewColor,
		mcp.WithDescription("Compute the preview swatch for a single CSS declaration."),
		mcp.WithString("property",
			mcp.Required(),
			mcp.Description("Declaration property name, e.g. background-color"),
		),
		mcp.WithString("value",
			mcp.Required(),
			mcp.Description("Declaration value, e.g. rgba(243, 108, 0, 0.1)"),
		),
		mcp.WithString("selector",
			mcp.Description("Selector the declaration belongs to"),
		),
	)
}
