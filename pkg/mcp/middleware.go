package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/yeisme/colorsift/pkg/utils/log"
)

// loggingMiddleware 记录每次工具调用的耗时与结果
func (s *Server) loggingMiddleware() server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := time.Now()
			result, err := next(ctx, req)

			ev := log.Info()
			if err != nil || (result != nil && result.IsError) {
				ev = log.Warn().Err(err)
			}
			ev.Str("tool", req.Params.Name).
				Int("args", len(req.GetArguments())).
				Int("cached", s.cache.Len()).
				Dur("elapsed", time.Since(start)).
				Msg("tool call")

			return result, err
		}
	}
}
