// Package mcp 通过 MCP 协议（stdio）暴露颜色提取能力
package mcp

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mark3labs/mcp-go/server"
	"github.com/yeisme/colorsift/pkg/configs"
)

// Server 封装 MCP server 与结果缓存
type Server struct {
	mcpServer *server.MCPServer
	cache     *lru.Cache[string, cachedResult]
}

// NewServer 根据配置创建 MCP server，version 为对外声明的服务版本
func NewServer(cfg configs.ServerConfig, version string) (*Server, error) {
	size := cfg.CacheSize
	if size <= 0 {
		size = 128
	}
	cache, err := lru.New[string, cachedResult](size)
	if err != nil {
		return nil, fmt.Errorf("create result cache: %w", err)
	}

	name := cfg.Name
	if name == "" {
		name = "colorsift"
	}

	s := &Server{cache: cache}
	s.mcpServer = server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(s.loggingMiddleware()),
	)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: extractColorsTool(), Handler: s.handleExtractColors},
		server.ServerTool{Tool: previewColorTool(), Handler: s.handlePreviewColor},
	)

	return s, nil
}

// ServeStdio 在 stdin/stdout 上运行 MCP server
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
