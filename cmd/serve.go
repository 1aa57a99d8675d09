package cmd

import (
	"github.com/spf13/cobra"
	"github.com/yeisme/colorsift/pkg/mcp"
	"github.com/yeisme/colorsift/pkg/utils/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdio",
	Long: `
Expose colorsift as a Model Context Protocol server over stdin/stdout.

Tools:
  extract_colors  css, format (text|json)
  preview_color   property, value, selector

Logs go to stderr (or the configured log file) so stdout stays a clean
protocol stream.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		s, err := mcp.NewServer(appCtx.Config.Server, version.GetVersion().Version)
		if err != nil {
			return err
		}
		log.Info().Str("name", appCtx.Config.Server.Name).Int("cache_size", appCtx.Config.Server.CacheSize).Msg("mcp server listening on stdio")
		return s.ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
