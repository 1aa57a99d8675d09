package cmd

import (
	"io"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"github.com/yeisme/colorsift/pkg/configs"
	"github.com/yeisme/colorsift/pkg/extract"
	"github.com/yeisme/colorsift/pkg/input"
	"github.com/yeisme/colorsift/pkg/report"
	"github.com/yeisme/colorsift/pkg/session"
	"github.com/yeisme/colorsift/pkg/style"
	"github.com/yeisme/colorsift/pkg/utils/hotload"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file|dir>",
	Short: "Re-run extraction whenever a stylesheet changes",
	Long: `
Watch a CSS file (or every matching file below a directory) and print the
extracted color declarations after each change.

Examples:
  colorsift watch theme.css
  colorsift watch ./styles --format table

Notes:
  - Directory filters and ignore patterns come from the "watch" config section
    (doublestar globs such as **/*.css).
  - Each successfully read stylesheet is also saved as the session input.`,
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"w"},
	RunE: func(cmd *cobra.Command, args []string) error {
		fallback, err := configs.ParseOutputFormat(appCtx.Config.Extract.Format)
		if err != nil {
			return err
		}
		opts := report.Options{
			Format: configs.GetOutputFormatFromFlags(cmd, fallback),
			Color:  useColor(cmd),
			Width:  appCtx.Config.Preview.Width,
			Theme:  appCtx.Config.Preview.Theme,
		}

		writer := sessionWriter()
		if writer != nil {
			defer func() {
				if err := writer.Close(); err != nil {
					log.Warn().Err(err).Msg("failed to save session input")
				}
			}()
		}

		// 回调在定时器协程中执行，串行化输出
		var mu sync.Mutex
		run := func(path string) {
			mu.Lock()
			defer mu.Unlock()
			if err := extractFile(cmd.OutOrStdout(), cmd.ErrOrStderr(), path, opts, writer); err != nil {
				log.Warn().Err(err).Str("file", path).Msg("extraction skipped")
			}
		}

		target := args[0]
		info, err := os.Stat(target)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			run(target)
		}

		watchOpts := hotload.OptionsFromConfig(appCtx.Config.Watch, target)
		return hotload.Watch(cmd.Context(), watchOpts, func(changed []string) {
			for _, path := range changed {
				run(path)
			}
		})
	},
}

// extractFile 读取单个文件并输出提取结果
func extractFile(out, errOut io.Writer, path string, opts report.Options, writer *session.DebouncedWriter) error {
	text, err := input.ReadFile(path)
	if err != nil {
		return err
	}
	src := source{Text: text, Origin: path}
	opts.Diagnostics = logDiagnostics(src)
	res := extract.Extract(text)

	if err := style.PrintHeading(out, path); err != nil {
		return err
	}
	if err := report.Write(out, res, opts); err != nil {
		return err
	}
	if err := style.PrintStatus(errOut, report.StatusComplete, res.Count()); err != nil {
		return err
	}
	if writer != nil {
		writer.Update(text)
	}
	log.Debug().Str("file", path).Int("mapped", res.Count()).Msg("re-extracted")
	return nil
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringP("format", "f", "", "Output format (text, json, yaml, toml, markdown, table, tree)")
	watchCmd.Flags().Bool("no-color", false, "Disable color output")
}
