package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yeisme/colorsift/pkg/configs"
	"github.com/yeisme/colorsift/pkg/extract"
	"github.com/yeisme/colorsift/pkg/report"
	"github.com/yeisme/colorsift/pkg/style"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file|-]",
	Short: "Extract color declarations from CSS",
	Long: `
Read a stylesheet and print only the declarations that carry color.

Without an argument the last saved input (see "colorsift session") is used,
falling back to a small sample stylesheet.

Examples:
  # Extract from a file
  colorsift extract theme.css

  # Read from stdin
  cat theme.css | colorsift extract -

  # Show the matches as a table, with the status line on stderr
  colorsift extract theme.css --format table --status

  # Structured output
  colorsift extract theme.css --json

Notes:
  - Only flat "selector { declarations }" blocks are examined; at-rules and
    nested blocks are reported as warnings and otherwise skipped.
  - When nothing is found the output is /* BRAK_DANYCH_KOLORYSTYCZNYCH */.`,
	Args:    cobra.MaximumNArgs(1),
	Aliases: []string{"x"},
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := loadSource(cmd, args)
		if err != nil {
			return err
		}

		fallback, err := configs.ParseOutputFormat(appCtx.Config.Extract.Format)
		if err != nil {
			return err
		}
		if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
			if _, err := configs.ParseOutputFormat(f.Value.String()); err != nil {
				return err
			}
		}
		format := configs.GetOutputFormatFromFlags(cmd, fallback)

		diag := logDiagnostics(src)
		res := extract.Extract(src.Text)
		log.Debug().Str("source", src.Origin).Int("mapped", res.Count()).Msg("extraction finished")

		if err := report.Write(cmd.OutOrStdout(), res, report.Options{
			Format:      format,
			Color:       useColor(cmd),
			Width:       appCtx.Config.Preview.Width,
			Theme:       appCtx.Config.Preview.Theme,
			Diagnostics: diag,
		}); err != nil {
			return err
		}

		if showStatus(cmd) {
			if err := style.PrintStatus(cmd.ErrOrStderr(), report.StatusComplete, res.Count()); err != nil {
				return err
			}
		}

		if save, _ := cmd.Flags().GetBool("save"); save && src.Origin != "session" {
			if err := saveSource(src); err != nil {
				log.Warn().Err(err).Msg("failed to save input")
			}
		}
		return nil
	},
}

func showStatus(cmd *cobra.Command) bool {
	if f := cmd.Flags().Lookup("status"); f != nil && f.Changed {
		return f.Value.String() == "true"
	}
	return appCtx.Config.Extract.ShowStatus
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(configs.ValidFormats(), ", ")))
	extractCmd.Flags().Bool("yaml", false, "Output in YAML format")
	extractCmd.Flags().Bool("json", false, "Output in JSON format")
	extractCmd.Flags().Bool("toml", false, "Output in TOML format")
	extractCmd.Flags().Bool("text", false, "Output the cleaned stylesheet (default)")
	extractCmd.Flags().Bool("status", false, "Print STATUS / MAPPED to stderr")
	extractCmd.Flags().Bool("save", false, "Save the input to the session store")
	extractCmd.Flags().Bool("no-color", false, "Disable color output")
}
