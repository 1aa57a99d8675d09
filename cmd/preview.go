package cmd

import (
	"errors"
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
	"github.com/yeisme/colorsift/pkg/extract"
	"github.com/yeisme/colorsift/pkg/report"
	"github.com/yeisme/colorsift/pkg/style"
)

var previewCmd = &cobra.Command{
	Use:   "preview [file|-]",
	Short: "Render color swatches for the extracted declarations",
	Long: `
Render one swatch card per color declaration.

Examples:
  # Preview every match in a file
  colorsift preview theme.css

  # Only selectors that fuzzy-match "btn"
  colorsift preview theme.css --selector btn

  # Pick matches interactively
  colorsift preview theme.css --pick`,
	Args:    cobra.MaximumNArgs(1),
	Aliases: []string{"p"},
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := loadSource(cmd, args)
		if err != nil {
			return err
		}
		logDiagnostics(src)

		res := extract.Extract(src.Text)
		out := cmd.OutOrStdout()
		if res.Empty() {
			_, err := fmt.Fprintln(out, res.CleanedText)
			return err
		}

		query, _ := cmd.Flags().GetString("selector")
		matches := report.FilterMatches(res.Matches, query)
		if len(matches) == 0 {
			return fmt.Errorf("no selector matches %q", query)
		}

		if pick, _ := cmd.Flags().GetBool("pick"); pick {
			matches, err = report.InteractiveSelect(matches)
			if errors.Is(err, fuzzyfinder.ErrAbort) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("interactive select failed: %w", err)
			}
		}

		if err := style.PrintHeading(out, fmt.Sprintf("%s · %d swatches", src.Origin, len(matches))); err != nil {
			return err
		}
		if err := style.PrintCards(out, report.Cards(matches), appCtx.Config.Preview.Width); err != nil {
			return err
		}
		return style.PrintStatus(cmd.ErrOrStderr(), report.StatusComplete, len(matches))
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringP("selector", "s", "", "Fuzzy filter on selectors")
	previewCmd.Flags().Bool("pick", false, "Choose matches interactively")
}
