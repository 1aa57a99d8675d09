package cmd

import (
	"github.com/spf13/cobra"
	"github.com/yeisme/colorsift/pkg/configs"
	"github.com/yeisme/colorsift/pkg/diagnose"
	"github.com/yeisme/colorsift/pkg/style"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose [file|-]",
	Short: "Report CSS structure that extraction does not examine",
	Long: `
Tokenize the stylesheet and list at-rules, nested blocks and unbalanced braces.
Content inside these constructs is not examined by "extract".

Examples:
  colorsift diagnose theme.css
  colorsift diagnose theme.css --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := loadSource(cmd, args)
		if err != nil {
			return err
		}
		rep := diagnose.Scan(src.Text)

		format := configs.GetOutputFormatFromFlags(cmd, configs.FormatText)
		if format != configs.FormatText {
			return configs.OutputData(rep, format, cmd.OutOrStdout(), useColor(cmd))
		}

		if rep.Clean() {
			return style.PrintList(cmd.OutOrStdout(), src.Origin+": every block is flat and examined")
		}
		if err := style.PrintHeading(cmd.OutOrStdout(), src.Origin); err != nil {
			return err
		}
		return style.PrintWarnings(cmd.OutOrStdout(), rep.Warnings())
	},
}

func init() {
	rootCmd.AddCommand(diagnoseCmd)

	diagnoseCmd.Flags().StringP("format", "f", "", "Output format (text, json, yaml, toml)")
	diagnoseCmd.Flags().Bool("yaml", false, "Output in YAML format")
	diagnoseCmd.Flags().Bool("json", false, "Output in JSON format")
	diagnoseCmd.Flags().Bool("toml", false, "Output in TOML format")
	diagnoseCmd.Flags().Bool("no-color", false, "Disable color output")
}
