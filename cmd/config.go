package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yeisme/colorsift/pkg/configs"
)

var (
	noColor bool

	configCmd = &cobra.Command{
		Use:     "config",
		Short:   "Manage colorsift configuration",
		Long:    `colorsift config allows you to view and manage your colorsift configuration settings.`,
		Aliases: []string{"c"},
	}

	configValidateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validate colorsift configuration",
		Long:  `colorsift config validate checks the validity of your configuration file and environment variables.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := configs.Decode(appCtx.Viper)
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}

			fileUsed := appCtx.Viper.ConfigFileUsed()
			if fileUsed == "" {
				fileUsed = "(defaults only)"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "config ok: %s (version %s)\n", fileUsed, cfg.Version)
			return err
		},
		Aliases: []string{"check", "verify"},
	}

	configListCmd = &cobra.Command{
		Use:   "list [section]",
		Short: "List colorsift configuration",
		Long: `colorsift config list displays the current configuration settings.

You can specify a section to display only that part of the configuration:
  - app:     Application settings
  - log:     Logging settings
  - extract: Output format and status line
  - preview: Swatch rendering
  - session: Saved input store
  - watch:   File watcher
  - server:  MCP server

Examples:
  colorsift config list                    # Show all configuration (viper raw data)
  colorsift config list --all              # Show all configuration with defaults
  colorsift config list session            # Show only session settings
  colorsift config list --format yaml      # Output in YAML format
  colorsift config list --json             # Output in JSON format (shorthand)
  colorsift config list watch --all --json # Show watch config with defaults in JSON`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			section := ""
			if len(args) > 0 {
				section = args[0]
			}

			format := configs.GetOutputFormatFromFlags(cmd, configs.FormatYAML)
			showAll, _ := cmd.Flags().GetBool("all")

			data, err := configs.GetConfigSection(appCtx.Viper, section, showAll)
			if err != nil {
				return fmt.Errorf("get config section: %w", err)
			}
			return configs.OutputData(data, format, cmd.OutOrStdout(), !noColor)
		},
		Aliases: []string{"ls"},
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Initialize colorsift configuration",
		Long: `colorsift config init creates a new configuration file with default settings.

Examples:
  colorsift config init                                  # Create .colorsift.yaml in current directory
  colorsift config init --path ~/.config/colorsift/colorsift.yaml
  colorsift config init --format json                    # Create JSON format config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("path")
			formatStr, _ := cmd.Flags().GetString("format")

			format, err := configs.ParseOutputFormat(formatStr)
			if err != nil {
				return err
			}
			if path == "" {
				if path, err = configs.DefaultConfigFile(format); err != nil {
					return err
				}
			}

			if err := configs.CreateDefaultConfig(path, format); err != nil {
				return fmt.Errorf("create config file: %w", err)
			}
			log.Info().Msgf("Config file created successfully: %s", path)
			return nil
		},
		Args: cobra.NoArgs,
	}
)

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(
		configListCmd,
		configValidateCmd,
		configInitCmd,
	)

	configListCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	configListCmd.Flags().StringP("format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(configs.ValidFormats(), ", ")))
	configListCmd.Flags().Bool("yaml", false, "Output in YAML format")
	configListCmd.Flags().Bool("json", false, "Output in JSON format")
	configListCmd.Flags().Bool("toml", false, "Output in TOML format")
	configListCmd.Flags().Bool("text", false, "Output in plain text format")
	configListCmd.Flags().BoolP("all", "a", false, "Show complete configuration with defaults (processed struct)")

	configInitCmd.Flags().StringP("path", "p", "", "Path to the config file")
	configInitCmd.Flags().StringP("format", "f", "yaml", "Format of the config file (yaml, json, toml)")
}
