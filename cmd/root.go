// Package cmd provides command-line interface commands for colorsift
package cmd

import (
	gocontext "context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"runtime/trace"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/yeisme/colorsift/pkg/context"
	log2 "github.com/yeisme/colorsift/pkg/utils/log"
	"github.com/yeisme/colorsift/pkg/utils/version"
)

var (
	appCtx *context.AppContext
	log    log2.Logger

	// Global flags
	globalFlags    = context.GlobalFlags{}
	cpuProfileFlag string
	traceFlag      string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "colorsift",
	Short: "colorsift pulls color declarations out of CSS",
	Long: `colorsift scans a stylesheet, keeps only the declarations that carry color
(color, background, border, fill, shadows, filters...) and prints a compact
stylesheet of what it found, together with terminal color previews.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if globalFlags.VersionEnable {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.GetShortVersionString())
			return err
		}
		if len(args) == 0 {
			return cmd.Help()
		}
		return nil
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if cpuProfileFlag != "" {
			f, err := os.Create(cpuProfileFlag)
			if err != nil {
				return fmt.Errorf("could not create CPU profile: %w", err)
			}
			if err := pprof.StartCPUProfile(f); err != nil {
				return fmt.Errorf("could not start CPU profile: %w", err)
			}
		}
		if traceFlag != "" {
			f, err := os.Create(traceFlag)
			if err != nil {
				return fmt.Errorf("could not create trace file: %w", err)
			}
			if err := trace.Start(f); err != nil {
				return fmt.Errorf("could not start trace: %w", err)
			}
		}

		ctx, err := context.InitAppContext(cmd.Context(), globalFlags)
		if err != nil {
			return err
		}
		appCtx = ctx
		log = ctx.Logger

		log.Debug().Msgf("Execute Command: %s %s", "colorsift", strings.Join(os.Args[1:], " "))
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if cpuProfileFlag != "" {
			pprof.StopCPUProfile()
		}
		if traceFlag != "" {
			trace.Stop()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(gocontext.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "config file")
	rootCmd.PersistentFlags().StringVar(&cpuProfileFlag, "cpu-profile", "", "write cpu profile to `file`")
	rootCmd.PersistentFlags().StringVar(&traceFlag, "trace", "", "write execution trace to `file`")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Debug, "debug", false, "enable debug mode (prints additional information)")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "V", false, "enable verbose output (prints more detailed information)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Quiet, "quiet", false, "suppress all output except errors")
	rootCmd.Flags().BoolVarP(&globalFlags.VersionEnable, "version", "v", false, "show version information")
}
