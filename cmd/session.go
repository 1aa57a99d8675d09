package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yeisme/colorsift/pkg/input"
	"github.com/yeisme/colorsift/pkg/style"
)

var (
	sessionCmd = &cobra.Command{
		Use:   "session",
		Short: "Manage the saved CSS input",
		Long: `colorsift session manages the stylesheet remembered between runs.
"extract" and "preview" use it when no file is given.`,
	}

	sessionShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the saved input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := openSession()
			if store == nil {
				return fmt.Errorf("session store is disabled or unavailable")
			}
			text, ok := store.Get(appCtx.Config.Session.Key)
			if !ok {
				return style.PrintList(cmd.ErrOrStderr(), "no saved input", "path: "+store.Path())
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}

	sessionClearCmd = &cobra.Command{
		Use:   "clear",
		Short: "Forget the saved input",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			store := openSession()
			if store == nil {
				return fmt.Errorf("session store is disabled or unavailable")
			}
			if err := store.Delete(appCtx.Config.Session.Key); err != nil {
				return err
			}
			log.Info().Str("path", store.Path()).Msg("session input cleared")
			return nil
		},
	}

	sessionSaveCmd = &cobra.Command{
		Use:   "save <file|->",
		Short: "Save a stylesheet as the session input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input.Read(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			if err := saveSource(source{Text: text, Origin: args[0]}); err != nil {
				return err
			}
			log.Info().Str("file", args[0]).Int("bytes", len(text)).Msg("session input saved")
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionShowCmd, sessionClearCmd, sessionSaveCmd)
}
