package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/enginedeck/deck/pkg/deck"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type shellKey struct{}

func contextWithShell(ctx context.Context, s *deck.Shell) context.Context {
	return context.WithValue(ctx, shellKey{}, s)
}

func shellFromContext(ctx context.Context) (*deck.Shell, error) {
	if s, ok := ctx.Value(shellKey{}).(*deck.Shell); ok {
		return s, nil
	}
	return nil, errors.New("shell not initialized")
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "deckctl",
	Short: "Drive the deck navigation core from a terminal",
	Long: `deckctl exercises the navigation core of the deck shell without a GUI.

Screens are opened, guarded and walked back exactly as the desktop shell
does it, either from a script or interactively.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := LoadConfig()

		shell, err := deck.New(cfg.ShellOptions())
		if err != nil {
			return err
		}

		cmd.SetContext(contextWithShell(cmd.Context(), shell))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if s, err := shellFromContext(cmd.Context()); err == nil {
			s.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.SetContext(ctx)

	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "deck TOML file with views and navigation settings")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-path", "", "Also write logs to this file")
	rootCmd.PersistentFlags().Bool("strict", false, "Stop scripts at the first failing command")
	rootCmd.PersistentFlags().Bool("root-fallback-previous", false, "Record the view being left when going back from the root entry")

	bindings := map[string]string{
		"config":                            "config",
		"log.level":                         "log-level",
		"log.path":                          "log-path",
		"strict":                            "strict",
		"navigation.root_fallback_previous": "root-fallback-previous",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to bind %s flag: %v\n", flag, err)
		}
	}
}
