package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/enginedeck/deck/pkg/deck/console"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Execute navigation commands from a script file, or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		shell, err := shellFromContext(cmd.Context())
		if err != nil {
			return err
		}

		var input io.Reader = cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open script: %w", err)
			}
			defer f.Close()
			input = f
		}

		c := console.NewWithIO(shell, input, cmd.OutOrStdout())
		c.SetStrict(viper.GetBool("strict"))
		return c.Run(cmd.Context(), false)
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Navigate interactively",
	Args:  cobra.NoArgs,
	RunE:  runREPL,
}

func runREPL(cmd *cobra.Command, args []string) error {
	shell, err := shellFromContext(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "deck navigation console (type 'help', 'quit' to leave)")
	return console.NewWithIO(shell, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context(), true)
}

var viewsCmd = &cobra.Command{
	Use:   "views",
	Short: "List the screens in the view catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		shell, err := shellFromContext(cmd.Context())
		if err != nil {
			return err
		}
		_, err = console.NewWithIO(shell, nil, cmd.OutOrStdout()).Execute("views")
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd, replCmd, viewsCmd)
}
