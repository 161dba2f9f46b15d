package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"phonebook/internal/dispatch"
)

// run <command> [args...]: dispatch one command and exit.
func runCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "run <command> [args...]",
		Short: "Run a single contact command",
		Long:  "Run a single contact command. Type `phonebook run help` for the list.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := st.open()
			if err != nil {
				return err
			}
			name, rest := dispatch.ParseInput(strings.Join(args, " "))
			if dispatch.IsExit(name) {
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.Dispatcher.Dispatch(name, rest))
			return nil
		},
	}
}
