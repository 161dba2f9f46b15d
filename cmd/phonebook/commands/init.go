package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"phonebook/internal/app"
)

func initCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an empty database file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := app.InitDatabase(st.cfg, st.log)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Database created at %s\n", st.cfg.DB.Path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Database already exists at %s\n", st.cfg.DB.Path)
			}
			return nil
		},
	}
}
