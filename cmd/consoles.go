package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// consolesCmd lists the consoles known to RetroAchievements.
var consolesCmd = &cobra.Command{
	Use:   "consoles",
	Short: "List RetroAchievements console ids",
	Long:  `Lists every console id and name, for filling in rc_id and rc_name in the consoles section of the config.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer app.close()

		consoles, err := app.remote.ConsoleIDs(cmd.Context())
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), renderConsoles(consoles))
		return err
	},
}

func init() {
	RootCmd.AddCommand(consolesCmd)
}
