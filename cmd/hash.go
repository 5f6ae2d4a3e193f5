package cmd

import (
	"fmt"
	"strconv"

	"cheevo-checker/core/config"
	"cheevo-checker/core/logger"
	"cheevo-checker/feature/rahasher"

	"github.com/spf13/cobra"
)

// hashCmd hashes a single file the way the checker does.
var hashCmd = &cobra.Command{
	Use:   "hash <console-id> <path>",
	Short: "Compute the RetroAchievements hash of one file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		consoleID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid console id %q", args[0])
		}

		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer l.Sync()

		h, err := rahasher.New(cfg.Hashing, rahasher.WithLogger(l)).Hash(cmd.Context(), consoleID, args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), h)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(hashCmd)
}
