package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"cheevo-checker/core/reconcile"
	"cheevo-checker/feature/report"
	"cheevo-checker/feature/retroachievements"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the check command
	checkConsoles []string
	checkJSON     bool
	checkNoSave   bool
	checkRefresh  bool
)

// checkCmd reconciles the local library against the remote catalog.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report achievement games missing from the local library",
	Long: `Hashes the LaunchBox library, downloads the RetroAchievements game
lists of every configured console and prints each game with achievements
that has no matching local file, together with the hashes it accepts.

Examples:
  # Check every configured console
  check

  # Only GameCube, ignoring cached API responses
  check --console GameCube --refresh

  # Machine readable output without storing the run
  check --json --no-save`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringSliceVar(&checkConsoles, "console", nil, "Only check the given consoles (rc_name or lb_name, repeatable)")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print the full report as JSON")
	checkCmd.Flags().BoolVar(&checkNoSave, "no-save", false, "Do not store the run in the database")
	checkCmd.Flags().BoolVar(&checkRefresh, "refresh", false, "Discard cached API responses before the run")

	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer app.close()

	app.purgeResponses(ctx, checkRefresh)

	result, err := app.run(ctx, checkConsoles...)
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	if checkJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	} else {
		printMissing(cmd.OutOrStdout(), result)
	}

	s := result.Summary
	app.logger.Info("Reconciliation complete",
		zap.String("run_id", result.RunID),
		zap.Int("consoles", s.Partitions-s.Inactive),
		zap.Int("remote_games", s.RemoteGames),
		zap.Int("local_hashes", s.LocalHashes),
		zap.Int("new_hashes", s.NewHashes),
		zap.Int("found", s.Found),
		zap.Int("missing", s.Missing),
		zap.Int("skipped", s.Skipped),
		zap.Int("anomalies", s.Anomalies),
	)

	if checkNoSave || app.db == nil {
		return nil
	}
	repo := report.NewRepository(app.db)
	if err := repo.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate run history: %w", err)
	}
	if err := repo.Save(ctx, report.FromReport(result)); err != nil {
		return fmt.Errorf("failed to store run: %w", err)
	}
	return nil
}

// printMissing writes every unmatched title followed by the hashes it accepts.
func printMissing(w io.Writer, r *reconcile.Report) {
	for _, p := range r.Partitions {
		for _, m := range p.Missing {
			fmt.Fprintf(w, "[NOT FOUND] %s\n", m.Game.Title)
			if m.LookupError != "" {
				fmt.Fprintf(w, "  Hash lookup failed: %s\n", m.LookupError)
				continue
			}
			for _, c := range m.Candidates {
				fmt.Fprintf(w, "  Possible RA hash: %s - %s %s\n", c.Hash, c.Name, retroachievements.FormatLabels(c.Labels))
			}
		}
	}
}
