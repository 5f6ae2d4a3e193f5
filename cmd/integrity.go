package cmd

import (
	"encoding/json"
	"fmt"

	"cheevo-checker/core/config"
	"cheevo-checker/core/hashcache"
	"cheevo-checker/core/storage"
	"cheevo-checker/feature/integrity"
	"cheevo-checker/feature/integrity/checks"
	"cheevo-checker/feature/launchbox"
	"cheevo-checker/feature/report"
	"cheevo-checker/feature/retroachievements"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the library, hash tools, cache bucket and database",
	Long:  `Verifies everything a run depends on without starting one and prints the combined report as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer app.close()

		deps, err := integrityDeps(app)
		if err != nil {
			return err
		}
		svc := integrity.NewService(deps, app.logger)

		if fixFlag && deps.Storage != nil {
			if err := svc.FixStorage(cmd.Context()); err != nil {
				return err
			}
		}
		if fixFlag && app.db != nil {
			if err := report.NewRepository(app.db).Migrate(); err != nil {
				return fmt.Errorf("failed to migrate run history: %w", err)
			}
		}

		out, err := json.MarshalIndent(svc.CheckAll(cmd.Context()), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	integrityCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the cache bucket and history tables when missing")
	RootCmd.AddCommand(integrityCmd)
}

// integrityDeps collects the resources checked by the integrity feature.
func integrityDeps(app *application) (integrity.Dependencies, error) {
	deps := integrity.Dependencies{
		Library:   launchbox.NewReader(app.cfg.Launchbox.Directory),
		Platforms: expectedPlatforms(app.cfg.Consoles),
		Hashing:   app.cfg.Hashing,
		Bucket:    app.cfg.Storage.Bucket,
		Region:    app.cfg.Storage.Region,
		DB:        app.db,
		Models: []any{
			&report.Run{}, &report.ConsoleResult{}, &report.MissingGame{}, &report.Anomaly{},
			&retroachievements.CachedResponse{},
		},
	}
	if app.cfg.Cache.Backend == hashcache.BackendStorage {
		client, err := storage.NewClient(app.cfg.Storage)
		if err != nil {
			return deps, fmt.Errorf("failed to create storage client: %w", err)
		}
		deps.Storage = client
	}
	app.logger.Debug("Integrity dependencies ready", zap.Int("platforms", len(deps.Platforms)))
	return deps, nil
}

func expectedPlatforms(consoles []config.ConsoleConfig) []checks.ExpectedPlatform {
	out := make([]checks.ExpectedPlatform, 0, len(consoles))
	for _, c := range consoles {
		if !c.Scan() {
			continue
		}
		label := c.RCName
		if label == "" {
			label = c.LBName
		}
		out = append(out, checks.ExpectedPlatform{Console: label, Name: c.LBName, Alias: c.LBAlias})
	}
	return out
}
