package cmd

import (
	"context"
	"fmt"

	"cheevo-checker/core/config"
	"cheevo-checker/core/database"
	"cheevo-checker/core/hashcache"
	"cheevo-checker/core/logger"
	"cheevo-checker/core/reconcile"
	"cheevo-checker/core/storage"
	"cheevo-checker/feature/launchbox"
	"cheevo-checker/feature/rahasher"
	"cheevo-checker/feature/retroachievements"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// configDir is the directory searched for config.yaml and .env.
var configDir string

// application holds the collaborators shared by the commands.
type application struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	cache  *retroachievements.DBCache
	remote *retroachievements.Client
	hasher *rahasher.Computer
	hashes hashcache.Store
}

// bootstrap loads the configuration and wires every collaborator. The
// database is optional: without it API responses are not cached and runs
// are not stored.
func bootstrap(ctx context.Context) (*application, error) {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &application{cfg: cfg, logger: logg}

	// 3. Connect to Database (Optional)
	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		app.db = conn
		app.cache = retroachievements.NewDBCache(conn, cfg.RetroAchievements.CacheTTL)
		if err := app.cache.Migrate(); err != nil {
			return nil, fmt.Errorf("failed to migrate response cache: %w", err)
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
	}

	// 4. Remote catalog client
	opts := []retroachievements.Option{retroachievements.WithLogger(logg)}
	if app.cache != nil {
		opts = append(opts, retroachievements.WithCache(app.cache))
	}
	app.remote = retroachievements.NewClient(cfg.RetroAchievements, opts...)

	// 5. Hash tools
	app.hasher = rahasher.New(cfg.Hashing, rahasher.WithLogger(logg))

	// 6. Hash cache store
	var client storage.Client
	if cfg.Cache.Backend == hashcache.BackendStorage {
		if client, err = storage.NewClient(cfg.Storage); err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
	}
	app.hashes, err = hashcache.New(ctx, cfg.Cache, client, cfg.Storage.Bucket, cfg.Storage.Region)
	if err != nil {
		return nil, fmt.Errorf("failed to open hash cache: %w", err)
	}

	return app, nil
}

// run performs one reconciliation. The LaunchBox catalog is read fresh on
// every call so a long-lived server picks up library changes.
func (a *application) run(ctx context.Context, only ...string) (*reconcile.Report, error) {
	reader := launchbox.NewReader(a.cfg.Launchbox.Directory)
	resolver := launchbox.NewPathResolver(a.cfg.Launchbox.Directory, a.cfg.Launchbox.PathRewrites)

	local := reconcile.NewLocalBuilder(reader, a.hasher, a.hashes, resolver, a.logger)
	engine := reconcile.NewEngine(a.remote, local, reconcile.DefaultRules(a.cfg.Checker), a.logger)

	return engine.Run(ctx, a.cfg.Partitions(only...))
}

// purgeResponses removes cached API responses; all drops fresh ones too.
func (a *application) purgeResponses(ctx context.Context, all bool) {
	if a.cache == nil {
		return
	}
	n, err := a.cache.Purge(ctx, all)
	if err != nil {
		a.logger.Warn("Failed to purge response cache", zap.Error(err))
		return
	}
	if n > 0 {
		a.logger.Debug("Purged cached responses", zap.Int64("count", n), zap.Bool("all", all))
	}
}

func (a *application) close() {
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = a.logger.Sync()
}
