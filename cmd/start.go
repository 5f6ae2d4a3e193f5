package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"cheevo-checker/core/loader"
	"cheevo-checker/core/logger"
	"cheevo-checker/core/middleware/auth"
	"cheevo-checker/core/middleware/rayid"
	"cheevo-checker/core/reconcile"
	"cheevo-checker/feature/integrity"
	"cheevo-checker/feature/report"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "cheevo-checker/docs/swagger"
)

// @title Cheevo Checker API
// @version 1.0
// @description Triggers reconciliation runs and browses their history.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the cheevo checker server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// 1. Load configuration and collaborators
		app, err := bootstrap(ctx)
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer app.close()
		logg := app.logger
		zap.ReplaceGlobals(logg)

		if err := app.cfg.Server.Validate(); err != nil {
			logg.Fatal("Invalid server configuration", zap.Error(err))
		}

		// 2. Initialize Fiber App
		server := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 3. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(report.NewFeature(func(ctx context.Context) (*reconcile.Report, error) {
			app.purgeResponses(ctx, false)
			return app.run(ctx)
		}, app.db, logg))

		deps, err := integrityDeps(app)
		if err != nil {
			logg.Fatal("Failed to prepare integrity checks", zap.Error(err))
		}
		mgr.Register(integrity.NewFeature(deps, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		server.Use(rayid.New())

		// 2. Logging Middleware (Zap + RayID)
		server.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		server.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		server.Use(auth.New(auth.Config{ApiKey: app.cfg.Server.ApiKey}))

		// 4. Load Features
		loaded, err := mgr.LoadAll(server)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		if !slices.Contains(loaded, "report") {
			logg.Warn("Run history disabled; configure a database to trigger and browse runs")
		}

		// 5. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", app.cfg.Server.Address()), zap.Strings("features", loaded))
			if err := server.Listen(app.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = server.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
