package report

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	db      *gorm.DB
	repo    *Repository
	handler *Handler
}

// NewFeature creates the run history feature. It is disabled without a database.
func NewFeature(run RunFunc, db *gorm.DB, logger *zap.Logger) *Feature {
	f := &Feature{db: db}
	if db != nil {
		f.repo = NewRepository(db)
		f.handler = NewHandler(NewService(run, f.repo, logger))
	}
	return f
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "report"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.db != nil
}

// Load migrates the history tables and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.repo.Migrate(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}
