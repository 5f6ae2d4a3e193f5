package integrity

import (
	"context"

	"cheevo-checker/core/storage"
	"cheevo-checker/feature/integrity/checks"
	"cheevo-checker/feature/rahasher"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Dependencies are the resources inspected by the integrity checks.
type Dependencies struct {
	// Library lists the LaunchBox platforms.
	Library checks.PlatformLister
	// Platforms are the LaunchBox platforms of the scanned consoles.
	Platforms []checks.ExpectedPlatform
	// Hashing locates the hash tools.
	Hashing rahasher.Config
	// Storage is nil unless the hash cache lives in object storage.
	Storage storage.Client
	Bucket  string
	Region  string
	// DB is nil when the database is not available.
	DB *gorm.DB
	// Models are the GORM models whose tables must exist in DB.
	Models []any
}

// Service handles integrity checks.
type Service struct {
	deps   Dependencies
	logger *zap.Logger
}

// NewService creates a new integrity service.
func NewService(deps Dependencies, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{deps: deps, logger: logger}
}

// CheckLibrary returns the configured platforms missing from the library.
func (s *Service) CheckLibrary() (*checks.LibraryReport, error) {
	return checks.CheckLibrary(s.deps.Library, s.deps.Platforms)
}

// CheckTools returns the state of each hash tool.
func (s *Service) CheckTools() []checks.ToolReport {
	return checks.CheckTools(s.deps.Hashing)
}

// CheckStorage reports whether the hash cache bucket exists.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	return checks.CheckStorage(ctx, s.deps.Storage, s.deps.Bucket)
}

// FixStorage creates the hash cache bucket.
func (s *Service) FixStorage(ctx context.Context) error {
	return checks.FixStorage(ctx, s.deps.Storage, s.deps.Bucket, s.deps.Region, s.logger)
}

// CheckDatabase compares the database schema with the models.
func (s *Service) CheckDatabase() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.deps.DB, s.deps.Models...)
}

// CheckAll runs every check and collects the results by name. A failing
// check is reported with status "error" and does not stop the others.
func (s *Service) CheckAll(ctx context.Context) map[string]any {
	report := make(map[string]any)

	if lib, err := s.CheckLibrary(); err != nil {
		report["library"] = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report["library"] = lib
	}

	report["tools"] = s.CheckTools()

	if s.deps.Storage != nil {
		if st, err := s.CheckStorage(ctx); err != nil {
			report["storage"] = map[string]any{"status": "error", "error": err.Error()}
		} else {
			report["storage"] = st
		}
	}

	if s.deps.DB != nil {
		if schema, err := s.CheckDatabase(); err != nil {
			report["database"] = map[string]any{"status": "error", "error": err.Error()}
		} else {
			report["database"] = schema
		}
	}

	return report
}
