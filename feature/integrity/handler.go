package integrity

import (
	"cheevo-checker/core/logger"
	"cheevo-checker/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/library", h.HandleLibraryCheck)
	group.Get("/tools", h.HandleToolsCheck)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/database", h.HandleDatabaseCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Checks the LaunchBox library, the hash tools, the hash cache bucket and the database schema.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	return c.JSON(h.service.CheckAll(c.UserContext()))
}

// HandleLibraryCheck checks the configured platforms.
// @Summary Check Library
// @Description Lists configured LaunchBox platforms that are absent from Platforms.xml.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.LibraryReport
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/library [get]
func (h *Handler) HandleLibraryCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckLibrary()
	if err != nil {
		l.Error("Library check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if len(report.Missing) > 0 {
		l.Warn("Configured platforms missing from library", zap.Int("count", len(report.Missing)))
	}
	return c.JSON(report)
}

// HandleToolsCheck checks the hash tools.
// @Summary Check Hash Tools
// @Description Reports whether RAHasher and DolphinTool exist at their configured paths.
// @Tags integrity
// @Produce json
// @Success 200 {array} checks.ToolReport
// @Router /integrity/tools [get]
func (h *Handler) HandleToolsCheck(c *fiber.Ctx) error {
	return c.JSON(h.service.CheckTools())
}

// HandleStorageCheck checks and optionally creates the hash cache bucket.
// @Summary Check Storage
// @Description Checks if the hash cache bucket exists. Optionally creates it.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create the bucket when missing"
// @Success 200 {object} map[string]interface{} "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := utils.ToBool(c.Query("fix"))

	report, err := h.service.CheckStorage(c.UserContext())
	if err != nil {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.Exists && fix {
		if err := h.service.FixStorage(c.UserContext()); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to create bucket",
				"details": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"status": "fixed", "bucket": report.Bucket})
	}

	return c.JSON(fiber.Map{"status": "checked", "bucket": report.Bucket, "exists": report.Exists})
}

// HandleDatabaseCheck checks the database schema.
// @Summary Check Database
// @Description Validates that the history and cache tables match their models.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/database [get]
func (h *Handler) HandleDatabaseCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckDatabase()
	if err != nil {
		l.Error("Database check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
