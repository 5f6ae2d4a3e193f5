package report

import (
	"errors"

	"cheevo-checker/core/logger"
	"cheevo-checker/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the run history.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the run routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/runs")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleTrigger)
	group.Get("/:id", h.HandleGet)
}

// HandleList lists recent runs.
// @Summary List Runs
// @Description Returns the most recent reconciliation runs with their summary counters.
// @Tags runs
// @Produce json
// @Param limit query int false "Maximum number of runs" default(20)
// @Success 200 {array} report.Run
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /runs [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	runs, err := h.service.List(c.UserContext(), utils.ToInt(c.Query("limit")))
	if err != nil {
		l.Error("Failed to list runs", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(runs)
}

// HandleGet returns one run.
// @Summary Get Run
// @Description Returns a run with per-console counters, missing games with their possible hashes, and duplicate hash anomalies.
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Param skipped query boolean false "Include titles filtered by exclusion rules"
// @Success 200 {object} report.Run
// @Failure 404 {object} map[string]string "Run not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /runs/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	run, err := h.service.Get(c.UserContext(), c.Params("id"), utils.ToBool(c.Query("skipped")))
	if errors.Is(err, ErrRunNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Failed to load run", zap.String("run_id", c.Params("id")), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(run)
}

// HandleTrigger runs a reconciliation.
// @Summary Trigger Run
// @Description Runs a full reconciliation and stores it. Concurrent requests share a single run. This operation may take a long time.
// @Tags runs
// @Produce json
// @Success 201 {object} report.Run
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /runs [post]
func (h *Handler) HandleTrigger(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering reconciliation run")

	run, shared, err := h.service.Trigger(c.UserContext())
	if err != nil {
		l.Error("Run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Run completed", zap.String("run_id", run.ID), zap.Bool("shared", shared))
	return c.Status(fiber.StatusCreated).JSON(run)
}
