package report

import (
	"context"
	"fmt"

	"cheevo-checker/core/reconcile"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// RunFunc performs one reconciliation run.
type RunFunc func(ctx context.Context) (*reconcile.Report, error)

// Service triggers runs and serves the run history.
type Service struct {
	run    RunFunc
	repo   *Repository
	logger *zap.Logger
	group  singleflight.Group
}

// NewService creates a Service.
func NewService(run RunFunc, repo *Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{run: run, repo: repo, logger: logger}
}

// Trigger performs a run and stores it. Callers arriving while a run is in
// progress share its result; shared reports whether that happened.
func (s *Service) Trigger(ctx context.Context) (run *Run, shared bool, err error) {
	v, err, shared := s.group.Do("run", func() (any, error) {
		// The run outlives the caller that started it, since others may share it.
		ctx := context.WithoutCancel(ctx)
		report, err := s.run(ctx)
		if err != nil {
			return nil, err
		}
		run := FromReport(report)
		if err := s.repo.Save(ctx, run); err != nil {
			return nil, fmt.Errorf("save run %s: %w", run.ID, err)
		}
		s.logger.Info("Run stored",
			zap.String("run_id", run.ID),
			zap.Int("missing", run.Missing),
			zap.Int("anomalies", run.Anomalies),
		)
		return run, nil
	})
	if err != nil {
		return nil, shared, err
	}
	return v.(*Run), shared, nil
}

// List returns the most recent runs.
func (s *Service) List(ctx context.Context, limit int) ([]Run, error) {
	return s.repo.List(ctx, limit)
}

// Get returns a run with its details.
func (s *Service) Get(ctx context.Context, id string, includeSkipped bool) (*Run, error) {
	return s.repo.Get(ctx, id, includeSkipped)
}
