package reconcile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reconcile computes the unmatched remote games of a partition against the
// global set of local hashes. Unmatched titles hit by an enabled rule are
// skipped; the rest are reported in catalog order together with their
// alternate hash candidates when lookup is non-nil. It holds no state and
// is idempotent given identical inputs.
func Reconcile(ctx context.Context, global HashSet, p *Partition, rules Rules, lookup AlternateLookup) (PartitionReport, error) {
	report := PartitionReport{
		Console:   p.Label(),
		ConsoleID: p.RemoteID,
		Active:    p.Active,
		Missing:   []MissingGame{},
		Skipped:   []SkippedGame{},
	}
	if p.Remote == nil {
		return report, fmt.Errorf("reconcile %s: %w", p.Label(), ErrIndexNotBuilt)
	}

	report.RemoteGames = len(p.Remote.Games)

	for _, g := range p.Remote.Games {
		if len(g.Hashes) == 0 {
			report.Unhashed++
			continue
		}

		if isFound(global, g.Hashes) {
			report.Found++
			continue
		}

		if rule, ok := rules.Match(g.Title); ok {
			report.Skipped = append(report.Skipped, SkippedGame{Game: g, Rule: rule.Name})
			continue
		}

		missing := MissingGame{Game: g, Candidates: []HashCandidate{}}
		if lookup != nil {
			candidates, err := lookup.GameHashes(ctx, g.ID)
			if err != nil {
				missing.LookupError = err.Error()
			} else if candidates != nil {
				missing.Candidates = candidates
			}
		}
		report.Missing = append(report.Missing, missing)
	}

	return report, nil
}

func isFound(global HashSet, hashes []string) bool {
	for _, h := range hashes {
		if global.Has(h) {
			return true
		}
	}
	return false
}

// Engine runs the full reconciliation over a set of partitions.
type Engine struct {
	remote  RemoteCatalog
	local   *LocalBuilder
	builder *RemoteBuilder
	rules   Rules
	logger  *zap.Logger
	now     func() time.Time
}

// NewEngine creates an Engine. The remote catalog serves console ids, game lists
// and alternate hash lookups.
func NewEngine(remote RemoteCatalog, local *LocalBuilder, rules Rules, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		remote:  remote,
		local:   local,
		builder: NewRemoteBuilder(remote, logger),
		rules:   rules,
		logger:  logger,
		now:     time.Now,
	}
}

// Run reconciles every active partition. Remote and local indexes of all
// partitions are built before any matching so that the global hash set is
// complete. Only a failure to list remote consoles aborts the run; other
// failures drop the affected partition.
func (e *Engine) Run(ctx context.Context, partitions []*Partition) (*Report, error) {
	report := &Report{
		RunID:      uuid.NewString(),
		StartedAt:  e.now(),
		Partitions: make([]PartitionReport, len(partitions)),
		Anomalies:  []Anomaly{},
	}
	for i, p := range partitions {
		report.Partitions[i] = PartitionReport{
			Console:   p.Label(),
			ConsoleID: p.RemoteID,
			Active:    p.Active,
			Missing:   []MissingGame{},
			Skipped:   []SkippedGame{},
		}
	}

	drop := func(i int, err error) {
		partitions[i].Active = false
		report.Partitions[i].Active = false
		report.Partitions[i].Error = err.Error()
		e.logger.Error("Partition dropped from run", zap.String("console", partitions[i].Label()), zap.Error(err))
	}

	// Step 0: resolve remote console ids
	if err := e.resolveConsoles(ctx, partitions, drop); err != nil {
		return nil, err
	}

	// Step 1: remote indexes
	for i, p := range partitions {
		if !p.Active {
			continue
		}
		report.Partitions[i].ConsoleID = p.RemoteID
		anomalies, err := e.builder.Build(ctx, p)
		if err != nil {
			drop(i, err)
			continue
		}
		report.Anomalies = append(report.Anomalies, anomalies...)
	}

	// Step 2: local indexes, all persisted before matching
	global := NewHashSet()
	for i, p := range partitions {
		if !p.Active {
			continue
		}
		stats, err := e.local.Build(ctx, p, global)
		report.Partitions[i].Local = stats
		if err != nil {
			if !p.Active {
				drop(i, err)
				continue
			}
			e.logger.Error("Local indexing finished with errors", zap.String("console", p.Label()), zap.Error(err))
		}
	}

	// Step 3: matching
	for i, p := range partitions {
		if !p.Active {
			continue
		}
		e.logger.Info("Checking console", zap.String("console", p.Label()))
		pr, err := Reconcile(ctx, global, p, e.rules, e.remote)
		if err != nil {
			drop(i, err)
			continue
		}
		pr.Local = report.Partitions[i].Local
		for _, m := range pr.Missing {
			if m.LookupError != "" {
				e.logger.Warn("Failed to look up alternate hashes",
					zap.Int("game_id", m.Game.ID),
					zap.String("title", m.Game.Title),
					zap.String("error", m.LookupError),
				)
			}
		}
		for _, s := range pr.Skipped {
			e.logger.Debug("Skipped remote entry due to filtering", zap.String("title", s.Game.Title), zap.String("rule", s.Rule))
		}
		report.Partitions[i] = pr
	}

	report.FinishedAt = e.now()
	report.Summary = summarize(report, global)
	return report, nil
}

func (e *Engine) resolveConsoles(ctx context.Context, partitions []*Partition, drop func(int, error)) error {
	needed := false
	for _, p := range partitions {
		if p.Active && p.RemoteID == 0 {
			needed = true
			break
		}
	}
	if !needed {
		return nil
	}

	consoles, err := e.remote.ConsoleIDs(ctx)
	if err != nil {
		return fmt.Errorf("fetch console ids: %w", err)
	}
	e.logger.Info("Requested console id data", zap.Int("systems", len(consoles)))

	for i, p := range partitions {
		if !p.Active || p.RemoteID != 0 {
			continue
		}
		id, ok := findConsole(consoles, p.RemoteName)
		if !ok {
			drop(i, fmt.Errorf("console %q not found in remote catalog", p.RemoteName))
			continue
		}
		p.RemoteID = id
	}
	return nil
}

func findConsole(consoles []Console, name string) (int, bool) {
	for _, c := range consoles {
		if c.Name == name {
			return c.ID, true
		}
	}
	for _, c := range consoles {
		if strings.EqualFold(c.Name, name) {
			return c.ID, true
		}
	}
	return 0, false
}

func summarize(report *Report, global HashSet) Summary {
	s := Summary{
		Partitions:  len(report.Partitions),
		LocalHashes: global.Len(),
		Anomalies:   len(report.Anomalies),
	}
	for _, pr := range report.Partitions {
		if !pr.Active {
			s.Inactive++
			continue
		}
		s.RemoteGames += pr.RemoteGames
		s.NewHashes += pr.Local.NewHashes
		s.Found += pr.Found
		s.Missing += len(pr.Missing)
		s.Skipped += len(pr.Skipped)
		s.Unhashed += pr.Unhashed
	}
	return s
}
