package report

import (
	"time"

	"cheevo-checker/core/reconcile"
)

// Run is a persisted reconciliation run with its summary counters.
type Run struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	StartedAt   time.Time       `gorm:"index" json:"started_at"`
	FinishedAt  time.Time       `json:"finished_at"`
	Partitions  int             `json:"partitions"`
	Inactive    int             `json:"inactive"`
	RemoteGames int             `json:"remote_games"`
	LocalHashes int             `json:"local_hashes"`
	NewHashes   int             `json:"new_hashes"`
	Found       int             `json:"found"`
	Missing     int             `json:"missing"`
	Skipped     int             `json:"skipped"`
	Unhashed    int             `json:"unhashed"`
	Anomalies   int             `json:"anomalies"`
	Consoles    []ConsoleResult `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE" json:"consoles,omitempty"`
	Games       []MissingGame   `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE" json:"games,omitempty"`
	Duplicates  []Anomaly       `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE" json:"duplicates,omitempty"`
}

// ConsoleResult holds the counters of one partition in a run.
type ConsoleResult struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	RunID       string `gorm:"index;size:36" json:"-"`
	Console     string `json:"console"`
	ConsoleID   int    `json:"console_id"`
	Active      bool   `json:"active"`
	Error       string `json:"error,omitempty"`
	RemoteGames int    `json:"remote_games"`
	Found       int    `json:"found"`
	Missing     int    `json:"missing"`
	Skipped     int    `json:"skipped"`
	Unhashed    int    `json:"unhashed"`
	NewHashes   int    `json:"new_hashes"`
	CacheHits   int    `json:"cache_hits"`
	Failures    int    `json:"hash_failures"`
}

// MissingGame is a remote game without a local match. Skipped rows were
// filtered by an exclusion rule.
type MissingGame struct {
	ID          uint                      `gorm:"primaryKey" json:"-"`
	RunID       string                    `gorm:"index;size:36" json:"-"`
	Console     string                    `json:"console"`
	ConsoleID   int                       `json:"console_id"`
	GameID      int                       `json:"game_id"`
	Title       string                    `json:"title"`
	Skipped     bool                      `gorm:"index" json:"skipped"`
	Rule        string                    `json:"rule,omitempty"`
	Candidates  []reconcile.HashCandidate `gorm:"serializer:json" json:"candidates"`
	LookupError string                    `json:"lookup_error,omitempty"`
}

// Anomaly is a hash claimed by two remote games of the same console.
type Anomaly struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	RunID       string `gorm:"index;size:36" json:"-"`
	ConsoleID   int    `json:"console_id"`
	Console     string `json:"console"`
	Hash        string `json:"hash"`
	FirstGameID int    `json:"first_game_id"`
	FirstTitle  string `json:"first_title"`
	GameID      int    `json:"game_id"`
	Title       string `json:"title"`
}

// TableName overrides the default table name.
func (Anomaly) TableName() string {
	return "run_anomalies"
}

// FromReport converts an engine report into its persisted form.
func FromReport(r *reconcile.Report) *Run {
	run := &Run{
		ID:          r.RunID,
		StartedAt:   r.StartedAt,
		FinishedAt:  r.FinishedAt,
		Partitions:  r.Summary.Partitions,
		Inactive:    r.Summary.Inactive,
		RemoteGames: r.Summary.RemoteGames,
		LocalHashes: r.Summary.LocalHashes,
		NewHashes:   r.Summary.NewHashes,
		Found:       r.Summary.Found,
		Missing:     r.Summary.Missing,
		Skipped:     r.Summary.Skipped,
		Unhashed:    r.Summary.Unhashed,
		Anomalies:   r.Summary.Anomalies,
	}

	for _, p := range r.Partitions {
		run.Consoles = append(run.Consoles, ConsoleResult{
			Console:     p.Console,
			ConsoleID:   p.ConsoleID,
			Active:      p.Active,
			Error:       p.Error,
			RemoteGames: p.RemoteGames,
			Found:       p.Found,
			Missing:     len(p.Missing),
			Skipped:     len(p.Skipped),
			Unhashed:    p.Unhashed,
			NewHashes:   p.Local.NewHashes,
			CacheHits:   p.Local.CacheHits,
			Failures:    p.Local.Failures,
		})
		for _, m := range p.Missing {
			run.Games = append(run.Games, MissingGame{
				Console:     p.Console,
				ConsoleID:   p.ConsoleID,
				GameID:      m.Game.ID,
				Title:       m.Game.Title,
				Candidates:  m.Candidates,
				LookupError: m.LookupError,
			})
		}
		for _, s := range p.Skipped {
			run.Games = append(run.Games, MissingGame{
				Console:    p.Console,
				ConsoleID:  p.ConsoleID,
				GameID:     s.Game.ID,
				Title:      s.Game.Title,
				Skipped:    true,
				Rule:       s.Rule,
				Candidates: []reconcile.HashCandidate{},
			})
		}
	}

	for _, a := range r.Anomalies {
		run.Duplicates = append(run.Duplicates, Anomaly{
			ConsoleID:   a.ConsoleID,
			Console:     a.ConsoleName,
			Hash:        a.Hash,
			FirstGameID: a.FirstGameID,
			FirstTitle:  a.FirstTitle,
			GameID:      a.GameID,
			Title:       a.Title,
		})
	}

	return run
}
