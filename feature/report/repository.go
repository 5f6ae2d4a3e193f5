package report

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrRunNotFound is returned by Get for an unknown run id.
var ErrRunNotFound = errors.New("run not found")

// Repository persists runs through gorm.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a Repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the run history tables.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&Run{}, &ConsoleResult{}, &MissingGame{}, &Anomaly{})
}

// Save stores run together with its consoles, games and anomalies.
func (r *Repository) Save(ctx context.Context, run *Run) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(run).Error
	})
}

// List returns the most recent runs without their detail rows.
func (r *Repository) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []Run
	err := r.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, err
	}
	return runs, nil
}

// Get returns one run with its detail rows. Skipped games are only loaded
// when includeSkipped is true.
func (r *Repository) Get(ctx context.Context, id string, includeSkipped bool) (*Run, error) {
	q := r.db.WithContext(ctx).
		Preload("Consoles", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Duplicates", func(db *gorm.DB) *gorm.DB { return db.Order("id") })
	if includeSkipped {
		q = q.Preload("Games", func(db *gorm.DB) *gorm.DB { return db.Order("id") })
	} else {
		q = q.Preload("Games", func(db *gorm.DB) *gorm.DB { return db.Where("skipped = ?", false).Order("id") })
	}

	var run Run
	if err := q.First(&run, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRunNotFound
		}
		return nil, err
	}
	return &run, nil
}
