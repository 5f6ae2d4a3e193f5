package retroachievements

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ResponseCache stores raw API response bodies by request key.
type ResponseCache interface {
	// Get returns the cached body for key. ok is false on a miss or when the
	// entry has expired.
	Get(ctx context.Context, key string) (body []byte, ok bool, err error)
	// Set stores body under key.
	Set(ctx context.Context, key string, body []byte) error
}

// CachedResponse is a persisted API response.
type CachedResponse struct {
	Key       string    `gorm:"column:cache_key;primaryKey;size:191"`
	Body      []byte    `gorm:"not null"`
	FetchedAt time.Time `gorm:"index;not null"`
}

// TableName overrides the default table name.
func (CachedResponse) TableName() string {
	return "api_response_cache"
}

// DBCache is a ResponseCache backed by a gorm database.
type DBCache struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

// NewDBCache creates a DBCache whose entries expire after ttl.
func NewDBCache(db *gorm.DB, ttl time.Duration) *DBCache {
	return &DBCache{db: db, ttl: ttl, now: time.Now}
}

// Migrate creates the cache table.
func (c *DBCache) Migrate() error {
	return c.db.AutoMigrate(&CachedResponse{})
}

// Get implements ResponseCache.
func (c *DBCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var row CachedResponse
	err := c.db.WithContext(ctx).Where("cache_key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if c.ttl > 0 && c.now().Sub(row.FetchedAt) > c.ttl {
		return nil, false, nil
	}
	return row.Body, true, nil
}

// Set implements ResponseCache.
func (c *DBCache) Set(ctx context.Context, key string, body []byte) error {
	row := CachedResponse{Key: key, Body: body, FetchedAt: c.now()}
	return c.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
}

// Purge removes every entry older than the TTL, or all entries when all is true.
func (c *DBCache) Purge(ctx context.Context, all bool) (int64, error) {
	q := c.db.WithContext(ctx)
	if all || c.ttl <= 0 {
		q = q.Where("1 = 1")
	} else {
		q = q.Where("fetched_at < ?", c.now().Add(-c.ttl))
	}
	res := q.Delete(&CachedResponse{})
	return res.RowsAffected, res.Error
}
