package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// playlistExtensions are launch path suffixes that are not directly hashable.
var playlistExtensions = []string{".m3u"}

// LocalBuilder builds the local hash index of a partition and extends the global set.
type LocalBuilder struct {
	catalog LocalCatalog
	hasher  Hasher
	cache   HashCacheStore
	resolve PathResolver
	logger  *zap.Logger
}

// NewLocalBuilder creates a LocalBuilder. A nil resolver leaves launch paths untouched.
func NewLocalBuilder(catalog LocalCatalog, hasher Hasher, cache HashCacheStore, resolve PathResolver, logger *zap.Logger) *LocalBuilder {
	if resolve == nil {
		resolve = func(p string) string { return p }
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalBuilder{
		catalog: catalog,
		hasher:  hasher,
		cache:   cache,
		resolve: resolve,
		logger:  logger,
	}
}

// Build indexes the partition's local catalog into p.Local and adds every local
// hash to global. A partition whose platform data cannot be located is marked
// inactive and the ErrPlatformNotFound error is returned.
func (b *LocalBuilder) Build(ctx context.Context, p *Partition, global HashSet) (LocalStats, error) {
	var stats LocalStats
	l := b.logger.With(zap.String("platform", p.Label()))

	catalog, err := b.loadCatalog(p)
	if err != nil {
		p.Active = false
		return stats, err
	}

	l.Info("Loaded platform data",
		zap.Int("games", len(catalog.Games)),
		zap.Int("additional_applications", len(catalog.Additional)),
	)

	index := &LocalIndex{
		Catalog: catalog,
		Hashes:  make(map[string]int),
		IDs:     make(map[string]int),
	}

	// Step 1: primary entries with precomputed hashes
	for i, g := range catalog.Games {
		if g.ID != "" {
			index.IDs[g.ID] = i
		}
		if g.Hash == "" {
			continue
		}
		if !ValidHash(g.Hash) {
			l.Warn("Hash appears to be invalid", zap.String("title", g.Title), zap.String("hash", g.Hash))
			continue
		}
		h := NormalizeHash(g.Hash)
		index.Hashes[h] = i
		stats.PrimaryHashes++
		if !global.Add(h) {
			l.Warn("Hash already exists in local lookup", zap.String("title", g.Title), zap.String("hash", h))
		}
	}

	// Step 2: secondary entries, through the hash cache
	cached, loadErr := b.cache.Load(ctx, p.LocalName)
	if loadErr != nil {
		l.Error("Failed to load cached hashes, stored cache left untouched", zap.Error(loadErr))
		cached = nil
	}
	index.Secondary = sanitizeCache(cached, l)
	if len(index.Secondary) > 0 {
		l.Info("Loaded cached hashes", zap.Int("count", len(index.Secondary)))
	}

	for _, a := range catalog.Additional {
		h, ok := b.secondaryHash(ctx, p, index, a, &stats, l)
		if !ok {
			continue
		}
		// Step 3: duplicates are expected here and not reported
		global.Add(h)
		stats.SecondaryHashes++
	}

	p.Local = index

	// Step 4: rewrite the cache so it mirrors memory, unless it could not be read
	if loadErr != nil {
		return stats, fmt.Errorf("load hash cache for %s: %w", p.Label(), loadErr)
	}
	if err := b.cache.Save(ctx, p.LocalName, index.Secondary); err != nil {
		l.Error("Failed to persist cached hashes", zap.Error(err))
		return stats, fmt.Errorf("persist hash cache for %s: %w", p.Label(), err)
	}

	return stats, nil
}

func (b *LocalBuilder) loadCatalog(p *Partition) (*PlatformCatalog, error) {
	catalog, err := b.catalog.PlatformData(p.LocalName)
	if err == nil {
		return catalog, nil
	}
	if p.LocalAlias != "" && errors.Is(err, ErrPlatformNotFound) {
		catalog, err = b.catalog.PlatformData(p.LocalAlias)
		if err == nil {
			return catalog, nil
		}
	}
	return nil, fmt.Errorf("load platform %s: %w", p.Label(), err)
}

// secondaryHash resolves the hash of one secondary entry, consulting the cache
// before computing it. ok is false when the entry is skipped or unresolvable.
func (b *LocalBuilder) secondaryHash(ctx context.Context, p *Partition, index *LocalIndex, a SecondaryEntry, stats *LocalStats, l *zap.Logger) (string, bool) {
	path := a.ApplicationPath
	if path == "" {
		return "", false
	}

	if isPlaylist(path) {
		l.Debug("Skipping additional application with playlist extension", zap.String("path", path))
		return "", false
	}

	if a.GameID != "" {
		if gi, ok := index.IDs[a.GameID]; ok && index.Catalog.Games[gi].ApplicationPath == path {
			l.Debug("Skipping additional application sharing the game's file", zap.String("path", path))
			return "", false
		}
	}

	if h, ok := index.Secondary[path]; ok {
		stats.CacheHits++
		return h, true
	}

	h, err := b.hasher.Hash(ctx, p.RemoteID, b.resolve(path))
	if err != nil {
		stats.Failures++
		l.Warn("Failed to hash additional application",
			zap.String("title", a.Title),
			zap.String("path", path),
			zap.Error(err),
		)
		return "", false
	}
	if !ValidHash(h) {
		stats.Failures++
		l.Warn("Hash rejected", zap.String("title", a.Title), zap.String("hash", h))
		return "", false
	}

	h = NormalizeHash(h)
	index.Secondary[path] = h
	stats.NewHashes++
	l.Info("New hash", zap.String("path", path), zap.String("hash", h))
	return h, true
}

// sanitizeCache drops malformed cached values so they are recomputed.
func sanitizeCache(entries map[string]string, l *zap.Logger) map[string]string {
	out := make(map[string]string, len(entries))
	for path, h := range entries {
		if !ValidHash(h) {
			l.Warn("Dropping malformed cached hash", zap.String("path", path), zap.String("hash", h))
			continue
		}
		out[path] = NormalizeHash(h)
	}
	return out
}

func isPlaylist(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range playlistExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
