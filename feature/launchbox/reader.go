package launchbox

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"cheevo-checker/core/reconcile"
)

// Reader loads platform metadata from a LaunchBox installation. Parsed files
// are memoized for the lifetime of the Reader.
type Reader struct {
	dir string

	mu        sync.Mutex
	platforms []Platform
	data      map[string]*reconcile.PlatformCatalog
}

var _ reconcile.LocalCatalog = (*Reader)(nil)

// NewReader creates a Reader for the LaunchBox root dir.
func NewReader(dir string) *Reader {
	return &Reader{dir: dir, data: make(map[string]*reconcile.PlatformCatalog)}
}

// Platforms returns the entries of Data/Platforms.xml.
func (r *Reader) Platforms() ([]Platform, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadPlatforms()
}

// PlatformData returns the games and additional applications of the platform
// whose Name, or failing that whose ScrapeAs, equals name.
func (r *Reader) PlatformData(name string) (*reconcile.PlatformCatalog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	platforms, err := r.loadPlatforms()
	if err != nil {
		return nil, err
	}

	resolved, ok := resolve(platforms, name)
	if !ok {
		return nil, fmt.Errorf("%q not listed in Platforms.xml: %w", name, reconcile.ErrPlatformNotFound)
	}

	if catalog, ok := r.data[resolved]; ok {
		return catalog, nil
	}

	catalog, err := r.loadPlatform(resolved)
	if err != nil {
		return nil, err
	}
	r.data[resolved] = catalog
	return catalog, nil
}

func (r *Reader) loadPlatforms() ([]Platform, error) {
	if r.platforms != nil {
		return r.platforms, nil
	}

	var f platformsFile
	if err := decodeFile(filepath.Join(r.dir, "Data", "Platforms.xml"), &f); err != nil {
		return nil, fmt.Errorf("load platform list: %w", err)
	}
	if f.Platforms == nil {
		f.Platforms = []Platform{}
	}
	r.platforms = f.Platforms
	return r.platforms, nil
}

func (r *Reader) loadPlatform(name string) (*reconcile.PlatformCatalog, error) {
	path := filepath.Join(r.dir, "Data", "Platforms", name+".xml")

	var f platformFile
	if err := decodeFile(path, &f); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, reconcile.ErrPlatformNotFound)
		}
		return nil, fmt.Errorf("load platform %s: %w", name, err)
	}

	catalog := &reconcile.PlatformCatalog{
		Name:       name,
		Games:      make([]reconcile.CatalogEntry, 0, len(f.Games)),
		Additional: make([]reconcile.SecondaryEntry, 0, len(f.Additional)),
	}
	for _, g := range f.Games {
		catalog.Games = append(catalog.Games, reconcile.CatalogEntry{
			ID:              strings.TrimSpace(g.ID),
			Title:           g.Title,
			ApplicationPath: g.ApplicationPath,
			Hash:            strings.TrimSpace(g.RetroAchievementsHash),
			Platform:        g.Platform,
		})
	}
	for _, a := range f.Additional {
		catalog.Additional = append(catalog.Additional, reconcile.SecondaryEntry{
			ID:              strings.TrimSpace(a.ID),
			GameID:          strings.TrimSpace(a.GameID),
			Title:           a.Name,
			ApplicationPath: a.ApplicationPath,
		})
	}
	return catalog, nil
}

func resolve(platforms []Platform, name string) (string, bool) {
	for _, p := range platforms {
		if p.Name == name {
			return p.Name, true
		}
	}
	for _, p := range platforms {
		if p.ScrapeAs != "" && p.ScrapeAs == name {
			return p.Name, true
		}
	}
	return "", false
}

func decodeFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := xml.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
