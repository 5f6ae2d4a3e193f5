package reconcile

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"
)

// mockHasher is a testify mock for Hasher.
type mockHasher struct {
	mock.Mock
}

func (m *mockHasher) Hash(ctx context.Context, consoleID int, path string) (string, error) {
	args := m.Called(ctx, consoleID, path)
	return args.String(0), args.Error(1)
}

// mockRemote is a testify mock for RemoteCatalog.
type mockRemote struct {
	mock.Mock
}

func (m *mockRemote) ConsoleIDs(ctx context.Context) ([]Console, error) {
	args := m.Called(ctx)
	if c, ok := args.Get(0).([]Console); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRemote) GameList(ctx context.Context, consoleID int, withAchievements, withHashes bool) ([]RemoteGame, error) {
	args := m.Called(ctx, consoleID, withAchievements, withHashes)
	if g, ok := args.Get(0).([]RemoteGame); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRemote) GameHashes(ctx context.Context, gameID int) ([]HashCandidate, error) {
	args := m.Called(ctx, gameID)
	if c, ok := args.Get(0).([]HashCandidate); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

// fakeCatalog serves platform data from memory.
type fakeCatalog struct {
	platforms map[string]*PlatformCatalog
}

func (f *fakeCatalog) PlatformData(name string) (*PlatformCatalog, error) {
	if p, ok := f.platforms[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrPlatformNotFound)
}

// memCache is an in-memory HashCacheStore that records saves.
type memCache struct {
	data  map[string]map[string]string
	saves   int
	err     error
	loadErr error
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string]map[string]string)}
}

func (c *memCache) Load(ctx context.Context, partition string) (map[string]string, error) {
	if c.loadErr != nil {
		return nil, c.loadErr
	}
	out := make(map[string]string)
	for k, v := range c.data[partition] {
		out[k] = v
	}
	return out, nil
}

func (c *memCache) Save(ctx context.Context, partition string, entries map[string]string) error {
	c.saves++
	if c.err != nil {
		return c.err
	}
	cp := make(map[string]string, len(entries))
	for k, v := range entries {
		cp[k] = v
	}
	c.data[partition] = cp
	return nil
}

const (
	hashA = "AABBCCDDEEFF00112233445566778899"
	hashB = "0123456789abcdef0123456789abcdef"
	hashC = "fedcba9876543210fedcba9876543210"
	hashD = "11111111111111111111111111111111"
)
