package reconcile

import (
	"context"
	"errors"
)

var (
	// ErrPlatformNotFound is returned by a LocalCatalog when neither the platform
	// nor its data file can be located.
	ErrPlatformNotFound = errors.New("platform not found")

	// ErrIndexNotBuilt is returned when a partition index is read before its builder ran.
	ErrIndexNotBuilt = errors.New("partition index not built")
)

// LocalCatalog reads platform data from the local game-library catalog.
type LocalCatalog interface {
	// PlatformData returns the typed catalog of a platform, resolving either the
	// canonical platform name or its alias. Implementations return an error
	// wrapping ErrPlatformNotFound when the platform cannot be located.
	PlatformData(name string) (*PlatformCatalog, error)
}

// RemoteCatalog is the achievement-tracking catalog.
type RemoteCatalog interface {
	// ConsoleIDs returns every console known to the remote system.
	ConsoleIDs(ctx context.Context) ([]Console, error)

	// GameList returns the games of a console, optionally only those with
	// achievements and optionally with their known hashes.
	GameList(ctx context.Context, consoleID int, withAchievements, withHashes bool) ([]RemoteGame, error)

	// GameHashes returns the hashes linked to a single game.
	GameHashes(ctx context.Context, gameID int) ([]HashCandidate, error)
}

// AlternateLookup fetches the alternate hash candidates of a single remote game.
type AlternateLookup interface {
	GameHashes(ctx context.Context, gameID int) ([]HashCandidate, error)
}

// Hasher computes the canonical content hash of a local file.
type Hasher interface {
	// Hash returns the hash of the file at path for the given remote console.
	Hash(ctx context.Context, consoleID int, path string) (string, error)
}

// HashCacheStore persists the per-partition hash cache (launch path -> hash).
type HashCacheStore interface {
	// Load returns the cache of a partition. A missing cache is an empty map.
	Load(ctx context.Context, partition string) (map[string]string, error)

	// Save replaces the whole cache of a partition.
	Save(ctx context.Context, partition string, entries map[string]string) error
}

// PathResolver maps a catalog launch path to the path handed to the Hasher.
type PathResolver func(string) string
