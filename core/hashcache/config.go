package hashcache

// Backend names accepted by Config.Backend.
const (
	BackendFile    = "file"
	BackendStorage = "storage"
)

// Config holds configuration for hash cache persistence.
type Config struct {
	// Backend selects where cache files live: "file" or "storage".
	Backend string `mapstructure:"backend" default:"file"`
	// HashesDir is the directory of the file backend.
	HashesDir string `mapstructure:"hashes_dir" default:"hashes"`
	// Prefix is the object key prefix of the storage backend.
	Prefix string `mapstructure:"prefix" default:"hashes"`
}
