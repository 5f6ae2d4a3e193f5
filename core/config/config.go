package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"cheevo-checker/core/database"
	"cheevo-checker/core/hashcache"
	"cheevo-checker/core/logger"
	"cheevo-checker/core/reconcile"
	"cheevo-checker/core/server"
	"cheevo-checker/core/storage"
	"cheevo-checker/feature/launchbox"
	"cheevo-checker/feature/rahasher"
	"cheevo-checker/feature/retroachievements"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrConfigNotFound is returned when no config file exists in the search paths.
var ErrConfigNotFound = errors.New("config file not found")

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Launchbox locates the local catalog.
	Launchbox launchbox.Config `mapstructure:"launchbox"`
	// RetroAchievements holds the API credentials and transport settings.
	RetroAchievements retroachievements.Config `mapstructure:"retroachievements"`
	// Hashing locates the external hash tools.
	Hashing rahasher.Config `mapstructure:"hashing"`
	// Checker holds the exclusion switches applied to unmatched titles.
	Checker reconcile.ExclusionConfig `mapstructure:"checker"`
	// Cache selects where computed hashes are persisted.
	Cache hashcache.Config `mapstructure:"cache"`
	// Consoles pairs remote consoles with local platforms.
	Consoles []ConsoleConfig `mapstructure:"consoles"`
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the run history database.
	Database database.Config `mapstructure:"database"`
}

// ConsoleConfig maps one RetroAchievements console to a LaunchBox platform.
type ConsoleConfig struct {
	RCName     string `mapstructure:"rc_name"`
	RCID       int    `mapstructure:"rc_id"`
	LBName     string `mapstructure:"lb_name"`
	LBAlias    string `mapstructure:"lb_alias"`
	ShouldScan *bool  `mapstructure:"should_scan"`
}

// Scan reports whether the console takes part in a run. Unset means yes.
func (c ConsoleConfig) Scan() bool {
	return c.ShouldScan == nil || *c.ShouldScan
}

// LoadConfig loads configuration from the .env file, the config file and
// environment variables. The config file is looked up as dev/config.* first
// and then config.* inside path.
func LoadConfig(path string) (*Config, error) {
	envPath := filepath.Join(path, ".env")
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	v.SetConfigName("config")
	v.AddConfigPath(filepath.Join(path, "dev"))
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w in %s or %s", ErrConfigNotFound, filepath.Join(path, "dev"), path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.Hashing.RAHasherPath == "" && config.Launchbox.Directory != "" {
		config.Hashing.RAHasherPath = filepath.Join(config.Launchbox.Directory, "ThirdParty", "RetroAchievements", "RAHasher.exe")
	}

	return &config, nil
}

// Validate reports every setting a run cannot do without.
func (c *Config) Validate() error {
	var errs []error
	if c.Launchbox.Directory == "" {
		errs = append(errs, errors.New("launchbox.directory is required"))
	} else if err := launchbox.CheckRoot(c.Launchbox.Directory); err != nil {
		errs = append(errs, err)
	}
	if c.RetroAchievements.Username == "" || c.RetroAchievements.APIKey == "" {
		errs = append(errs, errors.New("retroachievements.username and retroachievements.api_key are required"))
	}
	if len(c.Consoles) == 0 {
		errs = append(errs, errors.New("at least one console must be configured"))
	}
	for i, cc := range c.Consoles {
		if cc.RCName == "" && cc.RCID == 0 {
			errs = append(errs, fmt.Errorf("consoles[%d]: rc_name or rc_id is required", i))
		}
		if cc.LBName == "" {
			errs = append(errs, fmt.Errorf("consoles[%d]: lb_name is required", i))
		}
	}
	return errors.Join(errs...)
}

// Partitions builds one partition per configured console. When only is not
// empty, consoles whose rc_name or lb_name is not listed are inactive.
func (c *Config) Partitions(only ...string) []*reconcile.Partition {
	out := make([]*reconcile.Partition, 0, len(c.Consoles))
	for _, cc := range c.Consoles {
		active := cc.Scan()
		if len(only) > 0 {
			active = active && selected(only, cc.RCName, cc.LBName)
		}
		out = append(out, &reconcile.Partition{
			RemoteID:   cc.RCID,
			RemoteName: cc.RCName,
			LocalName:  cc.LBName,
			LocalAlias: cc.LBAlias,
			Active:     active,
		})
	}
	return out
}

func selected(only []string, names ...string) bool {
	for _, o := range only {
		for _, n := range names {
			if n != "" && strings.EqualFold(o, n) {
				return true
			}
		}
	}
	return false
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		switch field.Type.Kind() {
		case reflect.Struct:
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		case reflect.Slice, reflect.Map:
			// lists only come from the config file
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
