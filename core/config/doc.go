// Package config provides configuration management for cheevo-checker.
//
// It utilizes Viper for loading configuration from a config file (config.yaml,
// also json or toml), a .env file and environment variables. A config file in
// the dev/ directory takes precedence over the one in the working directory,
// which keeps personal settings out of version control.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Launchbox: installation directory and launch path rewrites
//   - RetroAchievements: API credentials, retries, rate limit, response cache TTL
//   - Hashing: RAHasher and DolphinTool locations
//   - Checker: skip_* switches for demos, hacks, homebrew, prototypes, subsets, unlicensed
//   - Cache: hash cache backend (file or storage)
//   - Consoles: rc_name/rc_id, lb_name/lb_alias and should_scan per console
//   - Server, Storage, Log, Database: ambient settings
//
// Environment variables override nested keys with dots replaced by underscores,
// e.g. RETROACHIEVEMENTS_API_KEY or CHECKER_SKIP_DEMO.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	partitions := cfg.Partitions()
package config
