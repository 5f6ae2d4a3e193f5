package launchbox

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds configuration for the LaunchBox installation.
type Config struct {
	// Directory is the LaunchBox root holding Data/Platforms.xml.
	Directory string `mapstructure:"directory" default:""`
	// PathRewrites remaps launch path prefixes before hashing, for libraries
	// whose catalog paths point at another machine or drive letter.
	PathRewrites []PathRewrite `mapstructure:"path_rewrites"`
}

// PathRewrite replaces the From prefix of a launch path with To.
type PathRewrite struct {
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

// CheckRoot reports an error when dir is not a LaunchBox root with a readable
// Data/Platforms.xml.
func CheckRoot(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("launchbox directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("launchbox directory %s is not a directory", dir)
	}
	platforms := filepath.Join(dir, "Data", "Platforms.xml")
	if _, err := os.Stat(platforms); err != nil {
		return fmt.Errorf("launchbox platform list %s: %w", platforms, err)
	}
	return nil
}
