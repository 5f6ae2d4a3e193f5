package rahasher

// Config holds the locations of the external hashing tools.
type Config struct {
	// RAHasherPath is the RAHasher executable. Defaults to the copy bundled
	// with LaunchBox under ThirdParty/RetroAchievements.
	RAHasherPath string `mapstructure:"rahasher_path" default:""`
	// DolphinToolPath is the DolphinTool executable used for disc consoles.
	DolphinToolPath string `mapstructure:"dolphintool_path" default:""`
	// TimeoutSeconds bounds a single hash computation.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"600"`
}
