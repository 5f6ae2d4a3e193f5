package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the log output encoding (console, json).
	Format string `mapstructure:"format" default:"console"`
	// File additionally writes log entries to this path. Long checks are
	// easier to review from a file than from the terminal.
	File string `mapstructure:"file" default:""`
}
