package retroachievements

import "time"

// Config holds configuration for the RetroAchievements web API.
type Config struct {
	// Username is sent as the z query parameter.
	Username string `mapstructure:"username" default:""`
	// APIKey is sent as the y query parameter.
	APIKey string `mapstructure:"api_key" default:""`
	// BaseURL is the API root, ending with a slash.
	BaseURL string `mapstructure:"base_url" default:"https://retroachievements.org/API/"`
	// Retries is the total number of attempts per request.
	Retries int `mapstructure:"retries" default:"5"`
	// RetryDelay is the pause between attempts.
	RetryDelay time.Duration `mapstructure:"retry_delay" default:"1s"`
	// RateLimit is the maximum number of requests per second.
	RateLimit float64 `mapstructure:"rate_limit" default:"3"`
	// TimeoutSeconds bounds a single HTTP attempt.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// CacheTTL is how long console and game list responses are reused.
	CacheTTL time.Duration `mapstructure:"cache_ttl" default:"24h"`
}
