package config

// Config represents the complete configuration structure
type Config struct {
	TMDB      TMDBConfig      `mapstructure:"tmdb"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Watchlist WatchlistConfig `mapstructure:"watchlist"`
	Filter    FilterConfig    `mapstructure:"filter"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// TMDBConfig holds catalog API connection details. The token comes from the
// TMDB_API_TOKEN environment variable unless set in the config file.
type TMDBConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	APIToken string `mapstructure:"api_token"`
	Language string `mapstructure:"language"`
}

// GeminiConfig holds generative-text API details. The key comes from the
// GENAI_KEY environment variable unless set in the config file.
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// WatchlistConfig controls where the watchlist file lives. An empty path
// selects the per-user default location.
type WatchlistConfig struct {
	Path string `mapstructure:"path"`
}

// FilterConfig contains named filter presets for list-watchlist
type FilterConfig struct {
	Presets map[string]string `mapstructure:"presets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
