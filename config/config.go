package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration from file and environment. The config file is
// optional; credentials alone, taken from TMDB_API_TOKEN and GENAI_KEY, are
// a valid configuration. An explicitly given path must exist.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Credentials are expected in the environment
	v.BindEnv("tmdb.api_token", "TMDB_API_TOKEN")
	v.BindEnv("gemini.api_key", "GENAI_KEY")

	if configPath != "" {
		v.SetConfigFile(configPath)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".moviectl"))
		}

		// Check /etc
		v.AddConfigPath("/etc/moviectl/")

		if err := v.ReadInConfig(); err != nil {
			// Absence of a config file is fine; the environment may carry
			// everything we need.
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Credential keys need defaults so the env bindings surface on unmarshal
	v.SetDefault("tmdb.api_token", "")
	v.SetDefault("gemini.api_key", "")

	// TMDB defaults
	v.SetDefault("tmdb.base_url", "https://api.themoviedb.org/3")
	v.SetDefault("tmdb.language", "en-US")

	// Gemini defaults
	v.SetDefault("gemini.model", "gemini-1.5-flash")

	// Watchlist defaults: empty path selects the per-user location
	v.SetDefault("watchlist.path", "")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.TMDB.APIToken == "" {
		return fmt.Errorf("TMDB API token is required: set TMDB_API_TOKEN or tmdb.api_token")
	}

	if cfg.Gemini.APIKey == "" {
		return fmt.Errorf("Gemini API key is required: set GENAI_KEY or gemini.api_key")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
