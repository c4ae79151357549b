package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server Server
	Gemini Gemini
	Quota  Quota
	Safety Safety
}

// Server holds server-related configuration
type Server struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Gemini holds AI API configuration
type Gemini struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// Quota holds per-client scan quota configuration
type Quota struct {
	DailyLimit int           `mapstructure:"daily_limit"`
	Window     time.Duration `mapstructure:"window"`
}

// Safety holds safety-override configuration
type Safety struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/healthscore/")

	// Environment variable settings
	v.SetEnvPrefix("HEALTHSCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// api_key has no default, so it must be bound explicitly for Unmarshal to see it
	_ = v.BindEnv("gemini.api_key")

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"chrome-extension://*"})

	// Gemini defaults
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("gemini.model", "gemini-3.0-flash")

	// Quota defaults
	v.SetDefault("quota.daily_limit", 30)
	v.SetDefault("quota.window", "24h")

	// Safety defaults
	v.SetDefault("safety.timeout", "12s")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Gemini.APIKey == "" {
		return fmt.Errorf("Gemini API key is required (set HEALTHSCORE_GEMINI_API_KEY)")
	}

	if config.Quota.DailyLimit <= 0 {
		return fmt.Errorf("quota daily limit must be positive, got: %d", config.Quota.DailyLimit)
	}

	if config.Safety.Timeout <= 0 {
		return fmt.Errorf("safety timeout must be positive, got: %s", config.Safety.Timeout)
	}

	return nil
}
