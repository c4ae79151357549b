package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("HEALTHSCORE_SERVER_PORT")
		os.Unsetenv("HEALTHSCORE_SERVER_ENVIRONMENT")
		os.Unsetenv("HEALTHSCORE_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("HEALTHSCORE_GEMINI_API_KEY")
		os.Unsetenv("HEALTHSCORE_GEMINI_BASE_URL")
		os.Unsetenv("HEALTHSCORE_GEMINI_MODEL")
		os.Unsetenv("HEALTHSCORE_QUOTA_DAILY_LIMIT")
		os.Unsetenv("HEALTHSCORE_QUOTA_WINDOW")
		os.Unsetenv("HEALTHSCORE_SAFETY_TIMEOUT")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		// Set required API key
		os.Setenv("HEALTHSCORE_GEMINI_API_KEY", "test-key")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Gemini.BaseURL != "https://generativelanguage.googleapis.com/v1beta" {
			t.Errorf("Gemini.BaseURL = %s", cfg.Gemini.BaseURL)
		}
		if cfg.Gemini.Model != "gemini-3.0-flash" {
			t.Errorf("Gemini.Model = %s, want gemini-3.0-flash", cfg.Gemini.Model)
		}
		if cfg.Quota.DailyLimit != 30 {
			t.Errorf("Quota.DailyLimit = %d, want 30", cfg.Quota.DailyLimit)
		}
		if cfg.Quota.Window != 24*time.Hour {
			t.Errorf("Quota.Window = %v, want 24h", cfg.Quota.Window)
		}
		if cfg.Safety.Timeout != 12*time.Second {
			t.Errorf("Safety.Timeout = %v, want 12s", cfg.Safety.Timeout)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("HEALTHSCORE_SERVER_PORT", "9090")
		os.Setenv("HEALTHSCORE_SERVER_ENVIRONMENT", "production")
		os.Setenv("HEALTHSCORE_GEMINI_API_KEY", "custom-api-key")
		os.Setenv("HEALTHSCORE_GEMINI_BASE_URL", "https://custom.api.com")
		os.Setenv("HEALTHSCORE_GEMINI_MODEL", "gemini-3.0-pro")
		os.Setenv("HEALTHSCORE_QUOTA_DAILY_LIMIT", "100")
		os.Setenv("HEALTHSCORE_QUOTA_WINDOW", "12h")
		os.Setenv("HEALTHSCORE_SAFETY_TIMEOUT", "5s")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Gemini.APIKey != "custom-api-key" {
			t.Errorf("Gemini.APIKey = %s, want custom-api-key", cfg.Gemini.APIKey)
		}
		if cfg.Gemini.BaseURL != "https://custom.api.com" {
			t.Errorf("Gemini.BaseURL = %s, want https://custom.api.com", cfg.Gemini.BaseURL)
		}
		if cfg.Gemini.Model != "gemini-3.0-pro" {
			t.Errorf("Gemini.Model = %s, want gemini-3.0-pro", cfg.Gemini.Model)
		}
		if cfg.Quota.DailyLimit != 100 {
			t.Errorf("Quota.DailyLimit = %d, want 100", cfg.Quota.DailyLimit)
		}
		if cfg.Quota.Window != 12*time.Hour {
			t.Errorf("Quota.Window = %v, want 12h", cfg.Quota.Window)
		}
		if cfg.Safety.Timeout != 5*time.Second {
			t.Errorf("Safety.Timeout = %v, want 5s", cfg.Safety.Timeout)
		}
	})

	t.Run("fails validation when API key is missing", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for missing API key")
		}
	})

	t.Run("fails validation for non-positive quota", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("HEALTHSCORE_GEMINI_API_KEY", "test-key")
		os.Setenv("HEALTHSCORE_QUOTA_DAILY_LIMIT", "0")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for zero quota")
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Gemini: Gemini{APIKey: "test-key"},
			Quota:  Quota{DailyLimit: 30, Window: 24 * time.Hour},
			Safety: Safety{Timeout: 12 * time.Second},
		}
	}

	t.Run("validates successfully with all required fields", func(t *testing.T) {
		if err := validate(valid()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("fails when API key is empty", func(t *testing.T) {
		cfg := valid()
		cfg.Gemini.APIKey = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for empty API key")
		}
	})

	t.Run("fails for non-positive safety timeout", func(t *testing.T) {
		cfg := valid()
		cfg.Safety.Timeout = 0
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for zero timeout")
		}
	})
}
