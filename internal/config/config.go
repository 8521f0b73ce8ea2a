package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Port         int
	DBDSN        string
	LogLevel     string
	DemoUserID   int64
	RateLimitMax int
}

// Load reads configuration from the environment with demo-friendly defaults.
// The default DSN keeps the whole store in process memory; point DB_DSN at a
// file to keep data across restarts.
func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("PORT", 8080)
	viper.SetDefault("DB_DSN", ":memory:")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DEMO_USER_ID", 1)
	viper.SetDefault("RATE_LIMIT_MAX", 120)

	cfg := &Config{
		Port:         viper.GetInt("PORT"),
		DBDSN:        viper.GetString("DB_DSN"),
		LogLevel:     viper.GetString("LOG_LEVEL"),
		DemoUserID:   viper.GetInt64("DEMO_USER_ID"),
		RateLimitMax: viper.GetInt("RATE_LIMIT_MAX"),
	}

	return cfg, nil
}
