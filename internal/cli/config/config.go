package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the restorm CLI configuration, loaded from
// restorm.yml / restorm.yaml in the working directory.
type Config struct {
	BaseURL  string            `mapstructure:"base_url"`
	Headers  map[string]string `mapstructure:"headers"`
	Timeout  time.Duration     `mapstructure:"timeout"`
	CacheTTL time.Duration     `mapstructure:"cache_ttl"`
	Verbose  bool              `mapstructure:"verbose"`
}

// Load reads the configuration file, falling back to defaults and
// environment variables (RESTORM_BASE_URL etc) when absent.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("timeout", "30s")
	v.SetDefault("cache_ttl", "5m")
	v.SetDefault("verbose", false)

	v.SetConfigName("restorm")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("restorm")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
