package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type App struct {
	Port            string        `mapstructure:"port"`
	LogLevel        string        `mapstructure:"log_level"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Azure struct {
	// Organization URL, e.g. https://dev.azure.com/my-org
	OrgURL string `mapstructure:"org_url"`

	// Personal access token; taken from the AZURE_TOKEN env variable
	Token string `mapstructure:"token"`

	// Default page size for builds and pull requests
	Top int `mapstructure:"top"`
}

type Config struct {
	App   App   `mapstructure:"app"`
	Azure Azure `mapstructure:"azure"`
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("app.port", "8080")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.shutdown_timeout", 10*time.Second)
	v.SetDefault("azure.top", 10)

	_ = v.BindEnv("azure.token", "AZURE_TOKEN")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Azure.OrgURL == "" {
		return nil, errors.New("azure.org_url is required")
	}
	if cfg.Azure.Token == "" {
		return nil, errors.New("azure token is required")
	}

	return cfg, nil
}
