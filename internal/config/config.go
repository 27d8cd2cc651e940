package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// ServiceConfig holds all configuration for the route service.
type ServiceConfig struct {
	Port   string
	AppEnv string
	GIS    GISConfig
}

// GISConfig holds the mapping provider connection settings.
type GISConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Load reads configuration from ROUTE_-prefixed environment variables.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("ROUTE")
	v.AutomaticEnv()

	v.SetDefault("SERVICE_PORT", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("GIS_BASE_URL", "https://catalog.api.2gis.com/2.0")
	v.SetDefault("GIS_API_KEY", "")
	v.SetDefault("GIS_TIMEOUT_SECONDS", 10)

	cfg := &ServiceConfig{
		Port:   v.GetString("SERVICE_PORT"),
		AppEnv: v.GetString("APP_ENV"),
		GIS: GISConfig{
			BaseURL: v.GetString("GIS_BASE_URL"),
			APIKey:  v.GetString("GIS_API_KEY"),
			Timeout: time.Duration(v.GetInt("GIS_TIMEOUT_SECONDS")) * time.Second,
		},
	}

	if cfg.GIS.BaseURL == "" {
		return nil, fmt.Errorf("ROUTE_GIS_BASE_URL must not be empty")
	}
	return cfg, nil
}
