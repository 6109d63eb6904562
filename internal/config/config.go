package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string `mapstructure:"SHAQ_PORT"`
	APIURL       string `mapstructure:"SHAQ_API_URL"`
	PublicURL    string `mapstructure:"SHAQ_PUBLIC_URL"`
	LogLevel     string `mapstructure:"SHAQ_LOG_LEVEL"`
	MapsEmbedKey string `mapstructure:"SHAQ_MAPS_EMBED_KEY"`
}

func Load() (*Config, error) {
	viper.SetDefault("SHAQ_PORT", "8080")
	viper.SetDefault("SHAQ_API_URL", "http://127.0.0.1:3000")
	viper.SetDefault("SHAQ_PUBLIC_URL", "http://127.0.0.1:8080")
	viper.SetDefault("SHAQ_LOG_LEVEL", "info")

	viper.BindEnv("SHAQ_PORT")
	viper.BindEnv("SHAQ_API_URL")
	viper.BindEnv("SHAQ_PUBLIC_URL")
	viper.BindEnv("SHAQ_LOG_LEVEL")
	viper.BindEnv("SHAQ_MAPS_EMBED_KEY")

	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
