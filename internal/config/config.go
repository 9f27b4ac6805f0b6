package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	PokeAPI PokeAPIConfig `mapstructure:"pokeapi"`
	Listing ListingConfig `mapstructure:"listing"`
	Log     LogConfig     `mapstructure:"log"`
}

// PokeAPIConfig holds remote catalog API configuration
type PokeAPIConfig struct {
	BaseURL              string        `mapstructure:"base_url" validate:"required,url"`
	ConnectTimeout       time.Duration `mapstructure:"connect_timeout" validate:"gt=0"`
	ReadTimeout          time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	MaxRequestsPerSecond int           `mapstructure:"max_requests_per_second" validate:"gte=0"` // 0 disables the limiter
	UserAgent            string        `mapstructure:"user_agent"`
	Proxies              []string      `mapstructure:"proxies" validate:"dive,url"`
}

// ListingConfig holds the default page window used by LoadListing
type ListingConfig struct {
	Offset int `mapstructure:"offset" validate:"gte=0"`
	Limit  int `mapstructure:"limit" validate:"gt=0"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
}

const envPrefix = "POKEDEX"

// Load reads configuration from path (or ./config.yaml when path is empty) with
// environment variable overrides. A missing config file falls back to defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("pokeapi.base_url", "https://pokeapi.co/api/v2")
	v.SetDefault("pokeapi.connect_timeout", 10*time.Second)
	v.SetDefault("pokeapi.read_timeout", 10*time.Second)
	v.SetDefault("pokeapi.max_requests_per_second", 0)
	v.SetDefault("pokeapi.user_agent", "pokedex-viewer/0.1")
	v.SetDefault("pokeapi.proxies", []string{})

	v.SetDefault("listing.offset", 0)
	v.SetDefault("listing.limit", 151)

	v.SetDefault("log.level", "info")
}
