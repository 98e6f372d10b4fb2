// Package config loads service configuration in three layers: built-in
// defaults, an optional YAML file, then environment variables, with
// ENV > file > defaults precedence.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces the service's environment variables. A double
// underscore separates nesting levels, so TRIPMUSE_GENERATOR__BASE_URL maps
// to generator.base_url.
const envPrefix = "TRIPMUSE_"

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "TRIPMUSE_CONFIG"

// defaultConfigPaths are searched in order; the first existing file wins.
var defaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/tripmuse/config.yaml",
}

// Config is the full service configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Redis     RedisConfig     `koanf:"redis"`
	Generator GeneratorConfig `koanf:"generator"`
	Engine    EngineConfig    `koanf:"engine"`
	Safety    SafetyConfig    `koanf:"safety"`
}

type ServerConfig struct {
	Port        string `koanf:"port"`
	BearerToken string `koanf:"bearer_token"`
	// RateLimitPerMinute caps requests per IP per minute.
	RateLimitPerMinute int `koanf:"rate_limit_per_minute"`
}

type DatabaseConfig struct {
	URL           string `koanf:"url"`
	MigrationsDir string `koanf:"migrations_dir"`
}

// RedisConfig is optional: an empty URL disables the pool-cache fallback rung.
type RedisConfig struct {
	URL string `koanf:"url"`
}

type GeneratorConfig struct {
	BaseURL        string        `koanf:"base_url"`
	APIKey         string        `koanf:"api_key"`
	PrimaryModel   string        `koanf:"primary_model"`
	SecondaryModel string        `koanf:"secondary_model"`
	Timeout        time.Duration `koanf:"timeout"`
	Temperature    float64       `koanf:"temperature"`
}

type EngineConfig struct {
	ShortlistSize   int `koanf:"shortlist_size"`
	RecencyCapacity int `koanf:"recency_capacity"`
	// RegionFloors overrides the minimum plausible nonstop hours per region.
	RegionFloors map[string]float64 `koanf:"region_floors"`
}

// SafetyConfig is the static safety exclusion list. It is data, not code:
// deployments replace it wholesale via file or environment.
type SafetyConfig struct {
	BlockedCountries []string `koanf:"blocked_countries"`
	BlockedCities    []string `koanf:"blocked_cities"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:               "8080",
			RateLimitPerMinute: 60,
		},
		Database: DatabaseConfig{
			MigrationsDir: "migrations",
		},
		Generator: GeneratorConfig{
			PrimaryModel:   "inspire-xl",
			SecondaryModel: "inspire-lite",
			Timeout:        15 * time.Second,
			Temperature:    0.8,
		},
		Engine: EngineConfig{
			ShortlistSize:   5,
			RecencyCapacity: 30,
		},
		Safety: SafetyConfig{
			BlockedCountries: []string{
				"Afghanistan", "Belarus", "Haiti", "Libya", "Mali",
				"North Korea", "Somalia", "South Sudan", "Syria", "Yemen",
			},
			BlockedCities: []string{
				"Kabul", "Damascus", "Sanaa", "Tripoli", "Mogadishu",
				"Pyongyang", "Port-au-Prince",
			},
		},
	}
}

// Load builds the configuration with ENV > file > defaults precedence and
// validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation: %w", err)
	}
	return cfg, nil
}

// Validate checks the fields the service cannot run without.
func (c *Config) Validate() error {
	if c.Server.BearerToken == "" {
		return fmt.Errorf("server.bearer_token is required")
	}
	if c.Database.URL == "" {
		return fmt.Errorf("database.url is required")
	}
	if c.Generator.BaseURL == "" {
		return fmt.Errorf("generator.base_url is required")
	}
	if c.Engine.ShortlistSize <= 0 {
		return fmt.Errorf("engine.shortlist_size must be positive")
	}
	return nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range defaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
