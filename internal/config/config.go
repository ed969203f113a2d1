// Package config provides configuration management for the chart service.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Geocode   GeocodeConfig   `mapstructure:"geocode"`
	Ephemeris EphemerisConfig `mapstructure:"ephemeris"`
	Chart     ChartConfig     `mapstructure:"chart"`
	Reading   ReadingConfig   `mapstructure:"reading"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// GeocodeConfig holds geocoding provider configuration.
type GeocodeConfig struct {
	GeoapifyKey  string        `mapstructure:"geoapify_key"`
	GeoapifyURL  string        `mapstructure:"geoapify_url"`
	NominatimURL string        `mapstructure:"nominatim_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// EphemerisConfig holds ephemeris source configuration.
type EphemerisConfig struct {
	// DataPath points at the VSOP87 data files used by the primary source.
	// Empty means rely on the VSOP87 environment variable.
	DataPath string `mapstructure:"data_path"`
}

// ChartConfig holds chart computation tuning.
type ChartConfig struct {
	// AlignmentOrb is the maximum circular distance, in degrees, for a
	// planet to count as aligned with a reference node.
	AlignmentOrb float64 `mapstructure:"alignment_orb"`
}

// ReadingConfig holds reading generation configuration.
type ReadingConfig struct {
	// DatasetPath locates the JSON interpretation dataset. Empty disables
	// dataset lookups; built-in trait tables still apply.
	DatasetPath string `mapstructure:"dataset_path"`
	// LogPath locates the SQLite reading log. Empty disables logging of
	// generated readings.
	LogPath string `mapstructure:"log_path"`
}

// LLMConfig holds optional narrative-model configuration.
type LLMConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
	File    bool   `mapstructure:"file"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/soultether"
	}
	return filepath.Join(home, ".config", "soultether")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := &Config{}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("loading config.toml: %w", err)
		}
		if err := createTemplateConfig(configDir); err != nil {
			return nil, fmt.Errorf("writing config template: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("geocode.geoapify_url", "https://api.geoapify.com/v1/geocode/search")
	v.SetDefault("geocode.nominatim_url", "https://nominatim.openstreetmap.org/search")
	v.SetDefault("geocode.timeout", 10*time.Second)
	v.SetDefault("chart.alignment_orb", 2.0)
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("logging.file", true)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GEOAPIFY_API_KEY"); v != "" {
		cfg.Geocode.GeoapifyKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("VSOP87"); v != "" && cfg.Ephemeris.DataPath == "" {
		cfg.Ephemeris.DataPath = v
	}
	if v := os.Getenv("SOULTETHER_DATASET"); v != "" {
		cfg.Reading.DatasetPath = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535")
	}
	if c.Chart.AlignmentOrb <= 0 || c.Chart.AlignmentOrb > 180 {
		return fmt.Errorf("alignment_orb must be in (0, 180]")
	}
	if c.Geocode.Timeout <= 0 {
		return fmt.Errorf("geocode timeout must be positive")
	}
	return nil
}

// HasLLM returns true if an LLM narrative model is configured.
func (c *Config) HasLLM() bool {
	return c.LLM.APIKey != ""
}
