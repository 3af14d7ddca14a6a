package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// FileName is the config file the CLI looks for in the working directory.
const FileName = "qbtypes.yaml"

// Config represents the top-level qbtypes.yaml configuration.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
	Decode DecodeConfig `yaml:"decode"`
}

// OutputConfig controls how commands print results.
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=table json"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
}

// DecodeConfig controls how payloads are read.
type DecodeConfig struct {
	// UnwrapEnvelope accepts records wrapped in the platform's response
	// envelope, e.g. {"Invoice": {...}, "time": "..."}.
	UnwrapEnvelope bool `yaml:"unwrap_envelope"`
}

// Load reads a qbtypes.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "table",
		},
		Log: LogConfig{
			Level: "info",
		},
		Decode: DecodeConfig{
			UnwrapEnvelope: true,
		},
	}
}

// Validate reports every invalid setting in one error.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating config: %w", err)
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fmt.Sprintf("%s: %q is not one of [%s]", fe.Namespace(), fe.Value(), fe.Param())
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
