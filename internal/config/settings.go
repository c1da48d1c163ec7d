package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when settings fail validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Environment variables that override the settings file.
const (
	EnvSkipHouse = "STREETADDRESS_SKIP_HOUSE"
	EnvAllTokens = "STREETADDRESS_ALL_TOKENS"
	EnvWorkers   = "STREETADDRESS_WORKERS"
	EnvFormat    = "STREETADDRESS_FORMAT"
	EnvDebug     = "STREETADDRESS_DEBUG"
)

// Settings controls the streetaddress command line tool.
type Settings struct {
	Parse struct {
		SkipHouse bool `yaml:"skip_house"`
	} `yaml:"parse"`
	Format struct {
		AllTokens bool `yaml:"all_tokens"`
	} `yaml:"format"`
	Batch struct {
		Workers int    `yaml:"workers"`
		Output  string `yaml:"output"`
	} `yaml:"batch"`
	Debug bool `yaml:"debug"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() *Settings {
	s := &Settings{}
	s.Batch.Workers = 4
	s.Batch.Output = "json"
	return s
}

// LoadSettings reads settings from a YAML file, then applies environment
// overrides. An empty path skips the file.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("unable to unmarshal config file: %w", err)
		}
	}

	settings.applyEnv()

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *Settings) applyEnv() {
	s.Parse.SkipHouse = GetEnvBool(EnvSkipHouse, s.Parse.SkipHouse)
	s.Format.AllTokens = GetEnvBool(EnvAllTokens, s.Format.AllTokens)
	s.Batch.Workers = GetEnvInt(EnvWorkers, s.Batch.Workers)
	s.Batch.Output = GetEnv(EnvFormat, s.Batch.Output)
	s.Debug = GetEnvBool(EnvDebug, s.Debug)
}

// Validate checks that the settings are usable.
func (s *Settings) Validate() error {
	if s.Batch.Workers < 1 {
		return fmt.Errorf("%w: batch.workers must be at least 1, got %d", ErrInvalidConfig, s.Batch.Workers)
	}
	switch s.Batch.Output {
	case "json", "csv":
	default:
		return fmt.Errorf("%w: batch.output must be json or csv, got %q", ErrInvalidConfig, s.Batch.Output)
	}
	return nil
}
