package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"evilgen/internal/walker"
)

const (
	FormatNDJSON = "ndjson"
	FormatText   = "text"
)

// Config controls a generation run. Zero values are filled by Default.
type Config struct {
	MaxPaths int    `yaml:"max_paths"`
	Format   string `yaml:"format"`
	Verbose  bool   `yaml:"verbose"`
}

func Default() Config {
	return Config{
		MaxPaths: walker.DefaultMaxPaths,
		Format:   FormatNDJSON,
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.MaxPaths < 1 {
		return fmt.Errorf("max_paths must be positive, got %d", c.MaxPaths)
	}
	switch c.Format {
	case FormatNDJSON, FormatText:
		return nil
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
}
