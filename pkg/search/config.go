// Package search orchestrates the locator, generator, and quad packages
// into a scan over a world seed's chunk space, looking for fortresses
// whose piece graph contains a 2x2 crossing cluster.
package search

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config specifies the parameters of a quad-fortress search.
type Config struct {
	// Seed is the world seed to search.
	Seed int64 `yaml:"seed" json:"seed"`

	// CenterX, CenterZ are the chunk coordinates the search window is
	// centered on.
	CenterX int32 `yaml:"centerX" json:"centerX"`
	CenterZ int32 `yaml:"centerZ" json:"centerZ"`

	// RadiusChunks is the half-width of the square chunk window scanned
	// around the center.
	RadiusChunks int32 `yaml:"radiusChunks" json:"radiusChunks"`

	// Workers is the number of goroutines used to generate candidate
	// fortresses concurrently. Values <= 1 run the search synchronously.
	Workers int `yaml:"workers" json:"workers"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for usable values, filling in
// sensible defaults where the zero value would otherwise be unusable.
func (c *Config) Validate() error {
	if c.RadiusChunks < 0 {
		return errors.New("radiusChunks must not be negative")
	}
	if c.RadiusChunks == 0 {
		c.RadiusChunks = 200
	}
	if c.Workers == 0 {
		c.Workers = 1
	}
	if c.Workers < 0 {
		return errors.New("workers must not be negative")
	}
	return nil
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}
