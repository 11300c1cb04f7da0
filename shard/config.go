package shard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full configuration surface for one generator run. It is
// passed by value into the planner and filler rather than held as
// process-wide state, so the full-set and per-category profiles can run with
// different parameters without interference.
type Config struct {
	// SourceDir holds one JSON array file per category.
	SourceDir string `yaml:"source_dir"`

	// DataDir and CategoriesDir are the output trees. Both are replaced
	// destructively on every run.
	DataDir       string `yaml:"data_dir"`
	CategoriesDir string `yaml:"categories_dir"`

	// RulesFile is where the rendered edge-rule artifact is written.
	RulesFile string `yaml:"rules_file"`

	// TargetDomain parameterizes the rule conditions. Empty renders a
	// placeholder template.
	TargetDomain string `yaml:"target_domain"`

	// MinWidth is the address-width floor for the full set,
	// CategoryMinWidth the floor for the per-category spaces.
	MinWidth         int `yaml:"min_width"`
	CategoryMinWidth int `yaml:"category_min_width"`

	// DepthPolicy is "flat" or "nested".
	DepthPolicy string `yaml:"depth_policy"`

	// PackAsList wraps each record in a one-element array on disk.
	PackAsList bool `yaml:"pack_as_list"`

	// Workers is the number of concurrent slot writers; <= 1 writes
	// sequentially.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the stock configuration: width floor 4 (65,536
// slots), category floor 3 (4,096 slots), flat layout, sequential writes.
func DefaultConfig() Config {
	return Config{
		SourceDir:        "sentences",
		DataDir:          "data",
		CategoriesDir:    "categories",
		RulesFile:        "rules.txt",
		MinWidth:         4,
		CategoryMinWidth: 3,
		DepthPolicy:      "flat",
		Workers:          1,
	}
}

// LoadConfig reads a YAML config file over the defaults; keys absent from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Policy parses the configured depth policy.
func (c Config) Policy() (DepthPolicy, error) {
	return ParseDepthPolicy(c.DepthPolicy)
}

// Validate checks the configuration for values the generator cannot run
// with.
func (c Config) Validate() error {
	if c.SourceDir == "" {
		return fmt.Errorf("source_dir: %w", ErrMissingPath)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir: %w", ErrMissingPath)
	}
	if c.CategoriesDir == "" {
		return fmt.Errorf("categories_dir: %w", ErrMissingPath)
	}
	if c.MinWidth < 0 {
		return fmt.Errorf("min_width %d: %w", c.MinWidth, ErrInvalidWidth)
	}
	if c.CategoryMinWidth < 0 {
		return fmt.Errorf("category_min_width %d: %w", c.CategoryMinWidth, ErrInvalidWidth)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalidWorkers)
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	return nil
}
