package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pavanmanishd/vector"
)

const (
	DefaultWorkload   = "push"
	DefaultOps        = 1000
	DefaultBatch      = 16
	DefaultPlotHeight = 12
	DefaultPlotWidth  = 72
)

// Config describes one workload replay.
type Config struct {
	Workload string       `yaml:"workload"`
	Ops      int          `yaml:"ops"`
	Batch    int          `yaml:"batch"`
	Growth   GrowthConfig `yaml:"growth"`
	Plot     PlotConfig   `yaml:"plot"`
}

// GrowthConfig mirrors vector.GrowthPolicy. Zero fields fall back to the
// vector defaults.
type GrowthConfig struct {
	Factor          int `yaml:"factor"`
	InitialCapacity int `yaml:"initial_capacity"`
	Limit           int `yaml:"limit"`
}

type PlotConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

func DefaultConfig() *Config {
	return &Config{
		Workload: DefaultWorkload,
		Ops:      DefaultOps,
		Batch:    DefaultBatch,
		Growth: GrowthConfig{
			Factor:          vector.DefaultGrowthFactor,
			InitialCapacity: vector.DefaultInitialCapacity,
		},
		Plot: PlotConfig{
			Height: DefaultPlotHeight,
			Width:  DefaultPlotWidth,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values no workload can run with.
func (c *Config) Validate() error {
	if c.Ops < 0 {
		return fmt.Errorf("ops must not be negative, got %d", c.Ops)
	}
	if c.Batch <= 0 {
		return fmt.Errorf("batch must be positive, got %d", c.Batch)
	}
	if c.Growth.Factor != 0 && c.Growth.Factor < 2 {
		return fmt.Errorf("growth factor must be at least 2, got %d", c.Growth.Factor)
	}
	return nil
}

// Options converts the growth section into vector construction options.
func (c *Config) Options() []vector.Option {
	return []vector.Option{
		vector.WithGrowthFactor(c.Growth.Factor),
		vector.WithInitialCapacity(c.Growth.InitialCapacity),
		vector.WithLimit(c.Growth.Limit),
	}
}
