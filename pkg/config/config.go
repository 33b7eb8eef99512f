package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/interactome/hubrank/pkg/validation"
)

// BetweennessConfig selects between exact and sampled Brandes computation.
// Sampling trades accuracy for speed and is always an explicit choice.
type BetweennessConfig struct {
	Sampled    bool  `yaml:"sampled"`
	SampleSize int   `yaml:"sample_size" validate:"min=0"`
	Seed       int64 `yaml:"seed"`
	Workers    int   `yaml:"workers" validate:"min=0"`
}

// SpectralConfig bounds a power-iteration method.
type SpectralConfig struct {
	Tolerance     float64 `yaml:"tolerance" validate:"gt=0"`
	MaxIterations int     `yaml:"max_iterations" validate:"min=1"`
}

// PageRankConfig configures the random-surfer model.
type PageRankConfig struct {
	DampingFactor float64 `yaml:"damping_factor" validate:"gt=0,lt=1"`
	Tolerance     float64 `yaml:"tolerance" validate:"gt=0"`
	MaxIterations int     `yaml:"max_iterations" validate:"min=1"`
}

// AnalysisConfig is the full engine configuration for one analysis run.
type AnalysisConfig struct {
	Betweenness BetweennessConfig `yaml:"betweenness"`
	Eigenvector SpectralConfig    `yaml:"eigenvector"`
	PageRank    PageRankConfig    `yaml:"pagerank"`
	TopHubs     int               `yaml:"top_hubs" validate:"min=1"`
}

// Default returns the engine defaults: exact betweenness on all CPUs,
// standard spectral tolerances, top 10 hubs.
func Default() AnalysisConfig {
	return AnalysisConfig{
		Betweenness: BetweennessConfig{
			Workers: runtime.NumCPU(),
		},
		Eigenvector: SpectralConfig{
			Tolerance:     1e-6,
			MaxIterations: 1000,
		},
		PageRank: PageRankConfig{
			DampingFactor: 0.85,
			Tolerance:     1e-6,
			MaxIterations: 100,
		},
		TopHubs: 10,
	}
}

// Load parses an AnalysisConfig from YAML, applying defaults for omitted
// sections before validating.
func Load(data []byte) (AnalysisConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing analysis config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile reads and parses an AnalysisConfig from a YAML file.
func LoadFile(path string) (AnalysisConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("reading analysis config: %w", err)
	}
	return Load(data)
}

// Validate checks struct tags plus the cross-field rules tags cannot
// express.
func (c *AnalysisConfig) Validate() error {
	if err := validation.ValidateStruct("AnalysisConfig", c); err != nil {
		return err
	}

	return validation.NewConfigValidator("AnalysisConfig").
		When(c.Betweenness.Sampled, func(cv *validation.ConfigValidator) {
			cv.MinInt("betweenness.sample_size", c.Betweenness.SampleSize, 1)
		}).
		OpenUnitInterval("pagerank.damping_factor", c.PageRank.DampingFactor).
		PositiveFloat("eigenvector.tolerance", c.Eigenvector.Tolerance).
		Validate()
}
