package formatkit

import (
	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Leading prefix sampled for signature matching, in bytes.
	MaxReadSize int `env:"FORMATKIT_MAX_READ_SIZE,default:36870"`

	// Recursion bound for nested container structures.
	MaxDepth int `env:"FORMATKIT_MAX_DEPTH,default:8"`

	// Skip container readers and report base container formats only.
	DisableRefinement bool `env:"FORMATKIT_DISABLE_REFINEMENT,default:false"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Detector builds a detector from the loaded configuration.
func (c *Config) Detector() *Detector {
	d := NewDetector()
	if c.MaxReadSize > 0 {
		d.MaxReadSize = c.MaxReadSize
	}
	if c.MaxDepth > 0 {
		d.MaxDepth = c.MaxDepth
	}
	d.DisableRefinement = c.DisableRefinement
	return d
}
