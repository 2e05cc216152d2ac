package formatkit

import (
	"os"
	"testing"
)

func TestGetConfig(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    Config
	}{
		{
			name:    "default values",
			envVars: map[string]string{},
			want: Config{
				MaxReadSize: DefaultMaxReadSize,
				MaxDepth:    DefaultMaxDepth,
			},
		},
		{
			name: "custom limits",
			envVars: map[string]string{
				"BEAVER_FORMATKIT_MAX_READ_SIZE":       "4096",
				"BEAVER_FORMATKIT_MAX_DEPTH":           "3",
				"BEAVER_FORMATKIT_DISABLE_REFINEMENT":  "true",
			},
			want: Config{
				MaxReadSize:       4096,
				MaxDepth:          3,
				DisableRefinement: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				k := k // capture for closure
				os.Setenv(k, v)
				t.Cleanup(func() { os.Unsetenv(k) })
			}

			cfg, err := GetConfig()
			if err != nil {
				t.Fatalf("GetConfig() error = %v", err)
			}
			if cfg.MaxReadSize != tt.want.MaxReadSize {
				t.Errorf("MaxReadSize = %v, want %v", cfg.MaxReadSize, tt.want.MaxReadSize)
			}
			if cfg.MaxDepth != tt.want.MaxDepth {
				t.Errorf("MaxDepth = %v, want %v", cfg.MaxDepth, tt.want.MaxDepth)
			}
			if cfg.DisableRefinement != tt.want.DisableRefinement {
				t.Errorf("DisableRefinement = %v, want %v", cfg.DisableRefinement, tt.want.DisableRefinement)
			}
		})
	}
}

func TestConfigDetector(t *testing.T) {
	cfg := &Config{MaxReadSize: 1024, MaxDepth: 2, DisableRefinement: true}
	d := cfg.Detector()
	if d.MaxReadSize != 1024 || d.MaxDepth != 2 || !d.DisableRefinement {
		t.Errorf("Detector() = %+v, want config values applied", d)
	}

	// Zero fields keep the defaults.
	d = (&Config{}).Detector()
	if d.MaxReadSize != DefaultMaxReadSize || d.MaxDepth != DefaultMaxDepth {
		t.Errorf("Detector() = %+v, want defaults", d)
	}
}
