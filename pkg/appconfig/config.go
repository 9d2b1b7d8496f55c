package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	yaml "sigs.k8s.io/yaml"
)

// Duration wraps time.Duration for YAML round-tripping in string form
// ("400ms", "2s").
type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Duration.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

type DataConfig struct {
	// BatchSize is the number of synthetic rows generated initially and on
	// each regenerate action.
	BatchSize int `json:"batchSize"`
}

type MouseConfig struct {
	DoubleClickTimeout Duration `json:"doubleClickTimeout"`
}

type InputConfig struct {
	Mouse MouseConfig `json:"mouse"`
}

type ViewerConfig struct {
	// Theme is the chroma style used by the row inspector.
	Theme string `json:"theme"`
}

type Config struct {
	Data   DataConfig   `json:"data"`
	Input  InputConfig  `json:"input"`
	Viewer ViewerConfig `json:"viewer"`
}

func Default() *Config {
	return &Config{
		Data:   DataConfig{BatchSize: 20},
		Input:  InputConfig{Mouse: MouseConfig{DoubleClickTimeout: Duration{400 * time.Millisecond}}},
		Viewer: ViewerConfig{Theme: "dracula"},
	}
}

func path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".datagrid", "config.yaml"), nil
}

// Load reads ~/.datagrid/config.yaml if present, otherwise returns
// defaults. Zero or invalid fields fall back to their default values.
func Load() (*Config, error) {
	cfg := Default()
	p, err := path()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", p, err)
	}
	if cfg.Data.BatchSize <= 0 {
		cfg.Data.BatchSize = 20
	}
	if cfg.Input.Mouse.DoubleClickTimeout.Duration <= 0 {
		cfg.Input.Mouse.DoubleClickTimeout = Duration{400 * time.Millisecond}
	}
	if cfg.Viewer.Theme == "" {
		cfg.Viewer.Theme = "dracula"
	}
	return cfg, nil
}

// Save writes the config, creating ~/.datagrid if needed.
func Save(cfg *Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o644)
}
