// Package config loads fabmanage settings from an optional YAML file and
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/materials"
)

const (
	// Dir is the per-user directory holding the database and config file.
	Dir = ".fabmanage"

	defaultDBName     = "fabmanage.db"
	defaultConfigName = "config.yaml"
)

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SchedulingConfig names the resources phase-entry events are booked on.
type SchedulingConfig struct {
	CNCResource      string `yaml:"cnc_resource"`
	AssemblyResource string `yaml:"assembly_resource"`
	DefaultDesigner  string `yaml:"default_designer"`
}

type CostsConfig struct {
	MarginPercent   float64 `yaml:"margin_percent"`
	DiscountPercent float64 `yaml:"discount_percent"`
	VATPercent      float64 `yaml:"vat_percent"`
}

// Options converts the configured percentages for the cost estimator.
func (c CostsConfig) Options() materials.CostOptions {
	return materials.CostOptions{
		MarginPercent:   decimal.NewFromFloat(c.MarginPercent),
		DiscountPercent: decimal.NewFromFloat(c.DiscountPercent),
		VATPercent:      decimal.NewFromFloat(c.VATPercent),
	}
}

// Config models ~/.fabmanage/config.yaml.
type Config struct {
	DBPath     string           `yaml:"db_path"`
	Log        LogConfig        `yaml:"log"`
	Scheduling SchedulingConfig `yaml:"scheduling"`
	Costs      CostsConfig      `yaml:"costs"`
}

// DefaultConfig returns the settings used when no file or override is given.
// DBPath is left empty and resolved against the home directory by Load.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{Level: "warn", Format: "console"},
		Costs: CostsConfig{
			MarginPercent: 15,
			VATPercent:    23,
		},
	}
}

// Path returns $FABMANAGE_CONFIG, or ~/.fabmanage/config.yaml.
func Path() (string, error) {
	if v := os.Getenv("FABMANAGE_CONFIG"); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, Dir, defaultConfigName), nil
}

// Load reads the config file at Path, if any, and applies environment overrides.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	return LoadFile(path)
}

// LoadFile reads path over the defaults and applies environment overrides.
// A missing file is not an error; malformed YAML is.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	applyEnv(&cfg)

	if cfg.DBPath, err = resolveDBPath(cfg.DBPath); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("FABMANAGE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("FABMANAGE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("FABMANAGE_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("FABMANAGE_CNC_RESOURCE"); v != "" {
		cfg.Scheduling.CNCResource = v
	}
	if v := os.Getenv("FABMANAGE_ASSEMBLY_RESOURCE"); v != "" {
		cfg.Scheduling.AssemblyResource = v
	}
	if v := os.Getenv("FABMANAGE_DEFAULT_DESIGNER"); v != "" {
		cfg.Scheduling.DefaultDesigner = v
	}
	applyPercentEnv(&cfg.Costs.MarginPercent, "FABMANAGE_MARGIN_PERCENT")
	applyPercentEnv(&cfg.Costs.VATPercent, "FABMANAGE_VAT_PERCENT")
}

// applyPercentEnv ignores values that do not parse as a finite, non-negative
// number.
func applyPercentEnv(dst *float64, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || !domain.IsFinite(f) || f < 0 {
		return
	}
	*dst = f
}

func resolveDBPath(p string) (string, error) {
	if p != "" && p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	if p == "" {
		return filepath.Join(home, Dir, defaultDBName), nil
	}
	return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(p, "~"), "/")), nil
}

func (c Config) validate() error {
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	for name, v := range map[string]float64{
		"costs.margin_percent":   c.Costs.MarginPercent,
		"costs.discount_percent": c.Costs.DiscountPercent,
		"costs.vat_percent":      c.Costs.VATPercent,
	} {
		if !domain.IsFinite(v) || v < 0 {
			return fmt.Errorf("%s must be a non-negative number, got %g", name, v)
		}
	}
	if c.Costs.DiscountPercent > 100 {
		return fmt.Errorf("costs.discount_percent must not exceed 100, got %g", c.Costs.DiscountPercent)
	}
	return nil
}
