package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"inflation-lens/internal/model"
	"inflation-lens/internal/params"
	"inflation-lens/internal/simulate"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load calibration rows from a separate YAML (e.g. examples/calibration/*.yaml).
	// Rows under Calibration override rows from CalibrationFile.
	CalibrationFile string            `yaml:"calibration_file"`
	Calibration     CalibrationConfig `yaml:"calibration"`
	Simulation      SimulationConfig  `yaml:"simulation"`
	Server          ServerConfig      `yaml:"server"`
	Store           StoreConfig       `yaml:"store"`
}

// CalibrationConfig overrides whole parameter rows, keyed by selection ID.
type CalibrationConfig struct {
	Assets    map[string]params.AssetParams     `yaml:"assets"`
	Inflation map[string]params.InflationParams `yaml:"inflation"`
}

type SimulationConfig struct {
	InitialNominal float64 `yaml:"initial_nominal"`
	BaseIndex      float64 `yaml:"base_index"`
	// Pointers because zero is a meaningful setting for both.
	InflationFloor   *float64 `yaml:"inflation_floor"`
	SalaryHikeJitter *float64 `yaml:"salary_hike_jitter"`

	DefaultTrials int `yaml:"default_trials"`
	MaxTrials     int `yaml:"max_trials"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	Env            string   `yaml:"env"`
	StaticDir      string   `yaml:"static_dir"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type StoreConfig struct {
	RedisURL string        `yaml:"redis_url"`
	TTL      time.Duration `yaml:"ttl"`
}

// Default is the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it or fill defaults.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.CalibrationFile != "" {
		calPath := c.CalibrationFile
		if !filepath.IsAbs(calPath) {
			// Prefer paths relative to the config file, fall back to cwd.
			cand := filepath.Join(filepath.Dir(path), calPath)
			if _, err := os.Stat(cand); err == nil {
				calPath = cand
			}
		}
		loaded, err := loadCalibrationFile(calPath)
		if err != nil {
			return nil, err
		}
		c.Calibration = MergeCalibration(loaded, c.Calibration)
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	d := simulate.DefaultOptions()
	if c.Simulation.InitialNominal == 0 {
		c.Simulation.InitialNominal = d.InitialNominal
	}
	if c.Simulation.BaseIndex == 0 {
		c.Simulation.BaseIndex = d.BaseIndex
	}
	if c.Simulation.InflationFloor == nil {
		v := d.InflationFloor
		c.Simulation.InflationFloor = &v
	}
	if c.Simulation.SalaryHikeJitter == nil {
		v := d.SalaryHikeJitter
		c.Simulation.SalaryHikeJitter = &v
	}
	if c.Simulation.DefaultTrials == 0 {
		c.Simulation.DefaultTrials = 500
	}
	if c.Simulation.MaxTrials == 0 {
		c.Simulation.MaxTrials = 5000
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.StaticDir == "" {
		c.Server.StaticDir = "./web/dist"
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"*"}
	}
	if c.Store.TTL == 0 {
		c.Store.TTL = time.Hour
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	for id := range c.Calibration.Assets {
		if !model.ParseAsset(id).Known() {
			return fmt.Errorf("calibration.assets: unknown asset %q", id)
		}
	}
	for id := range c.Calibration.Inflation {
		if !model.ParseInflation(id).Known() {
			return fmt.Errorf("calibration.inflation: unknown index %q", id)
		}
	}
	tbl, err := c.Table()
	if err != nil {
		return err
	}
	if err := tbl.Validate(); err != nil {
		return fmt.Errorf("calibration invalid: %w", err)
	}
	if err := c.Options().Validate(); err != nil {
		return fmt.Errorf("simulation config invalid: %w", err)
	}
	if c.Simulation.DefaultTrials <= 0 || c.Simulation.DefaultTrials > c.Simulation.MaxTrials {
		return errors.New("simulation.default_trials must be in [1, max_trials]")
	}
	if c.Store.TTL < 0 {
		return errors.New("store.ttl must be >= 0")
	}
	return nil
}

// Table returns the default parameter table with calibration rows applied.
func (c *Config) Table() (*params.Table, error) {
	tbl := params.Default().Clone()
	for id, p := range c.Calibration.Assets {
		a := model.ParseAsset(id)
		if !a.Known() {
			return nil, fmt.Errorf("unknown asset %q", id)
		}
		tbl.Assets[a] = p
	}
	for id, p := range c.Calibration.Inflation {
		i := model.ParseInflation(id)
		if !i.Known() {
			return nil, fmt.Errorf("unknown inflation index %q", id)
		}
		tbl.Inflation[i] = p
	}
	return tbl, nil
}

// Options converts the simulation block into generator options.
// Call after defaults have been applied.
func (c *Config) Options() simulate.Options {
	o := simulate.DefaultOptions()
	if c.Simulation.InitialNominal != 0 {
		o.InitialNominal = c.Simulation.InitialNominal
	}
	if c.Simulation.BaseIndex != 0 {
		o.BaseIndex = c.Simulation.BaseIndex
	}
	if c.Simulation.InflationFloor != nil {
		o.InflationFloor = *c.Simulation.InflationFloor
	}
	if c.Simulation.SalaryHikeJitter != nil {
		o.SalaryHikeJitter = *c.Simulation.SalaryHikeJitter
	}
	return o
}

// Production reports whether the server runs in release mode.
func (c *Config) Production() bool {
	return c.Server.Env == "production"
}

type calibrationFileWrapper struct {
	Calibration CalibrationConfig `yaml:"calibration"`
}

func loadCalibrationFile(path string) (CalibrationConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return CalibrationConfig{}, err
	}
	var w calibrationFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return CalibrationConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return w.Calibration, nil
}

// MergeCalibration overlays rows from override onto base. Rows are replaced
// whole, since a zero volatility is a legitimate setting.
func MergeCalibration(base, override CalibrationConfig) CalibrationConfig {
	out := CalibrationConfig{
		Assets:    map[string]params.AssetParams{},
		Inflation: map[string]params.InflationParams{},
	}
	for k, v := range base.Assets {
		out.Assets[k] = v
	}
	for k, v := range override.Assets {
		out.Assets[k] = v
	}
	for k, v := range base.Inflation {
		out.Inflation[k] = v
	}
	for k, v := range override.Inflation {
		out.Inflation[k] = v
	}
	return out
}

// ApplyEnv overrides server and store settings from the environment:
// API_PORT, API_ENV, STATIC_DIR, REDIS_URL.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("API_PORT"); v != "" {
		c.Server.Port = v
	}
	if v := getenv("API_ENV"); v != "" {
		c.Server.Env = v
	}
	if v := getenv("STATIC_DIR"); v != "" {
		c.Server.StaticDir = v
	}
	if v := getenv("REDIS_URL"); v != "" {
		c.Store.RedisURL = v
	}
}
