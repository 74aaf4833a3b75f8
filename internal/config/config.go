// Package config loads the optional configuration file and holds the settings
// shared by the CLI flags and the file. Flags always win over the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wcmckee/SortPictures/internal/errors"
	"github.com/wcmckee/SortPictures/internal/sequence"
)

// Config represents the application configuration structure. The bindings
// section carries the same "<key>:<parameter>" specs as the repeatable CLI
// flags.
type Config struct {
	Bindings struct {
		Act        []string `yaml:"act"`     // shell-command bindings
		Move       []string `yaml:"move"`    // fixed-directory moves
		MoveCreate []string `yaml:"movec"`   // fixed-directory moves, auto-created
		MoveSub    []string `yaml:"movesub"` // parent-named-subdirectory moves
	} `yaml:"bindings"`
	Settings struct {
		Sort   string `yaml:"sort"`   // ordering policy: none, name, mod, random
		Start  int    `yaml:"start"`  // 1-based initial position, post-sort
		Scale  string `yaml:"scale"`  // "factor[,method]"
		Filter string `yaml:"filter"` // base-name glob filter
		Watch  bool   `yaml:"watch"`  // append newly created files during the session
		Debug  bool   `yaml:"debug"`  // debug logging
	} `yaml:"settings"`
}

// LoadConfig loads configuration from the default location
// (~/.config/sortpictures/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(filepath.Join(home, ".config", "sortpictures", "config.yaml"))
}

// LoadConfigFile loads configuration from a specific file path. If the file
// doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.NewConfigError("error reading config file", path, errors.InvalidConfig, err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	cfg.Bindings = tempCfg.Bindings
	if tempCfg.Settings.Sort != "" {
		cfg.Settings.Sort = tempCfg.Settings.Sort
	}
	if tempCfg.Settings.Start > 0 {
		cfg.Settings.Start = tempCfg.Settings.Start
	}
	if tempCfg.Settings.Scale != "" {
		cfg.Settings.Scale = tempCfg.Settings.Scale
	}
	if tempCfg.Settings.Filter != "" {
		cfg.Settings.Filter = tempCfg.Settings.Filter
	}
	cfg.Settings.Watch = tempCfg.Settings.Watch
	cfg.Settings.Debug = tempCfg.Settings.Debug

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Settings.Sort = "none"
	cfg.Settings.Start = 1
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}
	if _, err := sequence.ParsePolicy(c.Settings.Sort); err != nil {
		return err
	}
	if c.Settings.Start < 1 {
		msg := fmt.Sprintf("start position must be >= 1, got %d", c.Settings.Start)
		return errors.NewConfigError(msg, "--start", errors.OutOfRangeStart, nil)
	}
	if _, err := ParseScale(c.Settings.Scale); err != nil {
		return err
	}
	if _, err := sequence.CompileFilter(c.Settings.Filter); err != nil {
		return err
	}
	return nil
}

// Scale methods
const (
	ScaleSmooth = "smooth"
	ScalePixels = "pixels"
)

// Scale is the presentation scale: a window-size factor and the pixel
// interpolation method.
type Scale struct {
	Factor float64
	Method string
}

// ParseScale parses a --scale value of the form "factor[,method]". The empty
// string yields the identity scale.
func ParseScale(s string) (Scale, error) {
	scale := Scale{Factor: 1, Method: ScaleSmooth}
	if s == "" {
		return scale, nil
	}

	factorPart, methodPart, hasMethod := strings.Cut(s, ",")
	factor, err := strconv.ParseFloat(factorPart, 64)
	if err != nil || factor <= 0 {
		return scale, errors.NewConfigError("invalid scale factor: "+s, "--scale", errors.InvalidScale, nil)
	}
	scale.Factor = factor

	if hasMethod {
		switch methodPart {
		case ScaleSmooth, ScalePixels:
			scale.Method = methodPart
		default:
			return scale, errors.NewConfigError("unknown scale method: "+methodPart, "--scale", errors.InvalidScale, nil)
		}
	}
	return scale, nil
}
