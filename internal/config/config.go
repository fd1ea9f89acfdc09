package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"pokerhand/internal/util"
)

// Config provides configuration for the best hand tools
type Config struct {
	loaded  bool
	Workers int   `yaml:"workers" envconfig:"workers"`
	Seed    int64 `yaml:"seed" envconfig:"seed"`
	Log     struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration used when no file or environment overrides exist
func DefaultConfig() Config {
	cfg := Config{
		Workers: runtime.GOMAXPROCS(0),
	}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The file is optional, a missing file leaves the defaults in place
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("POKERHAND_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("pokerhand", &cfg); err != nil {
		return err
	}

	if cfg.Seed < 0 {
		return fmt.Errorf("seed cannot be < 0: %d", cfg.Seed)
	}

	cfg.loaded = true
	config = cfg
	return nil
}
