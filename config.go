package main

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultAddr        = ":8869"
	defaultBackendURL  = "http://192.168.1.6:5000"
	defaultSQLitePath  = "./dashboard_history.db"
	defaultLogLevel    = "info"
	defaultStorageKind = "sqlite"
)

type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`

	Logging struct {
		File  string `yaml:"file"`
		Level string `yaml:"level"`
	} `yaml:"logging"`

	Backend struct {
		BaseURL string `yaml:"base_url"`
		// Zero leaves the transport default in place.
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"backend"`

	Storage struct {
		Driver string `yaml:"driver"`
	} `yaml:"storage"`

	MySQL  mysqlConfig  `yaml:"mysql"`
	SQLite sqliteConfig `yaml:"sqlite"`

	Dashboard struct {
		CategoryOrder []string `yaml:"category_order"`
		HiddenTargets []string `yaml:"hidden_targets"`
	} `yaml:"dashboard"`
}

// loadConfig reads path and fills defaults. A missing file is tolerated
// unless required is set, so the binary runs with no config at all.
func loadConfig(path string, required bool) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	case errors.Is(err, fs.ErrNotExist) && !required:
	default:
		return cfg, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaultAddr
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
	if cfg.Backend.BaseURL == "" {
		cfg.Backend.BaseURL = defaultBackendURL
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = defaultStorageKind
	}
	if cfg.SQLite.Path == "" {
		cfg.SQLite.Path = defaultSQLitePath
	}
	if len(cfg.Dashboard.CategoryOrder) == 0 {
		cfg.Dashboard.CategoryOrder = []string{"0", "1"}
	}
}
