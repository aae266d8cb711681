package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"), false)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != defaultAddr || cfg.Backend.BaseURL != defaultBackendURL || cfg.Storage.Driver != "sqlite" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if len(cfg.Dashboard.CategoryOrder) != 2 {
		t.Fatalf("category order = %v", cfg.Dashboard.CategoryOrder)
	}

	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"), true); err == nil {
		t.Fatalf("required config missing but no error")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
server:
  addr: ":9000"
backend:
  base_url: "http://stats:5000"
  timeout: 3s
storage:
  driver: none
dashboard:
  hidden_targets: [radarChart]
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path, true)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":9000" || cfg.Backend.BaseURL != "http://stats:5000" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Backend.Timeout != 3*time.Second {
		t.Fatalf("timeout = %v", cfg.Backend.Timeout)
	}
	if cfg.Storage.Driver != "none" || len(cfg.Dashboard.HiddenTargets) != 1 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("level default = %q", cfg.Logging.Level)
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	var cfg Config
	cfg.Logging.Level = "loud"
	if _, err := newLogger(cfg); err == nil {
		t.Fatalf("bad level accepted")
	}
}
