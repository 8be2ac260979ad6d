package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"debank_client/pkg/debank"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Setenv(AccessKeyEnv, "")
	path := writeConfig(t, `
debank:
  accessKey: file-key
  requestTimeoutMillis: 1500
server:
  port: ":9090"
  allowOrigins: ["https://example.org"]
logging:
  level: debug
summary:
  maxConcurrentRequests: 8
  walletsFile: data/wallets.txt
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.DeBank.AccessKey != "file-key" {
		t.Errorf("access key = %q", cfg.DeBank.AccessKey)
	}
	if cfg.DeBank.RequestTimeout() != 1500*time.Millisecond {
		t.Errorf("timeout = %v", cfg.DeBank.RequestTimeout())
	}
	if cfg.DeBank.BaseURL != debank.DefaultBaseURL {
		t.Errorf("base URL = %q", cfg.DeBank.BaseURL)
	}
	if cfg.Server.Port != ":9090" || len(cfg.Server.AllowOrigins) != 1 {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Server.WriteTimeout != 6 {
		t.Errorf("write timeout = %d, want upstream timeout + 5", cfg.Server.WriteTimeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q", cfg.Logging.Level)
	}
	if cfg.Summary.MaxConcurrentRequests != 8 || cfg.Summary.WalletsFile != "data/wallets.txt" {
		t.Errorf("summary = %+v", cfg.Summary)
	}
}

func TestLoadConfigDefaultsAndEnv(t *testing.T) {
	t.Setenv(AccessKeyEnv, "env-key")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.DeBank.AccessKey != "env-key" {
		t.Errorf("access key = %q", cfg.DeBank.AccessKey)
	}
	if cfg.DeBank.RequestTimeout() != debank.DefaultTimeout {
		t.Errorf("timeout = %v", cfg.DeBank.RequestTimeout())
	}
	if cfg.Server.Port != ":8080" || cfg.Logging.Level != "info" || cfg.Summary.MaxConcurrentRequests != 4 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Setenv(AccessKeyEnv, "env-key")
	cfg, err := LoadConfig(writeConfig(t, "debank:\n  accessKey: file-key\n"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.DeBank.AccessKey != "env-key" {
		t.Errorf("access key = %q", cfg.DeBank.AccessKey)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LoadConfig(writeConfig(t, "debank: [")); err == nil {
		t.Error("expected error for invalid yaml")
	}
	if _, err := LoadConfig(writeConfig(t, "debank:\n  requestTimeoutMillis: -1\n")); err == nil {
		t.Error("expected error for negative timeout")
	}
}
