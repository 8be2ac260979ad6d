package config

import (
	"fmt"
	"os"
	"time"

	"debank_client/internal/pkg/utils"
	"debank_client/pkg/debank"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// AccessKeyEnv overrides debank.accessKey when set.
const AccessKeyEnv = "DEBANK_ACCESS_KEY"

// Config holds the overall configuration for the application.
type Config struct {
	DeBank  DeBankConfig  `yaml:"debank"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	Summary SummaryConfig `yaml:"summary"`
}

// DeBankConfig holds the configuration for the DeBank API client.
type DeBankConfig struct {
	AccessKey            string `yaml:"accessKey"`
	BaseURL              string `yaml:"baseURL"`
	RequestTimeoutMillis int64  `yaml:"requestTimeoutMillis"`
	MaxConnsPerHost      int    `yaml:"maxConnsPerHost"`
}

// RequestTimeout returns the configured timeout as a duration.
func (c DeBankConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMillis) * time.Millisecond
}

// ServerConfig holds the proxy server configuration. Timeouts are in seconds.
type ServerConfig struct {
	Port         string   `yaml:"port"`
	ReadTimeout  int      `yaml:"readTimeout"`
	WriteTimeout int      `yaml:"writeTimeout"`
	IdleTimeout  int      `yaml:"idleTimeout"`
	AllowOrigins []string `yaml:"allowOrigins"`
}

// LoggingConfig holds the configuration for logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // e.g., "debug", "info", "warn", "error"
	File  string `yaml:"file"`
}

// SummaryConfig holds configuration for the portfolio summary.
type SummaryConfig struct {
	MaxConcurrentRequests int    `yaml:"maxConcurrentRequests"`
	WalletsFile           string `yaml:"walletsFile"`
}

// LoadConfig loads configuration from a YAML file. An empty path yields the
// defaults. The access key may come from the DEBANK_ACCESS_KEY environment
// variable instead of the file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		logrus.Infof("Loading configuration from path: %s", path)
		data, err := os.ReadFile(path)
		if err != nil {
			logrus.Errorf("Failed to read config file %s: %v", path, err)
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			logrus.Errorf("Failed to unmarshal config data from %s: %v", path, err)
			return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
		}
	}

	if key := utils.GetEnv(AccessKeyEnv, ""); key != "" {
		cfg.DeBank.AccessKey = key
	}
	applyDefaults(&cfg)

	if cfg.DeBank.RequestTimeoutMillis < 0 {
		return nil, fmt.Errorf("debank.requestTimeoutMillis must be positive, got %d", cfg.DeBank.RequestTimeoutMillis)
	}
	if cfg.Summary.MaxConcurrentRequests < 0 {
		return nil, fmt.Errorf("summary.maxConcurrentRequests must be positive, got %d", cfg.Summary.MaxConcurrentRequests)
	}

	logrus.Debug("Configuration loaded successfully.")
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.DeBank.BaseURL == "" {
		cfg.DeBank.BaseURL = debank.DefaultBaseURL
	}
	if cfg.DeBank.RequestTimeoutMillis == 0 {
		cfg.DeBank.RequestTimeoutMillis = debank.DefaultTimeout.Milliseconds()
		logrus.Debugf("DeBank.RequestTimeoutMillis not set, defaulting to %d ms", cfg.DeBank.RequestTimeoutMillis)
	}
	if cfg.DeBank.MaxConnsPerHost == 0 {
		cfg.DeBank.MaxConnsPerHost = 64
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = ":8080"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		// The proxy waits on the upstream, so leave room for its timeout.
		cfg.Server.WriteTimeout = int(cfg.DeBank.RequestTimeout()/time.Second) + 5
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Summary.MaxConcurrentRequests == 0 {
		cfg.Summary.MaxConcurrentRequests = 4
		logrus.Debugf("Summary.MaxConcurrentRequests not set, defaulting to %d", cfg.Summary.MaxConcurrentRequests)
	}
}
