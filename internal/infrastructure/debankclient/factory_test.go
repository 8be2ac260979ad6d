package debankclient

import (
	"errors"
	"testing"
	"time"

	"debank_client/internal/config"
	"debank_client/internal/metrics"
	"debank_client/pkg/debank"

	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	client, err := New(config.DeBankConfig{
		AccessKey:            "key",
		BaseURL:              "http://localhost:1234/v1",
		RequestTimeoutMillis: 2500,
		MaxConnsPerHost:      8,
	}, zap.NewNop(), metrics.NewObserver())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	cfg := client.Config()
	if cfg.BaseURL != "http://localhost:1234/v1" || cfg.Timeout != 2500*time.Millisecond {
		t.Errorf("config = %+v", cfg)
	}
}

func TestNewWithoutAccessKey(t *testing.T) {
	_, err := New(config.DeBankConfig{}, zap.NewNop(), nil)
	if !errors.Is(err, debank.ErrMissingAccessKey) {
		t.Errorf("error = %v", err)
	}
}
