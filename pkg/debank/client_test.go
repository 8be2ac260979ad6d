package debank

import (
	"errors"
	"testing"
	"time"
)

func TestNewRequiresAccessKey(t *testing.T) {
	if _, err := New(""); !errors.Is(err, ErrMissingAccessKey) {
		t.Errorf("New(\"\") error = %v", err)
	}
}

func TestNewDefaults(t *testing.T) {
	client, err := New("key")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	cfg := client.Config()
	if cfg.AccessKey != "key" || cfg.BaseURL != DefaultBaseURL || cfg.Timeout != 60*time.Second {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if client.Chain == nil || client.Protocol == nil || client.Token == nil ||
		client.User == nil || client.Collection == nil || client.Wallet == nil {
		t.Error("groups not initialised")
	}
}

func TestNewOptions(t *testing.T) {
	client, err := New("key", WithTimeout(5*time.Second), WithBaseURL("http://localhost:9000/v1/"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	cfg := client.Config()
	if cfg.Timeout != 5*time.Second || cfg.BaseURL != "http://localhost:9000/v1" {
		t.Errorf("options not applied: %+v", cfg)
	}

	for name, opt := range map[string]Option{
		"zero timeout":  WithTimeout(0),
		"nil transport": WithTransport(nil),
		"empty base":    WithBaseURL(""),
	} {
		if _, err := New("key", opt); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
