package utils

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("DEBANK_TEST_SET", "value")
	t.Setenv("DEBANK_TEST_EMPTY", "")

	if got := GetEnv("DEBANK_TEST_SET", "fallback"); got != "value" {
		t.Errorf("set: got %q", got)
	}
	if got := GetEnv("DEBANK_TEST_EMPTY", "fallback"); got != "fallback" {
		t.Errorf("empty: got %q", got)
	}
	if got := GetEnv("DEBANK_TEST_UNSET_123", "fallback"); got != "fallback" {
		t.Errorf("unset: got %q", got)
	}
}
