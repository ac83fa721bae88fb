package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glitch-xp/loyola-academic-calender/internal/constants"
)

func TestLoadCreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != constants.DefaultBaseURL {
		t.Errorf("BaseURL = %q, want default", cfg.BaseURL)
	}
	if cfg.RefreshCron != constants.DefaultRefreshCron {
		t.Errorf("RefreshCron = %q, want default", cfg.RefreshCron)
	}

	// The file must now exist with private permissions.
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("config perms = %o, want 600", perm)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Timezone = "Asia/Kolkata"
	cfg.Notify.Enabled = true
	cfg.Notify.WebhookURL = "https://ntfy.sh/loyolacal-test"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Timezone != "Asia/Kolkata" {
		t.Errorf("Timezone = %q", got.Timezone)
	}
	if !got.Notify.Enabled || got.Notify.WebhookURL != cfg.Notify.WebhookURL {
		t.Errorf("Notify = %+v", got.Notify)
	}
}

func TestNormalizeFillsZeroValues(t *testing.T) {
	cfg := &Config{}
	cfg.Normalize()

	if cfg.BaseURL == "" || cfg.Timezone == "" || cfg.RefreshCron == "" {
		t.Errorf("Normalize left zero values: %+v", cfg)
	}
	if cfg.Notify.LeadMinutes != constants.NotifyLeadMinutes {
		t.Errorf("LeadMinutes = %d, want %d", cfg.Notify.LeadMinutes, constants.NotifyLeadMinutes)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("base_url: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() accepted malformed YAML")
	}
}
