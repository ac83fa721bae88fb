package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/glitch-xp/loyola-academic-calender/internal/constants"
)

// NotifyConfig controls the watch-mode class reminders. The webhook receives
// a small JSON payload; an optional bearer token lives in the OS keyring,
// never in this file.
type NotifyConfig struct {
	Enabled     bool   `yaml:"enabled" json:"enabled"`
	WebhookURL  string `yaml:"webhook_url" json:"webhook_url"`
	LeadMinutes int    `yaml:"lead_minutes" json:"lead_minutes"`
}

// Config is the top-level application configuration.
type Config struct {
	// BaseURL is the raw-content root the three data documents are fetched
	// from.
	BaseURL string `yaml:"base_url" json:"base_url"`

	// Timezone is the IANA timezone used for "today" and the live tracker.
	// "Local" or empty uses the system timezone.
	Timezone string `yaml:"timezone" json:"timezone"`

	// RefreshCron schedules the background re-fetch while watch mode runs.
	RefreshCron string `yaml:"refresh" json:"refresh"`

	Notify NotifyConfig `yaml:"notify" json:"notify"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:     constants.DefaultBaseURL,
		Timezone:    "Local",
		RefreshCron: constants.DefaultRefreshCron,
		Notify: NotifyConfig{
			Enabled:     false,
			LeadMinutes: constants.NotifyLeadMinutes,
		},
	}
}

// Normalize fills in missing/zero values so partially-filled configs from
// older versions still behave.
func (c *Config) Normalize() {
	if c.BaseURL == "" {
		c.BaseURL = constants.DefaultBaseURL
	}
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	if c.RefreshCron == "" {
		c.RefreshCron = constants.DefaultRefreshCron
	}
	if c.Notify.LeadMinutes <= 0 {
		c.Notify.LeadMinutes = constants.NotifyLeadMinutes
	}
}

// Load reads the YAML config at path. A missing file is a first run: the
// default config is written there (0600) and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes cfg to path atomically (temp file + rename, 0600).
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".loyolacal-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Save is a convenience method that delegates to the package-level Save.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
