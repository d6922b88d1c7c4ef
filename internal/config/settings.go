package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/handiism/bandcamp-meta/internal/http"
	"github.com/handiism/bandcamp-meta/internal/model"
	"github.com/handiism/bandcamp-meta/internal/normalize"
)

// Settings holds all configuration options.
type Settings struct {
	// Fetch settings
	MaxConcurrentReleases int     `json:"max_concurrent_releases"`
	Retries               int     `json:"retries"`
	RetryCooldownSeconds  float64 `json:"retry_cooldown_seconds"`
	UserAgent             string  `json:"user_agent"`

	// Cover art settings
	CoverMaxSize int `json:"cover_max_size"`

	// Playlist settings
	PlaylistFormat string `json:"playlist_format"` // m3u, pls, wpl, zpl
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		MaxConcurrentReleases: 4,
		Retries:               3,
		RetryCooldownSeconds:  1.0,
		UserAgent:             http.DefaultUserAgent,

		CoverMaxSize: 1000,

		PlaylistFormat: "m3u",
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error: defaults are returned so a first run
// needs no setup. Fields absent from the file keep their default values.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate reports the first invalid setting, or nil when all are usable.
func (s *Settings) Validate() error {
	if s.MaxConcurrentReleases < 1 {
		return fmt.Errorf("max_concurrent_releases must be at least 1, got %d", s.MaxConcurrentReleases)
	}
	if s.Retries < 0 {
		return fmt.Errorf("retries must not be negative, got %d", s.Retries)
	}
	if s.RetryCooldownSeconds < 0 {
		return fmt.Errorf("retry_cooldown_seconds must not be negative, got %g", s.RetryCooldownSeconds)
	}
	if s.CoverMaxSize < 0 {
		return fmt.Errorf("cover_max_size must not be negative, got %d", s.CoverMaxSize)
	}
	if _, ok := model.ParsePlaylistFormat(s.PlaylistFormat); !ok {
		return fmt.Errorf("playlist_format must be one of m3u, pls, wpl, zpl, got %q", s.PlaylistFormat)
	}
	return nil
}

// ToManagerConfig converts settings to a normalize.Config.
//
// The album artist override is a per-invocation choice, so it is left
// empty here and filled in from flags.
func (s *Settings) ToManagerConfig() normalize.Config {
	return normalize.Config{
		MaxConcurrent: s.MaxConcurrentReleases,
		Retries:       s.Retries,
		RetryCooldown: time.Duration(s.RetryCooldownSeconds * float64(time.Second)),
	}
}
