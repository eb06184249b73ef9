package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LOFI_CHANNEL_URL", "LOFI_PLAYLIST_ITEMS", "LOFI_YTDLP_PATH", "LOFI_PLAYER_PATH",
		"LOFI_THUMBNAIL_BASE_URL", "LOFI_WATCH_URL", "LOFI_CACHE_PATH", "LOFI_PREVIEW_RENDERER",
		"LOFI_LOG_FILE", "LOFI_LOG_LEVEL", "LOFI_POLL_INTERVAL", "LOFI_CATALOG_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFromEnv_UsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}
	if cfg != Defaults() {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.ChannelURL != defaultChannelURL {
		t.Fatalf("unexpected channel URL: %s", cfg.ChannelURL)
	}
	if cfg.PollInterval != 50*time.Millisecond {
		t.Fatalf("unexpected poll interval: %s", cfg.PollInterval)
	}
	if cfg.CachePath != "" {
		t.Fatalf("expected caching disabled by default, got %q", cfg.CachePath)
	}
}

func TestLoadFromEnv_ReadsOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOFI_PLAYER_PATH", "/opt/mpv")
	t.Setenv("LOFI_PREVIEW_RENDERER", "chafa")
	t.Setenv("LOFI_POLL_INTERVAL", "200ms")
	t.Setenv("LOFI_CACHE_PATH", "/tmp/lofi.db")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}
	if cfg.PlayerPath != "/opt/mpv" || cfg.Renderer != RendererChafa {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.PollInterval != 200*time.Millisecond || cfg.CachePath != "/tmp/lofi.db" {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
}

func TestLoadFromEnv_InvalidDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOFI_CATALOG_TIMEOUT", "soon")

	_, err := LoadFromEnv()
	if err == nil || !strings.Contains(err.Error(), "LOFI_CATALOG_TIMEOUT") {
		t.Fatalf("expected duration error naming the variable, got %v", err)
	}
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOFI_PLAYER_PATH", "env-player")
	t.Setenv("LOFI_LOG_LEVEL", "warn")

	cfg, _, err := Load([]string{"--player", "flag-player", "--renderer=none", "--poll", "1s"})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PlayerPath != "flag-player" {
		t.Fatalf("expected flag to win, got %s", cfg.PlayerPath)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected env value without flag, got %s", cfg.LogLevel)
	}
	if cfg.Renderer != RendererNone || cfg.PollInterval != time.Second {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoad_Help(t *testing.T) {
	clearEnv(t)
	_, flagSet, err := Load([]string{"--help"})
	if !errors.Is(err, pflag.ErrHelp) {
		t.Fatalf("expected pflag.ErrHelp, got %v", err)
	}
	if flagSet == nil || flagSet.Lookup("channel") == nil {
		t.Fatal("expected flag set to be returned for usage output")
	}
}

func TestLoad_RejectsPositionalArguments(t *testing.T) {
	clearEnv(t)
	if _, _, err := Load([]string{"extra"}); err == nil {
		t.Fatal("expected error for positional argument")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "trailing slash", mutate: func(c *Config) { c.ThumbnailBaseURL = "https://img.youtube.com/" }},
		{name: "scheme", mutate: func(c *Config) { c.WatchURL = "ftp://example.com/watch" }},
		{name: "no host", mutate: func(c *Config) { c.ChannelURL = "https://" }},
		{name: "renderer", mutate: func(c *Config) { c.Renderer = "sixel" }},
		{name: "log level", mutate: func(c *Config) { c.LogLevel = "loud" }},
		{name: "zero poll", mutate: func(c *Config) { c.PollInterval = 0 }},
		{name: "slow poll", mutate: func(c *Config) { c.PollInterval = 2 * time.Second }},
		{name: "timeout", mutate: func(c *Config) { c.CatalogTimeout = -time.Second }},
		{name: "player", mutate: func(c *Config) { c.PlayerPath = "" }},
		{name: "items", mutate: func(c *Config) { c.PlaylistItems = "" }},
	}
	for _, tc := range cases {
		cfg := Defaults()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}

	if err := Defaults().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}
