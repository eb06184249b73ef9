package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

const (
	defaultChannelURL       = "https://www.youtube.com/@LofiGirl/streams"
	defaultPlaylistItems    = "1:20"
	defaultYTDLPPath        = "yt-dlp"
	defaultPlayerPath       = "mpv"
	defaultThumbnailBaseURL = "https://img.youtube.com"
	defaultWatchURL         = "https://www.youtube.com/watch"
	defaultPollInterval     = 50 * time.Millisecond
	defaultCatalogTimeout   = 60 * time.Second
	maxPollInterval         = time.Second
)

const (
	RendererBlocks = "blocks"
	RendererChafa  = "chafa"
	RendererNone   = "none"
)

// Config holds runtime settings for the CLI app.
type Config struct {
	ChannelURL       string
	PlaylistItems    string
	YTDLPPath        string
	PlayerPath       string
	ThumbnailBaseURL string
	WatchURL         string
	CachePath        string
	Renderer         string
	LogFile          string
	LogLevel         string
	PollInterval     time.Duration
	CatalogTimeout   time.Duration
}

func Defaults() Config {
	return Config{
		ChannelURL:       defaultChannelURL,
		PlaylistItems:    defaultPlaylistItems,
		YTDLPPath:        defaultYTDLPPath,
		PlayerPath:       defaultPlayerPath,
		ThumbnailBaseURL: defaultThumbnailBaseURL,
		WatchURL:         defaultWatchURL,
		Renderer:         RendererBlocks,
		LogLevel:         "info",
		PollInterval:     defaultPollInterval,
		CatalogTimeout:   defaultCatalogTimeout,
	}
}

func LoadFromEnv() (Config, error) {
	cfg, err := fromEnv(os.Getenv)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the environment and then applies command line flags on top.
// pflag.ErrHelp is returned unchanged when -h/--help is passed.
func Load(args []string) (Config, *pflag.FlagSet, error) {
	cfg, err := fromEnv(os.Getenv)
	if err != nil {
		return Config{}, nil, err
	}

	flagSet := pflag.NewFlagSet("lofi", pflag.ContinueOnError)
	flagSet.Usage = func() {}
	cfg.AddFlags(flagSet)
	if err := flagSet.Parse(args); err != nil {
		return Config{}, flagSet, err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return Config{}, flagSet, fmt.Errorf("unexpected argument: %s", rest[0])
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, flagSet, err
	}
	return cfg, flagSet, nil
}

// AddFlags registers one flag per field, using the current values as
// defaults so flags override the environment.
func (c *Config) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&c.ChannelURL, "channel", c.ChannelURL, "channel streams page passed to yt-dlp")
	flagSet.StringVar(&c.PlaylistItems, "items", c.PlaylistItems, "yt-dlp playlist item range")
	flagSet.StringVar(&c.YTDLPPath, "yt-dlp", c.YTDLPPath, "yt-dlp binary")
	flagSet.StringVar(&c.PlayerPath, "player", c.PlayerPath, "media player binary")
	flagSet.StringVar(&c.ThumbnailBaseURL, "thumbnail-base", c.ThumbnailBaseURL, "thumbnail host base URL")
	flagSet.StringVar(&c.WatchURL, "watch-url", c.WatchURL, "watch page URL handed to the player")
	flagSet.StringVar(&c.CachePath, "cache", c.CachePath, "sqlite thumbnail cache path (empty disables caching)")
	flagSet.StringVar(&c.Renderer, "renderer", c.Renderer, "preview renderer: blocks, chafa or none")
	flagSet.StringVar(&c.LogFile, "log-file", c.LogFile, "write JSON log records to this file")
	flagSet.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
	flagSet.DurationVar(&c.PollInterval, "poll", c.PollInterval, "preview staleness check interval")
	flagSet.DurationVar(&c.CatalogTimeout, "catalog-timeout", c.CatalogTimeout, "timeout for the startup catalog fetch")
}

func fromEnv(getenv func(string) string) (Config, error) {
	cfg := Defaults()
	setString := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	setString(&cfg.ChannelURL, "LOFI_CHANNEL_URL")
	setString(&cfg.PlaylistItems, "LOFI_PLAYLIST_ITEMS")
	setString(&cfg.YTDLPPath, "LOFI_YTDLP_PATH")
	setString(&cfg.PlayerPath, "LOFI_PLAYER_PATH")
	setString(&cfg.ThumbnailBaseURL, "LOFI_THUMBNAIL_BASE_URL")
	setString(&cfg.WatchURL, "LOFI_WATCH_URL")
	setString(&cfg.CachePath, "LOFI_CACHE_PATH")
	setString(&cfg.Renderer, "LOFI_PREVIEW_RENDERER")
	setString(&cfg.LogFile, "LOFI_LOG_FILE")
	setString(&cfg.LogLevel, "LOFI_LOG_LEVEL")

	for key, dst := range map[string]*time.Duration{
		"LOFI_POLL_INTERVAL":   &cfg.PollInterval,
		"LOFI_CATALOG_TIMEOUT": &cfg.CatalogTimeout,
	} {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			continue
		}
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", key, err)
		}
		*dst = d
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.ChannelURL == "" {
		return errors.New("ChannelURL is required")
	}
	if c.YTDLPPath == "" {
		return errors.New("YTDLPPath is required")
	}
	if c.PlayerPath == "" {
		return errors.New("PlayerPath is required")
	}
	if c.PlaylistItems == "" {
		return errors.New("PlaylistItems is required")
	}
	for name, raw := range map[string]string{
		"ChannelURL":       c.ChannelURL,
		"ThumbnailBaseURL": c.ThumbnailBaseURL,
		"WatchURL":         c.WatchURL,
	} {
		if err := validateURL(name, raw); err != nil {
			return err
		}
	}
	switch c.Renderer {
	case RendererBlocks, RendererChafa, RendererNone:
	default:
		return fmt.Errorf("Renderer must be blocks, chafa or none: %s", c.Renderer)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LogLevel must be debug, info, warn or error: %s", c.LogLevel)
	}
	if c.PollInterval <= 0 || c.PollInterval > maxPollInterval {
		return fmt.Errorf("PollInterval must be in (0, %s]: %s", maxPollInterval, c.PollInterval)
	}
	if c.CatalogTimeout <= 0 {
		return fmt.Errorf("CatalogTimeout must be positive: %s", c.CatalogTimeout)
	}
	return nil
}

func validateURL(name, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", name)
	}
	if raw[len(raw)-1] == '/' {
		return fmt.Errorf("%s must not end with '/': %s", name, raw)
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", name, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s has unsupported scheme: %s", name, parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s has no host: %s", name, raw)
	}
	return nil
}
