package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/glabrego/lofi-tui/internal/app"
	"github.com/glabrego/lofi-tui/internal/config"
	"github.com/glabrego/lofi-tui/internal/logging"
	"github.com/glabrego/lofi-tui/internal/player"
	"github.com/glabrego/lofi-tui/internal/preview"
	"github.com/glabrego/lofi-tui/internal/storage"
	"github.com/glabrego/lofi-tui/internal/tui"
	"github.com/glabrego/lofi-tui/internal/youtube"
)

// usageError marks failures caused by the command line or environment.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "lofi: %v\n", err)
		var usage usageError
		if errors.As(err, &usage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, flagSet, err := config.Load(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "Usage: lofi [flags]\n\nBrowse and play live streams from the terminal.\n\nFlags:")
			fmt.Fprint(os.Stderr, flagSet.FlagUsages())
			return nil
		}
		return usageError{err: fmt.Errorf("config error: %w", err)}
	}

	logger, closeLog, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return usageError{err: err}
	}
	defer closeLog()

	tty := probeTTY()
	logger.Info("starting",
		"channel", cfg.ChannelURL,
		"renderer", cfg.Renderer,
		"cache", cfg.CachePath,
		"tty", tty,
	)
	if tty.Detected == nil {
		return errors.New("no terminal detected on stdin, stdout or stderr")
	}

	var repo app.Repository
	if cfg.CachePath != "" {
		r, err := openCache(cfg.CachePath, logger)
		if err != nil {
			return err
		}
		defer r.Close()
		repo = r
	}

	catalog := youtube.NewCatalogClient(cfg.YTDLPPath, cfg.ChannelURL, cfg.PlaylistItems, nil)
	thumbnails := youtube.NewThumbnailClient(cfg.ThumbnailBaseURL, nil)
	service := app.NewService(catalog, thumbnails, repo, logger)

	fmt.Fprintln(os.Stderr, "Loading streams...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.CatalogTimeout)
	streams, err := service.LoadCatalog(ctx)
	cancel()
	if err != nil {
		return err
	}

	opts := tui.Options{
		Player:       player.NewLauncher(cfg.PlayerPath, cfg.WatchURL, logger),
		PollInterval: cfg.PollInterval,
		Logger:       logger,
	}
	switch cfg.Renderer {
	case config.RendererBlocks:
		opts.Loader = preview.NewLoader(service, preview.BlockRenderer{})
	case config.RendererChafa:
		opts.Loader = preview.NewLoader(service, preview.ChafaRenderer{})
	case config.RendererNone:
	}

	program := tea.NewProgram(tui.NewModel(streams, opts), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	logger.Info("exiting")
	return nil
}

func openCache(path string, logger *slog.Logger) (*storage.Repository, error) {
	repo, err := storage.NewRepository(path)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := repo.Init(ctx); err != nil {
		repo.Close()
		return nil, fmt.Errorf("storage schema error: %w", err)
	}
	if err := repo.CheckWritable(ctx); err != nil {
		repo.Close()
		return nil, usageError{err: fmt.Errorf("storage write check failed (%v); verify LOFI_CACHE_PATH is writable: %s", err, path)}
	}
	if n, err := repo.PruneThumbnails(ctx, app.DefaultThumbnailMaxAge); err != nil {
		logger.Warn("thumbnail prune failed", "error", err)
	} else if n > 0 {
		logger.Debug("pruned thumbnails", "count", n)
	}
	return repo, nil
}
