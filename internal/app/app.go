package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/glabrego/lofi-tui/internal/youtube"
)

// DefaultThumbnailMaxAge bounds how long a cached thumbnail is trusted.
// Live stream thumbnails are regenerated by YouTube every few hours.
const DefaultThumbnailMaxAge = 6 * time.Hour

type CatalogClient interface {
	ListStreams(ctx context.Context) ([]youtube.Stream, error)
}

type ThumbnailClient interface {
	Thumbnail(ctx context.Context, streamID string) ([]byte, error)
}

type Repository interface {
	SaveThumbnail(ctx context.Context, streamID string, data []byte) error
	LoadThumbnail(ctx context.Context, streamID string, maxAge time.Duration) ([]byte, bool, error)
}

type Service struct {
	catalog    CatalogClient
	thumbnails ThumbnailClient
	repo       Repository
	maxAge     time.Duration
	logger     *slog.Logger
}

// NewService wires the collaborators together. repo may be nil, in which
// case every thumbnail is downloaded.
func NewService(catalog CatalogClient, thumbnails ThumbnailClient, repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		catalog:    catalog,
		thumbnails: thumbnails,
		repo:       repo,
		maxAge:     DefaultThumbnailMaxAge,
		logger:     logger,
	}
}

func (s *Service) LoadCatalog(ctx context.Context) ([]youtube.Stream, error) {
	start := time.Now()
	streams, err := s.catalog.ListStreams(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	s.logger.Info("catalog loaded", "streams", len(streams), "duration", time.Since(start))
	return streams, nil
}

// Thumbnail returns the thumbnail bytes for streamID, preferring the local
// cache. Cache failures are logged and otherwise ignored.
func (s *Service) Thumbnail(ctx context.Context, streamID string) ([]byte, error) {
	if s.repo != nil {
		data, ok, err := s.repo.LoadThumbnail(ctx, streamID, s.maxAge)
		if err != nil {
			s.logger.Warn("thumbnail cache read failed", "stream", streamID, "error", err)
		} else if ok {
			return data, nil
		}
	}

	data, err := s.thumbnails.Thumbnail(ctx, streamID)
	if err != nil {
		return nil, fmt.Errorf("download thumbnail: %w", err)
	}

	if s.repo != nil {
		if err := s.repo.SaveThumbnail(ctx, streamID, data); err != nil {
			s.logger.Warn("thumbnail cache write failed", "stream", streamID, "error", err)
		}
	}
	return data, nil
}
