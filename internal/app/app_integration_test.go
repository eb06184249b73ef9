package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/glabrego/lofi-tui/internal/preview"
	"github.com/glabrego/lofi-tui/internal/storage"
	"github.com/glabrego/lofi-tui/internal/youtube"
)

func TestIntegration_CatalogAndThumbnail(t *testing.T) {
	if os.Getenv("LOFI_INTEGRATION") != "1" {
		t.Skip("set LOFI_INTEGRATION=1 to run integration tests")
	}

	repo, err := storage.NewRepository(filepath.Join(t.TempDir(), "lofi-integration.db"))
	if err != nil {
		t.Fatalf("NewRepository returned error: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	if err := repo.Init(ctx); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}

	catalog := youtube.NewCatalogClient(os.Getenv("LOFI_YTDLP_PATH"), "", "1:3", nil)
	thumbs := youtube.NewThumbnailClient("", nil)
	svc := NewService(catalog, thumbs, repo, quietLogger())

	streams, err := svc.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("LoadCatalog returned error: %v", err)
	}
	if len(streams) == 0 {
		t.Skip("channel currently has no live streams")
	}

	loader := preview.NewLoader(svc, preview.BlockRenderer{})
	img, err := loader.Load(ctx, streams[0].ID, 40, 15)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if img.Rendered == "" {
		t.Fatal("expected rendered thumbnail")
	}

	if _, ok, err := repo.LoadThumbnail(ctx, streams[0].ID, 0); err != nil || !ok {
		t.Fatalf("expected thumbnail cached after load, ok=%v err=%v", ok, err)
	}
}
