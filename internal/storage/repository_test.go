package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "lofi.db")
	repo, err := NewRepository(dbPath)
	if err != nil {
		t.Fatalf("NewRepository returned error: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	if err := repo.Init(context.Background()); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	return repo
}

func TestRepository_SaveAndLoadThumbnail(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if err := repo.SaveThumbnail(ctx, "abc", []byte{1, 2, 3}); err != nil {
		t.Fatalf("SaveThumbnail returned error: %v", err)
	}

	data, ok, err := repo.LoadThumbnail(ctx, "abc", 0)
	if err != nil {
		t.Fatalf("LoadThumbnail returned error: %v", err)
	}
	if !ok || string(data) != string([]byte{1, 2, 3}) {
		t.Fatalf("unexpected cached thumbnail: ok=%v data=%v", ok, data)
	}

	_, ok, err = repo.LoadThumbnail(ctx, "missing", 0)
	if err != nil {
		t.Fatalf("LoadThumbnail(missing) returned error: %v", err)
	}
	if ok {
		t.Fatal("expected cache miss for unknown stream")
	}
}

func TestRepository_SaveThumbnail_Upserts(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if err := repo.SaveThumbnail(ctx, "abc", []byte("old")); err != nil {
		t.Fatalf("SaveThumbnail returned error: %v", err)
	}
	if err := repo.SaveThumbnail(ctx, "abc", []byte("new")); err != nil {
		t.Fatalf("SaveThumbnail returned error: %v", err)
	}
	data, _, err := repo.LoadThumbnail(ctx, "abc", 0)
	if err != nil {
		t.Fatalf("LoadThumbnail returned error: %v", err)
	}
	if string(data) != "new" {
		t.Fatalf("expected upserted bytes, got %q", data)
	}
}

func TestRepository_LoadThumbnail_Expires(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	repo.nowFn = func() time.Time { return now }
	if err := repo.SaveThumbnail(ctx, "abc", []byte("img")); err != nil {
		t.Fatalf("SaveThumbnail returned error: %v", err)
	}

	repo.nowFn = func() time.Time { return now.Add(2 * time.Hour) }
	if _, ok, err := repo.LoadThumbnail(ctx, "abc", time.Hour); err != nil || ok {
		t.Fatalf("expected expired entry, ok=%v err=%v", ok, err)
	}
	if _, ok, err := repo.LoadThumbnail(ctx, "abc", 3*time.Hour); err != nil || !ok {
		t.Fatalf("expected fresh entry, ok=%v err=%v", ok, err)
	}

	removed, err := repo.PruneThumbnails(ctx, time.Hour)
	if err != nil {
		t.Fatalf("PruneThumbnails returned error: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 pruned row, got %d", removed)
	}
}

func TestRepository_CheckWritable(t *testing.T) {
	repo := newTestRepository(t)
	if err := repo.CheckWritable(context.Background()); err != nil {
		t.Fatalf("CheckWritable returned error: %v", err)
	}
}
