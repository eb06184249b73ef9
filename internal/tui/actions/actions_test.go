package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glabrego/lofi-tui/internal/preview"
)

type fakeLoader struct {
	img          preview.Image
	err          error
	lastID       string
	lastCols     int
	lastRows     int
	lastDeadline time.Time
}

func (f *fakeLoader) Load(ctx context.Context, streamID string, cols, rows int) (preview.Image, error) {
	if dl, ok := ctx.Deadline(); ok {
		f.lastDeadline = dl
	}
	f.lastID, f.lastCols, f.lastRows = streamID, cols, rows
	if f.err != nil {
		return preview.Image{}, f.err
	}
	return f.img, nil
}

type fakePlayer struct {
	err    error
	played []string
}

func (f *fakePlayer) Play(streamID string) error {
	f.played = append(f.played, streamID)
	return f.err
}

func TestLoadPreviewCmd_Success(t *testing.T) {
	loader := &fakeLoader{img: preview.Image{StreamID: "abc", Rendered: "img"}}
	req := preview.Request{Index: 2, Cols: 40, Rows: 15}

	msg := LoadPreviewCmd(loader, req, "abc")()
	loaded, ok := msg.(PreviewLoadedMsg)
	if !ok {
		t.Fatalf("expected PreviewLoadedMsg, got %T", msg)
	}
	if loaded.Request != req || loaded.Image.Rendered != "img" {
		t.Fatalf("unexpected message %+v", loaded)
	}
	if loader.lastID != "abc" || loader.lastCols != 40 || loader.lastRows != 15 {
		t.Fatalf("unexpected load call %q %dx%d", loader.lastID, loader.lastCols, loader.lastRows)
	}
	if loader.lastDeadline.IsZero() {
		t.Fatal("expected load to run with a deadline")
	}
}

func TestLoadPreviewCmd_Failure(t *testing.T) {
	boom := errors.New("boom")
	req := preview.Request{Index: 1, Cols: 10, Rows: 4}

	msg := LoadPreviewCmd(&fakeLoader{err: boom}, req, "x")()
	failed, ok := msg.(PreviewFailedMsg)
	if !ok {
		t.Fatalf("expected PreviewFailedMsg, got %T", msg)
	}
	if !errors.Is(failed.Err, boom) || failed.Request != req || failed.StreamID != "x" {
		t.Fatalf("unexpected message %+v", failed)
	}
}

func TestPlayCmd(t *testing.T) {
	p := &fakePlayer{}
	msg := PlayCmd(p, "abc", "lofi hip hop radio")()
	started, ok := msg.(PlayStartedMsg)
	if !ok {
		t.Fatalf("expected PlayStartedMsg, got %T", msg)
	}
	if started.Status != "Playing lofi hip hop radio" || started.StreamID != "abc" {
		t.Fatalf("unexpected message %+v", started)
	}
	if len(p.played) != 1 || p.played[0] != "abc" {
		t.Fatalf("unexpected plays %v", p.played)
	}

	p.err = errors.New("mpv not found")
	msg = PlayCmd(p, "def", "")()
	if failed, ok := msg.(PlayErrorMsg); !ok || !errors.Is(failed.Err, p.err) {
		t.Fatalf("expected PlayErrorMsg, got %#v", msg)
	}
}

func TestTickCmd(t *testing.T) {
	msg := TickCmd(time.Millisecond)()
	if tick, ok := msg.(TickMsg); !ok || tick.At.IsZero() {
		t.Fatalf("expected TickMsg, got %#v", msg)
	}
}
