package actions

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/lofi-tui/internal/preview"
)

const previewTimeout = 15 * time.Second

type PreviewLoader interface {
	Load(ctx context.Context, streamID string, cols, rows int) (preview.Image, error)
}

type Player interface {
	Play(streamID string) error
}

type TickMsg struct {
	At time.Time
}

type PreviewLoadedMsg struct {
	Request  preview.Request
	Image    preview.Image
	Duration time.Duration
}

type PreviewFailedMsg struct {
	Request  preview.Request
	StreamID string
	Err      error
}

type PlayStartedMsg struct {
	StreamID string
	Status   string
}

type PlayErrorMsg struct {
	StreamID string
	Err      error
}

func TickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(at time.Time) tea.Msg {
		return TickMsg{At: at}
	})
}

// LoadPreviewCmd fetches and renders the thumbnail for req. The result is
// reported with req so the pipeline can release its slot.
func LoadPreviewCmd(loader PreviewLoader, req preview.Request, streamID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), previewTimeout)
		defer cancel()
		start := time.Now()

		img, err := loader.Load(ctx, streamID, req.Cols, req.Rows)
		if err != nil {
			return PreviewFailedMsg{Request: req, StreamID: streamID, Err: err}
		}
		return PreviewLoadedMsg{Request: req, Image: img, Duration: time.Since(start)}
	}
}

func PlayCmd(player Player, streamID, name string) tea.Cmd {
	return func() tea.Msg {
		if err := player.Play(streamID); err != nil {
			return PlayErrorMsg{StreamID: streamID, Err: err}
		}
		status := "Playing " + name
		if name == "" {
			status = "Playing " + streamID
		}
		return PlayStartedMsg{StreamID: streamID, Status: status}
	}
}
