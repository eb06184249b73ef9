package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glabrego/lofi-tui/internal/preview"
	tuitheme "github.com/glabrego/lofi-tui/internal/tui/theme"
)

const (
	loadingText   = "Loading..."
	noMatchText   = "No matching streams"
	fallbackTitle = "lofi girl"
)

type PreviewPane struct {
	// Image is the rendered thumbnail; empty while none is cached.
	Image string
	// Disabled hides the thumbnail area entirely.
	Disabled    bool
	HasStream   bool
	Name        string
	Description string
	Width       int
	Height      int
}

func RenderPreview(p PreviewPane, th tuitheme.Theme) string {
	innerWidth := max(p.Width-2, 0)
	innerHeight := max(p.Height-2, 0)
	thumbHeight := max(innerHeight-infoHeight, 0)

	thumb := make([]string, 0, thumbHeight)
	switch {
	case p.Disabled:
	case !p.HasStream:
		thumb = append(thumb, centerLine(th.Placeholder.Render(noMatchText), innerWidth))
	case p.Image != "":
		image := strings.TrimRight(p.Image, "\r\n")
		if preview.ContainsKittyGraphicsEscape(image) {
			thumb = append(thumb, preview.ClearKittyGraphicsSequence()+image)
		} else {
			for _, line := range strings.Split(image, "\n") {
				thumb = append(thumb, centerLine(line, innerWidth))
			}
		}
	default:
		thumb = append(thumb, centerLine(th.Placeholder.Render(loadingText), innerWidth))
	}
	if len(thumb) > thumbHeight {
		thumb = thumb[:thumbHeight]
	}
	for len(thumb) < thumbHeight {
		thumb = append(thumb, "")
	}

	body := append(thumb, infoLines(p, innerWidth, th)...)
	return box(body, p.Width, p.Height, th.PreviewTitle.Render(" preview "), "", th.Border)
}

func infoLines(p PreviewPane, width int, th tuitheme.Theme) []string {
	if !p.HasStream || width <= 2 {
		return nil
	}
	wrap := lipgloss.NewStyle().Width(width - 2).Align(lipgloss.Center)

	lines := strings.Split(wrap.Render(th.Name.Render(p.Name)), "\n")
	if p.Description != "" {
		lines = append(lines, strings.Split(wrap.Render(th.Description.Render(p.Description)), "\n")...)
	} else {
		lines = append(lines, wrap.Render(th.Fallback.Render(fallbackTitle)))
	}
	if len(lines) > infoHeight {
		lines = lines[:infoHeight]
	}
	for i, line := range lines {
		lines[i] = " " + line + " "
	}
	return lines
}
