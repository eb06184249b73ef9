package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/glabrego/lofi-tui/internal/preview"
)

// box draws a rounded border around body. title sits on the top edge at
// the left, badge at the right. Body lines are clipped and padded to the
// inner width; missing lines are blank.
func box(body []string, width, height int, title, badge string, border lipgloss.Style) string {
	if width < 2 || height < 2 {
		return ""
	}
	b := lipgloss.RoundedBorder()
	inner := width - 2

	if ansi.StringWidth(title)+ansi.StringWidth(badge)+1 > inner {
		badge = ""
	}
	if ansi.StringWidth(title) > inner {
		title = ""
	}
	fill := inner - ansi.StringWidth(title) - ansi.StringWidth(badge)
	top := border.Render(b.TopLeft) + title
	if badge != "" {
		top += border.Render(strings.Repeat(b.Top, fill-1)) + badge + border.Render(b.Top)
	} else {
		top += border.Render(strings.Repeat(b.Top, fill))
	}
	top += border.Render(b.TopRight)

	lines := make([]string, 0, height)
	lines = append(lines, top)
	for i := 0; i < height-2; i++ {
		line := ""
		if i < len(body) {
			line = body[i]
		}
		lines = append(lines, border.Render(b.Left)+fitWidth(line, inner)+border.Render(b.Right))
	}
	lines = append(lines, border.Render(b.BottomLeft+strings.Repeat(b.Bottom, inner)+b.BottomRight))
	return strings.Join(lines, "\n")
}

// fitWidth clips or pads s to exactly width cells. Kitty graphics payloads
// are passed through untouched.
func fitWidth(s string, width int) string {
	if preview.ContainsKittyGraphicsEscape(s) {
		return s
	}
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "")
	}
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func centerLine(s string, width int) string {
	visible := ansi.StringWidth(s)
	if visible >= width || preview.ContainsKittyGraphicsEscape(s) {
		return s
	}
	return strings.Repeat(" ", (width-visible)/2) + s
}
