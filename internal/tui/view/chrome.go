package view

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/x/ansi"

	tuitheme "github.com/glabrego/lofi-tui/internal/tui/theme"
)

func Header(width int, th tuitheme.Theme) string {
	line := th.HeaderTitle.Render(" lofi girl") + th.HeaderSub.Render(" stream picker")
	return padBar(line, width, th)
}

// Footer renders the key hints for the active mode and, below them, the
// latest status message.
func Footer(keys help.KeyMap, status string, warn bool, width int, th tuitheme.Theme) string {
	h := help.New()
	h.Styles = th.HelpStyles()
	h.ShortSeparator = "  "
	h.Width = width
	hints := centerLine(h.View(keys), width)

	statusLine := ""
	if status != "" {
		style := th.StatusOK
		if warn {
			style = th.StatusWarn
		}
		statusLine = style.Render(" " + status)
	}
	return padBar(hints, width, th) + "\n" + padBar(statusLine, width, th)
}

func padBar(line string, width int, th tuitheme.Theme) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(line) > width {
		line = ansi.Truncate(line, width, "")
	}
	if pad := width - ansi.StringWidth(line); pad > 0 {
		line += th.Bar.Render(strings.Repeat(" ", pad))
	}
	return line
}
