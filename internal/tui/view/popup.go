package view

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	tuitheme "github.com/glabrego/lofi-tui/internal/tui/theme"
)

const (
	popupWidth  = 40
	popupHeight = 3
)

// OverlayFilter draws the filter input box over screen, horizontally
// centered a third of the way down.
func OverlayFilter(screen, query string, width, height int, th tuitheme.Theme) string {
	w := min(popupWidth, width-4)
	if w < 3 || height < popupHeight {
		return screen
	}
	inner := w - 2

	input := "/" + query + "_"
	if over := ansi.StringWidth(input) - inner; over > 0 {
		input = ansi.TruncateLeft(input, over, "")
	}
	body := []string{th.PopupText.Render(input + strings.Repeat(" ", max(inner-ansi.StringWidth(input), 0)))}
	popup := strings.Split(box(body, w, popupHeight, th.PopupTitle.Render(" filter "), "", th.PopupBorder), "\n")

	lines := strings.Split(screen, "\n")
	x := (width - w) / 2
	y := height / 3
	for i, row := range popup {
		at := y + i
		if at >= len(lines) {
			break
		}
		lines[at] = overlayLine(lines[at], row, x, w)
	}
	return strings.Join(lines, "\n")
}

// overlayLine replaces the cells [x, x+w) of line with row.
func overlayLine(line, row string, x, w int) string {
	left := ansi.Truncate(line, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(line, x+w, "")
	return left + "\x1b[0m" + row + "\x1b[0m" + right
}
