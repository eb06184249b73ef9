package view

import (
	"github.com/glabrego/lofi-tui/internal/tui/state"
	tuitheme "github.com/glabrego/lofi-tui/internal/tui/theme"
)

const highlightSymbol = "  "

type ListPane struct {
	// Names holds one display name per filtered row.
	Names    []string
	Selected int
	// HasSelection is false when the filter matches nothing.
	HasSelection bool
	Query        string
	Width        int
	Height       int
}

func RenderList(p ListPane, th tuitheme.Theme) string {
	contentWidth := max(p.Width-4, 0)
	rows := max(p.Height-2, 0)

	cursor := 0
	if p.HasSelection {
		cursor = p.Selected
	}
	start, end := state.CenteredWindow(len(p.Names), cursor, rows)

	body := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		active := p.HasSelection && i == p.Selected
		line := fitWidth(highlightSymbol+p.Names[i], contentWidth)
		body = append(body, " "+th.RenderRow(active, line)+" ")
	}

	badge := ""
	if p.Query != "" {
		badge = th.QueryBadge.Render(" /" + p.Query + " ")
	}
	return box(body, p.Width, p.Height, th.ListTitle.Render(" streams "), badge, th.Border)
}
