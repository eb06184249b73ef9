package view

import "github.com/glabrego/lofi-tui/internal/preview"

const (
	headerHeight = 1
	footerHeight = 2
	infoHeight   = 4
	listPercent  = 45
)

// Layout is the geometry of one frame.
type Layout struct {
	Width        int
	Height       int
	BodyHeight   int
	ListWidth    int
	PreviewWidth int
	// ThumbCols and ThumbRows size the preview image in cells.
	ThumbCols int
	ThumbRows int
}

func ComputeLayout(width, height int) Layout {
	width = max(width, 0)
	height = max(height, 0)
	body := max(height-headerHeight-footerHeight, 0)
	listWidth := width * listPercent / 100
	previewWidth := width - listWidth

	innerWidth := max(previewWidth-2, 0)
	thumbHeight := max(body-2-infoHeight, 0)
	cols, rows := preview.TargetBox(innerWidth, thumbHeight)

	return Layout{
		Width:        width,
		Height:       height,
		BodyHeight:   body,
		ListWidth:    listWidth,
		PreviewWidth: previewWidth,
		ThumbCols:    cols,
		ThumbRows:    rows,
	}
}

// ListRows is the number of stream rows that fit in the list pane.
func (l Layout) ListRows() int {
	return max(l.BodyHeight-2, 0)
}
