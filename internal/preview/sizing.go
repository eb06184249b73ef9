package preview

// TargetBox returns the cell box a thumbnail is drawn into for an area of
// the given size. Thumbnails are 4:3 and a terminal cell is roughly twice as
// tall as it is wide, so the box is width*3/8 rows tall, capped by the
// available height.
func TargetBox(width, height int) (cols, rows int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	rows = width * 3 / 8
	if rows > height {
		rows = height
	}
	return width, rows
}

// Fit scales an image of srcW x srcH pixels into a box of cols x rows cells
// without cropping. Each cell carries two vertically stacked pixels, so the
// result is in pixels with an even height.
func Fit(srcW, srcH, cols, rows int) (w, h int) {
	if srcW <= 0 || srcH <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}
	boxW, boxH := cols, rows*2
	// Compare srcW/srcH against boxW/boxH without floating point.
	if srcW*boxH >= srcH*boxW {
		w = boxW
		h = srcH * boxW / srcW
	} else {
		h = boxH
		w = srcW * boxH / srcH
	}
	if w < 1 {
		w = 1
	}
	if h < 2 {
		h = 2
	}
	if h%2 == 1 {
		h--
	}
	return w, h
}
