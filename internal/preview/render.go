package preview

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

const upperHalfBlock = "▀"

// Renderer turns a decoded image into text that fits a box of cols x rows
// terminal cells.
type Renderer interface {
	Render(ctx context.Context, img image.Image, cols, rows int) (string, error)
}

// BlockRenderer draws two pixels per cell using the upper half block with
// the top pixel as foreground and the bottom pixel as background color.
type BlockRenderer struct {
	Scaler draw.Scaler
}

func (r BlockRenderer) Render(_ context.Context, img image.Image, cols, rows int) (string, error) {
	bounds := img.Bounds()
	w, h := Fit(bounds.Dx(), bounds.Dy(), cols, rows)
	if w == 0 || h == 0 {
		return "", fmt.Errorf("cannot fit %dx%d image into %dx%d cells", bounds.Dx(), bounds.Dy(), cols, rows)
	}

	scaler := r.Scaler
	if scaler == nil {
		scaler = draw.ApproxBiLinear
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	scaler.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)

	var b strings.Builder
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			top := hexColor(dst.RGBAAt(x, y))
			bottom := hexColor(dst.RGBAAt(x, y+1))
			b.WriteString(lipgloss.NewStyle().Foreground(top).Background(bottom).Render(upperHalfBlock))
		}
		if y+2 < h {
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
