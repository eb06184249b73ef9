package preview

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Fetcher returns the raw thumbnail bytes of a stream.
type Fetcher interface {
	Thumbnail(ctx context.Context, streamID string) ([]byte, error)
}

// Loader fetches, decodes and renders thumbnails.
type Loader struct {
	fetcher  Fetcher
	renderer Renderer
}

func NewLoader(fetcher Fetcher, renderer Renderer) *Loader {
	if renderer == nil {
		renderer = BlockRenderer{}
	}
	return &Loader{fetcher: fetcher, renderer: renderer}
}

// Load produces a preview of streamID sized for a box of cols x rows cells.
// Every failure is returned as a *FetchError.
func (l *Loader) Load(ctx context.Context, streamID string, cols, rows int) (Image, error) {
	data, err := l.fetcher.Thumbnail(ctx, streamID)
	if err != nil {
		return Image{}, &FetchError{StreamID: streamID, Op: "fetch", Err: err}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Image{}, &FetchError{StreamID: streamID, Op: "decode", Err: err}
	}

	rendered, err := l.renderer.Render(ctx, img, cols, rows)
	if err != nil {
		return Image{}, &FetchError{StreamID: streamID, Op: "render", Err: err}
	}
	if rendered == "" {
		return Image{}, &FetchError{StreamID: streamID, Op: "render", Err: fmt.Errorf("empty output")}
	}

	return Image{
		StreamID: streamID,
		Rendered: rendered,
		Cols:     cols,
		Rows:     rows,
	}, nil
}
