// Package preview keeps a single rendered thumbnail consistent with the
// selected stream and the current terminal geometry.
//
// Pipeline is plain state owned by the interaction loop. Loading happens
// elsewhere (see Loader); the loop claims the single in-flight slot with
// Begin, runs the load off the loop, and reports the outcome with Complete
// or Fail.
package preview

// Image is a thumbnail rendered for a specific cell geometry.
type Image struct {
	StreamID string
	Rendered string
	Cols     int
	Rows     int
}

// Request describes one claimed load. It is handed back to Complete or Fail.
type Request struct {
	Index int
	Cols  int
	Rows  int
	epoch uint64
}

type Pipeline struct {
	image       *Image
	lastIndex   int
	hasLast     bool
	invalidated bool
	inFlight    bool
	epoch       uint64
	cols        int
	rows        int
}

func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// NeedsRefresh reports whether the cache disagrees with the catalog index
// implied by the current selection (ok=false meaning no selection), or a
// resize invalidated it since the last completed load.
func (p *Pipeline) NeedsRefresh(index int, ok bool) bool {
	if p.invalidated {
		return true
	}
	if ok != p.hasLast {
		return true
	}
	return ok && index != p.lastIndex
}

// Resize drops the cached image and its index and records the geometry of
// the thumbnail box for the next load.
func (p *Pipeline) Resize(cols, rows int) {
	p.image = nil
	p.hasLast = false
	p.lastIndex = 0
	p.invalidated = true
	p.epoch++
	p.cols = cols
	p.rows = rows
}

// Begin claims the in-flight slot for a load of the given catalog index.
// It refuses while another load is outstanding or before a geometry is
// known.
func (p *Pipeline) Begin(index int) (Request, bool) {
	if p.inFlight || p.cols <= 0 || p.rows <= 0 {
		return Request{}, false
	}
	p.inFlight = true
	return Request{Index: index, Cols: p.cols, Rows: p.rows, epoch: p.epoch}, true
}

// Complete installs img as the cached preview. A load that started before
// the latest resize is still shown but leaves the cache stale, so the next
// check fetches again at the new size.
func (p *Pipeline) Complete(req Request, img Image) {
	p.inFlight = false
	p.image = &img
	if req.epoch != p.epoch {
		return
	}
	p.lastIndex = req.Index
	p.hasLast = true
	p.invalidated = false
}

// Fail releases the slot and leaves the cache untouched.
func (p *Pipeline) Fail(Request) {
	p.inFlight = false
}

func (p *Pipeline) InFlight() bool {
	return p.inFlight
}

// Image returns the cached preview, if any.
func (p *Pipeline) Image() (Image, bool) {
	if p.image == nil {
		return Image{}, false
	}
	return *p.image, true
}

// LastFetched returns the catalog index of the cached preview.
func (p *Pipeline) LastFetched() (int, bool) {
	return p.lastIndex, p.hasLast
}

func (p *Pipeline) Geometry() (cols, rows int) {
	return p.cols, p.rows
}
