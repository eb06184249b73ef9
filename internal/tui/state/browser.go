package state

import (
	"strings"

	"github.com/glabrego/lofi-tui/internal/youtube"
)

// Mode decides how key presses are routed.
type Mode int

const (
	ModeBrowsing Mode = iota
	ModeFilterEditing
)

func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "browsing"
	case ModeFilterEditing:
		return "filter"
	}
	return "unknown"
}

// Browser holds the stream catalog, the active filter query, the filtered
// view over the catalog and the selection inside that view.
//
// The catalog never changes after construction. The filtered view is a list
// of catalog positions in catalog order, and the selection is a position in
// the filtered view (-1 when the view is empty).
type Browser struct {
	streams  []youtube.Stream
	folded   []string
	query    string
	view     []int
	selected int
}

func NewBrowser(streams []youtube.Stream) Browser {
	b := Browser{
		streams: append([]youtube.Stream(nil), streams...),
		folded:  make([]string, len(streams)),
	}
	for i, s := range b.streams {
		b.folded[i] = strings.ToLower(s.Title)
	}
	b.SetQuery("")
	return b
}

// SetQuery recomputes the filtered view for q and resets the selection to
// the first match.
func (b *Browser) SetQuery(q string) {
	b.query = q
	needle := strings.ToLower(q)
	view := make([]int, 0, len(b.streams))
	for i, title := range b.folded {
		if needle == "" || strings.Contains(title, needle) {
			view = append(view, i)
		}
	}
	b.view = view
	if len(b.view) > 0 {
		b.selected = 0
	} else {
		b.selected = -1
	}
}

func (b *Browser) AppendQuery(r rune) {
	b.SetQuery(b.query + string(r))
}

// TrimQuery drops the last rune of the query. It reports false when the
// query was already empty.
func (b *Browser) TrimQuery() bool {
	if b.query == "" {
		return false
	}
	runes := []rune(b.query)
	b.SetQuery(string(runes[:len(runes)-1]))
	return true
}

func (b *Browser) ClearQuery() {
	b.SetQuery("")
}

func (b Browser) Query() string {
	return b.query
}

// Next moves the selection forward, wrapping to the first match.
func (b *Browser) Next() {
	if len(b.view) == 0 {
		return
	}
	if b.selected < 0 || b.selected >= len(b.view)-1 {
		b.selected = 0
		return
	}
	b.selected++
}

// Previous moves the selection backward, wrapping to the last match.
func (b *Browser) Previous() {
	if len(b.view) == 0 {
		return
	}
	if b.selected < 0 {
		b.selected = 0
		return
	}
	if b.selected == 0 {
		b.selected = len(b.view) - 1
		return
	}
	b.selected--
}

// Selected returns the selection as a position in the filtered view.
func (b Browser) Selected() (int, bool) {
	if b.selected < 0 || b.selected >= len(b.view) {
		return 0, false
	}
	return b.selected, true
}

// CurrentCatalogIndex maps the selection back to a catalog position.
func (b Browser) CurrentCatalogIndex() (int, bool) {
	pos, ok := b.Selected()
	if !ok {
		return 0, false
	}
	return b.view[pos], true
}

// Current returns the selected stream.
func (b Browser) Current() (youtube.Stream, bool) {
	idx, ok := b.CurrentCatalogIndex()
	if !ok {
		return youtube.Stream{}, false
	}
	return b.streams[idx], true
}

// Visible returns the filtered view. Callers must not modify it.
func (b Browser) Visible() []int {
	return b.view
}

func (b Browser) Stream(index int) youtube.Stream {
	return b.streams[index]
}

func (b Browser) Len() int {
	return len(b.streams)
}
