// Package layout defines the page/cursor geometry shared by measurement and
// committed rendering and the surface capability the renderer draws on.
package layout

import "fmt"

// Cursor is the renderer's write head: 1-based page number and vertical
// offset in points from the top of the page content box.
type Cursor struct {
	Page   int
	Offset float64
}

// Compare orders cursors page first, then offset. Returns -1, 0 or 1.
func (c Cursor) Compare(o Cursor) int {
	switch {
	case c.Page < o.Page:
		return -1
	case c.Page > o.Page:
		return 1
	case c.Offset < o.Offset:
		return -1
	case c.Offset > o.Offset:
		return 1
	}
	return 0
}

func (c Cursor) Before(o Cursor) bool {
	return c.Compare(o) < 0
}

func (c Cursor) After(o Cursor) bool {
	return c.Compare(o) > 0
}

func (c Cursor) String() string {
	return fmt.Sprintf("page %d offset %.2f", c.Page, c.Offset)
}

// Extent is the span of pages and vertical space a rendering operation
// consumed. From is where rendering started, To is the cursor position right
// after the last write. To never precedes From.
type Extent struct {
	From Cursor
	To   Cursor
}

// Valid reports whether the extent is properly ordered.
func (e Extent) Valid() bool {
	return e.From.Page >= 1 && !e.To.Before(e.From)
}

// Pages returns the number of pages the extent touches, inclusive.
func (e Extent) Pages() int {
	return e.To.Page - e.From.Page + 1
}

// Contains reports whether o fits entirely inside e.
func (e Extent) Contains(o Extent) bool {
	return !o.From.Before(e.From) && !o.To.After(e.To)
}

// WidenToPageEnd rounds the extent up to the bottom of its last page so the
// span ends on a page boundary. Extents are only ever widened, never
// narrowed.
func (e Extent) WidenToPageEnd(pageHeight float64) Extent {
	if e.To.Offset < pageHeight {
		e.To.Offset = pageHeight
	}
	return e
}

func (e Extent) String() string {
	return fmt.Sprintf("[%s .. %s]", e.From, e.To)
}
