package layout

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Fixed metric model of the text surface: every glyph advances the write head
// by the same fraction of the font size and every line is the font size plus
// constant leading. This keeps measurement trivially deterministic which is
// what the two-pass protocol relies on.
const (
	glyphAspect = 0.6
	leading     = 1.2
)

// Line is a single rendered line with its vertical position on the page.
type Line struct {
	Offset float64
	Text   string
}

type page struct {
	lines []Line
}

// TextSurface is an in-memory paged text surface. It implements Surface for
// both real output (writes retained, dump via WriteTo) and scratch
// measurement mode (writes discarded, cursor arithmetic identical).
type TextSurface struct {
	width   float64
	height  float64
	cur     Cursor
	pages   []*page
	npages  int
	scratch bool
}

// NewTextSurface creates an empty surface with a single page and the write
// head at its top. Dimensions are the content box in points.
func NewTextSurface(width, height float64) *TextSurface {
	return &TextSurface{
		width:  width,
		height: height,
		cur:    Cursor{Page: 1, Offset: 0},
		pages:  []*page{{}},
		npages: 1,
	}
}

func (s *TextSurface) PageSize() (float64, float64) {
	return s.width, s.height
}

func (s *TextSurface) Cursor() Cursor {
	return s.cur
}

func (s *TextSurface) Pages() int {
	return s.npages
}

// Seek positions the write head on an already existing page.
func (s *TextSurface) Seek(c Cursor) error {
	if c.Page < 1 || c.Page > s.npages {
		return fmt.Errorf("seek outside surface: %s, have %d page(s)", c, s.npages)
	}
	if c.Offset < 0 || c.Offset > s.height {
		return fmt.Errorf("seek outside page: %s, page height %.2f", c, s.height)
	}
	s.cur = c
	return nil
}

// BreakPage moves the write head to the top of the following page. The page
// is reused when it already exists (re-rendering inside a reserved span) and
// appended otherwise.
func (s *TextSurface) BreakPage() {
	if s.cur.Page >= s.npages {
		s.npages++
		if !s.scratch {
			s.pages = append(s.pages, &page{})
		}
	}
	s.cur = Cursor{Page: s.cur.Page + 1, Offset: 0}
}

func (s *TextSurface) TextWidth(text string, size float64) float64 {
	return float64(len([]rune(text))) * size * glyphAspect
}

// LineHeight returns the vertical advance of one line at the given size.
func (s *TextSurface) LineHeight(size float64) float64 {
	return size * leading
}

func (s *TextSurface) WriteLine(text string, size float64) {
	lh := s.LineHeight(size)
	if s.cur.Offset+lh > s.height {
		s.BreakPage()
	}
	if !s.scratch {
		p := s.pages[s.cur.Page-1]
		p.lines = append(p.lines, Line{Offset: s.cur.Offset, Text: text})
	}
	s.cur.Offset += lh
}

// Advance moves the write head down by h points, breaking pages as needed.
func (s *TextSurface) Advance(h float64) {
	for h > 0 {
		room := s.height - s.cur.Offset
		if h <= room {
			s.cur.Offset += h
			return
		}
		h -= room
		s.BreakPage()
	}
}

// Scratch returns a measurement twin seeded at the current cursor. The twin
// shares geometry only: it never writes and it never sees pages the parent
// may already have beyond the cursor.
func (s *TextSurface) Scratch() Surface {
	return &TextSurface{
		width:   s.width,
		height:  s.height,
		cur:     s.cur,
		npages:  s.cur.Page,
		scratch: true,
	}
}

// PageLines returns the rendered lines of the given page (1-based) in
// vertical order.
func (s *TextSurface) PageLines(n int) []Line {
	if s.scratch || n < 1 || n > len(s.pages) {
		return nil
	}
	lines := make([]Line, len(s.pages[n-1].lines))
	copy(lines, s.pages[n-1].lines)
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Offset < lines[j].Offset })
	return lines
}

// WriteTo dumps all pages as plain text, pages separated by form feed.
func (s *TextSurface) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i := 1; i <= s.npages; i++ {
		if i > 1 {
			n, err := io.WriteString(w, "\f")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		var sb strings.Builder
		for _, l := range s.PageLines(i) {
			sb.WriteString(l.Text)
			sb.WriteByte('\n')
		}
		n, err := io.WriteString(w, sb.String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
