package layout

// Surface is the capability contract the section renderer expects from the
// typesetting engine. Implementations track a single write head (see Cursor)
// which only rendering operations move.
//
// Scratch returns a measurement-only twin: it shares the geometry and the
// current cursor of its parent but discards all writes. Page breaks and
// cursor advancement on a scratch surface must behave exactly as they would
// on the parent, since measured extents are trusted verbatim by reservation.
type Surface interface {
	// PageSize returns the content box dimensions in points.
	PageSize() (w, h float64)
	// Cursor returns the current write head position.
	Cursor() Cursor
	// Pages returns the number of pages created so far.
	Pages() int
	// Seek positions the write head on an already existing page.
	Seek(c Cursor) error
	// BreakPage moves the write head to the top of the next page, creating
	// it when the current page is the last one.
	BreakPage()
	// TextWidth measures the rendered width of s at the given font size.
	TextWidth(s string, size float64) float64
	// WriteLine renders one line of text at the current cursor and advances
	// it by the line height. When the line does not fit on the current page
	// a page break is taken first.
	WriteLine(s string, size float64)
	// Scratch returns the measurement-only twin seeded at the current cursor.
	Scratch() Surface
}
