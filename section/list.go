package section

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fms/config"
	"fms/layout"
	"fms/style"
)

// List is one reservable front-matter section instance. The same type serves
// every list kind - figures, tables, examples - parameterized by entry
// source, styling and heading level instead of being duplicated per kind.
type List struct {
	Kind         config.SectionKind
	Title        string
	HeadingLevel int
	HeadingFloor int
	NumberWidth  int
	PageBreak    bool
	Style        style.ListStyle

	source  EntrySource
	entries []Entry
	res     *Reservation
	skipped bool
	log     *zap.Logger
}

// NewList creates a list section from its configuration. The style must be
// fully resolved up front: both rendering passes consult it identically and
// any divergence would corrupt the measured extent.
func NewList(cfg config.SectionConfig, st style.ListStyle, floor, numberWidth int, source EntrySource, log *zap.Logger) *List {
	if log == nil {
		log = zap.NewNop()
	}
	return &List{
		Kind:         cfg.Kind,
		Title:        cfg.Title,
		HeadingLevel: cfg.HeadingLevel,
		HeadingFloor: floor,
		NumberWidth:  numberWidth,
		PageBreak:    cfg.PageBreak,
		Style:        st,
		source:       source,
		log:          log.Named(cfg.Kind.String()),
	}
}

// Skipped reports whether reservation found nothing to list. A skipped
// section consumes zero pages and is never rendered.
func (l *List) Skipped() bool {
	return l.skipped
}

// Reservation returns the reservation made for this section, nil before
// Reserve succeeds.
func (l *List) Reservation() *Reservation {
	return l.res
}

// Measure runs the rendering routine against a scratch twin of the surface
// and returns the extent the committed pass will consume from the current
// cursor. Writes are discarded; cursor and page-break behavior are exactly
// those of real rendering.
func (l *List) Measure(s layout.Surface) layout.Extent {
	return l.renderInto(s.Scratch(), nil)
}

// Reserve collects entries, measures the section and claims the measured
// span on the real surface, leaving the write head where following content
// must continue. It must run before any content following the section is
// rendered and before Render for this section. On ErrEmptyCollection the
// section is marked skipped, no pages are consumed and the error propagates
// for the pipeline to decide.
func (l *List) Reserve(s layout.Surface) error {
	if l.res != nil {
		return fmt.Errorf("section %s is already reserved at %s", l.Kind, l.res.Extent)
	}

	entries, err := l.source()
	if err != nil {
		l.skipped = true
		return fmt.Errorf("section %s: %w", l.Kind, err)
	}
	l.entries = entries

	ext := l.Measure(s)
	_, h := s.PageSize()
	if l.PageBreak {
		// the section must end on a page boundary, round the claim up
		ext = ext.WidenToPageEnd(h)
	}

	// advance the real page cursor past the reserved span
	for s.Pages() < ext.To.Page {
		s.BreakPage()
	}
	if l.PageBreak {
		s.BreakPage()
	} else if err := s.Seek(ext.To); err != nil {
		return fmt.Errorf("section %s: %w", l.Kind, err)
	}

	l.res = &Reservation{ID: uuid.New(), Extent: ext, BreakAfter: l.PageBreak}
	l.log.Debug("Reserved section span",
		zap.Stringer("id", l.res.ID),
		zap.Stringer("extent", ext),
		zap.Int("entries", len(l.entries)),
		zap.Bool("page break", l.PageBreak))
	return nil
}

// Render re-runs the identical rendering routine against the real surface,
// seeded with the exact cursor recorded during reservation, and returns the
// inclusive page range used. Rendering without a prior reservation is
// undefined and fails with ErrMissingReservation; consuming more than the
// reserved extent fails with ExtentDriftError.
func (l *List) Render(s layout.Surface, rsv Resolver) (PageRange, error) {
	if l.res == nil {
		return PageRange{}, fmt.Errorf("section %s: %w", l.Kind, ErrMissingReservation)
	}
	if err := s.Seek(l.res.Extent.From); err != nil {
		return PageRange{}, fmt.Errorf("section %s: %w", l.Kind, err)
	}

	got := l.renderInto(s, rsv)
	if got.To.After(l.res.Extent.To) {
		return PageRange{}, &ExtentDriftError{Kind: l.Kind, Reserved: l.res.Extent, Actual: got}
	}

	l.log.Debug("Rendered section", zap.Stringer("id", l.res.ID), zap.Stringer("extent", got))
	return PageRange{First: got.From.Page, Last: got.To.Page}, nil
}

// renderInto is the one rendering routine shared by both passes. With
// respect to consumed space it is a pure function of entries, styling and
// the starting cursor: an unresolved page number renders as a placeholder
// padded to the same column width as a resolved numeral, so measured and
// committed extents are congruent.
func (l *List) renderInto(s layout.Surface, rsv Resolver) layout.Extent {
	start := s.Cursor()
	pageW, _ := s.PageSize()

	if l.Title != "" && l.HeadingLevel >= l.HeadingFloor {
		s.WriteLine(l.Title, l.Style.HeadingSize)
		s.WriteLine("", l.Style.EntrySize)
	}

	for _, e := range l.entries {
		s.WriteLine(l.entryLine(s, e, pageW, rsv), l.Style.EntrySize)
	}

	return layout.Extent{From: start, To: s.Cursor()}
}

// entryLine composes a single list line: nesting-indented title, leader fill
// spanning to the number column, right-aligned page number or placeholder.
func (l *List) entryLine(s layout.Surface, e Entry, pageW float64, rsv Resolver) string {
	size := l.Style.EntrySize

	num := "?"
	if rsv != nil {
		if page, ok := rsv.PageOf(e.Ref); ok {
			num = strconv.Itoa(page)
		}
	}
	if pad := l.NumberWidth - len(num); pad > 0 {
		num = strings.Repeat(" ", pad) + num
	}

	head := indent(s, e.Level, l.Style.Indent, size) + e.Title + " "
	tail := " " + num

	fill := " "
	avail := pageW - s.TextWidth(head, size) - s.TextWidth(tail, size)
	if l.Style.Leader.Active(e.Level) && avail > 0 {
		if n := int(math.Floor(avail / s.TextWidth(l.Style.Leader.Fill, size))); n > 0 {
			fill = strings.Repeat(l.Style.Leader.Fill, n)
		}
	} else if avail > 0 {
		// keep the number right-aligned even without a leader
		if n := int(math.Floor(avail / s.TextWidth(" ", size))); n > 0 {
			fill = strings.Repeat(" ", n)
		}
	}

	return head + fill + tail
}

// indent converts the configured per-level indentation into leading spaces
// on the text surface.
func indent(s layout.Surface, level int, unit, size float64) string {
	if level <= 1 || unit <= 0 {
		return ""
	}
	n := int(math.Round(float64(level-1) * unit / s.TextWidth(" ", size)))
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
