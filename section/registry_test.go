package section

import (
	"testing"

	"fms/config"
	"fms/layout"
)

func tablesConfig() config.SectionConfig {
	return config.SectionConfig{
		Kind:         config.SectionKindTables,
		Title:        "List of Tables",
		HeadingLevel: 1,
		PageBreak:    true,
	}
}

func TestRegistryOrderedReservations(t *testing.T) {
	s := layout.NewTextSurface(360, 540)
	r := NewRegistry(nil)

	figures := NewList(figuresConfig(), testStyle(), 1, 3, staticSource(
		Entry{Title: "Figure A", Level: 1, Ref: "fig-a"},
	), nil)
	tables := NewList(tablesConfig(), testStyle(), 1, 3, staticSource(
		Entry{Title: "Table A", Level: 1, Ref: "tbl-a"},
	), nil)

	if err := r.Reserve(figures, s); err != nil {
		t.Fatalf("Reserve(figures) failed: %v", err)
	}
	if err := r.Reserve(tables, s); err != nil {
		t.Fatalf("Reserve(tables) failed: %v", err)
	}

	// second reservation picks up exactly where the first one stopped
	if got := figures.Reservation().Extent.From; got != (layout.Cursor{Page: 1, Offset: 0}) {
		t.Errorf("figures reserved at %v, want top of page 1", got)
	}
	if got := tables.Reservation().Extent.From; got != (layout.Cursor{Page: 2, Offset: 0}) {
		t.Errorf("tables reserved at %v, want top of page 2", got)
	}
	if got := s.Cursor(); got != (layout.Cursor{Page: 3, Offset: 0}) {
		t.Errorf("cursor after both reservations = %v, want top of page 3", got)
	}

	s.WriteLine("[figure A]", 10)
	s.BreakPage()
	s.WriteLine("[table A]", 10)

	ranges, err := r.Render(s, PageIndex{"fig-a": 3, "tbl-a": 4})
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	want := []PageRange{{First: 1, Last: 1}, {First: 2, Last: 2}}
	if len(ranges) != len(want) {
		t.Fatalf("Render() returned %d ranges, want %d", len(ranges), len(want))
	}
	for i := range want {
		if ranges[i] != want[i] {
			t.Errorf("range %d = %v, want %v", i, ranges[i], want[i])
		}
	}
}

// An empty section must vanish completely: no pages consumed, downstream
// sections and body pagination identical to a document that never declared
// it.
func TestRegistrySkipsEmptySection(t *testing.T) {
	s := layout.NewTextSurface(360, 540)
	r := NewRegistry(nil)

	figures := NewList(figuresConfig(), testStyle(), 1, 3, staticSource(
		Entry{Title: "Figure A", Level: 1, Ref: "fig-a"},
	), nil)
	tables := NewList(tablesConfig(), testStyle(), 1, 3, emptySource, nil)
	examples := NewList(config.SectionConfig{
		Kind:         config.SectionKindExamples,
		Title:        "List of Examples",
		HeadingLevel: 1,
		PageBreak:    true,
	}, testStyle(), 1, 3, staticSource(
		Entry{Title: "Example A", Level: 1, Ref: "ex-a"},
	), nil)

	if err := r.Reserve(figures, s); err != nil {
		t.Fatalf("Reserve(figures) failed: %v", err)
	}
	if err := r.Reserve(tables, s); err != nil {
		t.Fatalf("Reserve(tables) failed: %v", err)
	}
	if err := r.Reserve(examples, s); err != nil {
		t.Fatalf("Reserve(examples) failed: %v", err)
	}

	if !tables.Skipped() {
		t.Error("empty tables section not marked skipped")
	}
	// examples follow figures directly, as if tables never existed
	if got := examples.Reservation().Extent.From; got != (layout.Cursor{Page: 2, Offset: 0}) {
		t.Errorf("examples reserved at %v, want top of page 2", got)
	}

	s.WriteLine("[figure A]", 10)
	s.WriteLine("[example A]", 10)

	ranges, err := r.Render(s, PageIndex{"fig-a": 3, "ex-a": 3})
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if len(ranges) != 2 {
		t.Fatalf("Render() returned %d ranges, want 2 (skipped section rendered?)", len(ranges))
	}
	if got := len(r.Sections()); got != 3 {
		t.Errorf("Sections() = %d, want all 3 registered", got)
	}
}
