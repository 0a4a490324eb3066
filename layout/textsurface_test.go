package layout

import (
	"strings"
	"testing"
)

func TestTextSurfaceEmpty(t *testing.T) {
	s := NewTextSurface(360, 540)

	if got := s.Pages(); got != 1 {
		t.Errorf("Pages() = %d, want 1", got)
	}
	if got := s.Cursor(); got != (Cursor{Page: 1, Offset: 0}) {
		t.Errorf("Cursor() = %v, want start of page 1", got)
	}
	w, h := s.PageSize()
	if w != 360 || h != 540 {
		t.Errorf("PageSize() = %v x %v, want 360 x 540", w, h)
	}
}

func TestTextSurfaceWriteLine(t *testing.T) {
	s := NewTextSurface(360, 540)

	s.WriteLine("first", 10)
	if got := s.Cursor(); got != (Cursor{Page: 1, Offset: 12}) {
		t.Errorf("Cursor() after one line = %v, want offset 12", got)
	}

	s.WriteLine("second", 10)
	lines := s.PageLines(1)
	if len(lines) != 2 {
		t.Fatalf("PageLines(1) returned %d lines, want 2", len(lines))
	}
	if lines[0].Text != "first" || lines[1].Text != "second" {
		t.Errorf("PageLines(1) = %q, %q, want first, second", lines[0].Text, lines[1].Text)
	}
	if lines[1].Offset != 12 {
		t.Errorf("second line offset = %v, want 12", lines[1].Offset)
	}
}

func TestTextSurfaceWriteLineBreaksPage(t *testing.T) {
	s := NewTextSurface(360, 540)

	// 45 lines of 12pt fill the 540pt page exactly
	for i := 0; i < 45; i++ {
		s.WriteLine("line", 10)
	}
	if got := s.Pages(); got != 1 {
		t.Fatalf("Pages() = %d, want 1 after exactly filling the page", got)
	}

	s.WriteLine("overflow", 10)
	if got := s.Pages(); got != 2 {
		t.Errorf("Pages() = %d, want 2 after overflow", got)
	}
	if got := s.Cursor(); got != (Cursor{Page: 2, Offset: 12}) {
		t.Errorf("Cursor() = %v, want page 2 offset 12", got)
	}
	if lines := s.PageLines(2); len(lines) != 1 || lines[0].Text != "overflow" {
		t.Errorf("PageLines(2) = %v, want single overflow line", lines)
	}
}

func TestTextSurfaceSeek(t *testing.T) {
	s := NewTextSurface(360, 540)
	s.BreakPage()
	s.BreakPage()

	if err := s.Seek(Cursor{Page: 2, Offset: 100}); err != nil {
		t.Errorf("Seek() to existing page failed: %v", err)
	}
	if got := s.Cursor(); got != (Cursor{Page: 2, Offset: 100}) {
		t.Errorf("Cursor() after seek = %v", got)
	}

	if err := s.Seek(Cursor{Page: 4, Offset: 0}); err == nil {
		t.Error("Seek() past last page should fail")
	}
	if err := s.Seek(Cursor{Page: 0, Offset: 0}); err == nil {
		t.Error("Seek() to page 0 should fail")
	}
	if err := s.Seek(Cursor{Page: 1, Offset: 600}); err == nil {
		t.Error("Seek() below page bottom should fail")
	}
}

func TestTextSurfaceBreakPageReusesExisting(t *testing.T) {
	s := NewTextSurface(360, 540)
	s.BreakPage()
	s.BreakPage()
	if got := s.Pages(); got != 3 {
		t.Fatalf("Pages() = %d, want 3", got)
	}

	// re-rendering inside an existing span must not grow the document
	if err := s.Seek(Cursor{Page: 1, Offset: 0}); err != nil {
		t.Fatalf("Seek() failed: %v", err)
	}
	s.BreakPage()
	if got := s.Pages(); got != 3 {
		t.Errorf("Pages() = %d after break into existing page, want 3", got)
	}
	if got := s.Cursor(); got != (Cursor{Page: 2, Offset: 0}) {
		t.Errorf("Cursor() = %v, want top of page 2", got)
	}
}

func TestTextSurfaceAdvance(t *testing.T) {
	s := NewTextSurface(360, 540)

	s.Advance(100)
	if got := s.Cursor(); got != (Cursor{Page: 1, Offset: 100}) {
		t.Errorf("Cursor() = %v, want offset 100", got)
	}

	// 600pt from offset 100 crosses onto page 2
	s.Advance(600)
	if got := s.Cursor(); got != (Cursor{Page: 2, Offset: 160}) {
		t.Errorf("Cursor() = %v, want page 2 offset 160", got)
	}
	if got := s.Pages(); got != 2 {
		t.Errorf("Pages() = %d, want 2", got)
	}
}

func TestTextSurfaceTextWidth(t *testing.T) {
	s := NewTextSurface(360, 540)

	if got := s.TextWidth("abcde", 10); got != 30 {
		t.Errorf("TextWidth(5 chars, 10pt) = %v, want 30", got)
	}
	if got := s.TextWidth("", 10); got != 0 {
		t.Errorf("TextWidth(empty) = %v, want 0", got)
	}
	// measured in runes, not bytes
	if got := s.TextWidth("абв", 10); got != 18 {
		t.Errorf("TextWidth(3 cyrillic runes, 10pt) = %v, want 18", got)
	}
}

func TestTextSurfaceScratchCongruence(t *testing.T) {
	parent := NewTextSurface(360, 540)
	parent.WriteLine("body", 10)
	parent.WriteLine("body", 10)

	scratch := parent.Scratch()
	if got := scratch.Cursor(); got != parent.Cursor() {
		t.Fatalf("scratch cursor = %v, parent cursor = %v", got, parent.Cursor())
	}

	// identical operation sequence moves both cursors identically
	ops := func(s Surface) {
		s.WriteLine("heading", 14)
		s.WriteLine("", 10)
		for i := 0; i < 50; i++ {
			s.WriteLine("entry", 10)
		}
		s.BreakPage()
	}
	ops(scratch)
	ops(parent)

	if scratch.Cursor() != parent.Cursor() {
		t.Errorf("after identical ops scratch cursor = %v, parent cursor = %v", scratch.Cursor(), parent.Cursor())
	}
	if scratch.Pages() != parent.Pages() {
		t.Errorf("after identical ops scratch pages = %d, parent pages = %d", scratch.Pages(), parent.Pages())
	}
}

func TestTextSurfaceScratchDiscardsWrites(t *testing.T) {
	parent := NewTextSurface(360, 540)
	parent.WriteLine("kept", 10)

	scratch := parent.Scratch().(*TextSurface)
	scratch.WriteLine("discarded", 10)

	if lines := scratch.PageLines(1); lines != nil {
		t.Errorf("scratch PageLines(1) = %v, want nil", lines)
	}
	if lines := parent.PageLines(1); len(lines) != 1 || lines[0].Text != "kept" {
		t.Errorf("parent PageLines(1) = %v, scratch write leaked", lines)
	}
}

func TestTextSurfaceWriteTo(t *testing.T) {
	s := NewTextSurface(360, 540)
	s.WriteLine("page one", 10)
	s.BreakPage()
	s.WriteLine("page two", 10)

	var sb strings.Builder
	if _, err := s.WriteTo(&sb); err != nil {
		t.Fatalf("WriteTo() failed: %v", err)
	}
	want := "page one\n\fpage two\n"
	if sb.String() != want {
		t.Errorf("WriteTo() = %q, want %q", sb.String(), want)
	}
}
