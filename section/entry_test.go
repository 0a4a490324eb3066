package section

import (
	"errors"
	"testing"

	"fms/config"
	"fms/doc"
)

func testDocument() *doc.Document {
	return &doc.Document{
		SrcName: "test.xml",
		Nodes: []*doc.Node{
			{Kind: doc.KindFigure, ID: "fig-1", Title: "First figure"},
			{Kind: doc.KindSection, Title: "Chapter", Children: []*doc.Node{
				{Kind: doc.KindParagraph, Text: "text"},
				{Kind: doc.KindFigure, ID: "fig-2", Title: "Nested figure"},
				{Kind: doc.KindTable, ID: "tbl-1", Title: "Only table"},
			}},
			{Kind: doc.KindFigure, ID: "fig-3"},
		},
	}
}

func TestCollectDocumentOrder(t *testing.T) {
	entries, err := Collect(testDocument(), doc.ByKind(config.SectionKindFigures), nil)
	if err != nil {
		t.Fatalf("Collect() failed: %v", err)
	}

	want := []Entry{
		{Title: "First figure", Level: 1, Ref: "fig-1"},
		{Title: "Nested figure", Level: 2, Ref: "fig-2"},
		{Title: DefaultTitle, Level: 1, Ref: "fig-3"},
	}
	if len(entries) != len(want) {
		t.Fatalf("Collect() returned %d entries, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %v, want %v", i, entries[i], want[i])
		}
	}
}

func TestCollectRepairsMissingCaption(t *testing.T) {
	d := testDocument()

	if _, err := Collect(d, doc.ByKind(config.SectionKindFigures), nil); err != nil {
		t.Fatalf("Collect() failed: %v", err)
	}

	// repair is written back so page rendering agrees with the list
	if got := d.Nodes[2].Title; got != DefaultTitle {
		t.Errorf("captionless node title = %q, want %q", got, DefaultTitle)
	}
}

func TestCollectEmpty(t *testing.T) {
	_, err := Collect(testDocument(), doc.ByKind(config.SectionKindExamples), nil)
	if !errors.Is(err, ErrEmptyCollection) {
		t.Errorf("Collect() with no matches = %v, want ErrEmptyCollection", err)
	}
}

func TestSourceDefersCollection(t *testing.T) {
	d := testDocument()
	src := Source(d, doc.ByKind(config.SectionKindTables), nil)

	// mutate after binding, before invocation
	d.Nodes = append(d.Nodes, &doc.Node{Kind: doc.KindTable, ID: "tbl-2", Title: "Late table"})

	entries, err := src()
	if err != nil {
		t.Fatalf("source failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("source returned %d entries, want 2", len(entries))
	}
	if entries[1].Ref != "tbl-2" {
		t.Errorf("late entry ref = %q, want tbl-2", entries[1].Ref)
	}
}
