// Package doc defines the document tree the renderer consumes and its XML
// authoring format. The tree is owned by the host pipeline; renderers only
// borrow it for traversal, except for the default-caption repair performed
// during entry collection.
package doc

import (
	"fms/config"
)

// NodeKind discriminates content node variants.
type NodeKind int

const (
	KindSection NodeKind = iota
	KindParagraph
	KindFigure
	KindTable
	KindExample
	KindListOf
	KindInclude
)

var nodeKindNames = map[NodeKind]string{
	KindSection:   "section",
	KindParagraph: "paragraph",
	KindFigure:    "figure",
	KindTable:     "table",
	KindExample:   "example",
	KindListOf:    "listof",
	KindInclude:   "include",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Node is a single content node. Which fields are meaningful depends on Kind:
// sections carry Title and Children, paragraphs carry Text, captioned blocks
// (figure, table, example) carry ID, Title and Src, a listof directive
// carries List and an optional Title override, an include carries the loaded
// sub-document.
type Node struct {
	Kind     NodeKind
	ID       string
	Title    string
	Text     string
	Src      string
	List     config.SectionKind
	Children []*Node
	Sub      *Document
}

// Captioned reports whether the node is a block that may appear in a
// front-matter list.
func (n *Node) Captioned() bool {
	return n.Kind == KindFigure || n.Kind == KindTable || n.Kind == KindExample
}

// Document is an ordered tree of content nodes, possibly spanning included
// sub-documents.
type Document struct {
	Title   string
	Lang    string
	Nodes   []*Node
	SrcName string
}

// Predicate selects nodes of interest during traversal.
type Predicate func(*Node) bool

// ByKind returns the predicate matching captioned blocks of the given
// section kind.
func ByKind(kind config.SectionKind) Predicate {
	switch kind {
	case config.SectionKindFigures:
		return func(n *Node) bool { return n.Kind == KindFigure }
	case config.SectionKindTables:
		return func(n *Node) bool { return n.Kind == KindTable }
	case config.SectionKindExamples:
		return func(n *Node) bool { return n.Kind == KindExample }
	default:
		// this should never happen
		panic("unsupported section kind requested")
	}
}
