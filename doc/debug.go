package doc

import (
	"fms/utils/debug"
)

type treeWriter struct {
	*debug.TreeWriter
}

// String returns a readable tree of the parsed document. It exists solely for
// manual inspection during debugging and for debug reports.
func (d *Document) String() string {
	if d == nil {
		return "<nil Document>"
	}
	return treeWriter{debug.NewTreeWriter()}.document(0, d).String()
}

func (tw treeWriter) document(depth int, d *Document) treeWriter {
	tw.Line(depth, "Document src=%q title=%q lang=%q", d.SrcName, d.Title, d.Lang)
	tw.nodes(depth+1, d.Nodes)
	return tw
}

func (tw treeWriter) nodes(depth int, nodes []*Node) {
	for _, n := range nodes {
		tw.node(depth, n)
	}
}

func (tw treeWriter) node(depth int, n *Node) {
	switch n.Kind {
	case KindSection:
		tw.Line(depth, "Section id=%q title=%q", n.ID, n.Title)
		tw.nodes(depth+1, n.Children)
	case KindParagraph:
		tw.Quoted(depth, "Paragraph", n.Text)
	case KindFigure, KindTable, KindExample:
		tw.Line(depth, "%s id=%q caption=%q src=%q", n.Kind, n.ID, n.Title, n.Src)
	case KindListOf:
		tw.Line(depth, "ListOf kind=%s title=%q", n.List, n.Title)
	case KindInclude:
		tw.Line(depth, "Include href=%q", n.Src)
		if n.Sub != nil {
			tw.document(depth+1, n.Sub)
		}
	}
}
