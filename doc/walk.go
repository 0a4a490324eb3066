package doc

// Traversal and index building for the document tree.

// VisitFunc is called for every node in document order. depth is the section
// nesting level of the node, 1 for nodes directly under the document root.
// Returning false stops the walk.
type VisitFunc func(n *Node, depth int) bool

// Walk visits every node of the document, descending into child sections and
// included sub-documents, in document order.
func Walk(d *Document, visit VisitFunc) {
	walkNodes(d.Nodes, 1, visit)
}

func walkNodes(nodes []*Node, depth int, visit VisitFunc) bool {
	for _, n := range nodes {
		if !visit(n, depth) {
			return false
		}
		switch n.Kind {
		case KindSection:
			if !walkNodes(n.Children, depth+1, visit) {
				return false
			}
		case KindInclude:
			if n.Sub != nil {
				// included sub-documents continue at the current nesting level
				if !walkNodes(n.Sub.Nodes, depth, visit) {
					return false
				}
			}
		}
	}
	return true
}

// Select returns all nodes matching the predicate paired with their nesting
// level, in document order.
func Select(d *Document, pred Predicate) ([]*Node, []int) {
	var (
		nodes  []*Node
		depths []int
	)
	Walk(d, func(n *Node, depth int) bool {
		if pred(n) {
			nodes = append(nodes, n)
			depths = append(depths, depth)
		}
		return true
	})
	return nodes, depths
}

// IDIndex maps node IDs to nodes. Any captioned block could be a target for
// cross-reference resolution.
type IDIndex map[string]*Node

// BuildIDIndex walks the entire document and indexes all nodes carrying IDs.
// On duplicate IDs the first occurrence wins.
func BuildIDIndex(d *Document) IDIndex {
	index := make(IDIndex)
	Walk(d, func(n *Node, _ int) bool {
		if n.ID != "" {
			if _, exists := index[n.ID]; !exists {
				index[n.ID] = n
			}
		}
		return true
	})
	return index
}
