package section

// Resolver answers on which page a cross-reference target ended up. An
// unresolved target is a per-entry condition, not an error: the renderer
// substitutes a placeholder marker.
type Resolver interface {
	PageOf(ref string) (int, bool)
}

// PageIndex is a map-backed Resolver filled by the body layout pass.
type PageIndex map[string]int

func (p PageIndex) PageOf(ref string) (int, bool) {
	n, ok := p[ref]
	return n, ok
}
