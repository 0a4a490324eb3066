package style

// Leader is the dot-leader fill between an entry title and its page number.
// Levels limits which nesting levels get the fill at all.
type Leader struct {
	Fill   string
	Size   float64
	Color  string
	Levels map[int]bool
}

// Active reports whether the leader should be rendered for the given nesting
// level. A leader with empty fill text is never rendered.
func (l Leader) Active(level int) bool {
	return l.Fill != "" && l.Levels[level]
}

// ListStyle is everything a reservable list needs resolved up front. Both
// rendering passes share one ListStyle instance so their extents agree.
type ListStyle struct {
	HeadingSize float64
	EntrySize   float64
	Indent      float64
	Leader      Leader
}

// ForSection resolves the list style for a section kind, consulting
// kind-scoped rules first.
func ForSection(sheet *Stylesheet, kind string) ListStyle {
	ls := ListStyle{
		HeadingSize: 14,
		EntrySize:   10,
		Indent:      12,
		Leader: Leader{
			Fill:   ".",
			Size:   10,
			Levels: map[int]bool{1: true, 2: true, 3: true},
		},
	}

	if v, ok := sheet.ResolveScoped(kind, "heading", "size"); ok {
		ls.HeadingSize = v.Value
	}
	if v, ok := sheet.ResolveScoped(kind, "entry", "size"); ok {
		ls.EntrySize = v.Value
	}
	if v, ok := sheet.ResolveScoped(kind, "entry", "indent"); ok {
		ls.Indent = v.Value
	}
	if v, ok := sheet.ResolveScoped(kind, "leader", "fill"); ok {
		ls.Leader.Fill = v.Keyword
	}
	if v, ok := sheet.ResolveScoped(kind, "leader", "size"); ok {
		ls.Leader.Size = v.Value
	}
	if v, ok := sheet.ResolveScoped(kind, "leader", "color"); ok {
		ls.Leader.Color = v.Keyword
	}
	if v, ok := sheet.ResolveScoped(kind, "leader", "levels"); ok {
		levels := make(map[int]bool)
		for _, n := range v.Ints() {
			levels[n] = true
		}
		ls.Leader.Levels = levels
	}
	return ls
}
