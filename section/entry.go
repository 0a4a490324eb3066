// Package section implements reservable front-matter lists: entry collection
// over the document tree and the two-pass reservation-and-render protocol
// that places a dynamically sized, self-referential list into a paginated
// document whose total page count is unknown until rendering completes.
package section

import (
	"fmt"

	"go.uber.org/zap"

	"fms/doc"
)

// DefaultTitle is substituted for a missing caption so rendering never fails
// on missing metadata.
const DefaultTitle = "(untitled)"

// Entry is one listed item: a title pointing at a page elsewhere in the same
// document. Level is the nesting depth of the target node; the target page
// stays unknown until the body layout pass has placed the node.
type Entry struct {
	Title string
	Level int
	Ref   string
}

// EntrySource produces the ordered entries a list renders. It is invoked
// once, at reservation time, and the result is reused verbatim by the
// committed pass.
type EntrySource func() ([]Entry, error)

// Collect walks the full document tree in document order and derives entries
// from nodes matching the predicate. Matched nodes missing a caption get
// DefaultTitle written back onto the node so downstream consumers agree with
// the list. Zero matches fail with ErrEmptyCollection.
func Collect(d *doc.Document, pred doc.Predicate, log *zap.Logger) ([]Entry, error) {
	if log == nil {
		log = zap.NewNop()
	}

	nodes, depths := doc.Select(d, pred)
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%s: %w", d.SrcName, ErrEmptyCollection)
	}

	entries := make([]Entry, 0, len(nodes))
	for i, n := range nodes {
		if n.Title == "" {
			log.Debug("Captioned block without caption, using default", zap.Stringer("kind", n.Kind), zap.String("id", n.ID))
			n.Title = DefaultTitle
		}
		entries = append(entries, Entry{Title: n.Title, Level: depths[i], Ref: n.ID})
	}
	return entries, nil
}

// Source binds Collect to a document and predicate for deferred invocation
// during reservation.
func Source(d *doc.Document, pred doc.Predicate, log *zap.Logger) EntrySource {
	return func() ([]Entry, error) {
		return Collect(d, pred, log)
	}
}
