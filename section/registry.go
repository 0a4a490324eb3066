package section

import (
	"errors"

	"go.uber.org/zap"

	"fms/layout"
)

// Registry is the ordering contract between sections sharing one surface.
// Sections are registered in the order their reservations run; committed
// rendering later walks the same order, each section picking up the
// page/cursor bookkeeping exactly where the previous one left it. Relying on
// incidental call-site adjacency instead of the registry is how pagination
// gets corrupted.
type Registry struct {
	sections []*List
	log      *zap.Logger
}

func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{log: log.Named("sections")}
}

// Register appends a section. Registration order must match reservation
// order; Reserve enforces this by reserving on registration position.
func (r *Registry) Register(l *List) {
	r.sections = append(r.sections, l)
}

// Sections returns registered sections in order.
func (r *Registry) Sections() []*List {
	return r.sections
}

// Reserve performs the allocation step for one registered section at the
// surface's current cursor. An empty collection is not fatal: the section is
// skipped and the surface is left untouched.
func (r *Registry) Reserve(l *List, s layout.Surface) error {
	r.Register(l)
	if err := l.Reserve(s); err != nil {
		if errors.Is(err, ErrEmptyCollection) {
			r.log.Info("Nothing to list, skipping section", zap.Stringer("kind", l.Kind))
			return nil
		}
		return err
	}
	return nil
}

// Render runs the committed pass for every reserved section in registration
// order and returns the page ranges used, one per rendered section.
func (r *Registry) Render(s layout.Surface, rsv Resolver) ([]PageRange, error) {
	var ranges []PageRange
	for _, l := range r.sections {
		if l.Skipped() {
			continue
		}
		pr, err := l.Render(s, rsv)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, pr)
	}
	return ranges, nil
}
