package section

import (
	"github.com/google/uuid"

	"fms/layout"
)

// Reservation is the committed agreement, made during the allocation phase,
// of how much page space a section may use. Exactly one Reservation exists
// per section instance; it lives from allocation until the committed pass
// consumes it.
type Reservation struct {
	ID         uuid.UUID
	Extent     layout.Extent
	BreakAfter bool
}

// PageRange is the inclusive span of pages a committed render actually used.
type PageRange struct {
	First int
	Last  int
}
