package section

import (
	"errors"
	"fmt"

	"fms/config"
	"fms/layout"
)

// ErrEmptyCollection signals that entry collection matched nothing. It is
// fatal to rendering the section (the section is skipped and consumes zero
// pages) but not to the document build.
var ErrEmptyCollection = errors.New("no entries collected")

// ErrMissingReservation signals that committed rendering was invoked without
// a prior successful reservation. This is a pipeline ordering bug and must
// abort document generation - rendering without measurement desynchronizes
// pagination of everything that follows.
var ErrMissingReservation = errors.New("no reservation for section")

// ExtentDriftError reports that the committed pass consumed more space than
// was reserved. Overflowing into space belonging to subsequent content is
// never tolerated silently.
type ExtentDriftError struct {
	Kind     config.SectionKind
	Reserved layout.Extent
	Actual   layout.Extent
}

func (e *ExtentDriftError) Error() string {
	return fmt.Sprintf("section %s overflowed its reservation: reserved %s, rendered %s", e.Kind, e.Reserved, e.Actual)
}
