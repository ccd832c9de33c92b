package solver

import (
	"fmt"

	"github.com/cschone/bikefit/pkg/validation"
)

// IncompleteGeometryError reports a dimension that a derivation step
// needed but the document did not supply. The bicycle is skipped; other
// bicycles in the run are unaffected.
type IncompleteGeometryError struct {
	Bike      string
	Point     PointName
	Dimension string
}

func (e *IncompleteGeometryError) Error() string {
	return fmt.Sprintf("%s: cannot place %s: missing dimension %q", e.Bike, e.Point, e.Dimension)
}

// InvalidGeometryError reports a document whose values are present but
// degenerate (non-positive length, angle out of range, inconsistent
// triangle). It wraps the schema validation report.
type InvalidGeometryError struct {
	Bike   string
	Report *validation.Report
}

func (e *InvalidGeometryError) Error() string {
	msg := e.Report.Summary
	if len(e.Report.Errors) > 0 {
		msg = e.Report.Errors[0].Message
	}
	return fmt.Sprintf("%s: invalid geometry: %s", e.Bike, msg)
}
