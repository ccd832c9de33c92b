// Package compare aligns solved bicycle geometries on a shared reference
// point so they can be overlaid at true scale. The alignment is a pure
// translation: no rotation or scaling, since comparing true proportions
// is the point of the overlay.
package compare

import (
	"github.com/cschone/bikefit/pkg/geo"
	"github.com/cschone/bikefit/pkg/solver"
)

// Frame is the shared coordinate frame for a comparison run: the canvas
// location every bottom bracket is translated onto.
type Frame struct {
	Anchor geo.Point2D
}

// NewFrame creates a comparison frame anchored at the given canvas point.
func NewFrame(anchor geo.Point2D) Frame {
	return Frame{Anchor: anchor}
}

// Apply returns a translated copy of the point set with its bottom
// bracket at the frame anchor. The translation depends only on this
// point set, so normalization is idempotent and order-independent.
func (f Frame) Apply(ps *solver.PointSet) *solver.PointSet {
	bb := ps.Points[solver.PointBottomBracket]
	return ps.Translate(f.Anchor.Sub(bb))
}

// Normalize applies the frame to every point set, returning new sets in
// the same order. Inputs are never mutated.
func Normalize(f Frame, sets []*solver.PointSet) []*solver.PointSet {
	out := make([]*solver.PointSet, len(sets))
	for i, ps := range sets {
		out[i] = f.Apply(ps)
	}
	return out
}
