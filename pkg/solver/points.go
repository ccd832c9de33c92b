package solver

import "github.com/cschone/bikefit/pkg/geo"

// PointName identifies a solved frame or fit point.
type PointName string

const (
	PointBottomBracket  PointName = "bottom_bracket"
	PointRearAxle       PointName = "rear_axle"
	PointFrontAxle      PointName = "front_axle"
	PointSeatTubeTop    PointName = "seat_tube_top"
	PointHeadTubeTop    PointName = "head_tube_top"
	PointHeadTubeBottom PointName = "head_tube_bottom"
	PointSaddle         PointName = "saddle"
	PointHandPosition   PointName = "hand_position"
)

// SegmentName identifies a drawn frame member.
type SegmentName string

const (
	SegmentChainstay SegmentName = "chainstay"
	SegmentSeatTube  SegmentName = "seat_tube"
	SegmentSeatStay  SegmentName = "seat_stay"
	SegmentTopTube   SegmentName = "top_tube"
	SegmentDownTube  SegmentName = "down_tube"
	SegmentHeadTube  SegmentName = "head_tube"
	SegmentFork      SegmentName = "fork"
	SegmentSeatpost  SegmentName = "seatpost"
	SegmentStem      SegmentName = "stem"
)

// Segment is one line of the frame silhouette, drawn between two named
// points.
type Segment struct {
	Name SegmentName `json:"name"`
	From PointName   `json:"from"`
	To   PointName   `json:"to"`
}

// Wheel is a circle glyph centered on a named point, carried for rendering.
type Wheel struct {
	Center   PointName `json:"center"`
	Diameter float64   `json:"diameter"`
}

// PointSet is the solved geometry of one bicycle: named 2D points plus the
// ordered segments connecting them. The bottom bracket is always (0, 0)
// before normalization. A PointSet is never mutated after Solve returns;
// transformations produce copies.
type PointSet struct {
	Label    string                    `json:"label"`
	Points   map[PointName]geo.Point2D `json:"points"`
	Segments []Segment                 `json:"segments"`
	Wheels   []Wheel                   `json:"wheels"`
}

// Point returns the named point and whether it was solved.
func (ps *PointSet) Point(name PointName) (geo.Point2D, bool) {
	p, ok := ps.Points[name]
	return p, ok
}

// Has reports whether every named point was solved.
func (ps *PointSet) Has(names ...PointName) bool {
	for _, n := range names {
		if _, ok := ps.Points[n]; !ok {
			return false
		}
	}
	return true
}

// Translate returns a copy of the point set with every point shifted by
// offset. Segments and wheels reference points by name and carry over
// unchanged.
func (ps *PointSet) Translate(offset geo.Point2D) *PointSet {
	out := &PointSet{
		Label:    ps.Label,
		Points:   make(map[PointName]geo.Point2D, len(ps.Points)),
		Segments: ps.Segments,
		Wheels:   ps.Wheels,
	}
	for name, p := range ps.Points {
		out.Points[name] = p.Add(offset)
	}
	return out
}
