// Package solver reconstructs a bicycle frame as absolute 2D coordinates.
//
// The frame is treated as a planar linkage rooted at the bottom bracket,
// which is always the local origin. Each point is placed by extending a
// segment of known length at a known angle from an already-placed point.
// Angles are degrees up from horizontal with tubes leaning rearward; the
// conversion to the shared counter-clockwise convention happens once, in
// geo.TubeAngle.
package solver

import (
	"math"

	"github.com/cschone/bikefit/pkg/geo"
	"github.com/cschone/bikefit/pkg/spec"
	"github.com/cschone/bikefit/pkg/validation"
)

// SaddleHeightFactor is the LeMond method: saddle height measured from
// the bottom bracket center along the seat tube axis is 0.883 x inseam.
const SaddleHeightFactor = 0.883

// Solve converts a bicycle document and an optional rider document into a
// solved point set. The rider is shared read-only across calls and never
// mutated. Missing required dimensions produce *IncompleteGeometryError;
// degenerate values produce *InvalidGeometryError.
func Solve(b *spec.Bicycle, r *spec.Rider) (*PointSet, error) {
	report := validation.ValidateBicycle(b)
	if r != nil {
		report.Merge(validation.ValidateRider(r))
	}
	if !report.Valid {
		return nil, &InvalidGeometryError{Bike: b.Label(), Report: report}
	}

	s := &solve{bike: b, rider: r, ps: &PointSet{
		Label:  b.Label(),
		Points: make(map[PointName]geo.Point2D),
	}}

	s.ps.Points[PointBottomBracket] = geo.Origin

	if err := s.placeRearAxle(); err != nil {
		return nil, err
	}
	if err := s.placeSeatTube(); err != nil {
		return nil, err
	}
	if err := s.placeHeadTube(); err != nil {
		return nil, err
	}
	if err := s.placeFrontAxle(); err != nil {
		return nil, err
	}
	s.placeSaddle()
	s.placeHandPosition()

	s.assembleSegments()
	s.assembleWheels()

	return s.ps, nil
}

type solve struct {
	bike  *spec.Bicycle
	rider *spec.Rider
	ps    *PointSet
}

// need resolves an optional dimension or fails the derivation step for
// the given point.
func (s *solve) need(point PointName, name string, v *float64) (float64, error) {
	if v == nil {
		return 0, &IncompleteGeometryError{Bike: s.bike.Label(), Point: point, Dimension: name}
	}
	return *v, nil
}

// placeRearAxle puts the rear axle behind and above the bottom bracket.
// The chainstay is the hypotenuse; bb_drop is the vertical leg.
func (s *solve) placeRearAxle() error {
	cs, err := s.need(PointRearAxle, "chainstay_length", s.bike.ChainstayLength)
	if err != nil {
		return err
	}
	drop, err := s.need(PointRearAxle, "bb_drop", s.bike.BBDrop)
	if err != nil {
		return err
	}
	x := -math.Sqrt(cs*cs - drop*drop)
	s.ps.Points[PointRearAxle] = geo.Pt(x, drop)
	return nil
}

func (s *solve) placeSeatTube() error {
	angle, err := s.need(PointSeatTubeTop, "seat_tube_angle", s.bike.SeatTubeAngle)
	if err != nil {
		return err
	}
	length, err := s.need(PointSeatTubeTop, "seat_tube_length", s.bike.SeatTubeLength)
	if err != nil {
		return err
	}
	s.ps.Points[PointSeatTubeTop] = geo.PointAt(geo.Origin, length, geo.TubeAngle(angle))
	return nil
}

// placeHeadTube places head_tube_top and head_tube_bottom. When the
// document carries reach and stack, the top is (reach, stack) directly and
// the bottom retreats down the steering axis. Otherwise the head tube is
// reconstructed from the wheelbase, fork and head tube measurements: the
// steering axis crosses axle height slightly behind the front axle (the
// fork offset projected onto the horizontal), and the head tube runs from
// fork_length to fork_length+head_tube_length up that axis.
func (s *solve) placeHeadTube() error {
	angle, err := s.need(PointHeadTubeTop, "head_tube_angle", s.bike.HeadTubeAngle)
	if err != nil {
		return err
	}
	htl, err := s.need(PointHeadTubeTop, "head_tube_length", s.bike.HeadTubeLength)
	if err != nil {
		return err
	}

	if s.bike.Reach != nil && s.bike.Stack != nil {
		top := geo.Pt(*s.bike.Reach, *s.bike.Stack)
		s.ps.Points[PointHeadTubeTop] = top
		s.ps.Points[PointHeadTubeBottom] = geo.PointAt(top, htl, geo.TubeAngle(angle)-180)
		return nil
	}

	wb, err := s.need(PointHeadTubeTop, "wheelbase", s.bike.Wheelbase)
	if err != nil {
		return err
	}
	fl, err := s.need(PointHeadTubeTop, "fork_length", s.bike.ForkLength)
	if err != nil {
		return err
	}
	fo, err := s.need(PointHeadTubeTop, "fork_offset", s.bike.ForkOffset)
	if err != nil {
		return err
	}

	rear := s.ps.Points[PointRearAxle]
	frontX := rear.X + wb
	// Horizontal distance from the front axle back to where the steering
	// axis crosses axle height.
	axisSetback := fo / math.Sin(angle*math.Pi/180)
	intercept := geo.Pt(frontX-axisSetback, rear.Y)

	bottom := geo.PointAt(intercept, fl, geo.TubeAngle(angle))
	s.ps.Points[PointHeadTubeBottom] = bottom
	s.ps.Points[PointHeadTubeTop] = geo.PointAt(bottom, htl, geo.TubeAngle(angle))
	return nil
}

// placeFrontAxle prefers the measured wheelbase; without one it walks
// back down the steering axis from the head tube bottom and applies the
// fork offset.
func (s *solve) placeFrontAxle() error {
	rear := s.ps.Points[PointRearAxle]

	if s.bike.Wheelbase != nil {
		s.ps.Points[PointFrontAxle] = geo.Pt(rear.X+*s.bike.Wheelbase, rear.Y)
		return nil
	}

	fl, err := s.need(PointFrontAxle, "fork_length", s.bike.ForkLength)
	if err != nil {
		return err
	}
	fo, err := s.need(PointFrontAxle, "fork_offset", s.bike.ForkOffset)
	if err != nil {
		return err
	}
	angle := *s.bike.HeadTubeAngle // placed by placeHeadTube

	bottom := s.ps.Points[PointHeadTubeBottom]
	intercept := geo.PointAt(bottom, fl, geo.TubeAngle(angle)-180)
	axisSetback := fo / math.Sin(angle*math.Pi/180)
	s.ps.Points[PointFrontAxle] = geo.Pt(intercept.X+axisSetback, rear.Y)
	return nil
}

// placeSaddle extends the saddle up the seat tube axis using the rider's
// inseam. No rider, or a rider without an inseam, is the documented
// omission branch: the saddle point is simply absent.
func (s *solve) placeSaddle() {
	if s.rider == nil || s.rider.Inseam == nil {
		return
	}
	angle := *s.bike.SeatTubeAngle // placed by placeSeatTube
	height := SaddleHeightFactor * *s.rider.Inseam
	s.ps.Points[PointSaddle] = geo.PointAt(geo.Origin, height, geo.TubeAngle(angle))
}

// placeHandPosition offsets the hand from the head tube top by the
// handlebar reach/stack pair. Both offsets must be present; arm length is
// deliberately not used (no published formula to ground it on).
func (s *solve) placeHandPosition() {
	if s.bike.HandlebarReach == nil || s.bike.HandlebarStack == nil {
		return
	}
	top := s.ps.Points[PointHeadTubeTop]
	s.ps.Points[PointHandPosition] = top.Add(geo.Pt(*s.bike.HandlebarReach, *s.bike.HandlebarStack))
}

// assembleSegments builds the drawn silhouette in a fixed order. A
// segment is included only when both endpoints were solved.
func (s *solve) assembleSegments() {
	candidates := []Segment{
		{SegmentChainstay, PointBottomBracket, PointRearAxle},
		{SegmentSeatTube, PointBottomBracket, PointSeatTubeTop},
		{SegmentSeatStay, PointSeatTubeTop, PointRearAxle},
		{SegmentTopTube, PointSeatTubeTop, PointHeadTubeTop},
		{SegmentDownTube, PointBottomBracket, PointHeadTubeBottom},
		{SegmentHeadTube, PointHeadTubeBottom, PointHeadTubeTop},
		{SegmentFork, PointHeadTubeBottom, PointFrontAxle},
		{SegmentSeatpost, PointSeatTubeTop, PointSaddle},
		{SegmentStem, PointHeadTubeTop, PointHandPosition},
	}
	for _, seg := range candidates {
		if s.ps.Has(seg.From, seg.To) {
			s.ps.Segments = append(s.ps.Segments, seg)
		}
	}
}

func (s *solve) assembleWheels() {
	d := s.bike.WheelDiameterOrDefault()
	for _, center := range []PointName{PointRearAxle, PointFrontAxle} {
		if s.ps.Has(center) {
			s.ps.Wheels = append(s.ps.Wheels, Wheel{Center: center, Diameter: d})
		}
	}
}
