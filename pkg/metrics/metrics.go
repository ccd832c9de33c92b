// Package metrics derives rider-fit comparison numbers from a solved
// point set. Every metric is a pure function of two or more named points;
// metrics whose points were not solved are omitted rather than failing,
// so partial geometries still produce partial results.
package metrics

import (
	"math"

	"github.com/cschone/bikefit/pkg/solver"
)

// Metric names, in display order.
const (
	Reach          = "reach"
	Stack          = "stack"
	TopTubeLength  = "top_tube_length"
	DownTubeLength = "down_tube_length"
	Wheelbase      = "wheelbase"
	FrontCenter    = "front_center"
	SaddleHeight   = "saddle_height"
	SaddleSetback  = "saddle_setback"
	SaddleToBar    = "saddle_to_bar"
	BarDrop        = "bar_drop"
)

// Set holds computed metrics for one bicycle, keyed by metric name.
type Set struct {
	Label  string             `json:"label"`
	Values map[string]float64 `json:"values"`
}

// Has reports whether the named metric was computable.
func (s *Set) Has(name string) bool {
	_, ok := s.Values[name]
	return ok
}

// Get returns the named metric value and whether it was computable.
func (s *Set) Get(name string) (float64, bool) {
	v, ok := s.Values[name]
	return v, ok
}

// Names lists every metric in display order; absent metrics are skipped.
func (s *Set) Names() []string {
	all := []string{
		Reach, Stack, TopTubeLength, DownTubeLength, Wheelbase,
		FrontCenter, SaddleHeight, SaddleSetback, SaddleToBar, BarDrop,
	}
	names := make([]string, 0, len(all))
	for _, n := range all {
		if s.Has(n) {
			names = append(names, n)
		}
	}
	return names
}

// definition ties a metric to the points it needs and the geometric
// function over them.
type definition struct {
	name    string
	points  []solver.PointName
	compute func(*solver.PointSet) float64
}

var definitions = []definition{
	{Reach, []solver.PointName{solver.PointBottomBracket, solver.PointHeadTubeTop},
		func(ps *solver.PointSet) float64 {
			bb := ps.Points[solver.PointBottomBracket]
			top := ps.Points[solver.PointHeadTubeTop]
			return top.X - bb.X
		}},
	{Stack, []solver.PointName{solver.PointBottomBracket, solver.PointHeadTubeTop},
		func(ps *solver.PointSet) float64 {
			bb := ps.Points[solver.PointBottomBracket]
			top := ps.Points[solver.PointHeadTubeTop]
			return top.Y - bb.Y
		}},
	{TopTubeLength, []solver.PointName{solver.PointSeatTubeTop, solver.PointHeadTubeTop},
		func(ps *solver.PointSet) float64 {
			return ps.Points[solver.PointSeatTubeTop].Distance(ps.Points[solver.PointHeadTubeTop])
		}},
	{DownTubeLength, []solver.PointName{solver.PointBottomBracket, solver.PointHeadTubeBottom},
		func(ps *solver.PointSet) float64 {
			return ps.Points[solver.PointBottomBracket].Distance(ps.Points[solver.PointHeadTubeBottom])
		}},
	{Wheelbase, []solver.PointName{solver.PointRearAxle, solver.PointFrontAxle},
		func(ps *solver.PointSet) float64 {
			return ps.Points[solver.PointRearAxle].Distance(ps.Points[solver.PointFrontAxle])
		}},
	{FrontCenter, []solver.PointName{solver.PointBottomBracket, solver.PointFrontAxle},
		func(ps *solver.PointSet) float64 {
			return ps.Points[solver.PointBottomBracket].Distance(ps.Points[solver.PointFrontAxle])
		}},
	{SaddleHeight, []solver.PointName{solver.PointBottomBracket, solver.PointSaddle},
		func(ps *solver.PointSet) float64 {
			return ps.Points[solver.PointBottomBracket].Distance(ps.Points[solver.PointSaddle])
		}},
	{SaddleSetback, []solver.PointName{solver.PointBottomBracket, solver.PointSaddle},
		func(ps *solver.PointSet) float64 {
			bb := ps.Points[solver.PointBottomBracket]
			saddle := ps.Points[solver.PointSaddle]
			return bb.X - saddle.X
		}},
	{SaddleToBar, []solver.PointName{solver.PointSaddle, solver.PointHandPosition},
		func(ps *solver.PointSet) float64 {
			return ps.Points[solver.PointSaddle].Distance(ps.Points[solver.PointHandPosition])
		}},
	{BarDrop, []solver.PointName{solver.PointSaddle, solver.PointHandPosition},
		func(ps *solver.PointSet) float64 {
			return ps.Points[solver.PointSaddle].Y - ps.Points[solver.PointHandPosition].Y
		}},
}

// Compute derives every computable metric from the point set.
func Compute(ps *solver.PointSet) *Set {
	s := &Set{Label: ps.Label, Values: make(map[string]float64)}
	for _, def := range definitions {
		if !ps.Has(def.points...) {
			continue
		}
		v := def.compute(ps)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		s.Values[def.name] = v
	}
	return s
}
