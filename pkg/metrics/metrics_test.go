package metrics

import (
	"math"
	"testing"

	"github.com/cschone/bikefit/pkg/geo"
	"github.com/cschone/bikefit/pkg/solver"
	"github.com/cschone/bikefit/pkg/spec"
)

const tolerance = 1e-9

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func pointSet(points map[solver.PointName]geo.Point2D) *solver.PointSet {
	return &solver.PointSet{Label: "Test", Points: points}
}

func TestReachAndStackExact(t *testing.T) {
	ps := pointSet(map[solver.PointName]geo.Point2D{
		solver.PointBottomBracket: geo.Origin,
		solver.PointHeadTubeTop:   geo.Pt(380, 560),
	})
	s := Compute(ps)

	reach, ok := s.Get(Reach)
	if !ok || reach != 380 {
		t.Errorf("reach = %v (%v), want exactly 380", reach, ok)
	}
	stack, ok := s.Get(Stack)
	if !ok || stack != 560 {
		t.Errorf("stack = %v (%v), want exactly 560", stack, ok)
	}
}

func TestMissingPointsOmitMetrics(t *testing.T) {
	ps := pointSet(map[solver.PointName]geo.Point2D{
		solver.PointBottomBracket: geo.Origin,
		solver.PointHeadTubeTop:   geo.Pt(380, 560),
	})
	s := Compute(ps)

	for _, name := range []string{Wheelbase, SaddleHeight, SaddleToBar, BarDrop, TopTubeLength} {
		if s.Has(name) {
			t.Errorf("%s should be omitted when its points are missing", name)
		}
	}
	if len(s.Names()) != 2 {
		t.Errorf("expected 2 computable metrics, got %v", s.Names())
	}
}

func TestSaddleMetrics(t *testing.T) {
	saddle := geo.Pt(-150, 500)
	hand := geo.Pt(420, 440)
	ps := pointSet(map[solver.PointName]geo.Point2D{
		solver.PointBottomBracket: geo.Origin,
		solver.PointSaddle:        saddle,
		solver.PointHandPosition:  hand,
	})
	s := Compute(ps)

	height, _ := s.Get(SaddleHeight)
	if !approxEqual(height, saddle.Length(), tolerance) {
		t.Errorf("saddle_height = %f, want %f", height, saddle.Length())
	}

	setback, _ := s.Get(SaddleSetback)
	if !approxEqual(setback, 150, tolerance) {
		t.Errorf("saddle_setback = %f, want 150 (saddle behind bb is positive)", setback)
	}

	drop, _ := s.Get(BarDrop)
	if !approxEqual(drop, 60, tolerance) {
		t.Errorf("bar_drop = %f, want 60 (bar below saddle is positive)", drop)
	}

	dist, _ := s.Get(SaddleToBar)
	if !approxEqual(dist, saddle.Distance(hand), tolerance) {
		t.Errorf("saddle_to_bar = %f, want %f", dist, saddle.Distance(hand))
	}
}

func TestComputeFromSolvedBike(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	bike := &spec.Bicycle{
		Name:            "Road",
		BBDrop:          f(70),
		ChainstayLength: f(410),
		SeatTubeAngle:   f(73.5),
		SeatTubeLength:  f(520),
		HeadTubeAngle:   f(72),
		HeadTubeLength:  f(140),
		Wheelbase:       f(990),
		Reach:           f(385),
		Stack:           f(565),
	}

	ps, err := solver.Solve(bike, nil)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	s := Compute(ps)

	wb, ok := s.Get(Wheelbase)
	if !ok || !approxEqual(wb, 990, tolerance) {
		t.Errorf("wheelbase = %v (%v), want 990", wb, ok)
	}
	if !s.Has(TopTubeLength) || !s.Has(DownTubeLength) || !s.Has(FrontCenter) {
		t.Errorf("expected tube metrics, got %v", s.Names())
	}
	if s.Has(SaddleHeight) {
		t.Error("saddle_height should be absent without a rider")
	}
}

func TestNamesOrderIsStable(t *testing.T) {
	ps := pointSet(map[solver.PointName]geo.Point2D{
		solver.PointBottomBracket: geo.Origin,
		solver.PointHeadTubeTop:   geo.Pt(380, 560),
		solver.PointFrontAxle:     geo.Pt(600, 70),
		solver.PointRearAxle:      geo.Pt(-400, 70),
	})
	s := Compute(ps)
	names := s.Names()
	want := []string{Reach, Stack, Wheelbase, FrontCenter}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}
