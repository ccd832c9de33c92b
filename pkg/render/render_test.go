package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cschone/bikefit/pkg/metrics"
	"github.com/cschone/bikefit/pkg/solver"
	"github.com/cschone/bikefit/pkg/spec"
)

func solvedBike(t *testing.T, name string) *solver.PointSet {
	t.Helper()
	f := func(v float64) *float64 { return &v }
	ps, err := solver.Solve(&spec.Bicycle{
		Name:            name,
		BBDrop:          f(70),
		ChainstayLength: f(410),
		SeatTubeAngle:   f(73.5),
		SeatTubeLength:  f(520),
		HeadTubeAngle:   f(72),
		HeadTubeLength:  f(140),
		Wheelbase:       f(990),
		Reach:           f(385),
		Stack:           f(565),
	}, nil)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	return ps
}

func TestRenderWritesFile(t *testing.T) {
	ps := solvedBike(t, "Render Smoke")
	out := filepath.Join(t.TempDir(), "chart.svg")

	r := New(nil)
	err := r.Render([]Bike{{Set: ps, Metrics: metrics.Compute(ps)}}, out)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestRenderMultipleBikes(t *testing.T) {
	a := solvedBike(t, "Bike A")
	b := solvedBike(t, "Bike B")
	out := filepath.Join(t.TempDir(), "chart.png")

	r := New(&Style{Title: "Overlay", WidthCm: 20, Grid: true, Wheels: true, Markers: true})
	err := r.Render([]Bike{
		{Set: a, Metrics: metrics.Compute(a)},
		{Set: b, Metrics: metrics.Compute(b), ColorOverride: "#d62728"},
	}, out)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
}

func TestWriteChartStreamsSVG(t *testing.T) {
	ps := solvedBike(t, "Streamed")
	var buf bytes.Buffer

	r := New(nil)
	if err := r.WriteChart([]Bike{{Set: ps}}, &buf, "svg"); err != nil {
		t.Fatalf("WriteChart failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("expected SVG output")
	}
}

func TestRenderNothingFails(t *testing.T) {
	r := New(nil)
	if err := r.Render(nil, "unused.svg"); err == nil {
		t.Error("expected error when rendering zero bikes")
	}
}

func TestLegendLabel(t *testing.T) {
	ps := solvedBike(t, "Labeled")
	bike := Bike{Set: ps, Metrics: metrics.Compute(ps)}
	if got := legendLabel(bike); got != "Labeled (R385/S565)" {
		t.Errorf("legend label = %q", got)
	}

	bare := Bike{Set: &solver.PointSet{Label: "Bare"}}
	if got := legendLabel(bare); got != "Bare" {
		t.Errorf("bare legend label = %q", got)
	}
}
