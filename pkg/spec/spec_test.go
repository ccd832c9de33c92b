package spec

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadJSON(t *testing.T) {
	b, err := Load("testdata/road-bike.json")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if b.Name != "Alloy Road" {
		t.Errorf("name = %q, want %q", b.Name, "Alloy Road")
	}
	if b.Size != "56cm" {
		t.Errorf("size = %q, want %q", b.Size, "56cm")
	}
	if b.Label() != "Alloy Road 56cm" {
		t.Errorf("label = %q, want %q", b.Label(), "Alloy Road 56cm")
	}
	if b.BBDrop == nil || *b.BBDrop != 70 {
		t.Errorf("bb_drop = %v, want 70", b.BBDrop)
	}
	if b.SeatTubeAngle == nil || *b.SeatTubeAngle != 73.5 {
		t.Errorf("seat_tube_angle = %v, want 73.5", b.SeatTubeAngle)
	}
	if b.Reach == nil || *b.Reach != 385 {
		t.Errorf("reach = %v, want 385", b.Reach)
	}
	if b.WheelDiameter != nil {
		t.Errorf("wheel_diameter = %v, want absent", *b.WheelDiameter)
	}
	if b.WheelDiameterOrDefault() != DefaultWheelDiameter {
		t.Errorf("default wheel diameter = %v, want %v", b.WheelDiameterOrDefault(), DefaultWheelDiameter)
	}
}

func TestLoadYAML(t *testing.T) {
	b, err := Load("testdata/gravel-bike.yaml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if b.Name != "Gravel Tourer" {
		t.Errorf("name = %q, want %q", b.Name, "Gravel Tourer")
	}
	if b.Wheelbase == nil || *b.Wheelbase != 1040 {
		t.Errorf("wheelbase = %v, want 1040", b.Wheelbase)
	}
	// Fields absent from the document stay nil.
	if b.Reach != nil {
		t.Errorf("reach = %v, want absent", *b.Reach)
	}
	if b.HandlebarReach != nil {
		t.Errorf("handlebar_reach = %v, want absent", *b.HandlebarReach)
	}
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load("testdata/malformed.json")
	var malformed *MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedInputError, got %v", err)
	}
	if malformed.Path != "testdata/malformed.json" {
		t.Errorf("error path = %q", malformed.Path)
	}
}

func TestLoadMissingName(t *testing.T) {
	_, err := Load("testdata/unnamed.json")
	var malformed *MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedInputError for missing name, got %v", err)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bike.txt")
	if err := os.WriteFile(path, []byte("bicycle:\n  name: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	var malformed *MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedInputError for unsupported extension, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/bike.json")
	if err == nil {
		t.Error("expected error for missing file")
	}
	var malformed *MalformedInputError
	if errors.As(err, &malformed) {
		t.Error("missing file should not be reported as malformed input")
	}
}

func TestLoadRider(t *testing.T) {
	r, err := LoadRider("testdata/rider.yaml")
	if err != nil {
		t.Fatalf("LoadRider failed: %v", err)
	}
	if r.Inseam == nil || *r.Inseam != 860 {
		t.Errorf("inseam = %v, want 860", r.Inseam)
	}
	if r.TorsoLength == nil || *r.TorsoLength != 620 {
		t.Errorf("torso_length = %v, want 620", r.TorsoLength)
	}
}

func TestDimensionsEnumeration(t *testing.T) {
	b, err := Load("testdata/road-bike.json")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	dims := b.Dimensions()
	if len(dims) != 14 {
		t.Fatalf("expected 14 dimensions, got %d", len(dims))
	}
	present := 0
	for _, d := range dims {
		if d.Value != nil {
			present++
		}
	}
	if present != 13 {
		t.Errorf("expected 13 present dimensions, got %d", present)
	}
}
