package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
)

const testBike = "../../pkg/spec/testdata/road-bike.json"

func TestHandleGeometry(t *testing.T) {
	s := New(Config{BikePaths: []string{testBike}}, nil)

	rec := httptest.NewRecorder()
	s.handleGeometry(rec, httptest.NewRequest("GET", "/api/geometry", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Bikes []struct {
			Label  string `json:"label"`
			Points map[string]struct {
				X float64 `json:"x"`
				Y float64 `json:"y"`
			} `json:"points"`
		} `json:"bikes"`
		Skipped []struct {
			Path string `json:"path"`
		} `json:"skipped"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Bikes) != 1 {
		t.Fatalf("got %d bikes, want 1", len(resp.Bikes))
	}
	if _, ok := resp.Bikes[0].Points["bottom_bracket"]; !ok {
		t.Error("solved geometry missing bottom_bracket")
	}
}

func TestHandleGeometrySkipsBadFiles(t *testing.T) {
	s := New(Config{BikePaths: []string{testBike, "does-not-exist.json"}}, nil)

	rec := httptest.NewRecorder()
	s.handleGeometry(rec, httptest.NewRequest("GET", "/api/geometry", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Bikes   []json.RawMessage `json:"bikes"`
		Skipped []struct {
			Path  string `json:"path"`
			Error string `json:"error"`
		} `json:"skipped"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Bikes) != 1 || len(resp.Skipped) != 1 {
		t.Fatalf("got %d bikes and %d skipped, want 1 and 1", len(resp.Bikes), len(resp.Skipped))
	}
	if resp.Skipped[0].Error == "" {
		t.Error("skipped entry has no error message")
	}
}

func TestHandleChart(t *testing.T) {
	s := New(Config{BikePaths: []string{testBike}}, nil)

	rec := httptest.NewRecorder()
	s.handleChart(rec, httptest.NewRequest("GET", "/chart.svg", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "<svg") {
		t.Error("response does not look like SVG")
	}
}

func TestHandleChartNoSolvableBikes(t *testing.T) {
	s := New(Config{BikePaths: []string{"does-not-exist.json"}}, nil)

	rec := httptest.NewRecorder()
	s.handleChart(rec, httptest.NewRequest("GET", "/chart.svg", nil))

	if rec.Code != 422 {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestHandleValidation(t *testing.T) {
	s := New(Config{BikePaths: []string{testBike}}, nil)

	rec := httptest.NewRecorder()
	s.handleValidation(rec, httptest.NewRequest("GET", "/api/validation", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	var reports map[string]struct {
		Valid bool `json:"valid"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &reports); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	r, ok := reports[testBike]
	if !ok {
		t.Fatalf("no report for %s", testBike)
	}
	if !r.Valid {
		t.Error("expected valid report for well-formed bike")
	}
}
