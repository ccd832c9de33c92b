package render

import (
	"fmt"
	"image/color"
	"os"

	"github.com/BurntSushi/toml"
	"gonum.org/v1/plot/plotutil"
)

// Style is the chart styling configuration. A TOML style file overrides
// any subset of the defaults:
//
//	title = "Fit comparison"
//	width_cm = 28.0
//	height_cm = 0.0   # 0 = derive from data at equal scale
//	grid = true
//	wheels = true
//	markers = true
//	palette = ["#1f77b4", "#ff7f0e", "#2ca02c"]
type Style struct {
	Title    string   `toml:"title"`
	WidthCm  float64  `toml:"width_cm"`
	HeightCm float64  `toml:"height_cm"`
	Grid     bool     `toml:"grid"`
	Wheels   bool     `toml:"wheels"`
	Markers  bool     `toml:"markers"`
	Palette  []string `toml:"palette"`
}

// DefaultStyle returns the built-in chart style.
func DefaultStyle() *Style {
	return &Style{
		Title:   "Bicycle geometry comparison",
		WidthCm: 28,
		Grid:    true,
		Wheels:  true,
		Markers: true,
	}
}

// LoadStyle reads a TOML style file and overlays it on the defaults.
func LoadStyle(path string) (*Style, error) {
	s := DefaultStyle()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading style file: %w", err)
	}
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing style TOML: %w", err)
	}
	if s.WidthCm <= 0 {
		return nil, fmt.Errorf("style width_cm must be positive, got %v", s.WidthCm)
	}
	for _, hex := range s.Palette {
		if _, err := parseHexColor(hex); err != nil {
			return nil, fmt.Errorf("style palette: %w", err)
		}
	}
	return s, nil
}

// ColorFor picks the draw color for the bike at index i. A per-bike hex
// override (from the bicycle document) wins over the palette; the palette
// wins over the plotutil default cycle.
func (s *Style) ColorFor(i int, override string) color.Color {
	if override != "" {
		if c, err := parseHexColor(override); err == nil {
			return c
		}
	}
	if len(s.Palette) > 0 {
		c, err := parseHexColor(s.Palette[i%len(s.Palette)])
		if err == nil {
			return c
		}
	}
	return plotutil.Color(i)
}

// parseHexColor parses "#rrggbb" or "#rgb".
func parseHexColor(s string) (color.Color, error) {
	var r, g, b uint8
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return nil, fmt.Errorf("invalid color %q: %w", s, err)
		}
	case 4:
		if _, err := fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b); err != nil {
			return nil, fmt.Errorf("invalid color %q: %w", s, err)
		}
		r, g, b = r*17, g*17, b*17
	default:
		return nil, fmt.Errorf("invalid color %q: want #rrggbb or #rgb", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
