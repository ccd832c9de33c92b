// Package render draws normalized bicycle geometries onto a comparison
// chart using gonum/plot. It is the boundary to the plotting backend: it
// consumes final coordinate lists and styling and produces one output
// file per run. A failure here is fatal to the run.
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/cschone/bikefit/pkg/geo"
	"github.com/cschone/bikefit/pkg/metrics"
	"github.com/cschone/bikefit/pkg/solver"
)

// Bike is one bicycle's render input: its normalized point set, its
// metrics (for the legend annotation), and an optional color override
// from the bicycle document.
type Bike struct {
	Set           *solver.PointSet
	Metrics       *metrics.Set
	ColorOverride string
}

// Renderer draws comparison charts. One Renderer holds one style; each
// Render call builds a fresh plot, so there is no ambient canvas state.
type Renderer struct {
	style *Style
}

// New creates a renderer with the given style. A nil style uses defaults.
func New(style *Style) *Renderer {
	if style == nil {
		style = DefaultStyle()
	}
	return &Renderer{style: style}
}

// Render draws every bike onto one chart and writes it to path. The
// output format follows the file extension (.png, .svg, .pdf, ...).
func (r *Renderer) Render(bikes []Bike, path string) error {
	p, width, height, err := r.buildPlot(bikes)
	if err != nil {
		return err
	}
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("saving chart to %s: %w", path, err)
	}
	return nil
}

// WriteChart streams the chart to out in the given format ("svg", "png",
// "pdf", ...), for callers serving the chart instead of writing a file.
func (r *Renderer) WriteChart(bikes []Bike, out io.Writer, format string) error {
	p, width, height, err := r.buildPlot(bikes)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("encoding chart as %s: %w", format, err)
	}
	if _, err := wt.WriteTo(out); err != nil {
		return fmt.Errorf("writing chart: %w", err)
	}
	return nil
}

func (r *Renderer) buildPlot(bikes []Bike) (*plot.Plot, vg.Length, vg.Length, error) {
	if len(bikes) == 0 {
		return nil, 0, 0, fmt.Errorf("nothing to render")
	}

	p := plot.New()
	p.Title.Text = r.style.Title
	p.X.Label.Text = "x (mm)"
	p.Y.Label.Text = "y (mm)"
	p.Legend.Top = true
	p.Legend.Left = true
	if r.style.Grid {
		p.Add(plotter.NewGrid())
	}

	for i, bike := range bikes {
		c := r.style.ColorFor(i, bike.ColorOverride)
		if err := r.addBike(p, bike, c); err != nil {
			return nil, 0, 0, fmt.Errorf("drawing %s: %w", bike.Set.Label, err)
		}
	}

	width, height := r.fitCanvas(p, bikes)
	return p, width, height, nil
}

func (r *Renderer) addBike(p *plot.Plot, bike Bike, c color.Color) error {
	ps := bike.Set

	var legendLine *plotter.Line
	for _, seg := range ps.Segments {
		from := ps.Points[seg.From]
		to := ps.Points[seg.To]
		line, err := plotter.NewLine(plotter.XYs{{X: from.X, Y: from.Y}, {X: to.X, Y: to.Y}})
		if err != nil {
			return err
		}
		line.Color = c
		line.Width = vg.Points(1.5)
		p.Add(line)
		if legendLine == nil {
			legendLine = line
		}
	}

	if r.style.Wheels {
		for _, wheel := range ps.Wheels {
			center := ps.Points[wheel.Center]
			ring := geo.Circle(center, wheel.Diameter/2)
			xys := make(plotter.XYs, len(ring))
			for i, pt := range ring {
				xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
			}
			line, err := plotter.NewLine(xys)
			if err != nil {
				return err
			}
			line.Color = c
			line.Width = vg.Points(0.75)
			line.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
			p.Add(line)
		}
	}

	if r.style.Markers {
		xys := make(plotter.XYs, 0, len(ps.Points))
		for _, pt := range ps.Points {
			xys = append(xys, plotter.XY{X: pt.X, Y: pt.Y})
		}
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = c
		scatter.GlyphStyle.Radius = vg.Points(2)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
	}

	if legendLine != nil {
		p.Legend.Add(legendLabel(bike), legendLine)
	}
	return nil
}

// legendLabel annotates the bike label with reach/stack when available.
func legendLabel(bike Bike) string {
	label := bike.Set.Label
	if bike.Metrics == nil {
		return label
	}
	reach, okR := bike.Metrics.Get(metrics.Reach)
	stack, okS := bike.Metrics.Get(metrics.Stack)
	if okR && okS {
		return fmt.Sprintf("%s (R%.0f/S%.0f)", label, reach, stack)
	}
	return label
}

// fitCanvas sets padded axis ranges covering every bike and returns the
// save dimensions. With height_cm unset, the height follows from the
// data aspect ratio so both axes share one scale.
func (r *Renderer) fitCanvas(p *plot.Plot, bikes []Bike) (vg.Length, vg.Length) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	grow := func(x, y float64) {
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	for _, bike := range bikes {
		for _, pt := range bike.Set.Points {
			grow(pt.X, pt.Y)
		}
		if r.style.Wheels {
			for _, wheel := range bike.Set.Wheels {
				center := bike.Set.Points[wheel.Center]
				radius := wheel.Diameter / 2
				grow(center.X-radius, center.Y-radius)
				grow(center.X+radius, center.Y+radius)
			}
		}
	}

	const padMM = 50
	p.X.Min, p.X.Max = minX-padMM, maxX+padMM
	p.Y.Min, p.Y.Max = minY-padMM, maxY+padMM

	width := vg.Length(r.style.WidthCm) * vg.Centimeter
	height := vg.Length(r.style.HeightCm) * vg.Centimeter
	if r.style.HeightCm <= 0 {
		aspect := (p.Y.Max - p.Y.Min) / (p.X.Max - p.X.Min)
		height = width * vg.Length(aspect)
	}
	return width, height
}
