package geo

import "math"

// Point2D represents a point in the side-view plane of a bicycle.
// X increases toward the front of the bike, Y increases upward.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Origin is the zero point.
var Origin = Point2D{0, 0}

// Pt is a shorthand constructor for Point2D.
func Pt(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Add returns p + q.
func (p Point2D) Add(q Point2D) Point2D {
	return Point2D{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point2D) Sub(q Point2D) Point2D {
	return Point2D{p.X - q.X, p.Y - q.Y}
}

// Scale returns p * s.
func (p Point2D) Scale(s float64) Point2D {
	return Point2D{p.X * s, p.Y * s}
}

// Length returns the Euclidean length of the vector.
func (p Point2D) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the Euclidean distance from p to q.
func (p Point2D) Distance(q Point2D) float64 {
	return p.Sub(q).Length()
}

// Angle returns the angle of the vector from the positive X axis in radians.
func (p Point2D) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Lerp returns the linear interpolation between p and q at t in [0,1].
func (p Point2D) Lerp(q Point2D, t float64) Point2D {
	return Point2D{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// MidPoint returns the midpoint between p and q.
func MidPoint(p, q Point2D) Point2D {
	return p.Lerp(q, 0.5)
}

// PointAt returns the end point of a segment of the given length extended
// from p at angleDeg, measured in degrees from the positive X axis,
// increasing counter-clockwise. Every frame placement goes through this
// single angle convention.
func PointAt(p Point2D, length, angleDeg float64) Point2D {
	rad := angleDeg * math.Pi / 180
	return Point2D{
		X: p.X + length*math.Cos(rad),
		Y: p.Y + length*math.Sin(rad),
	}
}

// TubeAngle converts a frame tube angle (degrees up from horizontal, tube
// leaning toward the rear of the bike) into the counter-clockwise
// convention used by PointAt.
func TubeAngle(deg float64) float64 {
	return 180 - deg
}
