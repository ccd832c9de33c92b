package geo

import "math"

// circleSegments is the default resolution for circle approximation.
const circleSegments = 64

// ApproximateCircle returns a closed polyline approximating a circle.
// The first point is repeated at the end so the ring can be drawn as a
// single line strip. Fewer than 3 segments is clamped to 3.
func ApproximateCircle(center Point2D, radius float64, segments int) []Point2D {
	if segments < 3 {
		segments = 3
	}
	pts := make([]Point2D, segments+1)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = Point2D{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	pts[segments] = pts[0]
	return pts
}

// Circle returns a closed polyline for a circle at the default resolution.
func Circle(center Point2D, radius float64) []Point2D {
	return ApproximateCircle(center, radius, circleSegments)
}
