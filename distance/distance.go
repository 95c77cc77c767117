package distance

import (
	"math"

	"github.com/hupe1980/meshkit/geom"
)

// SquaredL2 calculates the squared Euclidean distance between two points
// over all coordinates.
func SquaredL2(a, b geom.Point) float64 {
	d0 := a[0] - b[0]
	d1 := a[1] - b[1]
	d2 := a[2] - b[2]
	return d0*d0 + d1*d1 + d2*d2
}

// SquaredL2Dim calculates the squared Euclidean distance over the first dim coordinates.
// Assumes 1 <= dim <= geom.MaxDimension (caller's responsibility).
func SquaredL2Dim(a, b geom.Point, dim int) float64 {
	var sum float64
	for d := range dim {
		diff := a[d] - b[d]
		sum += diff * diff
	}
	return sum
}

// L2 calculates the Euclidean distance between two points.
func L2(a, b geom.Point) float64 {
	return math.Sqrt(SquaredL2(a, b))
}

// InsideFrame reports whether p lies strictly inside the ellipsoid centered on
// center and spanned by frame directions scaled by factor.
func InsideFrame(center, p geom.Point, frame geom.Frame, factor float64) bool {
	return frame.Scaled(p.Sub(center), factor) < 1
}

// FrameRadius returns the radius of the smallest ball enclosing the frame
// ellipsoid scaled by factor. It bounds the candidate search for InsideFrame.
func FrameRadius(frame geom.Frame, factor float64) float64 {
	return factor * frame.MaxElongation()
}
