package geom

import "github.com/hupe1980/meshkit/core"

// Frame is a set of pairwise orthogonal directions whose lengths describe an
// anisotropic tolerance: a point is within the frame around a center when it
// lies strictly inside the ellipsoid spanned by the directions.
type Frame struct {
	directions []Vector
}

// NewFrame returns a frame over the given directions.
// Directions must be non-zero and pairwise orthogonal.
func NewFrame(directions ...Vector) (Frame, error) {
	if len(directions) == 0 || len(directions) > MaxDimension {
		return Frame{}, core.InvalidArgumentf("frame needs 1 to %d directions, got %d", MaxDimension, len(directions))
	}
	for i, d := range directions {
		if d.SquaredLength() == 0 {
			return Frame{}, core.InvalidArgumentf("frame direction %d has zero length", i)
		}
		for j := i + 1; j < len(directions); j++ {
			dot := d.Dot(directions[j])
			if dot*dot > 1e-12*d.SquaredLength()*directions[j].SquaredLength() {
				return Frame{}, core.InvalidArgumentf("frame directions %d and %d are not orthogonal", i, j)
			}
		}
	}
	return Frame{directions: append([]Vector(nil), directions...)}, nil
}

// AxisFrame returns the axis-aligned frame with the given per-axis tolerances.
func AxisFrame(tolerances ...float64) (Frame, error) {
	dirs := make([]Vector, len(tolerances))
	for i, t := range tolerances {
		dirs[i][i] = t
	}
	return NewFrame(dirs...)
}

// Dimension returns the number of directions.
func (f Frame) Dimension() int {
	return len(f.directions)
}

// Direction returns direction d.
func (f Frame) Direction(d int) Vector {
	return f.directions[d]
}

// MaxElongation returns the length of the longest direction.
func (f Frame) MaxElongation() float64 {
	var longest float64
	for _, d := range f.directions {
		longest = max(longest, d.Length())
	}
	return longest
}

// MinElongation returns the length of the shortest direction.
func (f Frame) MinElongation() float64 {
	if len(f.directions) == 0 {
		return 0
	}
	shortest := f.directions[0].Length()
	for _, d := range f.directions[1:] {
		shortest = min(shortest, d.Length())
	}
	return shortest
}

// Scaled returns the normalized squared distance of v inside the frame scaled
// by factor. Values below 1 lie strictly inside the ellipsoid.
func (f Frame) Scaled(v Vector, factor float64) float64 {
	var sum float64
	for _, d := range f.directions {
		// Coordinate of v along d, expressed in units of factor*|d|.
		c := v.Dot(d) / (factor * d.SquaredLength())
		sum += c * c
	}
	return sum
}
