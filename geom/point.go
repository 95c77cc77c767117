// Package geom provides the opaque value types meshkit stores in attributes and
// indexes spatially: points, vectors and anisotropic tolerance frames.
//
// Points are fixed-size so they are comparable and can be stored in attributes
// like any other value. Two-dimensional data uses the first two coordinates
// and leaves Z at zero.
package geom

import (
	"fmt"
	"math"
)

// MaxDimension is the number of coordinates stored in a Point.
const MaxDimension = 3

// Point is a position in up to three dimensions.
type Point [MaxDimension]float64

// Point2 returns the two-dimensional point (x, y).
func Point2(x, y float64) Point {
	return Point{x, y, 0}
}

// Point3 returns the point (x, y, z).
func Point3(x, y, z float64) Point {
	return Point{x, y, z}
}

// Add returns p translated by v.
func (p Point) Add(v Vector) Point {
	return Point{p[0] + v[0], p[1] + v[1], p[2] + v[2]}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{p[0] - q[0], p[1] - q[1], p[2] - q[2]}
}

// Scale returns p with every coordinate multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{p[0] * s, p[1] * s, p[2] * s}
}

// Inexact reports whether p and q differ by less than eps in every coordinate.
func (p Point) Inexact(q Point, eps float64) bool {
	for d := range MaxDimension {
		if math.Abs(p[d]-q[d]) >= eps {
			return false
		}
	}
	return true
}

// Interpolate returns the weighted sum of values. It satisfies the attribute
// package's interpolation contract, so point attributes can be interpolated.
func (Point) Interpolate(values []Point, lambdas []float64) Point {
	var out Point
	for i, v := range values {
		for d := range MaxDimension {
			out[d] += lambdas[i] * v[d]
		}
	}
	return out
}

// NbItems returns the number of coordinates exposed as generic values.
func (Point) NbItems() int {
	return MaxDimension
}

// GenericItem returns coordinate item as float32.
func (p Point) GenericItem(item int) float32 {
	return float32(p[item])
}

func (p Point) String() string {
	return fmt.Sprintf("(%g %g %g)", p[0], p[1], p[2])
}

// Vector is a displacement in up to three dimensions.
type Vector [MaxDimension]float64

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// SquaredLength returns the squared Euclidean length of v.
func (v Vector) SquaredLength() float64 {
	return v.Dot(v)
}

// Length returns the Euclidean length of v.
func (v Vector) Length() float64 {
	return math.Sqrt(v.SquaredLength())
}

// Scale returns v multiplied by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{v[0] * s, v[1] * s, v[2] * s}
}
