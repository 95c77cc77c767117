package attribute

import (
	"reflect"

	"github.com/hupe1980/meshkit/core"
)

// Interpolation is a linear combination of element values: the sum of
// Lambdas[k] * value(Indices[k]).
type Interpolation struct {
	Indices []core.Index
	Lambdas []float64
}

// NewInterpolation validates and returns an interpolation.
func NewInterpolation(indices []core.Index, lambdas []float64) (Interpolation, error) {
	if len(indices) == 0 {
		return Interpolation{}, core.InvalidArgumentf("interpolation needs at least one index")
	}
	if len(indices) != len(lambdas) {
		return Interpolation{}, core.InvalidArgumentf("interpolation has %d indices and %d lambdas", len(indices), len(lambdas))
	}
	return Interpolation{Indices: indices, Lambdas: lambdas}, nil
}

// Interpolator is implemented by value types with their own interpolation rule.
// The method is called on the first interpolated value.
type Interpolator[T any] interface {
	Interpolate(values []T, lambdas []float64) T
}

// Interpolate evaluates interp over attr.
//
// If every referenced value is equal, that value is returned unchanged.
// Otherwise Interpolator types use their own rule, numeric types and arrays of
// numbers use the weighted sum, and any other type yields the default value.
func Interpolate[T comparable](interp Interpolation, attr ReadOnly[T]) T {
	if len(interp.Indices) == 0 {
		return attr.DefaultValue()
	}
	values := make([]T, len(interp.Indices))
	allEqual := true
	for k, i := range interp.Indices {
		values[k] = attr.Value(i)
		if values[k] != values[0] {
			allEqual = false
		}
	}
	if allEqual {
		return values[0]
	}
	if ip, ok := any(values[0]).(Interpolator[T]); ok {
		return ip.Interpolate(values, interp.Lambdas)
	}
	if out, ok := weightedSum(values, interp.Lambdas); ok {
		return out
	}
	return attr.DefaultValue()
}

func weightedSum[T any](values []T, lambdas []float64) (T, bool) {
	var out T
	t := reflect.TypeFor[T]()
	dst := reflect.ValueOf(&out).Elem()

	switch {
	case isNumeric(t.Kind()):
		var sum float64
		for k, v := range values {
			f, _ := scalarToFloat(reflect.ValueOf(v))
			sum += lambdas[k] * f
		}
		setFromFloat(dst, sum)
		return out, true

	case t.Kind() == reflect.Array && isNumeric(t.Elem().Kind()):
		for d := range t.Len() {
			var sum float64
			for k, v := range values {
				f, _ := scalarToFloat(reflect.ValueOf(v).Index(d))
				sum += lambdas[k] * f
			}
			setFromFloat(dst.Index(d), sum)
		}
		return out, true

	default:
		return out, false
	}
}
