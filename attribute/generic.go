package attribute

import "reflect"

// GenericItemer is implemented by value types that expose their components as
// float32 items, such as geom.Point.
type GenericItemer interface {
	NbItems() int
	GenericItem(item int) float32
}

func isGenericable[T any]() bool {
	return nbItems[T]() > 0
}

// nbItems returns 1 for numeric and boolean types, the array length for arrays
// of those, the item count of GenericItemer types and 0 otherwise.
func nbItems[T any]() int {
	var zero T
	if g, ok := any(zero).(GenericItemer); ok {
		return g.NbItems()
	}
	t := reflect.TypeFor[T]()
	if isScalar(t.Kind()) {
		return 1
	}
	if t.Kind() == reflect.Array && isScalar(t.Elem().Kind()) {
		return t.Len()
	}
	return 0
}

func genericItem[T any](v T, item int) float32 {
	if g, ok := any(v).(GenericItemer); ok {
		return g.GenericItem(item)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Array {
		if item >= rv.Len() {
			return 0
		}
		rv = rv.Index(item)
	}
	f, _ := scalarToFloat(rv)
	return float32(f)
}

func isScalar(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func isNumeric(k reflect.Kind) bool {
	return k != reflect.Bool && isScalar(k)
}

func scalarToFloat(rv reflect.Value) (float64, bool) {
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return 1, true
		}
		return 0, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// setFromFloat stores f into the numeric value rv. Integers truncate toward zero.
func setFromFloat(rv reflect.Value, f float64) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rv.SetInt(int64(f))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if f < 0 {
			f = 0
		}
		rv.SetUint(uint64(f))
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(f)
	}
}
