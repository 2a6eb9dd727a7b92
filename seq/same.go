package seq

import "math"

// Same reports value identity. It matches == except for two float edge
// cases: NaN is Same as NaN, and positive and negative zero are NOT Same.
// Both rules deliberately invert the IEEE comparison, so membership and
// run-grouping treat every value as identical to itself and keep the two
// zeros apart.
//
// Defined float types (type Celsius float64) fall through to ==.
func Same[T comparable](a, b T) bool {
	switch x := any(a).(type) {
	case float64:
		return sameFloat(x, any(b).(float64))
	case float32:
		return sameFloat(float64(x), float64(any(b).(float32)))
	}
	return a == b
}

func sameFloat(a, b float64) bool {
	if math.IsNaN(a) {
		return math.IsNaN(b)
	}
	if a == 0 && b == 0 {
		return math.Signbit(a) == math.Signbit(b)
	}
	return a == b
}
