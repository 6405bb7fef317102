package vals

import (
	"reflect"
)

// Equaler wraps the Equal method.
type Equaler interface {
	// Equal compares the receiver to another value.
	Equal(other any) bool
}

// Equal returns whether two values are equal. Numbers are compared by value
// across int and float64; lists, tuples and maps are compared element by
// element. Values implementing Equaler are compared with Equal. Other values
// are compared with reflect.DeepEqual.
func Equal(x, y any) bool {
	switch x := x.(type) {
	case nil:
		return y == nil
	case bool:
		return x == y
	case int, float64:
		eq, ok := equalNum(x, y)
		return ok && eq
	case string:
		return x == y
	case []any:
		if y, ok := y.([]any); ok {
			return equalSlice(x, y)
		}
		return false
	case Tuple:
		if y, ok := y.(Tuple); ok {
			return equalSlice(x, y)
		}
		return false
	case map[string]any:
		if y, ok := y.(map[string]any); ok {
			return equalMap(x, y)
		}
		return false
	case Equaler:
		return x.Equal(y)
	default:
		return reflect.DeepEqual(x, y)
	}
}

func equalSlice(x, y []any) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !Equal(x[i], y[i]) {
			return false
		}
	}
	return true
}

func equalMap(x, y map[string]any) bool {
	if len(x) != len(y) {
		return false
	}
	for k, vx := range x {
		vy, ok := y[k]
		if !ok || !Equal(vx, vy) {
			return false
		}
	}
	return true
}
