// Package vals contains basic facilities for manipulating values used in the
// language.
//
// The value types are the builtin nil, bool, int, float64 and string, the
// slice type []any for lists, Tuple, the map type map[string]any, and any Go
// type implementing the interfaces declared in this package.
package vals

import (
	"fmt"
)

// Tuple is a sequence of values produced by a comma-separated expression. A
// tuple passed as the argument of a call is spread into positional
// arguments.
type Tuple []any

// Kinder wraps the Kind method.
type Kinder interface {
	Kind() string
}

// Kind returns the kind of the value. For Go types that neither are a builtin
// value type nor implement Kinder, it returns the Go type name preceded by
// "!!".
func Kind(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return "bool"
	case int:
		return "int"
	case float64:
		return "float"
	case string:
		return "string"
	case []any:
		return "list"
	case Tuple:
		return "tuple"
	case map[string]any:
		return "map"
	case Kinder:
		return v.Kind()
	default:
		return fmt.Sprintf("!!%T", v)
	}
}

// Elems returns the elements of a list or a tuple.
func Elems(v any) ([]any, bool) {
	switch v := v.(type) {
	case []any:
		return v, true
	case Tuple:
		return v, true
	}
	return nil, false
}
