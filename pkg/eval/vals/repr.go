package vals

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Reprer wraps the Repr method.
type Reprer interface {
	// Repr returns a string that represents the value, preferably an
	// expression that evaluates to it.
	Repr() string
}

// Stringer wraps the String method.
type Stringer interface {
	String() string
}

// Repr returns the representation of a value. Strings are quoted; lists,
// tuples and maps show the representations of their elements.
func Repr(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return formatFloat64(v)
	case string:
		return strconv.Quote(v)
	case []any:
		return "[" + reprElems(v) + "]"
	case Tuple:
		if len(v) == 1 {
			return "(" + Repr(v[0]) + ",)"
		}
		return "(" + reprElems(v) + ")"
	case map[string]any:
		keys := sortedKeys(v)
		var sb strings.Builder
		sb.WriteString("{")
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k + ": " + Repr(v[k]))
		}
		sb.WriteString("}")
		return sb.String()
	case Reprer:
		return v.Repr()
	case Stringer:
		return v.String()
	default:
		return "<" + Kind(v) + ">"
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func reprElems(vs []any) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = Repr(v)
	}
	return strings.Join(parts, ", ")
}

// ToString converts a value to a string. Strings are returned as is, and
// values implementing Stringer are converted with String. Other values are
// converted with Repr.
func ToString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case Stringer:
		return v.String()
	default:
		return Repr(v)
	}
}

func formatFloat64(f float64) string {
	// Go's 'g' format switches to scientific notation too eagerly for numbers
	// like 1234567, so scientific notation is only used for very large or
	// very small numbers.
	s := strconv.FormatFloat(f, 'f', -1, 64)
	noPoint := !strings.ContainsRune(s, '.')
	if (noPoint && len(s) > 14 && s[len(s)-1] == '0') ||
		strings.HasPrefix(s, "0.0000") {
		return strconv.FormatFloat(f, 'e', -1, 64)
	} else if noPoint && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return s + ".0"
	}
	return s
}
