package vals

import (
	"errors"
	"strconv"
	"unicode/utf8"

	"github.com/plum-lang/plum/pkg/eval/errs"
	"github.com/plum-lang/plum/pkg/stream"
)

// PropertyGetter is implemented by values with named properties.
type PropertyGetter interface {
	// Property returns the named property and whether it exists.
	Property(name string) (any, bool)
}

// PropertySetter is implemented by values with assignable properties.
type PropertySetter interface {
	SetProperty(name string, v any) error
}

// GetProperty returns a property of a value. Maps have their entries as
// properties; other values have properties if they implement PropertyGetter.
// A missing property is nil.
func GetProperty(v any, name string) any {
	switch v := v.(type) {
	case map[string]any:
		return v[name]
	case PropertyGetter:
		p, _ := v.Property(name)
		return p
	}
	return nil
}

// SetProperty assigns a property of a value. It works on maps and values
// implementing PropertySetter.
func SetProperty(v any, name string, value any) error {
	switch v := v.(type) {
	case map[string]any:
		v[name] = value
		return nil
	case PropertySetter:
		return v.SetProperty(name, value)
	}
	return errs.NotAssignable{What: "property " + name + " of " + Kind(v)}
}

// Index indexes a value. Lists, tuples and strings are indexed by ints;
// negative indices count from the end. Maps and values implementing
// PropertyGetter are indexed by strings. An index that is out of range or a
// missing key yields nil.
func Index(v, k any) (any, error) {
	switch v := v.(type) {
	case []any:
		return indexSlice(v, k)
	case Tuple:
		return indexSlice(v, k)
	case string:
		i, err := intIndex(k)
		if err != nil {
			return nil, err
		}
		n := utf8.RuneCountInString(v)
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return nil, nil
		}
		for _, r := range v {
			if i == 0 {
				return string(r), nil
			}
			i--
		}
		return nil, nil
	case map[string]any, PropertyGetter:
		name, ok := k.(string)
		if !ok {
			return nil, errs.BadValue{What: "key", Valid: "string", Actual: Kind(k)}
		}
		return GetProperty(v, name), nil
	}
	return nil, errs.BadValue{What: "indexee", Valid: "list, tuple, string or map", Actual: Kind(v)}
}

func indexSlice(vs []any, k any) (any, error) {
	i, err := intIndex(k)
	if err != nil {
		return nil, err
	}
	if i < 0 {
		i += len(vs)
	}
	if i < 0 || i >= len(vs) {
		return nil, nil
	}
	return vs[i], nil
}

func intIndex(k any) (int, error) {
	switch k := k.(type) {
	case int:
		return k, nil
	case float64:
		if k == float64(int(k)) {
			return int(k), nil
		}
		return 0, errs.BadValue{What: "index", Valid: "integer", Actual: strconv.FormatFloat(k, 'g', -1, 64)}
	}
	return 0, errs.BadValue{What: "index", Valid: "integer", Actual: Kind(k)}
}

// Iterate calls f with each element of a value: the elements of a list or a
// tuple, the characters of a string, the sorted keys of a map, or the values
// of a stream. Iteration stops at the first error returned by f, which is
// returned.
func Iterate(v any, f func(any) error) error {
	switch v := v.(type) {
	case []any:
		return iterateSlice(v, f)
	case Tuple:
		return iterateSlice(v, f)
	case string:
		for _, r := range v {
			if err := f(string(r)); err != nil {
				return err
			}
		}
		return nil
	case map[string]any:
		for _, k := range sortedKeys(v) {
			if err := f(k); err != nil {
				return err
			}
		}
		return nil
	case stream.Source:
		for {
			x, err := v.Next()
			if errors.Is(err, stream.ErrEnd) {
				return nil
			} else if err != nil {
				return err
			}
			if err := f(x); err != nil {
				return err
			}
		}
	}
	return errs.BadValue{What: "iterable", Valid: "list, tuple, string, map or stream", Actual: Kind(v)}
}

func iterateSlice(vs []any, f func(any) error) error {
	for _, v := range vs {
		if err := f(v); err != nil {
			return err
		}
	}
	return nil
}
