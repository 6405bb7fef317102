package vals

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/plum-lang/plum/pkg/eval/errs"
	"github.com/plum-lang/plum/pkg/stream"
)

type point struct{ x, y int }

func (p point) Property(name string) (any, bool) {
	switch name {
	case "x":
		return p.x, true
	case "y":
		return p.y, true
	}
	return nil, false
}

func TestKind(t *testing.T) {
	tests := []struct {
		v    any
		want string
	}{
		{nil, "nil"}, {true, "bool"}, {1, "int"}, {1.5, "float"}, {"s", "string"},
		{[]any{}, "list"}, {Tuple{}, "tuple"}, {map[string]any{}, "map"},
		{stream.FromSlice(nil), "stream"}, {point{}, "!!vals.point"},
	}
	for _, test := range tests {
		if got := Kind(test.v); got != test.want {
			t.Errorf("Kind(%#v) = %q, want %q", test.v, got, test.want)
		}
	}
}

func TestRepr(t *testing.T) {
	tests := []struct {
		v    any
		want string
	}{
		{nil, "nil"},
		{false, "false"},
		{12, "12"},
		{2.0, "2.0"},
		{0.5, "0.5"},
		{1e20, "1e+20"},
		{"a\"b", `"a\"b"`},
		{[]any{1, "x", []any{}}, `[1, "x", []]`},
		{Tuple{1}, "(1,)"},
		{Tuple{1, 2}, "(1, 2)"},
		{map[string]any{"b": 1, "a": "x"}, `{a: "x", b: 1}`},
		{point{}, "<!!vals.point>"},
	}
	for _, test := range tests {
		if got := Repr(test.v); got != test.want {
			t.Errorf("Repr(%#v) = %q, want %q", test.v, got, test.want)
		}
	}
	if got := ToString("plain"); got != "plain" {
		t.Errorf("ToString(string) = %q", got)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		x, y any
		want bool
	}{
		{1, 1, true},
		{1, 1.0, true},
		{1, 2, false},
		{1, "1", false},
		{nil, nil, true},
		{nil, false, false},
		{[]any{1, []any{2}}, []any{1.0, []any{2}}, true},
		{[]any{1}, Tuple{1}, false},
		{Tuple{1, 2}, Tuple{1, 2}, true},
		{map[string]any{"a": 1}, map[string]any{"a": 1}, true},
		{map[string]any{"a": 1}, map[string]any{"b": 1}, false},
		{point{1, 2}, point{1, 2}, true},
	}
	for _, test := range tests {
		if got := Equal(test.x, test.y); got != test.want {
			t.Errorf("Equal(%#v, %#v) = %v, want %v", test.x, test.y, got, test.want)
		}
	}
}

func TestArith(t *testing.T) {
	tests := []struct {
		name    string
		f       func(x, y any) (any, error)
		x, y    any
		want    any
		wantErr error
	}{
		{"int add", Add, 1, 2, 3, nil},
		{"mixed add", Add, 1, 0.5, 1.5, nil},
		{"string add", Add, "a", "b", "ab", nil},
		{"list add", Add, []any{1}, []any{2}, []any{1, 2}, nil},
		{"tuple add", Add, Tuple{1}, Tuple{2}, Tuple{1, 2}, nil},
		{"int sub", Sub, 1, 3, -2, nil},
		{"int mul", Mul, 4, 3, 12, nil},
		{"int div", Div, 3, 2, 1.5, nil},
		{"div by zero", Div, 1, 0, nil, errs.BadValue{What: "divisor", Valid: "non-zero", Actual: "0"}},
		{"bad operand", Add, "a", 1, nil, errs.BadOperand{Op: "+", Left: "string", Right: "int"}},
		{"bad list operand", Sub, []any{}, []any{}, nil, errs.BadOperand{Op: "-", Left: "list", Right: "list"}},
	}
	for _, test := range tests {
		got, err := test.f(test.x, test.y)
		if err != test.wantErr {
			t.Errorf("%s: got error %v, want %v", test.name, err, test.wantErr)
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%s: (-want +got):\n%s", test.name, diff)
		}
	}
}

func TestAdd_DoesNotAlias(t *testing.T) {
	base := make([]any, 1, 10)
	a, _ := Add(base, []any{"a"})
	b, _ := Add(base, []any{"b"})
	if a.([]any)[1] != "a" || b.([]any)[1] != "b" {
		t.Errorf("concatenations share storage: %v %v", a, b)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		op   string
		x, y any
		want bool
	}{
		{">", 3, 2, true},
		{"<", 3, 2.5, false},
		{">=", 2, 2.0, true},
		{"<=", "a", "b", true},
		{">", "b", "a", true},
	}
	for _, test := range tests {
		got, err := Compare(test.op, test.x, test.y)
		if err != nil || got != test.want {
			t.Errorf("Compare(%q, %v, %v) = %v, %v, want %v", test.op, test.x, test.y, got, err, test.want)
		}
	}
	if _, err := Compare(">", "a", 1); err == nil {
		t.Errorf("comparing string with int should fail")
	}
}

func TestBool(t *testing.T) {
	for _, v := range []any{nil, false, 0, 0.0, "", []any{}, Tuple{}, map[string]any{}} {
		if Bool(v) {
			t.Errorf("Bool(%#v) = true", v)
		}
	}
	for _, v := range []any{true, 1, -0.5, "x", []any{nil}, point{}} {
		if !Bool(v) {
			t.Errorf("Bool(%#v) = false", v)
		}
	}
}

func TestProperties(t *testing.T) {
	m := map[string]any{"a": 1}
	if err := SetProperty(m, "b", 2); err != nil {
		t.Fatal(err)
	}
	if got := GetProperty(m, "b"); got != 2 {
		t.Errorf("GetProperty(m, b) = %v", got)
	}
	if got := GetProperty(point{3, 4}, "y"); got != 4 {
		t.Errorf("GetProperty(point, y) = %v", got)
	}
	if got := GetProperty(1, "x"); got != nil {
		t.Errorf("GetProperty(1, x) = %v, want nil", got)
	}
	var notAssignable errs.NotAssignable
	if err := SetProperty(point{}, "x", 1); !errors.As(err, &notAssignable) {
		t.Errorf("SetProperty(point) -> %v, want NotAssignable", err)
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		v, k any
		want any
	}{
		{[]any{"a", "b"}, 1, "b"},
		{[]any{"a", "b"}, -1, "b"},
		{[]any{"a", "b"}, 2, nil},
		{Tuple{"a"}, 0.0, "a"},
		{"héllo", 1, "é"},
		{map[string]any{"k": 1}, "k", 1},
		{point{1, 2}, "x", 1},
	}
	for _, test := range tests {
		got, err := Index(test.v, test.k)
		if err != nil || !Equal(got, test.want) {
			t.Errorf("Index(%v, %v) = %v, %v, want %v", test.v, test.k, got, err, test.want)
		}
	}
	if _, err := Index(1, 0); err == nil {
		t.Errorf("Index(1, 0) should fail")
	}
	if _, err := Index([]any{}, "x"); err == nil {
		t.Errorf("Index(list, string) should fail")
	}
}

func TestIterate(t *testing.T) {
	tests := []struct {
		v    any
		want []any
	}{
		{[]any{1, 2}, []any{1, 2}},
		{Tuple{1}, []any{1}},
		{"ab", []any{"a", "b"}},
		{map[string]any{"b": 1, "a": 2}, []any{"a", "b"}},
		{stream.FromSlice([]any{3, 4}), []any{3, 4}},
	}
	for _, test := range tests {
		var got []any
		err := Iterate(test.v, func(v any) error {
			got = append(got, v)
			return nil
		})
		if err != nil {
			t.Errorf("Iterate(%v) -> %v", test.v, err)
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Iterate(%v) (-want +got):\n%s", test.v, diff)
		}
	}

	stop := errors.New("stop")
	n := 0
	err := Iterate([]any{1, 2, 3}, func(any) error { n++; return stop })
	if err != stop || n != 1 {
		t.Errorf("Iterate did not stop at first error: %v after %d calls", err, n)
	}
	if err := Iterate(1, func(any) error { return nil }); err == nil {
		t.Errorf("Iterate(1) should fail")
	}
}
