package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
)

func init() {
	color.NoColor = true
}

var parseTests = []struct {
	name string
	code string
	want []string
}{
	{"variable", "x", []string{"x"}},
	{"property", ".x", []string{".x"}},
	{"literals", `1 1.5 "s" 'q' true`, []string{"1", "1.5", `"s"`, `"q"`, "true"}},
	{"property access is left associative", "a.b.c", []string{"(property_access (property_access a b) c)"}},
	{"assign", "x = 1", []string{"(assign x 1)"}},
	{"assign property", ".x = a.b", []string{"(assign .x (property_access a b))"}},
	{"assign chain", "a.b = 1, 2", []string{"(assign (property_access a b) (tuple 1 2))"}},
	{"call", "f(1, 2)", []string{"(call f (tuple 1 2))"}},
	{"call without arguments", "f()", []string{"(call f (tuple))"}},
	{"call chain", "f(1)(2).x", []string{"(property_access (call (call f 1) 2) x)"}},
	{"binary chain", "1 + 2 * 3 - 4", []string{"(binary 1 + 2 * 3 - 4)"}},
	{"binary in parens", "(1 + 2) * 3", []string{"(binary (group (binary 1 + 2)) * 3)"}},
	{"null coalescing", "a ?? b", []string{"(binary a ?? b)"}},
	{"tuple", "1, 2, 3", []string{"(tuple 1 2 3)"}},
	{"trailing comma", "1, 2,", []string{"(tuple 1 2)"}},
	{"nested tuple", "((1, 2), 3)", []string{"(group (tuple (group (tuple 1 2)) 3))"}},
	{"empty tuple", "()", []string{"(group (tuple))"}},
	{"function without parameters", "() => 1", []string{"(function () 1)"}},
	{"list", "[1, 2]", []string{"(list 1 2)"}},
	{"single element list", "[1]", []string{"(list 1)"}},
	{"empty list", "[]", []string{"(list)"}},
	{"index", "xs @ 0 + 1", []string{"(binary (index xs 0) + 1)"}},
	{"block", "{ a\n b }", []string{"(block a b)"}},
	{"function", "x => x + 1", []string{"(function (x) (binary x + 1))"}},
	{"function with parameters", "(a, b) => a * b", []string{"(function (a b) (binary a * b))"}},
	{"function with patterns", "[[a, b], c] => a", []string{"(function ([[a b] c]) a)"}},
	{"function argument", "reduce(0, (x, t) => x + t)", []string{
		"(call reduce (tuple 0 (function (x t) (binary x + t))))"}},
	{"pipe", "xs :: f", []string{"(pipe xs f)"}},
	{"flows are left associative", "xs :: f -> g ~> h", []string{"(read (map (pipe xs f) g) h)"}},
	{"write", "xs >> ys", []string{"(write xs ys)"}},
	{"pop", "xs :: sum !", []string{"(pop (pipe xs sum))"}},
	{"flow stops binary operand", "a + xs -> f", []string{"(map (binary a + xs) f)"}},
	{"window example", "[1, 2, 3] :: window(2) -> [x, y] => print(x, y)", []string{
		"(map (pipe (list 1 2 3) (call window 2)) (function ([x y]) (call print (tuple x y))))"}},
	{"if", "if a { 1 } elif b { 2 } else { 3 }", []string{
		"(if a (block 1) (elif b (block 2)) (else (block 3)))"}},
	{"if without else", "if a > 1 { 1 }", []string{"(if (binary a > 1) (block 1))"}},
	{"for", "for x in xs { break }", []string{"(for x xs (block break))"}},
	{"statements on lines", "x = 1\ny = x + 2\n", []string{"(assign x 1)", "(assign y (binary x + 2))"}},
	{"leading line breaks and comments", "# c\n\nx # d\n", []string{"x"}},
	{"line breaks inside call", "f(\n1,\n2\n)", []string{"(call f (tuple 1 2))"}},
	{"line break continues chain", "x\n.y", []string{"(property_access x y)"}},
	{"else on next line", "if a {\n1\n}\nelse {\n2\n}", []string{"(if a (block 1) (else (block 2)))"}},
}

func TestParse(t *testing.T) {
	for _, test := range parseTests {
		t.Run(test.name, func(t *testing.T) {
			tree, err := Parse(Source{"[test]", test.code})
			if err != nil {
				t.Fatalf("Parse(%q) -> error %v", test.code, err)
			}
			var got []string
			for _, n := range tree.Nodes {
				got = append(got, PPrint(n))
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Parse(%q) (-want +got):\n%s", test.code, diff)
			}
		})
	}
}

func TestParse_Deterministic(t *testing.T) {
	for _, test := range parseTests {
		tree, _ := Parse(Source{"[test]", test.code})
		for _, n := range tree.Nodes {
			r := n.Range()
			span := test.code[r.From:r.To]
			again, err := Parse(Source{"[span]", span})
			if err != nil || len(again.Nodes) != 1 {
				t.Errorf("reparsing %q from %q: %v, %d nodes", span, test.code, err, len(again.Nodes))
				continue
			}
			if want, got := PPrint(n), PPrint(again.Nodes[0]); want != got {
				t.Errorf("reparsing %q: got %s, want %s", span, got, want)
			}
		}
	}
}

var syntaxErrorTests = []struct {
	code      string
	wantNodes int
	wantMsg   string
	wantFrom  int
}{
	{"1 + )", 1, "failed to parse: + )", 2},
	{"x = 1\n)\ny", 1, "failed to parse: )\ny", 6},
	{"f(1", 1, "failed to parse: (1", 1},
	{")", 0, "failed to parse: )", 0},
	{"a $ b", 1, "unrecognized character '$'", 2},
}

func TestParse_LiteralRanges(t *testing.T) {
	code := `1 1.5 "s" 'q' true false`
	tree, err := Parse(Source{"[test]", code})
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, n := range tree.Nodes {
		r := n.Range()
		if r.From > r.To {
			t.Fatalf("node %s has range [%d,%d)", PPrint(n), r.From, r.To)
		}
		got = append(got, code[r.From:r.To])
	}
	want := []string{"1", "1.5", `"s"`, "'q'", "true", "false"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("node texts (-want +got):\n%s", diff)
	}
}

func TestParse_SyntaxError(t *testing.T) {
	for _, test := range syntaxErrorTests {
		tree, err := Parse(Source{"[test]", test.code})
		if len(tree.Nodes) != test.wantNodes {
			t.Errorf("Parse(%q) -> %d nodes, want %d", test.code, len(tree.Nodes), test.wantNodes)
		}
		var parseErr *Error
		if !errors.As(err, &parseErr) {
			t.Errorf("Parse(%q) -> error %v, want *Error", test.code, err)
			continue
		}
		if parseErr.Message != test.wantMsg {
			t.Errorf("Parse(%q) -> message %q, want %q", test.code, parseErr.Message, test.wantMsg)
		}
		if parseErr.Range().From != test.wantFrom {
			t.Errorf("Parse(%q) -> error at %d, want %d", test.code, parseErr.Range().From, test.wantFrom)
		}
		if !strings.HasPrefix(err.Error(), "syntax error: [test]:") {
			t.Errorf("Error() = %q", err.Error())
		}
	}
}

func TestPPrintTree(t *testing.T) {
	tree, _ := Parse(Source{"[test]", "a\nb = 1"})
	var sb strings.Builder
	PPrintTree(&sb, tree)
	if got, want := sb.String(), "a\n(assign b 1)\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
