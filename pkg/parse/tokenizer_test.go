package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenizer_LongestMatchWins(t *testing.T) {
	tk := NewTokenizer(Literal("ab", "ab"), Regex(Word, `[a-z]+`))
	tok, ok := tk.Read("abc d")
	if !ok || tok.Kind != Word || tok.Text != "abc" {
		t.Errorf("got %v, %v, want word \"abc\"", tok, ok)
	}
}

func TestTokenizer_TieGoesToFirstRule(t *testing.T) {
	tk := NewTokenizer(Literal("ab", "ab"), Regex(Word, `[a-z]+`))
	tok, ok := tk.Read("ab d")
	if !ok || tok.Kind != "ab" {
		t.Errorf("got %v, %v, want ab \"ab\"", tok, ok)
	}
}

func TestTokenizer_NoMatch(t *testing.T) {
	tk := NewTokenizer(Regex(Word, `[a-z]+`))
	if tok, ok := tk.Read("$"); ok {
		t.Errorf("got %v, want no token", tok)
	}
}

var lexTests = []struct {
	src  string
	want []string
}{
	{"x = 1.5 + 2", []string{`word "x"`, `assign "="`, `float "1.5"`, `binary_operator "+"`, `int "2"`}},
	{"if iffy in inside", []string{`if "if"`, `word "iffy"`, `in "in"`, `word "inside"`}},
	{"a != b ! c", []string{`word "a"`, `binary_operator "!="`, `word "b"`, `pop "!"`, `word "c"`}},
	{"a >> b >= c > d", []string{`word "a"`, `write ">>"`, `word "b"`, `binary_operator ">="`, `word "c"`, `binary_operator ">"`, `word "d"`}},
	{"a -> b - c => d == e = f", []string{
		`word "a"`, `map "->"`, `word "b"`, `binary_operator "-"`, `word "c"`,
		`arrow "=>"`, `word "d"`, `binary_operator "=="`, `word "e"`, `assign "="`, `word "f"`}},
	{"xs :: f ~> g", []string{`word "xs"`, `pipe "::"`, `word "f"`, `read "~>"`, `word "g"`}},
	{`"a b" 'c'`, []string{`string "\"a b\""`, `string "'c'"`}},
	{"a # comment\n\n  # more\nb", []string{`word "a"`, `whitebreak "\n\n  # more\n"`, `word "b"`}},
	{"true falsey", []string{`boolean "true"`, `word "falsey"`}},
}

func TestDefaultTokenizer(t *testing.T) {
	for _, test := range lexTests {
		ts := NewTokenStream(DefaultTokenizer, test.src)
		var got []string
		for tok, ok := ts.Next(); ok; tok, ok = ts.Next() {
			got = append(got, tok.String())
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("tokens of %q (-want +got):\n%s", test.src, diff)
		}
		if err := ts.Err(); err != nil {
			t.Errorf("tokenizing %q: %v", test.src, err)
		}
	}
}

func TestTokenStream_Memoizes(t *testing.T) {
	calls := 0
	word := Regex(Word, `[a-z]+`)
	counting := Rule{Word, func(src string) int { calls++; return word.Match(src) }, 0}
	ts := NewTokenStream(NewTokenizer(counting, Regex(Space, ` +`, Throwaway)), "ab cd")

	ts.Next()
	ts.StepBack()
	ts.Next()
	ts.Seek(0)
	ts.Next()
	if calls != 1 {
		t.Errorf("tokenizer called %d times for one token, want 1", calls)
	}
	tok, _ := ts.Next()
	if tok.Text != "cd" || tok.From != 3 || tok.To != 5 {
		t.Errorf("second token = %v at %d-%d", tok, tok.From, tok.To)
	}
	if len(ts.Tokens()) != 2 {
		t.Errorf("throwaway token kept: %v", ts.Tokens())
	}
}

func TestTokenStream_RewindKeepsTokens(t *testing.T) {
	ts := NewTokenStream(DefaultTokenizer, "a b c")
	ts.Next()
	ts.Next()
	ts.Next()
	ts.Seek(0)
	if len(ts.Tokens()) != 3 {
		t.Errorf("got %d tokens after rewind, want 3", len(ts.Tokens()))
	}
	if _, ok := ts.Last(); ok {
		t.Errorf("Last at start of stream should fail")
	}
	if r := ts.Remainder(); r != "a b c" {
		t.Errorf("Remainder() = %q", r)
	}
}

func TestTokenStream_UnrecognizedCharacter(t *testing.T) {
	ts := NewTokenStream(DefaultTokenizer, "a $")
	ts.Next()
	if _, ok := ts.Next(); ok {
		t.Errorf("Next should fail at $")
	}
	if ts.Err() == nil {
		t.Errorf("Err() should be set")
	}
	if r := ts.Remainder(); r != "$" {
		t.Errorf("Remainder() = %q, want \"$\"", r)
	}
}
