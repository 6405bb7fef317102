package parse

import (
	"fmt"
	"testing"
)

func TestFlags_With(t *testing.T) {
	base := Flags{ValueFlag}
	ext := base.With(IgnoreFlow, ValueFlag, IgnoreFlow)
	if len(base) != 1 {
		t.Errorf("With modified the receiver: %v", base)
	}
	if len(ext) != 2 || !ext.Has(ValueFlag, IgnoreFlow) {
		t.Errorf("got %v, want [value ignore_flow]", ext)
	}
	if ext.Has(IgnoreTuple) {
		t.Errorf("Has(ignore_tuple) should be false")
	}
}

// Builds a grammar whose first rule consumes k words and then fails, either by
// panicking or by returning nil.
func greedyGrammar(k int, panics bool) *Grammar {
	b := &GrammarBuilder{}
	b.Prefix("greedy", func(p *Parser) Node {
		for i := 0; i < k; i++ {
			p.Expect(Word)
		}
		if panics {
			p.Fail()
		}
		return nil
	})
	b.Prefix("variable", parseVariable)
	return b.Build()
}

func TestGrammar_BacktrackingRestoresCursor(t *testing.T) {
	for k := 0; k <= 3; k++ {
		for _, panics := range []bool{true, false} {
			t.Run(fmt.Sprintf("k=%d,panics=%v", k, panics), func(t *testing.T) {
				ts := NewTokenStream(DefaultTokenizer, "a b c d")
				n := greedyGrammar(k, panics).Read(ts, Flags{ValueFlag})
				if v, ok := n.(*Variable); !ok || v.Name != "a" {
					t.Fatalf("got %s, want a", PPrint(n))
				}
				if ts.Index() != 1 {
					t.Errorf("cursor at %d after parsing one word, want 1", ts.Index())
				}
			})
		}
	}
}

func TestGrammar_ReadFailureLeavesCursor(t *testing.T) {
	ts := NewTokenStream(DefaultTokenizer, "a b")
	g := greedyGrammar(2, true)
	ts.Seek(0)
	b := &GrammarBuilder{}
	only := b.Prefix("greedy", g.prefix[0].Parse).Build()
	if n := only.Read(ts, Flags{ValueFlag}); n != nil {
		t.Errorf("got %s, want nil", PPrint(n))
	}
	if ts.Index() != 0 {
		t.Errorf("cursor at %d after failed read, want 0", ts.Index())
	}
}

func TestGrammar_OtherPanicsPropagate(t *testing.T) {
	b := &GrammarBuilder{}
	g := b.Prefix("boom", func(*Parser) Node { panic("boom") }).Build()
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("recovered %v, want boom", r)
		}
	}()
	g.Read(NewTokenStream(DefaultTokenizer, "a"), nil)
}

func TestGrammar_FlagsAreNotInherited(t *testing.T) {
	var seen Flags
	b := &GrammarBuilder{}
	b.Prefix("outer", func(p *Parser) Node {
		p.Require(AllowFunction)
		return p.Read(ValueFlag)
	})
	b.Prefix("inner", func(p *Parser) Node {
		seen = p.Flags()
		return parseVariable(p)
	})
	g := b.Build()
	g.Read(NewTokenStream(DefaultTokenizer, "a"), Flags{ValueFlag, AllowFunction})
	if seen.Has(AllowFunction) {
		t.Errorf("sub-read saw flags %v", seen)
	}
}

func TestGrammar_BuilderIsCopied(t *testing.T) {
	b := &GrammarBuilder{}
	b.Prefix("variable", parseVariable)
	g := b.Build()
	b.Prefix("int", parseInt)
	if n := g.Read(NewTokenStream(DefaultTokenizer, "1"), Flags{ValueFlag}); n != nil {
		t.Errorf("rule registered after Build is visible: %s", PPrint(n))
	}
}
