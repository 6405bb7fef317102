package parse

import (
	"fmt"
	"unicode/utf8"

	"github.com/plum-lang/plum/pkg/diag"
)

// TokenStream lazily tokenizes a source and memoizes the produced tokens. It
// has a cursor that can be moved back, but tokens are never discarded: reading
// the same index twice never invokes the tokenizer twice.
type TokenStream struct {
	tokenizer *Tokenizer
	src       string
	// Offset of the untokenized remainder of src.
	pos    int
	tokens []Token
	index  int
	// Set when the tokenizer can't make progress.
	err error
}

// NewTokenStream creates a TokenStream for the source.
func NewTokenStream(t *Tokenizer, src string) *TokenStream {
	return &TokenStream{tokenizer: t, src: src}
}

// Makes sure that tokens[i] exists if the source has enough tokens.
func (s *TokenStream) fill(i int) bool {
	for len(s.tokens) <= i {
		if s.pos == len(s.src) || s.err != nil {
			return false
		}
		tok, ok := s.tokenizer.Read(s.src[s.pos:])
		if !ok {
			r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
			s.err = fmt.Errorf("unrecognized character %q", r)
			return false
		}
		tok.Ranging = diag.Ranging{From: s.pos, To: s.pos + len(tok.Text)}
		s.pos += len(tok.Text)
		if !tok.Has(Throwaway) {
			s.tokens = append(s.tokens, tok)
		}
	}
	return true
}

// Next returns the token under the cursor and advances the cursor. It returns
// false when there are no more tokens.
func (s *TokenStream) Next() (Token, bool) {
	if !s.fill(s.index) {
		return Token{}, false
	}
	tok := s.tokens[s.index]
	s.index++
	return tok, true
}

// Last returns the token right before the cursor.
func (s *TokenStream) Last() (Token, bool) {
	if s.index == 0 {
		return Token{}, false
	}
	return s.tokens[s.index-1], true
}

// StepBack moves the cursor back by one token. It is a no-op at the start of
// the stream.
func (s *TokenStream) StepBack() {
	if s.index > 0 {
		s.index--
	}
}

// Index returns the position of the cursor.
func (s *TokenStream) Index() int { return s.index }

// Seek moves the cursor to a position previously returned by Index.
func (s *TokenStream) Seek(i int) { s.index = i }

// Offset returns the source offset of the cursor: the start of the token
// under the cursor, or the end of the tokenized text if there is no such
// token.
func (s *TokenStream) Offset() int {
	if s.fill(s.index) {
		return s.tokens[s.index].From
	}
	return s.pos
}

// Remainder returns the source text that has not been consumed by the cursor,
// skipping text consumed by throwaway tokens.
func (s *TokenStream) Remainder() string {
	return s.src[s.Offset():]
}

// Err returns the tokenizer failure, if the tokenizer has hit one.
func (s *TokenStream) Err() error { return s.err }

// Tokens returns the tokens produced so far.
func (s *TokenStream) Tokens() []Token { return s.tokens }
