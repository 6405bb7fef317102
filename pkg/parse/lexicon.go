package parse

// BinaryOperators lists the binary operators of the language.
var BinaryOperators = []string{"+", "-", "*", "/", "??", ">", "<", ">=", "<=", "==", "!="}

// DefaultTokenizer is the tokenizer of the language. Keywords are registered
// before words so that they win ties.
var DefaultTokenizer = NewTokenizer(
	Regex(Space, `[ \t\r]+`, Throwaway),
	Regex(Comment, `#[^\n]*`, Throwaway),
	// A run of line breaks, including blank and comment lines, is a single
	// token.
	Regex(Whitebreak, `\r?\n(?:[ \t\r\n]|#[^\n]*)*`),

	Literal(IfKey, "if"),
	Literal(ElifKey, "elif"),
	Literal(ElseKey, "else"),
	Literal(ForKey, "for"),
	Literal(InKey, "in"),
	Literal(BreakKey, "break"),
	Literals(Boolean, []string{"true", "false"}),

	Regex(Word, `[A-Za-z_][A-Za-z0-9_]*`),
	Regex(Float, `[0-9]+\.[0-9]+`),
	Regex(Int, `[0-9]+`),
	Regex(String, `"[^"]*"|'[^']*'`),

	Literal(BracketOpen, "("),
	Literal(BracketClose, ")"),
	Literal(SquareOpen, "["),
	Literal(SquareClose, "]"),
	Literal(CurlyOpen, "{"),
	Literal(CurlyClose, "}"),
	Literal(Comma, ","),
	Literal(Period, "."),
	Literal(AssignOp, "="),
	Literal(IndexOp, "@"),

	Literal(PipeOp, "::"),
	Literal(MapOp, "->"),
	Literal(WriteOp, ">>"),
	Literal(ReadOp, "~>"),
	Literal(PopOp, "!"),
	Literal(Arrow, "=>"),

	Literals(BinaryOperator, BinaryOperators),
)
