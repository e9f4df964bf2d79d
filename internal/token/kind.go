package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an unlexable span; the lexer emits it instead of
	// stopping so the whole input is tokenized in one pass.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents a symbol name.
	Ident

	// IntLit represents an integer literal token.
	IntLit
	// RealLit represents a real (decimal point) literal token.
	RealLit
	// RationalLit represents a rational (numerator/denominator) literal token.
	RationalLit
	// BoolLit represents the 'true' and 'false' literal tokens.
	BoolLit
	// StringLit represents a string literal token.
	StringLit

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// HashLBracket represents the vector-literal opener.
	HashLBracket // #[
	// Quote represents the quote reader macro marker.
	Quote // '
	// Backquote represents the quasiquote reader macro marker.
	Backquote // `
	// Comma represents the unquote reader macro marker.
	Comma // ,
	// CommaAt represents the unquote-splicing reader macro marker.
	CommaAt // ,@
	// Period represents the path separator token.
	Period // .
	// Ellipsis represents the variadic-binding suffix.
	Ellipsis // ...
)

var kindNames = [...]string{
	Invalid:      "invalid token",
	EOF:          "end of input",
	Ident:        "identifier",
	IntLit:       "integer literal",
	RealLit:      "real literal",
	RationalLit:  "rational literal",
	BoolLit:      "boolean literal",
	StringLit:    "string literal",
	LParen:       "'('",
	RParen:       "')'",
	LBracket:     "'['",
	RBracket:     "']'",
	HashLBracket: "'#['",
	Quote:        "'''",
	Backquote:    "'`'",
	Comma:        "','",
	CommaAt:      "',@'",
	Period:       "'.'",
	Ellipsis:     "'...'",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown token"
}
