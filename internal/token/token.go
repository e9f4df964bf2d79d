package token

import (
	"lust/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, RealLit, RationalLit, BoolLit, StringLit:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is structural punctuation.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case LParen, RParen, LBracket, RBracket, HashLBracket,
		Quote, Backquote, Comma, CommaAt, Period, Ellipsis:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
