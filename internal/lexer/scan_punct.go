package lexer

import (
	"lust/internal/diag"
	"lust/internal/token"
)

// Greedy matching: 3-byte sequences first, then 2-byte, then singles.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	switch {
	case lx.try3('.', '.', '.'):
		return emit(token.Ellipsis)
	case lx.try2(',', '@'):
		return emit(token.CommaAt)
	case lx.try2('#', '['):
		return emit(token.HashLBracket)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case '\'':
		return emit(token.Quote)
	case '`':
		return emit(token.Backquote)
	case ',':
		return emit(token.Comma)
	case '.':
		return emit(token.Period)
	default:
		// Unknown byte: '@' outside ',@', lone '#', control bytes, etc.
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unknown character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
}
