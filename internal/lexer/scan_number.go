package lexer

import (
	"lust/internal/diag"
	"lust/internal/token"
)

// scanNumber scans one numeric lexeme. The sub-kind is decided lexically:
// a decimal point makes a RealLit, a '/' separator makes a RationalLit,
// anything else is an IntLit. Exact value parsing is deferred to the
// reader's literal conversion; only the lexeme shape is validated here.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if b := lx.cursor.Peek(); b == '+' || b == '-' {
		lx.cursor.Bump()
	}
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// Fraction or rational separator, each requiring a digit right after.
	if b0, b1, ok := lx.cursor.Peek2(); ok {
		switch {
		case b0 == '.' && isDec(b1):
			kind = token.RealLit
			lx.cursor.Bump() // '.'
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		case b0 == '/' && isDec(b1):
			kind = token.RationalLit
			lx.cursor.Bump() // '/'
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	// A symbol character glued onto the numeral makes the whole lexeme
	// unscannable ("12abc", "1/2/3"); consume it all as one error token.
	if isSymbolContinueByte(lx.cursor.Peek()) || lx.cursor.Peek() >= utf8RuneSelf {
		for isSymbolContinueByte(lx.cursor.Peek()) || lx.cursor.Peek() >= utf8RuneSelf {
			lx.bumpRune()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, sp, "malformed numeric literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
