package lexer

import (
	"lust/internal/token"
)

// scanSymbol scans an identifier and checks it against the keyword table
// (true/false lex as BoolLit). Token.Text is exactly the source slice.
func (lx *Lexer) scanSymbol() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: ""}
	}
	if r < utf8RuneSelf {
		// ASCII fast-path
		if !isSymbolStartByte(byte(r)) {
			return lx.scanPunct()
		}
		lx.cursor.Bump()
		for isSymbolContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		// A Unicode continuation glued to an ASCII head is still one symbol.
		for {
			r2, sz2 := lx.peekRune()
			if sz2 <= 1 || !isSymbolContinueRune(r2) {
				break
			}
			lx.bumpRune()
			for isSymbolContinueByte(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	} else {
		if !isSymbolStartRune(r) {
			return lx.scanPunct()
		}
		lx.bumpRune()
		for {
			r2, sz2 := lx.peekRune()
			if sz2 == 0 || !isSymbolContinueRune(r2) {
				break
			}
			lx.bumpRune()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	// Keyword check is case-sensitive.
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}

	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
