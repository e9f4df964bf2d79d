package lexer

import (
	"lust/internal/source"
	"lust/internal/token"
)

// Lexer scans one file into spanned tokens. Whitespace and comments carry
// no token; an unrecognized lexeme becomes a single Invalid token and a
// reported fault, and scanning continues, so the whole input is tokenized
// in one pass.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // one-token lookahead buffer
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
	}
}

// Next returns the next significant token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()

	switch {
	case isDec(ch):
		return lx.scanNumber()

	case (ch == '+' || ch == '-') && lx.isDigitAfterSign():
		// A signed numeral; bare '+' and '-' remain symbols.
		return lx.scanNumber()

	case isSymbolStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanSymbol()

	case ch == '"':
		return lx.scanString()

	default:
		return lx.scanPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan returns the zero-width span at the current offset. At EOF this
// is the end-of-input sentinel position [len, len).
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
