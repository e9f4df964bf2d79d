package reader

import (
	"fmt"

	"lust/internal/source"
)

// SyntaxError is one reading fault. It is either a LexError or a
// ParseError; the reader returns them in source order.
type SyntaxError interface {
	error
	Span() source.Span
}

// LexError marks a span the tokenizer could not lex. A single LexError
// aborts the whole read.
type LexError struct {
	At source.Span
}

func (e LexError) Error() string {
	return fmt.Sprintf("lex error at %s", e.At)
}

func (e LexError) Span() source.Span { return e.At }

// ParseError marks a span where the grammar expected one thing and found
// another. Parse faults are recovered from and collected.
type ParseError struct {
	At       source.Span
	Expected string
	Found    string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: expected %s, found %s", e.At, e.Expected, e.Found)
}

func (e ParseError) Span() source.Span { return e.At }
