package reader

import (
	"lust/internal/diag"
	"lust/internal/sexpr"
	"lust/internal/source"
	"lust/internal/token"
)

// Desugared form head names.
const (
	symQuote           = "quote"
	symQuasiquote      = "quasiquote"
	symUnquote         = "unquote"
	symUnquoteSplicing = "unquote-splicing"
	symVarg            = "varg"
)

// parseRoot runs the top-level loop: one sexpr after another until EOF,
// resynchronizing after each fault.
func (r *Reader) parseRoot() *sexpr.Root {
	start := r.peek().Span
	var sexprs []sexpr.Sexpr
	for !r.at(token.EOF) {
		before := r.pos
		s, ok := r.parseSexpr()
		if !ok {
			r.resyncTop(before)
			continue
		}
		sexprs = append(sexprs, s)
	}
	return sexpr.NewRoot(sexprs, start.Cover(r.peek().Span))
}

// parseSexpr dispatches on the current token. Variadic sugar wins over a
// plain symbol, so it is checked before the atom cases.
func (r *Reader) parseSexpr() (sexpr.Sexpr, bool) {
	switch r.peek().Kind {
	case token.Ident:
		if r.peekAt(1).Kind == token.Ellipsis {
			return r.parseVariadic()
		}
		return r.parseSymOrPath()

	case token.LParen:
		return r.parseSynList()

	case token.LBracket:
		return r.parseDataList()

	case token.HashLBracket:
		return r.parseVector()

	case token.Quote:
		return r.parseQuoteLike(symQuote)
	case token.Backquote:
		return r.parseQuoteLike(symQuasiquote)
	case token.Comma:
		return r.parseQuoteLike(symUnquote)
	case token.CommaAt:
		return r.parseQuoteLike(symUnquoteSplicing)

	case token.IntLit, token.RealLit, token.RationalLit, token.BoolLit, token.StringLit:
		return r.parseLitAtom()

	default:
		r.errExpect(diag.SynExpectSexpr, r.peek().Span, "expression", r.peek().Kind.String())
		return sexpr.Sexpr{}, false
	}
}

// parseSynList reads a parenthesized code list. It must hold at least one
// child; () is a fault.
func (r *Reader) parseSynList() (sexpr.Sexpr, bool) {
	open := r.advance()
	if r.at(token.RParen) {
		closing := r.advance()
		r.errExpect(diag.SynEmptyList, open.Span.Cover(closing.Span), "at least one expression", token.RParen.String())
		return sexpr.Sexpr{}, false
	}
	items, closing, ok := r.parseSeq(token.RParen, diag.SynExpectCloseParen)
	if !ok {
		return sexpr.Sexpr{}, false
	}
	span := open.Span.Cover(closing.Span)
	return sexpr.NewSynList(sexpr.FromSlice(items), span), true
}

// parseDataList reads a bracketed list literal. Like a code list it must
// hold at least one child.
func (r *Reader) parseDataList() (sexpr.Sexpr, bool) {
	open := r.advance()
	if r.at(token.RBracket) {
		closing := r.advance()
		r.errExpect(diag.SynEmptyList, open.Span.Cover(closing.Span), "at least one expression", token.RBracket.String())
		return sexpr.Sexpr{}, false
	}
	items, closing, ok := r.parseSeq(token.RBracket, diag.SynExpectCloseBracket)
	if !ok {
		return sexpr.Sexpr{}, false
	}
	span := open.Span.Cover(closing.Span)
	return sexpr.NewDataList(sexpr.FromSlice(items), span), true
}

// parseVector reads a #[...] literal; it may be empty.
func (r *Reader) parseVector() (sexpr.Sexpr, bool) {
	open := r.advance()
	items, closing, ok := r.parseSeq(token.RBracket, diag.SynExpectCloseBracket)
	if !ok {
		return sexpr.Sexpr{}, false
	}
	span := open.Span.Cover(closing.Span)
	return sexpr.NewVector(items, span), true
}

// parseSeq reads child sexprs until the closer. Hitting EOF first is a
// fault; a failed child propagates so top-level recovery takes over.
func (r *Reader) parseSeq(closer token.Kind, code diag.Code) ([]sexpr.Sexpr, token.Token, bool) {
	var items []sexpr.Sexpr
	for {
		switch r.peek().Kind {
		case closer:
			return items, r.advance(), true
		case token.EOF:
			r.errExpect(code, r.peek().Span, closer.String(), r.peek().Kind.String())
			return nil, token.Token{}, false
		}
		s, ok := r.parseSexpr()
		if !ok {
			return nil, token.Token{}, false
		}
		items = append(items, s)
	}
}

// parseQuoteLike desugars a reader-macro marker into (head <sexpr>). The
// head atom keeps the marker's span; the list covers marker through
// operand.
func (r *Reader) parseQuoteLike(head string) (sexpr.Sexpr, bool) {
	marker := r.advance()
	inner, ok := r.parseSexpr()
	if !ok {
		return sexpr.Sexpr{}, false
	}
	headAtom := sexpr.NewAtom(sexpr.NewSym(r.interner.Intern(head), marker.Span), marker.Span)
	span := marker.Span.Cover(inner.Span())
	return sexpr.NewSynList(sexpr.FromSlice([]sexpr.Sexpr{headAtom, inner}), span), true
}

// parseVariadic desugars name... into (varg name). Both atoms carry the
// span of the whole sugar form.
func (r *Reader) parseVariadic() (sexpr.Sexpr, bool) {
	ident := r.advance()
	ellipsis := r.advance()
	span := ident.Span.Cover(ellipsis.Span)
	head := sexpr.NewAtom(sexpr.NewSym(r.interner.Intern(symVarg), span), span)
	name := sexpr.NewAtom(sexpr.NewSym(r.interner.Intern(ident.Text), span), span)
	return sexpr.NewSynList(sexpr.FromSlice([]sexpr.Sexpr{head, name}), span), true
}

// parseSymOrPath reads a bare symbol or a dotted path. A separator only
// extends the path when an identifier follows it, so a trailing dot is
// left for the caller's context to fault on.
func (r *Reader) parseSymOrPath() (sexpr.Sexpr, bool) {
	first := r.advance()
	names := []string{first.Text}
	last := first.Span
	for r.at(token.Period) && r.peekAt(1).Kind == token.Ident {
		r.advance()
		part := r.advance()
		names = append(names, part.Text)
		last = part.Span
	}
	span := first.Span.Cover(last)
	if len(names) == 1 {
		a := sexpr.NewSym(r.interner.Intern(first.Text), span)
		return sexpr.NewAtom(a, span), true
	}
	ids := make([]source.StringID, len(names))
	for i, n := range names {
		ids[i] = r.interner.Intern(n)
	}
	a := sexpr.NewPath(ids, span)
	return sexpr.NewAtom(a, span), true
}

// resyncTop drops tokens until the next plausible top-level form start.
// since is the stream position before the failed parse: the loop must
// move past it so the top level makes progress, and it skips over
// nesting opened by the dropped tokens.
func (r *Reader) resyncTop(since int) {
	depth := 0
	for {
		tok := r.peek()
		if tok.Kind == token.EOF {
			return
		}
		if r.pos > since && depth <= 0 && isFormStarter(tok.Kind) {
			return
		}
		switch tok.Kind {
		case token.LParen, token.LBracket, token.HashLBracket:
			depth++
		case token.RParen, token.RBracket:
			depth--
		}
		r.advance()
	}
}

func isFormStarter(k token.Kind) bool {
	switch k {
	case token.LParen, token.LBracket, token.HashLBracket,
		token.Quote, token.Backquote, token.Comma, token.CommaAt,
		token.Ident, token.IntLit, token.RealLit, token.RationalLit,
		token.BoolLit, token.StringLit:
		return true
	default:
		return false
	}
}
