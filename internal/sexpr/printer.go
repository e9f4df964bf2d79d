package sexpr

import (
	"strings"

	"lust/internal/source"
)

// Printer renders a tree back to source-like text. The output is
// re-readable: reading it again yields a tree equal to the original
// modulo span positions. Desugared reader macros print structurally
// ('x prints as (quote x)).
type Printer struct {
	Interner *source.Interner
}

// Root renders every top-level form, one per line.
func (p Printer) Root(r *Root) string {
	var sb strings.Builder
	for i, s := range r.Sexprs() {
		if i != 0 {
			sb.WriteByte('\n')
		}
		p.sexpr(&sb, s)
	}
	return sb.String()
}

// Sexpr renders a single form.
func (p Printer) Sexpr(s Sexpr) string {
	var sb strings.Builder
	p.sexpr(&sb, s)
	return sb.String()
}

func (p Printer) sexpr(sb *strings.Builder, s Sexpr) {
	switch s.Kind() {
	case KindAtom:
		p.atom(sb, s.Atom())
	case KindSynList:
		sb.WriteByte('(')
		p.seq(sb, s.List().Items())
		sb.WriteByte(')')
	case KindDataList:
		sb.WriteByte('[')
		p.seq(sb, s.List().Items())
		sb.WriteByte(']')
	case KindVector:
		sb.WriteString("#[")
		p.seq(sb, s.Vector())
		sb.WriteByte(']')
	}
}

func (p Printer) seq(sb *strings.Builder, items []Sexpr) {
	for i, s := range items {
		if i != 0 {
			sb.WriteByte(' ')
		}
		p.sexpr(sb, s)
	}
}

func (p Printer) atom(sb *strings.Builder, a Atom) {
	switch a.Kind() {
	case AtomSym:
		sb.WriteString(p.Interner.MustLookup(a.Sym()))
	case AtomPath:
		for i, id := range a.Path() {
			if i != 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(p.Interner.MustLookup(id))
		}
	case AtomLit:
		p.lit(sb, a.Lit())
	}
}

func (p Printer) lit(sb *strings.Builder, l Lit) {
	switch l.Kind() {
	case LitInt:
		sb.WriteString(l.Int().String())
	case LitReal:
		// 'f' keeps the plain digits.dot.digits shape; the surface syntax
		// has no exponent form.
		s := l.Real().Text('f', -1)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		sb.WriteString(s)
	case LitRational:
		// Always num/denom, so the text re-reads as a rational.
		sb.WriteString(l.Rational().Num().String())
		sb.WriteByte('/')
		sb.WriteString(l.Rational().Denom().String())
	case LitBool:
		if l.Bool() {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case LitString:
		quoteString(sb, p.Interner.MustLookup(l.Str()))
	case LitChar:
		sb.WriteString("#\\")
		sb.WriteRune(l.Char())
	}
}

// quoteString writes a string literal using only the escape set the
// reader understands. Bytes outside it are copied raw.
func quoteString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case 0:
			sb.WriteString(`\0`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
}
