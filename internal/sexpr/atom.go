package sexpr

import (
	"lust/internal/source"
)

// AtomKind discriminates leaf forms.
type AtomKind uint8

const (
	// AtomSym is a bare symbol.
	AtomSym AtomKind = iota
	// AtomPath is a dotted path of two or more names.
	AtomPath
	// AtomLit is a literal value.
	AtomLit
)

func (k AtomKind) String() string {
	switch k {
	case AtomSym:
		return "symbol"
	case AtomPath:
		return "path"
	case AtomLit:
		return "literal"
	}
	return "unknown"
}

// Atom is a leaf sexpr: a symbol, a dotted path, or a literal.
type Atom struct {
	kind AtomKind
	span source.Span
	sym  source.StringID
	path []source.StringID // len >= 2 for AtomPath
	lit  Lit
}

func NewSym(name source.StringID, sp source.Span) Atom {
	return Atom{kind: AtomSym, span: sp, sym: name}
}

func NewPath(names []source.StringID, sp source.Span) Atom {
	return Atom{kind: AtomPath, span: sp, path: names}
}

func NewLitAtom(lit Lit, sp source.Span) Atom {
	return Atom{kind: AtomLit, span: sp, lit: lit}
}

func (a Atom) Kind() AtomKind    { return a.kind }
func (a Atom) Span() source.Span { return a.span }

// Sym returns the interned name; valid only for AtomSym.
func (a Atom) Sym() source.StringID { return a.sym }

// Path returns the ordered names; valid only for AtomPath.
func (a Atom) Path() []source.StringID { return a.path }

// Lit returns the literal value; valid only for AtomLit.
func (a Atom) Lit() Lit { return a.lit }
