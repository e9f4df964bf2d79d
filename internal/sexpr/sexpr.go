package sexpr

import (
	"lust/internal/source"
)

// Kind discriminates the syntactic forms the reader produces.
type Kind uint8

const (
	// KindAtom wraps a leaf Atom.
	KindAtom Kind = iota
	// KindSynList is a parenthesized sequence denoting code.
	KindSynList
	// KindDataList is a bracketed sequence denoting a literal list value.
	KindDataList
	// KindVector is a #[...] literal aggregate; it may be empty.
	KindVector
)

func (k Kind) String() string {
	switch k {
	case KindAtom:
		return "atom"
	case KindSynList:
		return "syn-list"
	case KindDataList:
		return "data-list"
	case KindVector:
		return "vector"
	}
	return "unknown"
}

// Sexpr is one node of the syntax tree: a kind tag, the payload for that
// kind, and the span of the node's full source extent (delimiters and
// children included).
type Sexpr struct {
	kind Kind
	span source.Span
	atom Atom
	list *List   // KindSynList, KindDataList
	vec  []Sexpr // KindVector
}

func NewAtom(a Atom, sp source.Span) Sexpr {
	return Sexpr{kind: KindAtom, span: sp, atom: a}
}

func NewSynList(l *List, sp source.Span) Sexpr {
	return Sexpr{kind: KindSynList, span: sp, list: l}
}

func NewDataList(l *List, sp source.Span) Sexpr {
	return Sexpr{kind: KindDataList, span: sp, list: l}
}

func NewVector(items []Sexpr, sp source.Span) Sexpr {
	return Sexpr{kind: KindVector, span: sp, vec: items}
}

func (s Sexpr) Kind() Kind        { return s.kind }
func (s Sexpr) Span() source.Span { return s.span }

// Atom returns the leaf payload; valid only for KindAtom.
func (s Sexpr) Atom() Atom { return s.atom }

// List returns the sequence payload; valid for KindSynList and KindDataList.
func (s Sexpr) List() *List { return s.list }

// Vector returns the vector elements; valid only for KindVector.
func (s Sexpr) Vector() []Sexpr { return s.vec }

// Children returns the child nodes in order, empty for atoms. Walkers use
// it for uniform traversal.
func (s Sexpr) Children() []Sexpr {
	switch s.kind {
	case KindSynList, KindDataList:
		return s.list.Items()
	case KindVector:
		return s.vec
	default:
		return nil
	}
}

// Root is an ordered sequence of top-level sexprs plus a span covering the
// whole input; it is the unit returned by reading.
type Root struct {
	sexprs []Sexpr
	span   source.Span
}

func NewRoot(sexprs []Sexpr, sp source.Span) *Root {
	return &Root{sexprs: sexprs, span: sp}
}

func (r *Root) Sexprs() []Sexpr   { return r.sexprs }
func (r *Root) Span() source.Span { return r.span }
func (r *Root) Len() int          { return len(r.sexprs) }
