// Package lust is the public face of the lust reader: it turns source
// text into a span-annotated sexpr tree.
//
// The heavy lifting lives in the internal packages; this package
// re-exports the types callers need and wraps them in a one-call API:
//
//	root, errs := lust.Read("(def x 1)")
package lust

import (
	"lust/internal/reader"
	"lust/internal/sexpr"
	"lust/internal/source"
)

// Tree types produced by reading.
type (
	Root  = sexpr.Root
	Sexpr = sexpr.Sexpr
	Atom  = sexpr.Atom
	Lit   = sexpr.Lit
	List  = sexpr.List
)

// Fault types returned by reading.
type (
	SyntaxError = reader.SyntaxError
	LexError    = reader.LexError
	ParseError  = reader.ParseError
)

// Span addressing.
type (
	Span     = source.Span
	Interner = source.Interner
)

// NewInterner returns a fresh interner for use with ReadWith.
func NewInterner() *Interner {
	return source.NewInterner()
}

// Read reads one anonymous source text. A fresh interner backs the
// returned tree; use ReadWith to share an interner across reads.
//
// Lexical faults abort: Root is nil and the errors are all LexErrors.
// Otherwise Root is non-nil and the errors are the ParseErrors recovery
// collected, in source order.
func Read(src string) (*Root, []SyntaxError) {
	return ReadWith(source.NewInterner(), "<input>", src)
}

// ReadWith reads src under the given name, interning names and string
// literals into interner.
func ReadWith(interner *Interner, name, src string) (*Root, []SyntaxError) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(src))
	file := fs.Get(id)
	res := reader.ReadFile(file, interner, reader.Options{})
	return res.Root, res.Errs
}

// Print renders a tree back to re-readable text using the interner the
// tree was read with.
func Print(interner *Interner, root *Root) string {
	return sexpr.Printer{Interner: interner}.Root(root)
}
