// Package sexpr is the syntax tree produced by reading: a Root of
// top-level symbolic expressions, each carrying the half-open byte span
// of its source text.
//
// The tree is immutable once built and owned strictly top-down; the only
// shared state it references is interned text, which lives in the
// session's source.Interner.
package sexpr
