package sexpr

import (
	"math/big"

	"lust/internal/source"
)

// LitKind discriminates literal values. There is no implicit coercion at
// read time; a literal is exactly one of these.
type LitKind uint8

const (
	LitInt LitKind = iota
	LitReal
	LitRational
	LitBool
	LitString
	LitChar
)

func (k LitKind) String() string {
	switch k {
	case LitInt:
		return "int"
	case LitReal:
		return "real"
	case LitRational:
		return "rational"
	case LitBool:
		return "bool"
	case LitString:
		return "string"
	case LitChar:
		return "char"
	}
	return "unknown"
}

// Lit is one literal value: arbitrary-precision integer, real, or
// rational, a boolean, an interned string, or a character.
type Lit struct {
	kind LitKind
	i    *big.Int
	r    *big.Float
	q    *big.Rat
	b    bool
	s    source.StringID
	c    rune
}

func NewInt(v *big.Int) Lit      { return Lit{kind: LitInt, i: v} }
func NewReal(v *big.Float) Lit   { return Lit{kind: LitReal, r: v} }
func NewRational(v *big.Rat) Lit { return Lit{kind: LitRational, q: v} }
func NewBool(v bool) Lit         { return Lit{kind: LitBool, b: v} }
func NewString(v source.StringID) Lit {
	return Lit{kind: LitString, s: v}
}
func NewChar(v rune) Lit { return Lit{kind: LitChar, c: v} }

func (l Lit) Kind() LitKind { return l.kind }

// Int returns the integer value; valid only for LitInt.
func (l Lit) Int() *big.Int { return l.i }

// Real returns the real value; valid only for LitReal.
func (l Lit) Real() *big.Float { return l.r }

// Rational returns the rational value; valid only for LitRational.
func (l Lit) Rational() *big.Rat { return l.q }

// Bool returns the boolean value; valid only for LitBool.
func (l Lit) Bool() bool { return l.b }

// Str returns the interned string handle; valid only for LitString.
func (l Lit) Str() source.StringID { return l.s }

// Char returns the character value; valid only for LitChar.
func (l Lit) Char() rune { return l.c }
