// Package token defines the token kinds produced by the lexer and the
// spanned Token value shared by the lexer and the reader.
package token
