package reader

import (
	"lust/internal/diag"
	"lust/internal/lexer"
	"lust/internal/sexpr"
	"lust/internal/source"
	"lust/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is spent.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Root *sexpr.Root
	Errs []SyntaxError
}

// Reader holds the per-file reading state: the token stream, a cursor
// into it, and the faults collected so far.
type Reader struct {
	file     *source.File
	interner *source.Interner
	toks     []token.Token
	pos      int
	opts     Options
	errs     []SyntaxError
}

// ReadFile is the entry point for reading one file. Lexical faults
// short-circuit: Result.Root is nil and Errs holds only LexErrors. With a
// clean token stream Root is always non-nil, and Errs holds whatever
// ParseErrors recovery collected.
func ReadFile(file *source.File, interner *source.Interner, opts Options) Result {
	r := &Reader{
		file:     file,
		interner: interner,
		opts:     opts,
	}
	if !r.tokenize() {
		return Result{Root: nil, Errs: r.errs}
	}
	root := r.parseRoot()
	return Result{Root: root, Errs: r.errs}
}

// tokenize scans the whole file up front. Every Invalid token becomes a
// LexError; returns false if any were found.
func (r *Reader) tokenize() bool {
	lx := lexer.New(r.file, lexer.Options{Reporter: r.opts.Reporter})
	for {
		tok := lx.Next()
		if tok.Kind == token.Invalid {
			r.errs = append(r.errs, LexError{At: tok.Span})
			continue
		}
		r.toks = append(r.toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return len(r.errs) == 0
}

// peek returns the current token without consuming it.
func (r *Reader) peek() token.Token {
	return r.toks[r.pos]
}

// peekAt returns the token n positions ahead, clamped to EOF.
func (r *Reader) peekAt(n int) token.Token {
	i := r.pos + n
	if i >= len(r.toks) {
		i = len(r.toks) - 1
	}
	return r.toks[i]
}

func (r *Reader) at(k token.Kind) bool {
	return r.peek().Kind == k
}

// advance consumes and returns the current token. EOF is sticky.
func (r *Reader) advance() token.Token {
	tok := r.toks[r.pos]
	if r.pos < len(r.toks)-1 {
		r.pos++
	}
	return tok
}

// errExpect records a ParseError and mirrors it to the diagnostic
// reporter.
func (r *Reader) errExpect(code diag.Code, sp source.Span, expected, found string) {
	r.errs = append(r.errs, ParseError{At: sp, Expected: expected, Found: found})
	r.report(code, diag.SevError, sp, "expected "+expected+", found "+found)
}

func (r *Reader) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if sev == diag.SevError {
		r.opts.CurrentErrors++
	}
	if r.opts.Reporter == nil || r.opts.Enough() {
		return false
	}
	r.opts.Reporter.Report(code, sev, sp, msg, nil)
	return true
}
