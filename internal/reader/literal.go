package reader

import (
	"math/big"
	"strconv"
	"strings"

	"lust/internal/diag"
	"lust/internal/sexpr"
	"lust/internal/token"
)

// realPrec is the mantissa precision for real literals. Printing with the
// same precision makes read-print-read stable.
const realPrec = 128

// parseLitAtom converts a literal token into a value atom. The lexer has
// already vetted the shape, so conversion failures are rare; they still
// fault instead of panicking.
func (r *Reader) parseLitAtom() (sexpr.Sexpr, bool) {
	tok := r.advance()
	var lit sexpr.Lit
	switch tok.Kind {
	case token.IntLit:
		v, ok := new(big.Int).SetString(tok.Text, 10)
		if !ok {
			r.errExpect(diag.SynBadIntLiteral, tok.Span, "integer literal", strconv.Quote(tok.Text))
			return sexpr.Sexpr{}, false
		}
		lit = sexpr.NewInt(v)

	case token.RealLit:
		f, _, err := big.ParseFloat(tok.Text, 10, realPrec, big.ToNearestEven)
		if err != nil {
			r.errExpect(diag.SynBadRealLiteral, tok.Span, "real literal", strconv.Quote(tok.Text))
			return sexpr.Sexpr{}, false
		}
		lit = sexpr.NewReal(f)

	case token.RationalLit:
		q, ok := parseRational(tok.Text)
		if !ok {
			r.errExpect(diag.SynBadRationalLiteral, tok.Span, "rational with nonzero denominator", strconv.Quote(tok.Text))
			return sexpr.Sexpr{}, false
		}
		lit = sexpr.NewRational(q)

	case token.BoolLit:
		lit = sexpr.NewBool(tok.Text == "true")

	case token.StringLit:
		lit = sexpr.NewString(r.interner.Intern(unescape(tok.Text)))
	}
	return sexpr.NewAtom(sexpr.NewLitAtom(lit, tok.Span), tok.Span), true
}

// parseRational converts "num/denom" text. A zero denominator is
// rejected; big.Rat would panic on it.
func parseRational(text string) (*big.Rat, bool) {
	numText, denText, found := strings.Cut(text, "/")
	if !found {
		return nil, false
	}
	num, ok := new(big.Int).SetString(numText, 10)
	if !ok {
		return nil, false
	}
	den, ok := new(big.Int).SetString(denText, 10)
	if !ok || den.Sign() == 0 {
		return nil, false
	}
	return new(big.Rat).SetFrac(num, den), true
}

// unescape strips the surrounding quotes and resolves backslash escapes.
// An unknown escape keeps the escaped character as-is.
func unescape(raw string) string {
	body := raw[1 : len(raw)-1]
	if !strings.ContainsRune(body, '\\') {
		return body
	}
	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 == len(body) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case '0':
			sb.WriteByte(0)
		default:
			sb.WriteByte(body[i])
		}
	}
	return sb.String()
}
