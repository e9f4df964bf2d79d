package token

var keywords = map[string]Kind{
	"true":  BoolLit,
	"false": BoolLit,
}

// LookupKeyword returns the token kind for reserved words. Keywords are
// case-sensitive; only the lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
