package sexpr

// EqualRoot reports structural equality of two trees, ignoring spans.
// Interned handles are compared directly, so both trees must have been
// read against the same interner.
func EqualRoot(a, b *Root) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.sexprs) != len(b.sexprs) {
		return false
	}
	for i := range a.sexprs {
		if !Equal(a.sexprs[i], b.sexprs[i]) {
			return false
		}
	}
	return true
}

// Equal reports structural equality of two sexprs, ignoring spans.
func Equal(a, b Sexpr) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindAtom:
		return equalAtom(a.atom, b.atom)
	case KindSynList, KindDataList:
		ai, bi := a.list.Items(), b.list.Items()
		return equalSlices(ai, bi)
	case KindVector:
		return equalSlices(a.vec, b.vec)
	}
	return false
}

func equalSlices(a, b []Sexpr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalAtom(a, b Atom) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case AtomSym:
		return a.sym == b.sym
	case AtomPath:
		if len(a.path) != len(b.path) {
			return false
		}
		for i := range a.path {
			if a.path[i] != b.path[i] {
				return false
			}
		}
		return true
	case AtomLit:
		return equalLit(a.lit, b.lit)
	}
	return false
}

func equalLit(a, b Lit) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case LitInt:
		return a.i.Cmp(b.i) == 0
	case LitReal:
		return a.r.Cmp(b.r) == 0
	case LitRational:
		return a.q.Cmp(b.q) == 0
	case LitBool:
		return a.b == b.b
	case LitString:
		return a.s == b.s
	case LitChar:
		return a.c == b.c
	}
	return false
}
