package sexpr

// List is an ordered sequence of Sexpr with O(1) prepend. The grammar uses
// it to splice a synthesized head symbol in front of already-parsed
// children when desugaring reader macros.
type List struct {
	head *node
	n    int
}

type node struct {
	val  Sexpr
	next *node
}

// NewList returns an empty list.
func NewList() *List {
	return &List{}
}

// FromSlice builds a list holding the items in order.
func FromSlice(items []Sexpr) *List {
	l := NewList()
	for i := len(items) - 1; i >= 0; i-- {
		l.PushFront(items[i])
	}
	return l
}

// PushFront prepends v in O(1).
func (l *List) PushFront(v Sexpr) {
	l.head = &node{val: v, next: l.head}
	l.n++
}

// Len returns the number of elements.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return l.n
}

// Head returns the first element, if any.
func (l *List) Head() (Sexpr, bool) {
	if l == nil || l.head == nil {
		return Sexpr{}, false
	}
	return l.head.val, true
}

// Items returns the elements in order as a fresh slice.
func (l *List) Items() []Sexpr {
	if l == nil {
		return nil
	}
	out := make([]Sexpr, 0, l.n)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.val)
	}
	return out
}

// Each calls fn for every element in order until fn returns false.
func (l *List) Each(fn func(Sexpr) bool) {
	if l == nil {
		return
	}
	for n := l.head; n != nil; n = n.next {
		if !fn(n.val) {
			return
		}
	}
}
