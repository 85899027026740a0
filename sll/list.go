package sll

// List is a FIFO-ordered chain of caller-owned nodes with head, tail and
// length tracking. PushBack and PopFront are O(1) and allocation-free.
//
// The zero value is an empty list ready to use. A List never owns node
// memory: it links and unlinks nodes, nothing more, so the caller remains
// responsible for node lifetimes.
type List[T Node[T]] struct {
	first T
	last  T
	n     uint
}

// Clear resets the list to empty. It is a naive reset: previously linked
// nodes are not touched, so their next-links keep whatever values they had.
// Use Drain instead when every member must be handed back for release.
func (l *List[T]) Clear() {
	var none T
	l.first = none
	l.last = none
	l.n = 0
}

// Size returns the number of nodes currently linked into the list.
func (l *List[T]) Size() uint {
	return l.n
}

// Empty returns true iff the list holds no nodes.
func (l *List[T]) Empty() bool {
	return l.n == 0
}

// Front returns the head node without detaching it. The boolean return is
// false iff the list is empty.
func (l *List[T]) Front() (T, bool) {
	var none T
	return l.first, l.first != none
}

// Back returns the tail node without detaching it. The boolean return is
// false iff the list is empty.
func (l *List[T]) Back() (T, bool) {
	var none T
	return l.last, l.last != none
}

// PushBack appends node as the new tail and increments the size.
//
// The node must not currently be linked into this or any other container;
// the list trusts the caller on this and a violation silently corrupts both
// structures. Passing the zero value panics.
func (l *List[T]) PushBack(node T) {
	var none T
	if node == none {
		panic("sll: cannot push a nil node")
	}
	if l.n == 0 {
		l.first = node
		l.last = node
		l.n = 1
		return
	}
	l.last.SetNext(node)
	l.last = node
	l.n++
}

// PopFront detaches and returns the head node. The boolean return is false
// iff the list was empty. The returned node's next-link is cleared, so the
// caller receives it free of any container membership.
func (l *List[T]) PopFront() (T, bool) {
	var none T
	if l.n == 0 {
		return none, false
	}
	node := l.first
	l.first = node.Next()
	l.n--
	if l.first == none {
		l.last = none
	}
	node.SetNext(none)
	return node, true
}

// Drain pops the front and invokes release on it until the list is empty.
// Each node is fully detached before its callback runs, so release may
// freely recycle or deallocate it. Nodes are released in FIFO order.
func (l *List[T]) Drain(release func(T)) {
	for node, ok := l.PopFront(); ok; node, ok = l.PopFront() {
		release(node)
	}
}
