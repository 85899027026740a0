package sll

// Iterator is a forward cursor over a List that additionally supports
// removing the currently visited node in O(1) without losing its place.
//
// The iterator keeps three references into the list: prev (the node before
// the cursor), current (the visited node) and next (the node after it).
// Keeping next separately is what lets Pop detach current while the
// following Advance still knows where to resume.
//
// An iterator becomes stale as soon as its list is mutated through any path
// other than this iterator's own Advance/Pop; staleness is a caller
// obligation, not something the iterator detects.
type Iterator[T Node[T]] struct {
	list    *List[T]
	prev    T
	current T
	next    T
}

// Iterate returns an iterator positioned at the head of the list.
//
// Typical traversal, including conditional removal:
//
//	for it := list.Iterate(); !it.IsEnd(); it.Advance() {
//		node, ok := it.Get()
//		if ok && condition(node) {
//			it.Pop()
//		}
//	}
func (l *List[T]) Iterate() Iterator[T] {
	var it Iterator[T]
	it.Start(l)
	return it
}

// Start (re)binds the iterator to list and positions it at the head.
func (it *Iterator[T]) Start(list *List[T]) {
	var none T
	if list == nil {
		panic("sll: cannot iterate a nil list")
	}
	it.list = list
	it.prev = none
	it.current = list.first
	it.next = none
	if it.current != none {
		it.next = it.current.Next()
	}
}

// Get returns the currently visited node without advancing. The boolean
// return is false when there is no node at the current position, which
// happens both at end of traversal and immediately after Pop.
func (it *Iterator[T]) Get() (T, bool) {
	var none T
	return it.current, it.current != none
}

// IsEnd reports whether traversal is exhausted. Both current and next must
// be absent: after Pop, current is absent while next still holds the node
// to resume from, and that position is not the end. Checking only current
// would misreport exhaustion exactly when the node just removed was not the
// tail.
func (it *Iterator[T]) IsEnd() bool {
	var none T
	return it.current == none && it.next == none
}

// Advance moves the cursor one position forward. Advancing an exhausted
// iterator is a no-op. Called directly after Pop, it resumes at the node
// that followed the removed one.
func (it *Iterator[T]) Advance() {
	var none T
	if it.current != none {
		it.prev = it.current
	}
	it.current = it.next
	it.next = none
	if it.current != none {
		it.next = it.current.Next()
	}
}

// Pop detaches and returns the currently visited node, stitching the list
// around it so that traversal and the list's head/tail/size bookkeeping
// stay intact. The boolean return is false if there is no current node.
// The returned node's next-link is cleared; ownership passes to the caller.
func (it *Iterator[T]) Pop() (T, bool) {
	var none T
	if it.current == none {
		return none, false
	}
	node := it.current
	if node == it.list.first {
		it.list.first = it.next
	}
	if node == it.list.last {
		it.list.last = it.prev
	}
	node.SetNext(none)
	it.current = none
	it.list.n--
	if it.prev != none {
		it.prev.SetNext(it.next)
	}
	return node, true
}
