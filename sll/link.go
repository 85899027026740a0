// Package sll implements an intrusive singly-linked list toolkit: a FIFO
// list over caller-owned nodes, a forward iterator that supports removing
// the visited node without invalidating traversal, and a node-recycling
// pool built from the same list machinery.
//
// The containers never allocate wrapper elements and never copy nodes; they
// only manipulate the single next-link each node embeds. A node belongs to
// at most one container at a time. All types assume a single logical thread
// of control per list identity; callers extending this to multiple
// goroutines must guard the whole List/Iterator/Pool triple with one lock,
// as the internal invariants span several fields.
package sll

// Node is the capability a caller-defined node type must provide to live in
// a List or Pool: a single, settable next-link of its own type. T is
// expected to be a pointer type, so its zero value means "no node".
//
// The easiest way to satisfy Node is to embed Link:
//
//	type mynode struct {
//		sll.Link[*mynode]
//		id uint64
//	}
type Node[T any] interface {
	comparable
	Next() T
	SetNext(T)
}

// Link provides the intrusive next-link slot. Embed it (by value) in a node
// type; the Next and SetNext methods are promoted to the node's pointer
// type. The zero value is a detached link.
type Link[T any] struct {
	next T
}

// Next returns the node following this one in its current container, or the
// zero value if this node is last or detached.
func (l *Link[T]) Next() T {
	return l.next
}

// SetNext overwrites the next-link. Reserved for the containers in this
// package; callers setting it directly will corrupt whichever container
// holds the node.
func (l *Link[T]) SetNext(next T) {
	l.next = next
}

// ClearNode resets a node's next-link so that no dangling link can be
// observed. Use it before a node's first insertion if the node was not
// zero-initialized. Detaching through PopFront, Drain, or Iterator.Pop
// already clears the link.
func ClearNode[T Node[T]](node T) {
	var none T
	if node == none {
		panic("sll: cannot clear a nil node")
	}
	node.SetNext(none)
}
