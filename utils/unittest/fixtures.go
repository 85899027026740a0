// Package unittest holds shared fixtures and helpers for tests of the list,
// iterator and pool packages.
package unittest

import (
	"github.com/stretchr/testify/require"

	"github.com/tlvb/sll-meta/sll"
)

// MockNode implements a bare minimum intrusive node for sake of test.
type MockNode struct {
	sll.Link[*MockNode]
	ID uint64
}

// NodeFixture returns a detached node with the given id.
func NodeFixture(id uint64) *MockNode {
	return &MockNode{ID: id}
}

// NodeListFixture returns n detached nodes with ids 1..n.
func NodeListFixture(n uint) []*MockNode {
	nodes := make([]*MockNode, 0, n)
	for i := uint(0); i < n; i++ {
		nodes = append(nodes, &MockNode{ID: uint64(i + 1)})
	}
	return nodes
}

// NodeIDs projects the ids of nodes, in order.
func NodeIDs(nodes []*MockNode) []uint64 {
	ids := make([]uint64, 0, len(nodes))
	for _, node := range nodes {
		ids = append(ids, node.ID)
	}
	return ids
}

// RequireWellFormed audits a list's structural invariants through its public
// surface: walking next-links from the front must visit exactly Size nodes,
// end at the back node, and the back node's next-link must be clear.
func RequireWellFormed[T sll.Node[T]](t require.TestingT, list *sll.List[T]) {
	var none T

	front, ok := list.Front()
	back, backOk := list.Back()
	require.Equal(t, ok, backOk, "first and last must be absent or present together")

	if !ok {
		require.Equal(t, uint(0), list.Size())
		require.True(t, list.Empty())
		return
	}

	require.NotZero(t, list.Size())
	hops := uint(1)
	node := front
	for node.Next() != none {
		node = node.Next()
		hops++
		require.LessOrEqual(t, hops, list.Size(), "walk exceeded list size, next-links form a cycle or size is stale")
	}
	require.Equal(t, list.Size(), hops, "size must match the number of reachable nodes")
	require.Equal(t, back, node, "walk from first must terminate at last")
}

// RequireListIDs audits both well-formedness and the exact id sequence of a
// list of MockNodes.
func RequireListIDs(t require.TestingT, list *sll.List[*MockNode], expected []uint64) {
	RequireWellFormed(t, list)
	actual := make([]uint64, 0, list.Size())
	for it := list.Iterate(); !it.IsEnd(); it.Advance() {
		if node, ok := it.Get(); ok {
			actual = append(actual, node.ID)
		}
	}
	require.Equal(t, expected, actual)
}
