package sll_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/tlvb/sll-meta/sll"
	"github.com/tlvb/sll-meta/utils/unittest"
)

// TestIterator_EmptyList checks that an iterator over an empty list starts
// exhausted and that Get, Pop and Advance are safe no-ops there.
func TestIterator_EmptyList(t *testing.T) {
	var list sll.List[*unittest.MockNode]

	it := list.Iterate()
	require.True(t, it.IsEnd())

	_, ok := it.Get()
	require.False(t, ok)
	_, ok = it.Pop()
	require.False(t, ok)

	it.Advance()
	require.True(t, it.IsEnd())
}

// TestIterator_VisitsAllInOrder checks plain traversal without removal.
func TestIterator_VisitsAllInOrder(t *testing.T) {
	var list sll.List[*unittest.MockNode]
	nodes := unittest.NodeListFixture(5)
	for _, node := range nodes {
		list.PushBack(node)
	}

	visited := make([]*unittest.MockNode, 0, len(nodes))
	for it := list.Iterate(); !it.IsEnd(); it.Advance() {
		node, ok := it.Get()
		require.True(t, ok)
		visited = append(visited, node)
	}
	require.Equal(t, nodes, visited)
	require.Equal(t, uint(len(nodes)), list.Size(), "plain traversal must not mutate the list")
}

// TestIterator_PopHeadAndTail reproduces the head-and-tail removal
// scenario: iterating ids [1,2,3,4,5] while popping {1,5} must leave
// [2,3,4] and still visit 2,3,4 exactly once each in the same pass.
func TestIterator_PopHeadAndTail(t *testing.T) {
	var list sll.List[*unittest.MockNode]
	for _, node := range unittest.NodeListFixture(5) {
		list.PushBack(node)
	}

	visited := make([]uint64, 0, 5)
	for it := list.Iterate(); !it.IsEnd(); it.Advance() {
		node, ok := it.Get()
		require.True(t, ok)
		visited = append(visited, node.ID)
		if node.ID == 1 || node.ID == 5 {
			popped, ok := it.Pop()
			require.True(t, ok)
			require.Same(t, node, popped)
			require.Nil(t, popped.Next(), "popped node must be detached")
		}
	}

	require.Equal(t, []uint64{1, 2, 3, 4, 5}, visited, "every node is visited exactly once, removed or not")
	unittest.RequireListIDs(t, &list, []uint64{2, 3, 4})
}

// TestIterator_PopSoleElement checks that removing the only node through
// the iterator empties the list completely.
func TestIterator_PopSoleElement(t *testing.T) {
	var list sll.List[*unittest.MockNode]
	node := unittest.NodeFixture(1)
	list.PushBack(node)

	it := list.Iterate()
	popped, ok := it.Pop()
	require.True(t, ok)
	require.Same(t, node, popped)

	require.True(t, it.IsEnd())
	require.Equal(t, uint(0), list.Size())
	_, ok = list.Front()
	require.False(t, ok)
	_, ok = list.Back()
	require.False(t, ok)
	unittest.RequireWellFormed(t, &list)
}

// TestIterator_PopDoesNotEndTraversal pins down the two-field exhaustion
// check: directly after popping a non-tail node the iterator has no current
// node, but it is not at end, and the following Advance resumes at the
// successor of the removed node.
func TestIterator_PopDoesNotEndTraversal(t *testing.T) {
	var list sll.List[*unittest.MockNode]
	nodes := unittest.NodeListFixture(2)
	for _, node := range nodes {
		list.PushBack(node)
	}

	it := list.Iterate()
	popped, ok := it.Pop()
	require.True(t, ok)
	require.Same(t, nodes[0], popped)

	// nothing to report at this position, yet traversal is not over
	_, ok = it.Get()
	require.False(t, ok)
	require.False(t, it.IsEnd())

	it.Advance()
	node, ok := it.Get()
	require.True(t, ok)
	require.Same(t, nodes[1], node)

	it.Advance()
	require.True(t, it.IsEnd())

	// popping at end stays a no-op
	_, ok = it.Pop()
	require.False(t, ok)
	it.Advance()
	require.True(t, it.IsEnd())

	unittest.RequireListIDs(t, &list, []uint64{2})
}

// TestIterator_PopEveryElement checks that a traversal removing everything
// leaves an empty, well-formed list.
func TestIterator_PopEveryElement(t *testing.T) {
	var list sll.List[*unittest.MockNode]
	nodes := unittest.NodeListFixture(7)
	for _, node := range nodes {
		list.PushBack(node)
	}

	popped := make([]*unittest.MockNode, 0, len(nodes))
	for it := list.Iterate(); !it.IsEnd(); it.Advance() {
		if node, ok := it.Pop(); ok {
			popped = append(popped, node)
		}
	}

	require.Equal(t, nodes, popped)
	require.True(t, list.Empty())
	unittest.RequireWellFormed(t, &list)
}

// TestIterator_DemoScenario runs the full mixed scenario: push ids 1..10,
// pop {1,5,6,10} during traversal leaving [2,3,4,7,8,9], then pop the front
// three which returns 2,3,4 and leaves [7,8,9].
func TestIterator_DemoScenario(t *testing.T) {
	var list sll.List[*unittest.MockNode]
	for _, node := range unittest.NodeListFixture(10) {
		list.PushBack(node)
	}

	toRemove := map[uint64]struct{}{1: {}, 5: {}, 6: {}, 10: {}}
	for it := list.Iterate(); !it.IsEnd(); it.Advance() {
		node, ok := it.Get()
		require.True(t, ok)
		if _, remove := toRemove[node.ID]; remove {
			_, ok := it.Pop()
			require.True(t, ok)
		}
	}
	unittest.RequireListIDs(t, &list, []uint64{2, 3, 4, 7, 8, 9})

	for _, expected := range []uint64{2, 3, 4} {
		node, ok := list.PopFront()
		require.True(t, ok)
		require.Equal(t, expected, node.ID)
	}
	unittest.RequireListIDs(t, &list, []uint64{7, 8, 9})
}

// TestIterator_Restart checks that Start rebinds an iterator after
// out-of-band list mutation.
func TestIterator_Restart(t *testing.T) {
	var list sll.List[*unittest.MockNode]
	nodes := unittest.NodeListFixture(3)
	for _, node := range nodes {
		list.PushBack(node)
	}

	it := list.Iterate()
	it.Advance()

	// out-of-band mutation makes the iterator stale; restart it
	front, ok := list.PopFront()
	require.True(t, ok)
	require.Same(t, nodes[0], front)

	it.Start(&list)
	node, ok := it.Get()
	require.True(t, ok)
	require.Same(t, nodes[1], node)
}

// TestIterator_PopSet_Rapid checks for arbitrary list lengths and removal
// sets that a single traversal visits every original node exactly once and
// leaves exactly the non-removed nodes, in order.
func TestIterator_PopSet_Rapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.UintRange(0, 64).Draw(t, "count")
		var list sll.List[*unittest.MockNode]
		nodes := unittest.NodeListFixture(count)
		for _, node := range nodes {
			list.PushBack(node)
		}

		remove := make(map[uint64]struct{})
		for _, id := range rapid.SliceOfDistinct(rapid.Uint64Range(1, uint64(count)+1), func(id uint64) uint64 { return id }).Draw(t, "remove-ids") {
			remove[id] = struct{}{}
		}

		visited := make([]uint64, 0, count)
		for it := list.Iterate(); !it.IsEnd(); it.Advance() {
			node, ok := it.Get()
			require.True(t, ok)
			visited = append(visited, node.ID)
			if _, ok := remove[node.ID]; ok {
				_, popped := it.Pop()
				require.True(t, popped)
			}
		}
		require.Equal(t, unittest.NodeIDs(nodes), visited)

		expected := make([]uint64, 0, count)
		for _, node := range nodes {
			if _, ok := remove[node.ID]; !ok {
				expected = append(expected, node.ID)
			}
		}
		unittest.RequireListIDs(t, &list, expected)
	})
}
