package sll

import (
	"github.com/rs/zerolog"
)

// Pool is a reservoir of currently-unused nodes, backed by the same FIFO
// list shape as List. Get reuses a node from the reservoir when one is
// available and only allocates when the reservoir is empty, so steady-state
// churn through the pool is allocation-free.
//
// A node handed out by Get is "checked out" and owned by whichever
// container the caller places it in; PutBack returns it to the reservoir.
// Reused nodes are not scrubbed: only the next-link is guaranteed clean,
// payload fields keep whatever the previous owner left in them.
type Pool[T Node[T]] struct {
	free      List[T]
	alloc     func() T
	log       zerolog.Logger
	collector PoolMetrics

	// total fresh allocations over the pool's lifetime, for telemetry
	allocated uint64
}

// NewPool creates a pool that calls alloc whenever the reservoir cannot
// satisfy a Get. alloc must return a detached, non-nil node; in Go that is
// any freshly heap-allocated node value, so with
//
//	pool := sll.NewPool(func() *mynode { return new(mynode) }, logger, collector)
//
// fresh nodes come back zeroed. A nil collector falls back to NoopMetrics.
func NewPool[T Node[T]](alloc func() T, logger zerolog.Logger, collector PoolMetrics) *Pool[T] {
	if alloc == nil {
		panic("sll: pool requires an allocator")
	}
	if collector == nil {
		collector = NoopMetrics{}
	}
	return &Pool[T]{
		alloc:     alloc,
		log:       logger.With().Str("component", "node-pool").Logger(),
		collector: collector,
	}
}

// Get returns a node ready for use: the oldest reservoir node if one is
// available, a fresh allocation otherwise. The return is never nil.
func (p *Pool[T]) Get() T {
	node, _ := p.GetTrackingNew()
	return node
}

// GetTrackingNew is Get plus provenance: allocated is true iff the node was
// freshly allocated (zeroed payload) rather than reused from the reservoir
// (stale payload, clean next-link). Callers that must not observe a
// previous checkout's payload reset it when allocated is false.
func (p *Pool[T]) GetTrackingNew() (node T, allocated bool) {
	if node, ok := p.free.PopFront(); ok {
		p.collector.OnNodeReused()
		return node, false
	}
	var none T
	node = p.alloc()
	if node == none {
		panic("sll: pool allocator returned a nil node")
	}
	ClearNode(node)
	p.allocated++
	p.collector.OnNodeAllocated()
	p.log.Debug().
		Uint64("total_allocated", p.allocated).
		Msg("reservoir empty, allocated fresh node")
	return node, true
}

// PutBack returns a node to the reservoir. The node must be fully detached
// from any other container; passing a nil node panics.
func (p *Pool[T]) PutBack(node T) {
	p.free.PushBack(node)
	p.collector.OnNodeReturned()
}

// Size returns the number of nodes currently available in the reservoir.
// Checked-out nodes are not counted.
func (p *Pool[T]) Size() uint {
	return p.free.Size()
}

// Clear empties the reservoir without touching the contained nodes, exactly
// like List.Clear. The caller keeps responsibility for their lifetimes.
func (p *Pool[T]) Clear() {
	p.free.Clear()
}

// DrainRelease empties the reservoir, invoking release once per node after
// it is fully detached, in reservoir (FIFO) order. This is the teardown
// path: release is expected to free whatever the node's payload owns. The
// pool itself remains usable afterward and will allocate on the next Get.
func (p *Pool[T]) DrainRelease(release func(T)) {
	n := p.free.Size()
	p.free.Drain(func(node T) {
		release(node)
		p.collector.OnNodeReleased()
	})
	p.log.Debug().Uint("released", n).Msg("reservoir drained")
}
