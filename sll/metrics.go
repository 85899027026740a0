package sll

// PoolMetrics collects telemetry about a Pool's reuse-before-allocate
// behavior. Implementations must be cheap; the pool invokes them on its hot
// path.
type PoolMetrics interface {
	// OnNodeAllocated is called when the pool was empty and a fresh node
	// had to be allocated.
	OnNodeAllocated()

	// OnNodeReused is called when a checked-out node came from the
	// reservoir instead of a fresh allocation.
	OnNodeReused()

	// OnNodeReturned is called when a node is handed back to the
	// reservoir.
	OnNodeReturned()

	// OnNodeReleased is called for every node handed to the release
	// callback during a DrainRelease teardown.
	OnNodeReleased()
}

// NoopMetrics is a PoolMetrics that discards every event.
type NoopMetrics struct{}

func NewNoopMetrics() NoopMetrics { return NoopMetrics{} }

func (NoopMetrics) OnNodeAllocated() {}
func (NoopMetrics) OnNodeReused()    {}
func (NoopMetrics) OnNodeReturned()  {}
func (NoopMetrics) OnNodeReleased()  {}
