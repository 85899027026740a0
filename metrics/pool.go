// Package metrics provides a Prometheus-backed implementation of the
// sll.PoolMetrics interface.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const subsystemNodePool = "node_pool"

// PoolCollector reports a node pool's reuse-before-allocate behavior to
// Prometheus. A high allocated-to-reused ratio means the pool is sized
// below the working set and churn is hitting the allocator.
type PoolCollector struct {
	countNodeAllocated prometheus.Counter
	countNodeReused    prometheus.Counter
	countNodeReturned  prometheus.Counter

	gaugeNodesAvailable prometheus.Gauge
}

func NewPoolCollector(nameSpace string, poolName string, registrar prometheus.Registerer) *PoolCollector {

	countNodeAllocated := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: nameSpace,
		Subsystem: subsystemNodePool,
		Name:      poolName + "_" + "fresh_allocation_count_total",
		Help:      "total number of nodes freshly allocated because the reservoir was empty",
	})

	countNodeReused := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: nameSpace,
		Subsystem: subsystemNodePool,
		Name:      poolName + "_" + "reused_node_count_total",
		Help:      "total number of checkouts served from the reservoir",
	})

	countNodeReturned := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: nameSpace,
		Subsystem: subsystemNodePool,
		Name:      poolName + "_" + "returned_node_count_total",
		Help:      "total number of nodes returned to the reservoir",
	})

	gaugeNodesAvailable := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: nameSpace,
		Subsystem: subsystemNodePool,
		Name:      poolName + "_" + "available_node_count",
		Help:      "number of nodes currently resting in the reservoir",
	})

	registrar.MustRegister(
		// checkout provenance
		countNodeAllocated,
		countNodeReused,

		// returns
		countNodeReturned,

		// reservoir level
		gaugeNodesAvailable)

	return &PoolCollector{
		countNodeAllocated: countNodeAllocated,
		countNodeReused:    countNodeReused,
		countNodeReturned:  countNodeReturned,

		gaugeNodesAvailable: gaugeNodesAvailable,
	}
}

// OnNodeAllocated is called whenever a checkout misses the reservoir and a
// fresh node is allocated.
func (p *PoolCollector) OnNodeAllocated() {
	p.countNodeAllocated.Inc()
}

// OnNodeReused is called whenever a checkout is served by recycling a
// reservoir node.
func (p *PoolCollector) OnNodeReused() {
	p.countNodeReused.Inc()
	p.gaugeNodesAvailable.Dec()
}

// OnNodeReturned is called whenever a node is handed back to the reservoir.
func (p *PoolCollector) OnNodeReturned() {
	p.countNodeReturned.Inc()
	p.gaugeNodesAvailable.Inc()
}

// OnNodeReleased is called once per node released during reservoir
// teardown. Note that Pool.Clear is a naive reset and reports nothing, so a
// cleared pool leaves the availability gauge stale until nodes flow again.
func (p *PoolCollector) OnNodeReleased() {
	p.gaugeNodesAvailable.Dec()
}
