package anfgo

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    nodeCounter *prometheus.CounterVec
//	}
//
//	func (p *PrometheusCollector) RecordAllocNode(kind anfgo.NodeKind, err error) {
//	    p.nodeCounter.WithLabelValues(kind.String()).Inc()
//	    // ... record error state, etc.
//	}
type MetricsCollector interface {
	// RecordAllocGraph is called after each graph allocation.
	RecordAllocGraph()

	// RecordAllocNode is called after each node allocation attempt.
	// kind is the node kind, err is nil if successful.
	RecordAllocNode(kind NodeKind, err error)

	// RecordRootAdd is called after each root-set insertion attempt.
	RecordRootAdd(err error)

	// RecordRootRemove is called after each root-set removal attempt.
	RecordRootRemove(err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAllocGraph()               {}
func (NoopMetricsCollector) RecordAllocNode(NodeKind, error) {}
func (NoopMetricsCollector) RecordRootAdd(error)             {}
func (NoopMetricsCollector) RecordRootRemove(error)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GraphCount     atomic.Int64
	ApplyCount     atomic.Int64
	ParameterCount atomic.Int64
	ConstantCount  atomic.Int64
	NodeErrors     atomic.Int64
	RootAddCount   atomic.Int64
	RootRemoves    atomic.Int64
	RootErrors     atomic.Int64
}

// RecordAllocGraph implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocGraph() {
	b.GraphCount.Add(1)
}

// RecordAllocNode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocNode(kind NodeKind, err error) {
	if err != nil {
		b.NodeErrors.Add(1)
		return
	}
	switch kind {
	case NodeKindApply:
		b.ApplyCount.Add(1)
	case NodeKindParameter:
		b.ParameterCount.Add(1)
	case NodeKindConstant:
		b.ConstantCount.Add(1)
	}
}

// RecordRootAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRootAdd(err error) {
	if err != nil {
		b.RootErrors.Add(1)
		return
	}
	b.RootAddCount.Add(1)
}

// RecordRootRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRootRemove(err error) {
	if err != nil {
		b.RootErrors.Add(1)
		return
	}
	b.RootRemoves.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GraphCount:     b.GraphCount.Load(),
		ApplyCount:     b.ApplyCount.Load(),
		ParameterCount: b.ParameterCount.Load(),
		ConstantCount:  b.ConstantCount.Load(),
		NodeErrors:     b.NodeErrors.Load(),
		RootAddCount:   b.RootAddCount.Load(),
		RootRemoves:    b.RootRemoves.Load(),
		RootErrors:     b.RootErrors.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GraphCount     int64
	ApplyCount     int64
	ParameterCount int64
	ConstantCount  int64
	NodeErrors     int64
	RootAddCount   int64
	RootRemoves    int64
	RootErrors     int64
}
