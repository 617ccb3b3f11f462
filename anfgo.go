package anfgo

import (
	"fmt"
	"iter"

	"github.com/google/uuid"

	"github.com/hupe1980/anfgo/internal/arena"
)

// Manager is the sole allocator and owner of graphs and nodes. Every entity
// lives in one of the manager's stores for the manager's entire lifetime;
// handles created by one manager are meaningless to another.
//
// A Manager is not safe for concurrent mutation. Treat it as owned by one
// goroutine while building or rewriting; read-only queries on a finished
// region are safe to run concurrently with each other.
type Manager struct {
	id     string
	graphs *arena.Arena[graphData]
	nodes  *arena.Arena[nodeData]
	roots  *rootSet

	applies    uint64
	parameters uint64
	constants  uint64

	metrics MetricsCollector
	logger  *Logger
}

// New creates an empty Manager.
func New(optFns ...Option) *Manager {
	opts := applyOptions(optFns)

	var graphOpts []arena.Option
	if opts.graphCapacity > 0 {
		graphOpts = append(graphOpts, arena.WithCapacity(opts.graphCapacity))
	}

	var nodeOpts []arena.Option
	if opts.nodeCapacity > 0 {
		nodeOpts = append(nodeOpts, arena.WithCapacity(opts.nodeCapacity))
	}

	m := &Manager{
		id:      uuid.NewString(),
		graphs:  arena.New[graphData](graphOpts...),
		nodes:   arena.New[nodeData](nodeOpts...),
		roots:   newRootSet(),
		metrics: opts.metricsCollector,
	}
	m.logger = opts.logger.WithManager(m.id)

	return m
}

// ID returns the manager's unique identity, which tags all log output
// from this manager.
func (m *Manager) ID() string {
	return m.id
}

// derefGraph validates g against this manager and returns its entity.
func (m *Manager) derefGraph(g Graph) (*graphData, error) {
	if g.mgr == nil {
		return nil, &ErrStaleHandle{Entity: entityGraph, Slot: g.idx.Slot, Gen: g.idx.Gen}
	}
	if g.mgr != m {
		return nil, &ErrForeignHandle{Entity: entityGraph}
	}

	gd, err := m.graphs.Get(g.idx)
	if err != nil {
		return nil, translateError(entityGraph, err)
	}
	return gd, nil
}

// derefNode validates n against this manager and returns its entity.
func (m *Manager) derefNode(n Node) (*nodeData, error) {
	if n.mgr == nil {
		return nil, &ErrStaleHandle{Entity: entityNode, Slot: n.idx.Slot, Gen: n.idx.Gen}
	}
	if n.mgr != m {
		return nil, &ErrForeignHandle{Entity: entityNode}
	}

	nd, err := m.nodes.Get(n.idx)
	if err != nil {
		return nil, translateError(entityNode, err)
	}
	return nd, nil
}

// NewGraph allocates an empty graph: no parameters, no output, no flags.
func (m *Manager) NewGraph() Graph {
	idx := m.graphs.Insert(graphData{})
	g := Graph{mgr: m, idx: idx}

	m.metrics.RecordAllocGraph()
	m.logger.LogNewGraph(g)

	return g
}

// NewParameter allocates a parameter node owned by g and appends it to g's
// parameter list. Parameter order is the order of these calls.
func (m *Manager) NewParameter(g Graph) (Node, error) {
	gd, err := m.derefGraph(g)
	if err != nil {
		m.metrics.RecordAllocNode(NodeKindParameter, err)
		m.logger.LogNewNode(NodeKindParameter, Node{}, err)
		return Node{}, err
	}

	idx := m.nodes.Insert(nodeData{kind: NodeKindParameter, owner: g})
	n := Node{mgr: m, idx: idx}
	gd.parameters = append(gd.parameters, n)
	m.parameters++

	m.metrics.RecordAllocNode(NodeKindParameter, nil)
	m.logger.LogNewNode(NodeKindParameter, n, nil)

	return n, nil
}

// NewConstant allocates a constant node holding v. Constants are not owned
// by any graph and may be referenced from any apply in the manager.
func (m *Manager) NewConstant(v Value) Node {
	idx := m.nodes.Insert(nodeData{kind: NodeKindConstant, value: v})
	n := Node{mgr: m, idx: idx}
	m.constants++

	m.metrics.RecordAllocNode(NodeKindConstant, nil)
	m.logger.LogNewNode(NodeKindConstant, n, nil)

	return n
}

// NewApply allocates an application node in g referencing the given operands
// in order. By convention operand 0 is the applied operator; arity and types
// are not checked at this layer. The operand slice is copied. Every operand
// must be a live node of this manager; on failure nothing is allocated.
func (m *Manager) NewApply(g Graph, operands ...Node) (Node, error) {
	if _, err := m.derefGraph(g); err != nil {
		m.metrics.RecordAllocNode(NodeKindApply, err)
		m.logger.LogNewNode(NodeKindApply, Node{}, err)
		return Node{}, err
	}

	for _, op := range operands {
		if _, err := m.derefNode(op); err != nil {
			m.metrics.RecordAllocNode(NodeKindApply, err)
			m.logger.LogNewNode(NodeKindApply, Node{}, err)
			return Node{}, err
		}
	}

	ops := make([]Node, len(operands))
	copy(ops, operands)

	idx := m.nodes.Insert(nodeData{kind: NodeKindApply, owner: g, operands: ops})
	n := Node{mgr: m, idx: idx}
	m.applies++

	m.metrics.RecordAllocNode(NodeKindApply, nil)
	m.logger.LogNewNode(NodeKindApply, n, nil)

	return n, nil
}

// AddRoot marks n as an entry point of the program. Adding a node that is
// already a root is a no-op.
func (m *Manager) AddRoot(n Node) error {
	if _, err := m.derefNode(n); err != nil {
		m.metrics.RecordRootAdd(err)
		m.logger.LogRootAdd(n, err)
		return err
	}

	m.roots.Add(n.idx.Slot)

	m.metrics.RecordRootAdd(nil)
	m.logger.LogRootAdd(n, nil)

	return nil
}

// RemoveRoot unmarks n as an entry point. Removing a node that is not a root
// is a no-op. The node itself stays alive: the root set is bookkeeping for a
// future reachability pass, not a liveness mechanism.
func (m *Manager) RemoveRoot(n Node) error {
	if _, err := m.derefNode(n); err != nil {
		m.metrics.RecordRootRemove(err)
		m.logger.LogRootRemove(n, err)
		return err
	}

	m.roots.Remove(n.idx.Slot)

	m.metrics.RecordRootRemove(nil)
	m.logger.LogRootRemove(n, nil)

	return nil
}

// IsRoot reports whether n is currently a root of this manager.
func (m *Manager) IsRoot(n Node) bool {
	if !m.Contains(n) {
		return false
	}
	return m.roots.Contains(n.idx.Slot)
}

// NumRoots returns the number of roots.
func (m *Manager) NumRoots() int {
	return int(m.roots.Cardinality())
}

// Roots returns an iterator over the root nodes in ascending allocation
// order. The root set is snapshotted when Roots is called; later root
// changes do not affect the returned sequence.
func (m *Manager) Roots() iter.Seq[Node] {
	snapshot := m.roots.Clone()
	return func(yield func(Node) bool) {
		for slot := range snapshot.Iterator() {
			_, idx := m.nodes.At(slot)
			if !yield(Node{mgr: m, idx: idx}) {
				return
			}
		}
	}
}

// Contains reports whether n is a live node of this manager.
func (m *Manager) Contains(n Node) bool {
	return n.mgr == m && m.nodes.Contains(n.idx)
}

// ContainsGraph reports whether g is a live graph of this manager.
func (m *Manager) ContainsGraph(g Graph) bool {
	return g.mgr == m && m.graphs.Contains(g.idx)
}

// NumNodes returns the number of nodes ever allocated.
func (m *Manager) NumNodes() int {
	return m.nodes.Len()
}

// NumGraphs returns the number of graphs ever allocated.
func (m *Manager) NumGraphs() int {
	return m.graphs.Len()
}

// Nodes returns an iterator over all nodes in allocation order. The store
// length is snapshotted when Nodes is called; nodes allocated mid-iteration
// are not yielded.
func (m *Manager) Nodes() iter.Seq[Node] {
	count := uint32(m.nodes.Len())
	return func(yield func(Node) bool) {
		for slot := uint32(0); slot < count; slot++ {
			_, idx := m.nodes.At(slot)
			if !yield(Node{mgr: m, idx: idx}) {
				return
			}
		}
	}
}

// Graphs returns an iterator over all graphs in allocation order. The store
// length is snapshotted when Graphs is called.
func (m *Manager) Graphs() iter.Seq[Graph] {
	count := uint32(m.graphs.Len())
	return func(yield func(Graph) bool) {
		for slot := uint32(0); slot < count; slot++ {
			_, idx := m.graphs.At(slot)
			if !yield(Graph{mgr: m, idx: idx}) {
				return
			}
		}
	}
}

// Stats is a snapshot of manager contents.
type Stats struct {
	Graphs     uint64
	Nodes      uint64
	Applies    uint64
	Parameters uint64
	Constants  uint64
	Roots      uint64
}

// Stats returns a snapshot of the manager's contents.
func (m *Manager) Stats() Stats {
	return Stats{
		Graphs:     uint64(m.graphs.Len()),
		Nodes:      uint64(m.nodes.Len()),
		Applies:    m.applies,
		Parameters: m.parameters,
		Constants:  m.constants,
		Roots:      m.roots.Cardinality(),
	}
}

func (m *Manager) String() string {
	stats := m.Stats()
	return fmt.Sprintf(
		"Manager{graphs: %d, nodes: %d, applies: %d, parameters: %d, constants: %d, roots: %d}",
		stats.Graphs,
		stats.Nodes,
		stats.Applies,
		stats.Parameters,
		stats.Constants,
		stats.Roots,
	)
}
