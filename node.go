package anfgo

import (
	"fmt"
	"iter"

	"github.com/hupe1980/anfgo/internal/arena"
)

// NodeKind identifies the structural kind of a node.
type NodeKind uint8

const (
	// NodeKindInvalid is reported by handles that do not resolve.
	NodeKindInvalid NodeKind = iota
	// NodeKindApply is a function application.
	NodeKindApply
	// NodeKindParameter is a formal parameter of a graph.
	NodeKindParameter
	// NodeKindConstant is a literal or closure payload.
	NodeKindConstant
)

// String returns the kind name.
func (k NodeKind) String() string {
	switch k {
	case NodeKindApply:
		return "apply"
	case NodeKindParameter:
		return "parameter"
	case NodeKindConstant:
		return "constant"
	default:
		return "invalid"
	}
}

// nodeData is the stored node entity. The kind, operand list, and constant
// payload are fixed at creation and never mutated afterwards.
type nodeData struct {
	kind     NodeKind
	owner    Graph
	operands []Node
	value    Value
}

// Node is a handle to a single node: an application, a parameter, or a
// constant. Exactly one of the kind predicates holds for every allocated
// node.
//
// Node is a small comparable value. Two handles are equal exactly when they
// name the same node in the same manager, so Node works as a map key and
// handle equality is node identity. The zero Node is invalid.
type Node struct {
	mgr *Manager
	idx arena.Index
}

// Manager returns the owning manager, or nil for the zero handle.
func (n Node) Manager() *Manager {
	return n.mgr
}

// Valid reports whether n was issued by a manager.
func (n Node) Valid() bool {
	return n.mgr != nil && n.idx.Valid()
}

func (n Node) String() string {
	nd, err := n.data()
	if err != nil {
		return "node(invalid)"
	}
	return fmt.Sprintf("%s(%s)", nd.kind, n.idx)
}

func (n Node) data() (*nodeData, error) {
	if n.mgr == nil {
		return nil, &ErrStaleHandle{Entity: entityNode, Slot: n.idx.Slot, Gen: n.idx.Gen}
	}
	return n.mgr.derefNode(n)
}

// Kind returns the node's structural kind. Handles that do not resolve
// report NodeKindInvalid.
func (n Node) Kind() NodeKind {
	nd, err := n.data()
	if err != nil {
		return NodeKindInvalid
	}
	return nd.kind
}

// IsApply reports whether n is an application node.
func (n Node) IsApply() bool {
	return n.Kind() == NodeKindApply
}

// IsParameter reports whether n is a parameter node.
func (n Node) IsParameter() bool {
	return n.Kind() == NodeKindParameter
}

// IsConstant reports whether n is a constant node.
func (n Node) IsConstant() bool {
	return n.Kind() == NodeKindConstant
}

// IsCall reports whether n is an application whose operator position
// (operand 0) holds a constant equal to op. This is the narrowing pattern
// rewrites use to find calls to a specific operator.
func (n Node) IsCall(op Value) bool {
	nd, err := n.data()
	if err != nil || nd.kind != NodeKindApply || len(nd.operands) == 0 {
		return false
	}
	v, ok := nd.operands[0].Value()
	if !ok {
		return false
	}
	return v.Equal(op)
}

// IsConstantKind reports whether n is a constant whose payload kind is k.
func (n Node) IsConstantKind(k Kind) bool {
	v, ok := n.Value()
	return ok && v.Kind == k
}

// IsConstantGraph reports whether n is a constant holding a graph, the
// representation of a closure reference.
func (n Node) IsConstantGraph() bool {
	return n.IsConstantKind(KindGraph)
}

// Value returns the constant payload. The bool is false for non-constant
// nodes and for handles that do not resolve; asking is routine, not an
// error.
func (n Node) Value() (Value, bool) {
	nd, err := n.data()
	if err != nil || nd.kind != NodeKindConstant {
		return Value{}, false
	}
	return nd.value, true
}

// Owner returns the graph an application or parameter node belongs to.
// Constants are manager-wide and have no owner.
func (n Node) Owner() (Graph, bool) {
	nd, err := n.data()
	if err != nil || !nd.owner.Valid() {
		return Graph{}, false
	}
	return nd.owner, true
}

// NumOperands returns the operand count. Non-apply nodes have no operands.
func (n Node) NumOperands() int {
	nd, err := n.data()
	if err != nil {
		return 0
	}
	return len(nd.operands)
}

// Operand returns the i-th operand in call order. Operand 0 is the applied
// operator by convention.
func (n Node) Operand(i int) (Node, bool) {
	nd, err := n.data()
	if err != nil || i < 0 || i >= len(nd.operands) {
		return Node{}, false
	}
	return nd.operands[i], true
}

// Operands returns a copy of the operand list in call order. Non-apply
// nodes return nil.
func (n Node) Operands() []Node {
	nd, err := n.data()
	if err != nil || len(nd.operands) == 0 {
		return nil
	}
	ops := make([]Node, len(nd.operands))
	copy(ops, nd.operands)
	return ops
}

// Incoming returns an iterator over the nodes flowing into n: the operands
// of an application, in call order. Parameter and constant nodes yield
// nothing, as do handles that do not resolve.
//
// The operand list is snapshotted when Incoming is called, never borrowed:
// the returned sequence can be ranged any number of times, replays the same
// snapshot each time, and stays safe to consume alongside other read-only
// queries.
func (n Node) Incoming() iter.Seq[Node] {
	ops := n.Operands()
	return func(yield func(Node) bool) {
		for _, op := range ops {
			if !yield(op) {
				return
			}
		}
	}
}
