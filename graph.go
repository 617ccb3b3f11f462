package anfgo

import (
	"fmt"
	"maps"
	"slices"

	"github.com/hupe1980/anfgo/internal/arena"
)

// graphData is the stored graph entity. It is only ever reached through a
// validated handle.
type graphData struct {
	parameters []Node
	ret        Node
	flags      map[string]struct{}
	transforms map[string]Graph
}

// Graph is a handle to a function graph: an ordered parameter list, an
// optional return node, and uninterpreted string flags.
//
// Graph is a small comparable value. Two handles are equal exactly when they
// name the same graph in the same manager, so Graph works as a map key. The
// zero Graph is invalid.
type Graph struct {
	mgr *Manager
	idx arena.Index
}

// Manager returns the owning manager, or nil for the zero handle.
func (g Graph) Manager() *Manager {
	return g.mgr
}

// Valid reports whether g was issued by a manager.
func (g Graph) Valid() bool {
	return g.mgr != nil && g.idx.Valid()
}

func (g Graph) String() string {
	if !g.Valid() {
		return "graph(invalid)"
	}
	return fmt.Sprintf("graph(%s)", g.idx)
}

func (g Graph) data() (*graphData, error) {
	if g.mgr == nil {
		return nil, &ErrStaleHandle{Entity: entityGraph, Slot: g.idx.Slot, Gen: g.idx.Gen}
	}
	return g.mgr.derefGraph(g)
}

// Output returns the graph's return node, if one has been set.
func (g Graph) Output() (Node, bool) {
	gd, err := g.data()
	if err != nil || !gd.ret.Valid() {
		return Node{}, false
	}
	return gd.ret, true
}

// SetOutput designates n as the graph's return node, replacing any previous
// designation. Only the latest write is observable.
func (g Graph) SetOutput(n Node) error {
	gd, err := g.data()
	if err != nil {
		return err
	}
	if _, err := g.mgr.derefNode(n); err != nil {
		g.mgr.logger.LogSetOutput(g, n, err)
		return err
	}

	gd.ret = n
	g.mgr.logger.LogSetOutput(g, n, nil)

	return nil
}

// AddParameter allocates a parameter node owned by this graph and appends it
// to the parameter list. Shorthand for Manager.NewParameter.
func (g Graph) AddParameter() (Node, error) {
	if g.mgr == nil {
		return Node{}, &ErrStaleHandle{Entity: entityGraph, Slot: g.idx.Slot, Gen: g.idx.Gen}
	}
	return g.mgr.NewParameter(g)
}

// Apply allocates an application node in this graph. Shorthand for
// Manager.NewApply.
func (g Graph) Apply(operands ...Node) (Node, error) {
	if g.mgr == nil {
		return Node{}, &ErrStaleHandle{Entity: entityGraph, Slot: g.idx.Slot, Gen: g.idx.Gen}
	}
	return g.mgr.NewApply(g, operands...)
}

// Constant allocates a constant node holding v in the owning manager.
// Constants are manager-wide; the receiver names the manager and is
// validated like any other handle.
func (g Graph) Constant(v Value) (Node, error) {
	if _, err := g.data(); err != nil {
		return Node{}, err
	}
	return g.mgr.NewConstant(v), nil
}

// NumParameters returns the number of parameters.
func (g Graph) NumParameters() int {
	gd, err := g.data()
	if err != nil {
		return 0
	}
	return len(gd.parameters)
}

// Parameter returns the i-th parameter in declaration order.
func (g Graph) Parameter(i int) (Node, bool) {
	gd, err := g.data()
	if err != nil || i < 0 || i >= len(gd.parameters) {
		return Node{}, false
	}
	return gd.parameters[i], true
}

// Parameters returns a copy of the parameter list in declaration order.
func (g Graph) Parameters() []Node {
	gd, err := g.data()
	if err != nil {
		return nil
	}
	params := make([]Node, len(gd.parameters))
	copy(params, gd.parameters)
	return params
}

// SetFlag sets a named flag on the graph. Setting a flag that is already set
// is a no-op. Flags are uninterpreted at this layer; transformation passes
// assign them meaning.
func (g Graph) SetFlag(name string) error {
	gd, err := g.data()
	if err != nil {
		return err
	}

	if gd.flags == nil {
		gd.flags = make(map[string]struct{})
	}
	gd.flags[name] = struct{}{}

	return nil
}

// HasFlag reports whether the named flag is set.
func (g Graph) HasFlag(name string) bool {
	gd, err := g.data()
	if err != nil {
		return false
	}
	_, ok := gd.flags[name]
	return ok
}

// Flags returns the set flags in sorted order.
func (g Graph) Flags() []string {
	gd, err := g.data()
	if err != nil || len(gd.flags) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(gd.flags))
}

// SetTransform records a derived graph under the given name, replacing any
// previous entry. Passes use this to cache per-graph derivations (gradient,
// specialization) without recomputing them.
func (g Graph) SetTransform(name string, to Graph) error {
	gd, err := g.data()
	if err != nil {
		return err
	}
	if _, err := g.mgr.derefGraph(to); err != nil {
		return err
	}

	if gd.transforms == nil {
		gd.transforms = make(map[string]Graph)
	}
	gd.transforms[name] = to

	return nil
}

// Transform returns the derived graph recorded under name.
func (g Graph) Transform(name string) (Graph, bool) {
	gd, err := g.data()
	if err != nil {
		return Graph{}, false
	}
	to, ok := gd.transforms[name]
	return to, ok
}

// Transforms returns the recorded transform names in sorted order.
func (g Graph) Transforms() []string {
	gd, err := g.data()
	if err != nil || len(gd.transforms) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(gd.transforms))
}
