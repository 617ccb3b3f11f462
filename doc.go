// Package anfgo provides the graph substrate for compiler intermediate
// representations in A-Normal Form.
//
// A whole program is a set of graphs owned by a single Manager. Each graph is
// a function: an ordered list of parameter nodes plus a designated return
// node. Every computation step is an application node referencing its
// operands by identity, with operand 0 holding the applied operator. Graphs
// appear as constant values inside other graphs, which is how closures and
// higher-order structure are represented.
//
// # Handles
//
// The Manager is the sole allocator. It hands out small copyable Graph and
// Node handles instead of pointers; entities live in append-only generational
// stores, so a handle stays dereferenceable for the manager's entire
// lifetime and later allocations never invalidate it. Handle equality is
// entity identity, and handles work as map keys. A forged or foreign handle
// fails loudly on mutation and degrades to "absent" on queries.
//
// # Quick Start
//
// Build f(x, y) = add(x, y):
//
//	mng := anfgo.New()
//
//	f := mng.NewGraph()
//	x, _ := f.AddParameter()
//	y, _ := f.AddParameter()
//
//	add := mng.NewConstant(anfgo.Primitive("add"))
//	sum, _ := f.Apply(add, x, y)
//	_ = f.SetOutput(sum)
//
//	_ = mng.AddRoot(sum)
//
// Traverse a node's inputs:
//
//	for op := range sum.Incoming() {
//	    fmt.Println(op)
//	}
//
// # Mutability Model
//
// Construction is monotonic: nodes and graphs are added, never destroyed or
// rewritten in place. An application's operand list and a constant's payload
// are fixed at creation. The only revisable state is a graph's return node,
// its parameter list (append-only), flags, transforms, and the manager's
// root set. Read accessors return owned copies, never live views into
// internal storage.
//
// # Concurrency Model
//
// A Manager must be treated as owned by one goroutine while it is being
// mutated. Read-only queries on an already-built region are safe to run
// concurrently with each other.
//
// # Key Features
//
//   - Append-only generational stores with stale-handle detection
//   - Apply / Parameter / Constant nodes with ordered operand lists
//   - Graphs as first-class constant values (closures)
//   - Root-set bookkeeping for later reachability passes
//   - Per-graph string flags and named transform caching
//   - Structured logging (log/slog) and pluggable metrics
package anfgo
