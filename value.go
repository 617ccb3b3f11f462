package anfgo

import (
	"math"
	"strconv"
	"strings"
	"unique"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindNull represents a null value.
	KindNull
	// KindGraph represents a graph used as a value (a closure).
	KindGraph
	// KindPrimitive represents a named primitive operator.
	KindPrimitive
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a float value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindBool represents a boolean value.
	KindBool
	// KindTuple represents a tuple value.
	KindTuple
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindGraph:
		return "graph"
	case KindPrimitive:
		return "primitive"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindTuple:
		return "tuple"
	default:
		return "invalid"
	}
}

// Value is the payload of a constant node.
//
// The representation is a small tagged union: no reflection, no boxing of
// scalars, and interned strings so repeated operator names share storage.
// A Value is immutable once constructed; tuples are copied on the way in and
// on the way out.
type Value struct {
	Kind  Kind
	i64   int64
	f64   float64
	s     unique.Handle[string] // Private interned string
	b     bool
	g     Graph
	tuple []Value
}

// Null returns a null Value.
func Null() Value { return Value{Kind: KindNull} }

// GraphValue returns a Value holding a graph handle, the representation of a
// closure constant.
func GraphValue(g Graph) Value { return Value{Kind: KindGraph, g: g} }

// Primitive returns a Value naming a primitive operator.
func Primitive(name string) Value { return Value{Kind: KindPrimitive, s: unique.Make(name)} }

// Int returns an int64 Value.
func Int(v int64) Value { return Value{Kind: KindInt, i64: v} }

// Float returns a float64 Value.
func Float(v float64) Value { return Value{Kind: KindFloat, f64: v} }

// String returns a string Value.
func String(v string) Value { return Value{Kind: KindString, s: unique.Make(v)} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{Kind: KindBool, b: v} }

// Tuple returns a tuple Value. The elements are copied.
func Tuple(vs ...Value) Value {
	elems := make([]Value, len(vs))
	copy(elems, vs)
	return Value{Kind: KindTuple, tuple: elems}
}

// AsGraph returns the graph handle if Kind is KindGraph.
func (v Value) AsGraph() (Graph, bool) {
	if v.Kind != KindGraph {
		return Graph{}, false
	}
	return v.g, true
}

// AsPrimitive returns the primitive operator name if Kind is KindPrimitive.
func (v Value) AsPrimitive() (string, bool) {
	if v.Kind != KindPrimitive {
		return "", false
	}
	return v.interned(), true
}

// AsInt64 returns the int64 value if Kind is KindInt.
func (v Value) AsInt64() (int64, bool) {
	if v.Kind != KindInt {
		return 0, false
	}
	return v.i64, true
}

// AsFloat64 returns the float64 value if Kind is KindFloat.
func (v Value) AsFloat64() (float64, bool) {
	if v.Kind != KindFloat {
		return 0, false
	}
	return v.f64, true
}

// AsString returns the string value if Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.interned(), true
}

// AsBool returns the boolean value if Kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsTuple returns a copy of the tuple elements if Kind is KindTuple.
func (v Value) AsTuple() ([]Value, bool) {
	if v.Kind != KindTuple {
		return nil, false
	}
	elems := make([]Value, len(v.tuple))
	copy(elems, v.tuple)
	return elems, true
}

func (v Value) interned() string {
	if v.s == (unique.Handle[string]{}) {
		return ""
	}
	return v.s.Value()
}

// Equal reports whether two values are structurally equal. Graphs compare by
// handle identity, floats by exact bit pattern (NaN equals itself), tuples
// element-wise. Invalid values compare unequal.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}

	switch v.Kind {
	case KindNull:
		return true
	case KindGraph:
		return v.g == other.g
	case KindPrimitive, KindString:
		return v.s == other.s
	case KindInt:
		return v.i64 == other.i64
	case KindFloat:
		return math.Float64bits(v.f64) == math.Float64bits(other.f64)
	case KindBool:
		return v.b == other.b
	case KindTuple:
		if len(v.tuple) != len(other.tuple) {
			return false
		}
		for i := range v.tuple {
			if !v.tuple[i].Equal(other.tuple[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String returns a stable human-readable rendering for logs and debugging.
func (v Value) String() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindGraph:
		return v.g.String()
	case KindPrimitive:
		return v.interned()
	case KindInt:
		return strconv.FormatInt(v.i64, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f64, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.interned())
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindTuple:
		parts := make([]string, len(v.tuple))
		for i := range v.tuple {
			parts[i] = v.tuple[i].String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return "invalid"
	}
}
