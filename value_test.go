package anfgo

import (
	"math"
	"testing"
)

func TestValueKinds(t *testing.T) {
	mng := New()
	g := mng.NewGraph()

	tests := []struct {
		name  string
		value Value
		want  Kind
	}{
		{name: "zero value", value: Value{}, want: KindInvalid},
		{name: "null", value: Null(), want: KindNull},
		{name: "graph", value: GraphValue(g), want: KindGraph},
		{name: "primitive", value: Primitive("add"), want: KindPrimitive},
		{name: "int", value: Int(42), want: KindInt},
		{name: "float", value: Float(3.5), want: KindFloat},
		{name: "string", value: String("hello"), want: KindString},
		{name: "bool", value: Bool(true), want: KindBool},
		{name: "tuple", value: Tuple(Int(1), Bool(false)), want: KindTuple},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value.Kind != tt.want {
				t.Errorf("expected kind %s, got %s", tt.want, tt.value.Kind)
			}
		})
	}
}

func TestValueAccessors(t *testing.T) {
	mng := New()
	g := mng.NewGraph()

	t.Run("graph", func(t *testing.T) {
		got, ok := GraphValue(g).AsGraph()
		if !ok || got != g {
			t.Errorf("expected %v, got %v (ok=%v)", g, got, ok)
		}
		if _, ok := Int(1).AsGraph(); ok {
			t.Error("expected AsGraph=false for int value")
		}
	})

	t.Run("primitive", func(t *testing.T) {
		got, ok := Primitive("add").AsPrimitive()
		if !ok || got != "add" {
			t.Errorf("expected add, got %q (ok=%v)", got, ok)
		}
		if _, ok := String("add").AsPrimitive(); ok {
			t.Error("expected AsPrimitive=false for string value")
		}
	})

	t.Run("int", func(t *testing.T) {
		got, ok := Int(-7).AsInt64()
		if !ok || got != -7 {
			t.Errorf("expected -7, got %d (ok=%v)", got, ok)
		}
		if _, ok := Float(1).AsInt64(); ok {
			t.Error("expected AsInt64=false for float value")
		}
	})

	t.Run("float", func(t *testing.T) {
		got, ok := Float(2.25).AsFloat64()
		if !ok || got != 2.25 {
			t.Errorf("expected 2.25, got %f (ok=%v)", got, ok)
		}
		if _, ok := Int(1).AsFloat64(); ok {
			t.Error("expected AsFloat64=false for int value")
		}
	})

	t.Run("string", func(t *testing.T) {
		got, ok := String("hi").AsString()
		if !ok || got != "hi" {
			t.Errorf("expected hi, got %q (ok=%v)", got, ok)
		}
		if _, ok := Primitive("hi").AsString(); ok {
			t.Error("expected AsString=false for primitive value")
		}
	})

	t.Run("bool", func(t *testing.T) {
		got, ok := Bool(true).AsBool()
		if !ok || !got {
			t.Errorf("expected true, got %v (ok=%v)", got, ok)
		}
		if _, ok := Null().AsBool(); ok {
			t.Error("expected AsBool=false for null value")
		}
	})

	t.Run("tuple", func(t *testing.T) {
		elems, ok := Tuple(Int(1), String("x")).AsTuple()
		if !ok || len(elems) != 2 {
			t.Fatalf("expected 2 elements, got %d (ok=%v)", len(elems), ok)
		}
		if v, _ := elems[0].AsInt64(); v != 1 {
			t.Errorf("expected first element 1, got %d", v)
		}
		if _, ok := Null().AsTuple(); ok {
			t.Error("expected AsTuple=false for null value")
		}
	})
}

func TestValueEqual(t *testing.T) {
	mng := New()
	g1 := mng.NewGraph()
	g2 := mng.NewGraph()

	tests := []struct {
		name string
		a    Value
		b    Value
		want bool
	}{
		{name: "null equals null", a: Null(), b: Null(), want: true},
		{name: "different kinds", a: Int(1), b: Float(1), want: false},
		{name: "same int", a: Int(5), b: Int(5), want: true},
		{name: "different int", a: Int(5), b: Int(6), want: false},
		{name: "same float", a: Float(1.5), b: Float(1.5), want: true},
		{name: "NaN equals itself", a: Float(math.NaN()), b: Float(math.NaN()), want: true},
		{name: "positive and negative zero differ", a: Float(0), b: Float(math.Copysign(0, -1)), want: false},
		{name: "same primitive", a: Primitive("add"), b: Primitive("add"), want: true},
		{name: "different primitive", a: Primitive("add"), b: Primitive("mul"), want: false},
		{name: "primitive is not string", a: Primitive("add"), b: String("add"), want: false},
		{name: "same string", a: String("x"), b: String("x"), want: true},
		{name: "same bool", a: Bool(true), b: Bool(true), want: true},
		{name: "different bool", a: Bool(true), b: Bool(false), want: false},
		{name: "same graph handle", a: GraphValue(g1), b: GraphValue(g1), want: true},
		{name: "different graph handles", a: GraphValue(g1), b: GraphValue(g2), want: false},
		{name: "equal tuples", a: Tuple(Int(1), Bool(true)), b: Tuple(Int(1), Bool(true)), want: true},
		{name: "tuple length mismatch", a: Tuple(Int(1)), b: Tuple(Int(1), Int(2)), want: false},
		{name: "tuple element mismatch", a: Tuple(Int(1)), b: Tuple(Int(2)), want: false},
		{name: "nested tuples", a: Tuple(Tuple(Int(1)), Null()), b: Tuple(Tuple(Int(1)), Null()), want: true},
		{name: "empty tuples", a: Tuple(), b: Tuple(), want: true},
		{name: "invalid never equals", a: Value{}, b: Value{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal(%s, %s): expected %v, got %v", tt.a, tt.b, tt.want, got)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal(%s, %s): expected %v, got %v", tt.b, tt.a, tt.want, got)
			}
		})
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{name: "invalid", value: Value{}, want: "invalid"},
		{name: "null", value: Null(), want: "null"},
		{name: "primitive", value: Primitive("add"), want: "add"},
		{name: "int", value: Int(-3), want: "-3"},
		{name: "float", value: Float(2.5), want: "2.5"},
		{name: "string quoted", value: String("hi"), want: `"hi"`},
		{name: "bool", value: Bool(false), want: "false"},
		{name: "tuple", value: Tuple(Int(1), String("x")), want: `(1, "x")`},
		{name: "empty tuple", value: Tuple(), want: "()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTupleIsolation(t *testing.T) {
	elems := []Value{Int(1), Int(2)}
	v := Tuple(elems...)

	// Mutating the source slice must not affect the stored tuple.
	elems[0] = Int(99)
	got, _ := v.AsTuple()
	if n, _ := got[0].AsInt64(); n != 1 {
		t.Errorf("tuple aliased its input: got %d", n)
	}

	// Mutating the returned slice must not affect later reads.
	got[1] = Null()
	again, _ := v.AsTuple()
	if n, _ := again[1].AsInt64(); n != 2 {
		t.Errorf("tuple aliased its output: got %v", again[1])
	}
}
