package ir

import (
	"testing"
)

func kv(pairs ...any) *Document {
	d := New()
	for i := 0; i < len(pairs); i += 2 {
		d.Set(pairs[i].(string), pairs[i+1].(*Value))
	}
	return d
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Value
		expected int
	}{
		// Type Ranking: Null < Bool < Number < String < Array < Object < Typed
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < String", FromInt(1), FromString("a"), -1},
		{"String < Array", FromString("a"), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), FromDocument(New()), -1},
		{"Object < Typed", FromDocument(New()), FromTyped("t", 1), -1},

		// Bool Comparison
		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},

		// Number Comparison: widths sub-rank Int32 < Int64 < Float64 < Float32
		{"Int32 < Int64", FromInt32(5), FromInt64(5), -1},
		{"Int64 < Float64", FromInt64(5), FromFloat(5), -1},
		{"Float64 < Float32", FromFloat(5), FromFloat32(5), -1},
		{"Int32 < Int32", FromInt32(1), FromInt32(2), -1},
		{"Float64 < Float64", FromFloat(1.5), FromFloat(2.5), -1},
		{"Int32 == Int32", FromInt32(7), FromInt32(7), 0},

		// String Comparison
		{"String < String", FromString("a"), FromString("b"), -1},
		{"String == String", FromString("a"), FromString("a"), 0},

		// Array Comparison
		{"Empty Array == Empty Array", FromSlice(nil), FromSlice(nil), 0},
		{"Short Array < Long Array", FromSlice([]*Value{FromInt(1)}), FromSlice([]*Value{FromInt(1), FromInt(2)}), -1},
		{"Array Element Comparison", FromSlice([]*Value{FromInt(1)}), FromSlice([]*Value{FromInt(2)}), -1},

		// Object Comparison
		{"Empty Object == Empty Object", FromDocument(New()), FromDocument(New()), 0},
		{"Short Object < Long Object",
			FromDocument(kv("a", FromInt(1))),
			FromDocument(kv("a", FromInt(1), "b", FromInt(2))),
			-1},
		{"Object Key Comparison",
			FromDocument(kv("a", FromInt(1))),
			FromDocument(kv("b", FromInt(1))),
			-1},
		{"Object Value Comparison",
			FromDocument(kv("a", FromInt(1))),
			FromDocument(kv("a", FromInt(2))),
			-1},
		{"Object Insertion Order Significant",
			FromDocument(kv("a", FromInt(1), "b", FromInt(2))),
			FromDocument(kv("b", FromInt(2), "a", FromInt(1))),
			-1},

		// Typed Comparison
		{"Typed by ID", FromTyped("a.T", 1), FromTyped("b.T", 1), -1},
		{"Typed equal", FromTyped("a.T", 1), FromTyped("a.T", 1), 0},

		// Nil handling
		{"nil < value", nil, Null(), -1},
		{"nil == nil", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

func TestEqualWidthSensitive(t *testing.T) {
	if Equal(FromInt32(5), FromInt64(5)) {
		t.Error("Int32(5) == Int64(5), want width-sensitive inequality")
	}
	if Equal(FromFloat(5), FromInt32(5)) {
		t.Error("Float64(5) == Int32(5), want width-sensitive inequality")
	}
}
