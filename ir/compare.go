package ir

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}
	switch a.Type {
	case NullType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareDocuments(a.Doc, b.Doc)
	case TypedType:
		return compareTyped(a, b)
	}
	return 0
}

// Equal reports whether two values are structurally equal, with array
// order, document insertion order, and numeric width all significant.
func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

// EqualDocuments reports whether two documents hold equal values under
// equal keys in the same insertion order.
func EqualDocuments(a, b *Document) bool {
	return compareDocuments(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Array < Object < Typed.
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	case TypedType:
		return 6
	}
	return 100
}

func compareNumbers(a, b *Value) int {
	// Sub-rank by width: Int32 < Int64 < Float64 < Float32, matching the
	// scalar fallback order. Widths never compare equal across kinds, so
	// a 5 parsed narrow is not equal to a 5 stored wide.
	subRankA := numberSubRank(a)
	subRankB := numberSubRank(b)
	if subRankA != subRankB {
		return cmp.Compare(subRankA, subRankB)
	}
	switch {
	case a.Int32 != nil:
		return cmp.Compare(*a.Int32, *b.Int32)
	case a.Int64 != nil:
		return cmp.Compare(*a.Int64, *b.Int64)
	case a.Float64 != nil:
		return cmp.Compare(*a.Float64, *b.Float64)
	case a.Float32 != nil:
		return cmp.Compare(*a.Float32, *b.Float32)
	}
	return 0
}

func numberSubRank(v *Value) int {
	switch {
	case v.Int32 != nil:
		return 0
	case v.Int64 != nil:
		return 1
	case v.Float64 != nil:
		return 2
	case v.Float32 != nil:
		return 3
	}
	return 4
}

func compareArrays(a, b *Value) int {
	n := min(len(a.Values), len(b.Values))
	for i := 0; i < n; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Values), len(b.Values))
}

func compareDocuments(a, b *Document) int {
	if a == nil || b == nil {
		if a == b {
			return 0
		}
		if a == nil {
			return -1
		}
		return 1
	}
	n := min(len(a.keys), len(b.keys))
	for i := 0; i < n; i++ {
		if c := strings.Compare(a.keys[i], b.keys[i]); c != 0 {
			return c
		}
		if c := Compare(a.vals[a.keys[i]], b.vals[b.keys[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.keys), len(b.keys))
}

func compareTyped(a, b *Value) int {
	if c := strings.Compare(a.TypeID, b.TypeID); c != 0 {
		return c
	}
	if reflect.DeepEqual(a.App, b.App) {
		return 0
	}
	// Application values have no intrinsic order; their default text
	// representation gives a stable one.
	return strings.Compare(fmt.Sprint(a.App), fmt.Sprint(b.App))
}
