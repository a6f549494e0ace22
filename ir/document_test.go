package ir

import (
	"slices"
	"testing"
)

func TestDocumentOrder(t *testing.T) {
	d := New()
	d.Set("b", FromInt(1))
	d.Set("a", FromInt(2))
	d.Set("c", FromInt(3))
	if got, want := d.Keys(), []string{"b", "a", "c"}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	// overwrite keeps position
	d.Set("a", FromInt(9))
	if got, want := d.Keys(), []string{"b", "a", "c"}; !slices.Equal(got, want) {
		t.Errorf("Keys() after overwrite = %v, want %v", got, want)
	}
	if got := d.Get("a"); got.Int32 == nil || *got.Int32 != 9 {
		t.Errorf("Get(a) = %v, want 9", got)
	}
}

func TestDocumentSetFront(t *testing.T) {
	d := New()
	d.Set("a", FromInt(1))
	d.Set("b", FromInt(2))
	d.SetFront("x", FromString("t"))
	if got, want := d.Keys(), []string{"x", "a", "b"}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	// existing key keeps its position
	d.SetFront("b", FromInt(3))
	if got, want := d.Keys(), []string{"x", "a", "b"}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestDocumentDelete(t *testing.T) {
	d := New()
	d.Set("a", FromInt(1))
	d.Set("b", FromInt(2))
	if !d.Delete("a") {
		t.Error("Delete(a) = false, want true")
	}
	if d.Delete("a") {
		t.Error("second Delete(a) = true, want false")
	}
	if d.Has("a") {
		t.Error("Has(a) after delete")
	}
	if got, want := d.Keys(), []string{"b"}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestDocumentFromMap(t *testing.T) {
	d := FromMap(map[string]*Value{
		"c": FromInt(3),
		"a": FromInt(1),
		"b": FromInt(2),
	})
	if got, want := d.Keys(), []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestDocumentClone(t *testing.T) {
	d := New()
	inner := New()
	inner.Set("k", FromString("v"))
	d.Set("o", FromDocument(inner))
	c := d.Clone()
	c.Get("o").Doc.Set("k", FromString("w"))
	if got := d.Get("o").Doc.Get("k").String; got != "v" {
		t.Errorf("clone mutation leaked, original k = %q", got)
	}
	if !EqualDocuments(d, d.Clone()) {
		t.Error("clone not equal to original")
	}
}

func TestValueClone(t *testing.T) {
	v := FromSlice([]*Value{FromInt(1), FromFloat(2.5), Null()})
	c := v.Clone()
	*c.Values[0].Int32 = 9
	if *v.Values[0].Int32 != 1 {
		t.Error("clone shares number storage")
	}
	if !Equal(v, v.Clone()) {
		t.Error("clone not equal to original")
	}
}
