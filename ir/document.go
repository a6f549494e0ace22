package ir

import (
	"maps"
	"slices"
)

// Document is an insertion-ordered mapping from string keys to Values.
// Keys are unique; Set on an existing key overwrites in place without
// moving the key.
type Document struct {
	keys []string
	vals map[string]*Value
}

func New() *Document {
	return &Document{vals: map[string]*Value{}}
}

// FromMap copies an existing mapping into a Document. Go maps carry no
// order, so keys are sorted to make the result deterministic.
func FromMap(m map[string]*Value) *Document {
	d := &Document{
		keys: slices.Sorted(maps.Keys(m)),
		vals: make(map[string]*Value, len(m)),
	}
	for k, v := range m {
		d.vals[k] = v
	}
	return d
}

func (d *Document) Len() int {
	return len(d.keys)
}

// Keys returns the keys in insertion order. The slice is a copy.
func (d *Document) Keys() []string {
	return slices.Clone(d.keys)
}

func (d *Document) Has(key string) bool {
	_, ok := d.vals[key]
	return ok
}

// Get returns the value for key, or nil if absent.
func (d *Document) Get(key string) *Value {
	return d.vals[key]
}

func (d *Document) Set(key string, v *Value) {
	if _, ok := d.vals[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = v
}

// SetFront behaves like Set but places a new key before all existing
// keys. An existing key keeps its position.
func (d *Document) SetFront(key string, v *Value) {
	if _, ok := d.vals[key]; !ok {
		d.keys = append([]string{key}, d.keys...)
	}
	d.vals[key] = v
}

// Delete removes key and reports whether it was present.
func (d *Document) Delete(key string) bool {
	if _, ok := d.vals[key]; !ok {
		return false
	}
	delete(d.vals, key)
	i := slices.Index(d.keys, key)
	d.keys = slices.Delete(d.keys, i, i+1)
	return true
}

// Visit calls f for each key/value pair in insertion order, stopping at
// the first error.
func (d *Document) Visit(f func(key string, v *Value) error) error {
	for _, k := range d.keys {
		if err := f(k, d.vals[k]); err != nil {
			return err
		}
	}
	return nil
}

func (d *Document) Clone() *Document {
	res := &Document{
		keys: slices.Clone(d.keys),
		vals: make(map[string]*Value, len(d.vals)),
	}
	for k, v := range d.vals {
		res.vals[k] = v.Clone()
	}
	return res
}
