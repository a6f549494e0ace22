// Package docdiff computes structural diffs between documents.
//
// Key sequences are mapped to runes and run through diffmatchpatch, so
// reordered, inserted and deleted keys are detected positionally; keys
// present on both sides diff by value, recursing into nested objects.
package docdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/jsondoc/ir"
)

// Diff returns a document describing where from and to disagree, or nil
// when they are equal. Each differing key maps to an object holding the
// "from" and "to" sides, whichever of the two exist; nested objects
// recurse instead.
func Diff(from, to *ir.Document) *ir.Document {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapKeysTo(fieldMap, runeMap, from)
	toRunes := mapKeysTo(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	res := ir.New()
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				key := runeMap[r]
				res.Set(key, change(from.Get(key), nil))
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				key := runeMap[r]
				if d := valueDiff(from.Get(key), to.Get(key)); d != nil {
					res.Set(key, d)
				}
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				key := runeMap[r]
				res.Set(key, change(nil, to.Get(key)))
			}
		}
	}
	if res.Len() == 0 {
		return nil
	}
	return res
}

func valueDiff(from, to *ir.Value) *ir.Value {
	if ir.Equal(from, to) {
		return nil
	}
	if from != nil && to != nil && from.Type == ir.ObjectType && to.Type == ir.ObjectType {
		d := Diff(from.Doc, to.Doc)
		if d == nil {
			return nil
		}
		return ir.FromDocument(d)
	}
	return change(from, to)
}

func change(from, to *ir.Value) *ir.Value {
	d := ir.New()
	if from != nil {
		d.Set("from", from.Clone())
	}
	if to != nil {
		d.Set("to", to.Clone())
	}
	return ir.FromDocument(d)
}

func mapKeysTo(m map[string]rune, im map[rune]string, doc *ir.Document) []rune {
	keys := doc.Keys()
	rs := make([]rune, len(keys))
	for i, f := range keys {
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}
