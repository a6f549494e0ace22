// Package registry maps type identifier strings to codecs for
// application types embedded in JSON objects.
//
// A serialized application value is an ordinary JSON object carrying the
// reserved Discriminator key ("-x") whose value is the type identifier.
// On parse the discriminator is consumed and the remaining fields decoded
// through the registered codec; on encode the codec's document is emitted
// with the discriminator injected. A Registry is passed explicitly to
// parse and encode calls; there is no process-wide registry.
//
// Lookups are safe for concurrent use. Registration is expected to happen
// at startup, before parsing begins.
package registry

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/signadot/jsondoc/ir"
)

// Discriminator is the reserved key naming the type of a serialized
// application value. A user field literally named "-x" collides with it;
// the collision is inherited from the wire format and not special-cased.
const Discriminator = "-x"

// Codec serializes and reconstructs one application type.
type Codec interface {
	// ID returns the type identifier written under the discriminator key.
	ID() string
	// GoType returns the Go type the codec produces and consumes.
	GoType() reflect.Type
	// Encode renders an application value as a document, without the
	// discriminator key.
	Encode(v any) (*ir.Document, error)
	// Decode reconstructs an application value from a document with the
	// discriminator key already removed.
	Decode(d *ir.Document) (any, error)
}

type Registry struct {
	mu   sync.RWMutex
	byID map[string]Codec
	byGo map[reflect.Type]Codec
}

func New() *Registry {
	return &Registry{
		byID: map[string]Codec{},
		byGo: map[reflect.Type]Codec{},
	}
}

func (r *Registry) Register(c Codec) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[c.ID()]; ok {
		return fmt.Errorf("identifier %q already registered", c.ID())
	}
	r.byID[c.ID()] = c
	r.byGo[c.GoType()] = c
	return nil
}

// Lookup resolves a type identifier to its codec.
func (r *Registry) Lookup(id string) (Codec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	return c, ok
}

// CodecFor resolves an application value to its codec by Go type.
func (r *Registry) CodecFor(v any) (Codec, bool) {
	t := reflect.TypeOf(v)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byGo[t]
	return c, ok
}

// IdentifierFor returns the identifier registered for v's Go type.
func (r *Registry) IdentifierFor(v any) (string, bool) {
	c, ok := r.CodecFor(v)
	if !ok {
		return "", false
	}
	return c.ID(), true
}

// ValueOf wraps an application value as a typed value, resolving its
// identifier by Go type.
func (r *Registry) ValueOf(v any) (*ir.Value, error) {
	id, ok := r.IdentifierFor(v)
	if !ok {
		return nil, fmt.Errorf("no codec registered for %T", v)
	}
	return ir.FromTyped(id, v), nil
}
