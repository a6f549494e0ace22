package parse

import "github.com/signadot/jsondoc/registry"

type parseOpts struct {
	reg *registry.Registry
}

type Option func(*parseOpts)

// WithRegistry resolves discriminated objects through reg. Objects whose
// identifier is not registered stay plain objects.
func WithRegistry(reg *registry.Registry) Option {
	return func(o *parseOpts) { o.reg = reg }
}
