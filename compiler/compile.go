// Package compiler walks a JSON Schema document tree, resolves $ref
// definitions against the root definitions table, maps schema node shapes to
// semantic value types, and assembles runtime model types through an
// injected ModelBuilder.
//
// The transform is pure and re-entrant: the only state threaded through the
// recursion is the read-only definitions table and the builder chosen once
// per top-level call. Recursion depth is bounded only by schema nesting;
// cyclic $ref chains with no terminating primitive recurse until the stack
// is exhausted.
package compiler

import (
	"fmt"

	typeforge "github.com/typeforge/typeforge"
	"github.com/typeforge/typeforge/builder"
	js "github.com/typeforge/typeforge/jsonschema"
)

// Option configures one top-level compilation.
type Option func(*options)

type options struct {
	builder typeforge.ModelBuilder
	defs    map[string]*js.Schema
}

// WithDialect selects the export dialect of the built-in model builder.
func WithDialect(d typeforge.Dialect) Option {
	return func(o *options) { o.builder = builder.New(d) }
}

// WithBuilder injects a custom model-builder capability, overriding any
// dialect selection.
func WithBuilder(b typeforge.ModelBuilder) Option {
	return func(o *options) {
		if b != nil {
			o.builder = b
		}
	}
}

// WithDefinitions supplies an external definitions table instead of deriving
// one from the document root.
func WithDefinitions(defs map[string]*js.Schema) Option {
	return func(o *options) { o.defs = defs }
}

// Compile translates a decoded schema document into a Model. The definitions
// table is collected once from the root ($defs before the legacy definitions
// key) unless supplied via WithDefinitions.
func Compile(s *js.Schema, opts ...Option) (typeforge.Model, error) {
	if s == nil {
		return nil, fmt.Errorf("compiler: nil schema")
	}
	o := options{builder: builder.Modern()}
	for _, opt := range opts {
		opt(&o)
	}
	defs := o.defs
	if defs == nil {
		defs = s.DefinitionsTable()
	}
	c := &compilation{defs: defs, builder: o.builder}
	return c.assemble(s)
}

// CompileBytes decodes a JSON document and compiles it.
func CompileBytes(data []byte, opts ...Option) (typeforge.Model, error) {
	s, err := js.Decode(data)
	if err != nil {
		return nil, err
	}
	return Compile(s, opts...)
}

// CompileYAML decodes a YAML-authored document and compiles it.
func CompileYAML(data []byte, opts ...Option) (typeforge.Model, error) {
	s, err := js.DecodeYAML(data)
	if err != nil {
		return nil, err
	}
	return Compile(s, opts...)
}

// CompileLenient repairs malformed JSON before decoding and compiling.
func CompileLenient(data []byte, opts ...Option) (typeforge.Model, error) {
	s, err := js.DecodeLenient(data)
	if err != nil {
		return nil, err
	}
	return Compile(s, opts...)
}

// MustCompile is Compile that panics on error, for fixed schemas in tests
// and package initialization.
func MustCompile(s *js.Schema, opts ...Option) typeforge.Model {
	m, err := Compile(s, opts...)
	if err != nil {
		panic(err)
	}
	return m
}
