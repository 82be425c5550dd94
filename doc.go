// Package typeforge compiles JSON-Schema-shaped documents into runtime
// model types whose instances validate and coerce input data and re-emit
// an equivalent JSON Schema via introspection.
//
// - Stable error model via Issues (JSON Pointer, code, message)
// - Semantic value types with parse-time coercion under kind/
// - Pluggable model construction via the ModelBuilder capability, with two
//   export dialects selected by Dialect
// - The recursive schema-to-model compiler under compiler/
//
// Design policy:
// - Keep only public contracts in the root package; value types live under
//   kind/, model construction under builder/, the compiler under compiler/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	doc, err := jsonschema.Decode(data)
//	model, err := compiler.Compile(doc)
//	inst, err := model.New(ctx, map[string]any{"name": "x"})
//	out, err := model.Schema()
package typeforge
