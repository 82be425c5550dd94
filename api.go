package typeforge

import (
	"bytes"
	"context"

	json "github.com/goccy/go-json"

	js "github.com/typeforge/typeforge/jsonschema"
)

// Type is a semantic value type: it coerces and validates one value and can
// re-emit the JSON Schema node it was compiled from.
type Type interface {
	// Parse transforms an unknown input into the type's canonical Go carrier
	// (string, float64, int64, bool, []any, map[string]any, nil). It returns
	// an Issues error when the input cannot be coerced.
	Parse(ctx context.Context, v any) (any, error)

	// Validate verifies the input without producing a coerced value.
	Validate(ctx context.Context, v any) error

	// Schema projects the type back into a JSON Schema node.
	Schema() (*js.Schema, error)
}

// FieldSpec describes one property of a generated model: its semantic type,
// optionality, default, and documentation.
type FieldSpec struct {
	Name        string
	Type        Type
	Required    bool
	Default     any
	HasDefault  bool
	Title       string
	Description string
}

// ModelSpec is the ordered field specification handed to a ModelBuilder.
// An empty Name selects DefaultModelName and marks the model untitled.
type ModelSpec struct {
	Name   string
	Doc    string
	Fields []FieldSpec
}

// Model is a runtime-constructed record type. It implements Type so compiled
// models can appear as nested field types, and exposes its own field map for
// reflection (required by allOf merging).
type Model interface {
	Type

	// Name returns the model name (schema title or DefaultModelName).
	Name() string
	// Doc returns the schema description attached to the model, if any.
	Doc() string
	// Fields returns the ordered field specifications.
	Fields() []FieldSpec
	// Field looks up one field specification by name.
	Field(name string) (FieldSpec, bool)

	// New constructs a validated instance from constructor arguments,
	// rejecting missing required fields and applying declared defaults.
	New(ctx context.Context, args map[string]any) (Instance, error)
}

// Instance is one validated, coerced value of a Model.
type Instance interface {
	Model() Model
	// Get returns the coerced field value; ok is false for unknown names.
	Get(name string) (v any, ok bool)
	// Map returns a copy of the full coerced field map.
	Map() map[string]any
	// Presence reports, per field, whether it was seen, null, or defaulted.
	Presence() PresenceMap
}

// ModelBuilder is the external capability that turns a field specification
// list into a concrete validating model. The compiler is agnostic to which
// implementation it receives.
type ModelBuilder interface {
	Build(spec ModelSpec) (Model, error)
	Dialect() Dialect
}

// ParseJSON decodes raw JSON constructor arguments and builds an instance.
// Numbers are decoded as json.Number so integer fields keep full precision.
func ParseJSON(ctx context.Context, m Model, data []byte) (Instance, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var args map[string]any
	if err := dec.Decode(&args); err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return m.New(ctx, args)
}
