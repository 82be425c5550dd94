package kind

import (
	"context"

	typeforge "github.com/typeforge/typeforge"
	js "github.com/typeforge/typeforge/jsonschema"
)

// Map returns the free-form object type: a string-keyed mapping of anything.
// Object schemas without a properties block compile to this.
func Map() typeforge.Type { return mapKind{} }

type mapKind struct{}

func (mapKind) Parse(ctx context.Context, v any) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, invalidType("expected object")
	}
	return m, nil
}

func (k mapKind) Validate(ctx context.Context, v any) error {
	_, err := k.Parse(ctx, v)
	return err
}

func (mapKind) Schema() (*js.Schema, error) { return &js.Schema{Type: "object"}, nil }
