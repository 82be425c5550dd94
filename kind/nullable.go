package kind

import (
	"context"

	typeforge "github.com/typeforge/typeforge"
	js "github.com/typeforge/typeforge/jsonschema"
)

// Nullable wraps a type so null passes through. Optional model fields are
// always Nullable at the semantic-type level.
func Nullable(inner typeforge.Type) typeforge.Type {
	if _, ok := inner.(nullableKind); ok {
		return inner
	}
	return nullableKind{inner: inner}
}

// Unwrap returns the inner type of a Nullable wrapper, reporting whether t
// was wrapped. Export dialects use this to render optional fields.
func Unwrap(t typeforge.Type) (typeforge.Type, bool) {
	if n, ok := t.(nullableKind); ok {
		return n.inner, true
	}
	return t, false
}

type nullableKind struct{ inner typeforge.Type }

func (n nullableKind) Parse(ctx context.Context, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return n.inner.Parse(ctx, v)
}

func (n nullableKind) Validate(ctx context.Context, v any) error {
	if v == nil {
		return nil
	}
	return n.inner.Validate(ctx, v)
}

// Schema re-emits the inner node; the export dialect decides whether the
// null branch appears in the document.
func (n nullableKind) Schema() (*js.Schema, error) { return n.inner.Schema() }
