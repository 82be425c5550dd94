package kind

import (
	"context"

	typeforge "github.com/typeforge/typeforge"
	"github.com/typeforge/typeforge/i18n"
	js "github.com/typeforge/typeforge/jsonschema"
)

// Union returns a tagged union over the given alternatives. Order is
// preserved; the first alternative that parses the input wins.
func Union(alts ...typeforge.Type) typeforge.Type {
	return unionKind{alts: alts}
}

type unionKind struct{ alts []typeforge.Type }

func (u unionKind) Parse(ctx context.Context, v any) (any, error) {
	for _, alt := range u.alts {
		out, err := alt.Parse(ctx, v)
		if err == nil {
			return out, nil
		}
	}
	return nil, typeforge.Issues{{Path: "/", Code: typeforge.CodeUnionNoMatch, Message: i18n.T(typeforge.CodeUnionNoMatch, nil), Hint: "value matched none of the alternatives"}}
}

func (u unionKind) Validate(ctx context.Context, v any) error {
	for _, alt := range u.alts {
		if err := alt.Validate(ctx, v); err == nil {
			return nil
		}
	}
	return typeforge.Issues{{Path: "/", Code: typeforge.CodeUnionNoMatch, Message: i18n.T(typeforge.CodeUnionNoMatch, nil), Hint: "value matched none of the alternatives"}}
}

func (u unionKind) Schema() (*js.Schema, error) {
	out := &js.Schema{AnyOf: make([]*js.Schema, 0, len(u.alts))}
	for _, alt := range u.alts {
		as, err := alt.Schema()
		if err != nil {
			return nil, err
		}
		out.AnyOf = append(out.AnyOf, as)
	}
	return out, nil
}

// Alternatives exposes the union branches for introspection.
func (u unionKind) Alternatives() []typeforge.Type { return u.alts }
