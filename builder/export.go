package builder

import (
	typeforge "github.com/typeforge/typeforge"
	js "github.com/typeforge/typeforge/jsonschema"
	"github.com/typeforge/typeforge/kind"
)

// Schema regenerates a JSON Schema document describing the model. The shape
// of optional fields depends on the builder dialect the model was built with.
func (m *model) Schema() (*js.Schema, error) {
	out := &js.Schema{Type: "object"}
	if m.titled {
		out.Title = m.name
	}
	if m.doc != "" {
		out.Description = m.doc
	}
	if len(m.fields) > 0 {
		out.Properties = make(map[string]*js.Schema, len(m.fields))
		out.PropertyOrder = make([]string, 0, len(m.fields))
	}
	for _, f := range m.fields {
		fs, err := m.fieldSchema(f)
		if err != nil {
			return nil, err
		}
		out.Properties[f.Name] = fs
		out.PropertyOrder = append(out.PropertyOrder, f.Name)
		if f.Required {
			out.Required = append(out.Required, f.Name)
		}
	}
	return out, nil
}

func (m *model) fieldSchema(f typeforge.FieldSpec) (*js.Schema, error) {
	inner, wrapped := kind.Unwrap(f.Type)
	s, err := inner.Schema()
	if err != nil {
		return nil, err
	}
	switch m.dialect {
	case typeforge.DialectLegacy:
		// bare inner type; only explicit non-null defaults survive
		if f.HasDefault && f.Default != nil {
			s.Default = f.Default
			s.HasDefault = true
		}
		annotate(s, f)
		return s, nil
	default:
		if !wrapped {
			if f.HasDefault {
				s.Default = f.Default
				s.HasDefault = true
			}
			annotate(s, f)
			return s, nil
		}
		w := &js.Schema{AnyOf: nullableAnyOf(s)}
		if f.HasDefault {
			w.Default = f.Default
			w.HasDefault = true
		}
		annotate(w, f)
		return w, nil
	}
}

// annotate attaches the field's title and description to its exported node.
func annotate(s *js.Schema, f typeforge.FieldSpec) {
	if f.Title != "" {
		s.Title = f.Title
	}
	if f.Description != "" {
		s.Description = f.Description
	}
}

// nullableAnyOf builds the alternatives of a nullable wrapper. A union inner
// type flattens into the wrapper instead of nesting anyOf inside anyOf.
func nullableAnyOf(s *js.Schema) []*js.Schema {
	nullNode := &js.Schema{Type: "null"}
	if s.Type == "" && s.Ref == "" && len(s.AnyOf) > 0 && len(s.AllOf) == 0 && len(s.Properties) == 0 {
		alts := make([]*js.Schema, 0, len(s.AnyOf)+1)
		alts = append(alts, s.AnyOf...)
		return append(alts, nullNode)
	}
	return []*js.Schema{s, nullNode}
}
