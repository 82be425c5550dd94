// Package builder implements the model-builder capability: it turns an
// ordered field specification list into a concrete validating Model. Two
// interchangeable builders exist, differing only in JSON Schema export
// dialect; the compiler's logic is identical under both.
package builder

import (
	"fmt"

	typeforge "github.com/typeforge/typeforge"
)

// Modern returns the default builder: optional fields re-emit as
// anyOf [T, null] with an explicit default.
func Modern() typeforge.ModelBuilder { return builderImpl{dialect: typeforge.DialectModern} }

// Legacy returns the legacy-dialect builder: optional fields re-emit as the
// bare inner type, giving exact structural round-trips for plain schemas.
func Legacy() typeforge.ModelBuilder { return builderImpl{dialect: typeforge.DialectLegacy} }

// New selects a builder by dialect.
func New(d typeforge.Dialect) typeforge.ModelBuilder {
	switch d {
	case typeforge.DialectLegacy:
		return Legacy()
	default:
		return Modern()
	}
}

type builderImpl struct{ dialect typeforge.Dialect }

func (b builderImpl) Dialect() typeforge.Dialect { return b.dialect }

func (b builderImpl) Build(spec typeforge.ModelSpec) (typeforge.Model, error) {
	name := spec.Name
	titled := name != ""
	if name == "" {
		name = typeforge.DefaultModelName
	}
	index := make(map[string]int, len(spec.Fields))
	fields := make([]typeforge.FieldSpec, 0, len(spec.Fields))
	for _, f := range spec.Fields {
		if f.Type == nil {
			return nil, fmt.Errorf("builder: field %q has no type", f.Name)
		}
		if _, dup := index[f.Name]; dup {
			return nil, fmt.Errorf("builder: duplicate field %q in model %q", f.Name, name)
		}
		index[f.Name] = len(fields)
		fields = append(fields, f)
	}
	return &model{
		name:    name,
		titled:  titled,
		doc:     spec.Doc,
		fields:  fields,
		index:   index,
		dialect: b.dialect,
	}, nil
}
