package compiler

import (
	"strconv"
	"strings"

	typeforge "github.com/typeforge/typeforge"
	"github.com/typeforge/typeforge/i18n"
	js "github.com/typeforge/typeforge/jsonschema"
	"github.com/typeforge/typeforge/kind"
)

// combinedModelName names the synthetic model produced by an allOf merge.
const combinedModelName = "CombinedModel"

// compilation carries the read-only state of one top-level Compile call.
type compilation struct {
	defs    map[string]*js.Schema
	builder typeforge.ModelBuilder
}

// resolve looks up a $ref by its final path segment in the definitions
// table. No cycle detection: a self-referential chain with no terminating
// primitive recurses until the stack is exhausted.
func (c *compilation) resolve(ref string) (*js.Schema, error) {
	name := ref
	if i := strings.LastIndexByte(ref, '/'); i >= 0 {
		name = ref[i+1:]
	}
	target, ok := c.defs[name]
	if !ok {
		return nil, typeforge.Issues{{
			Path:    "/",
			Code:    typeforge.CodeUnresolvedRef,
			Message: i18n.T(typeforge.CodeUnresolvedRef, nil),
			Hint:    "unknown definition: " + name,
			Params:  map[string]any{"ref": ref},
		}}
	}
	return target, nil
}

// convert maps one schema node to its semantic value type. Dispatch follows
// node shape, first match wins: $ref, typed node, allOf, anyOf, untyped.
func (c *compilation) convert(s *js.Schema) (typeforge.Type, error) {
	switch {
	case s == nil:
		return kind.Any(), nil

	case s.Ref != "":
		target, err := c.resolve(s.Ref)
		if err != nil {
			return nil, err
		}
		// a reference is converted as a full schema, so a ref to an object
		// definition yields a nested model
		return c.assemble(target)

	case s.Type != "":
		switch s.Type {
		case "string":
			return kind.String(), nil
		case "number":
			return kind.Number(), nil
		case "integer":
			return kind.Integer(), nil
		case "boolean":
			return kind.Bool(), nil
		case "null":
			return kind.Null(), nil
		case "array":
			if s.Items == nil {
				return kind.Array(kind.Any()), nil
			}
			elem, err := c.convert(s.Items)
			if err != nil {
				return nil, rebase("/items", err)
			}
			return kind.Array(elem), nil
		case "object":
			if len(s.Properties) > 0 {
				return c.assemble(s)
			}
			return kind.Map(), nil
		default:
			return nil, unsupported(s, "unrecognized type: "+s.Type)
		}

	case len(s.AllOf) > 0:
		return c.mergeAllOf(s.AllOf)

	case len(s.AnyOf) > 0:
		alts := make([]typeforge.Type, 0, len(s.AnyOf))
		for i, sub := range s.AnyOf {
			t, err := c.convert(sub)
			if err != nil {
				return nil, rebase("/anyOf/"+strconv.Itoa(i), err)
			}
			alts = append(alts, t)
		}
		return kind.Union(alts...), nil

	default:
		// untyped or empty node accepts anything
		return kind.Any(), nil
	}
}

// mergeAllOf builds every sub-schema into its own model, merges their field
// sets by name (later sub-schemas override earlier ones, first-seen position
// kept), and assembles one synthetic merged model.
func (c *compilation) mergeAllOf(subs []*js.Schema) (typeforge.Type, error) {
	var merged []typeforge.FieldSpec
	index := map[string]int{}
	for i, sub := range subs {
		m, err := c.assembleSub(sub)
		if err != nil {
			return nil, rebase("/allOf/"+strconv.Itoa(i), err)
		}
		for _, f := range m.Fields() {
			if at, seen := index[f.Name]; seen {
				merged[at] = f
				continue
			}
			index[f.Name] = len(merged)
			merged = append(merged, f)
		}
	}
	return c.builder.Build(typeforge.ModelSpec{Name: combinedModelName, Fields: merged})
}

// assembleSub builds an allOf sub-schema into a model, resolving a bare $ref
// first so references to object definitions contribute their field sets.
func (c *compilation) assembleSub(sub *js.Schema) (typeforge.Model, error) {
	if sub != nil && sub.Ref != "" {
		target, err := c.resolve(sub.Ref)
		if err != nil {
			return nil, err
		}
		sub = target
	}
	if sub == nil {
		return nil, unsupported(sub, "allOf expects object schemas")
	}
	return c.assemble(sub)
}

// assemble builds a model from a schema node's properties and required list.
// Properties are walked in document order; a property absent from required
// is wrapped nullable and defaulted (the schema's explicit default, else
// null), and a required property with a declared default still honors it.
func (c *compilation) assemble(s *js.Schema) (typeforge.Model, error) {
	required := make(map[string]struct{}, len(s.Required))
	for _, name := range s.Required {
		required[name] = struct{}{}
	}
	fields := make([]typeforge.FieldSpec, 0, len(s.Properties))
	for _, name := range s.PropertyNames() {
		prop := s.Properties[name]
		t, err := c.convert(prop)
		if err != nil {
			return nil, rebase("/properties/"+name, err)
		}
		fs := typeforge.FieldSpec{Name: name, Type: t}
		if _, req := required[name]; req {
			fs.Required = true
		}
		if prop != nil {
			if prop.HasDefault {
				fs.Default = prop.Default
				fs.HasDefault = true
			}
			fs.Title = prop.Title
			fs.Description = prop.Description
		}
		if !fs.Required {
			fs.Type = kind.Nullable(t)
			if !fs.HasDefault {
				fs.HasDefault = true
				fs.Default = nil
			}
		}
		fields = append(fields, fs)
	}
	return c.builder.Build(typeforge.ModelSpec{Name: s.Title, Doc: s.Description, Fields: fields})
}

func unsupported(s *js.Schema, hint string) typeforge.Issues {
	params := map[string]any{}
	if s != nil {
		params["node"] = s
	}
	return typeforge.Issues{{
		Path:    "/",
		Code:    typeforge.CodeUnsupportedSchema,
		Message: i18n.T(typeforge.CodeUnsupportedSchema, nil),
		Hint:    hint,
		Params:  params,
	}}
}

// rebase prefixes issue paths with the schema-document location of the node
// that failed to convert.
func rebase(base string, err error) error {
	iss, ok := typeforge.AsIssues(err)
	if !ok {
		return err
	}
	var out typeforge.Issues
	for _, it := range iss {
		p := it.Path
		if p == "" || p == "/" {
			p = base
		} else if p[0] == '/' {
			p = base + p
		} else {
			p = base + "/" + p
		}
		out = typeforge.AppendIssues(out, typeforge.Issue{Path: p, Code: it.Code, Message: it.Message, Hint: it.Hint, Cause: it.Cause, Params: it.Params})
	}
	return out
}
