package builder

import (
	"context"

	json "github.com/goccy/go-json"

	typeforge "github.com/typeforge/typeforge"
	"github.com/typeforge/typeforge/i18n"
)

// model is the runtime-constructed record type. Instances are validated,
// coerced field maps; unknown constructor arguments are stripped.
type model struct {
	name    string
	titled  bool
	doc     string
	fields  []typeforge.FieldSpec
	index   map[string]int
	dialect typeforge.Dialect
}

var _ typeforge.Model = (*model)(nil)

func (m *model) Name() string { return m.name }
func (m *model) Doc() string  { return m.doc }

func (m *model) Fields() []typeforge.FieldSpec {
	out := make([]typeforge.FieldSpec, len(m.fields))
	copy(out, m.fields)
	return out
}

func (m *model) Field(name string) (typeforge.FieldSpec, bool) {
	i, ok := m.index[name]
	if !ok {
		return typeforge.FieldSpec{}, false
	}
	return m.fields[i], true
}

func (m *model) New(ctx context.Context, args map[string]any) (typeforge.Instance, error) {
	data, pm, iss := m.collect(ctx, args)
	if len(iss) > 0 {
		return nil, iss
	}
	return &instance{model: m, data: data, pm: pm}, nil
}

func (m *model) Parse(ctx context.Context, v any) (any, error) {
	src, err := m.coerceArgs(v)
	if err != nil {
		return nil, err
	}
	data, _, iss := m.collect(ctx, src)
	if len(iss) > 0 {
		return nil, iss
	}
	return data, nil
}

func (m *model) Validate(ctx context.Context, v any) error {
	src, err := m.coerceArgs(v)
	if err != nil {
		return err
	}
	var iss typeforge.Issues
	for _, f := range m.fields {
		if val, ok := src[f.Name]; ok {
			if err := f.Type.Validate(ctx, val); err != nil {
				iss = typeforge.AppendIssues(iss, rebaseIssues("/"+f.Name, err)...)
				if typeforge.IsFailFast(ctx) {
					return iss
				}
			}
			continue
		}
		if f.Required && !f.HasDefault {
			iss = typeforge.AppendIssues(iss, typeforge.Issue{Path: "/" + f.Name, Code: typeforge.CodeRequired, Message: i18n.T(typeforge.CodeRequired, nil), Hint: "required property missing"})
			if typeforge.IsFailFast(ctx) {
				return iss
			}
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func (m *model) coerceArgs(v any) (map[string]any, error) {
	switch t := v.(type) {
	case map[string]any:
		return t, nil
	case typeforge.Instance:
		return t.Map(), nil
	case nil:
		return nil, typeforge.Issues{{Path: "/", Code: typeforge.CodeInvalidType, Message: i18n.T(typeforge.CodeInvalidType, nil), Hint: "expected object"}}
	default:
		return nil, typeforge.Issues{{Path: "/", Code: typeforge.CodeInvalidType, Message: i18n.T(typeforge.CodeInvalidType, nil), Hint: "expected object"}}
	}
}

// collect parses known fields in declaration order, applies defaults, and
// records presence flags. Unknown keys are dropped.
func (m *model) collect(ctx context.Context, src map[string]any) (map[string]any, typeforge.PresenceMap, typeforge.Issues) {
	out := make(map[string]any, len(m.fields))
	pm := typeforge.PresenceMap{}
	var iss typeforge.Issues
	for _, f := range m.fields {
		if val, exists := src[f.Name]; exists {
			pm[f.Name] |= typeforge.PresenceSeen
			if val == nil {
				pm[f.Name] |= typeforge.PresenceWasNull
			}
			parsed, err := f.Type.Parse(ctx, val)
			if err != nil {
				iss = typeforge.AppendIssues(iss, rebaseIssues("/"+f.Name, err)...)
				if typeforge.IsFailFast(ctx) {
					return out, pm, iss
				}
				continue
			}
			out[f.Name] = parsed
			continue
		}
		// missing: apply the declared default if any; otherwise enforce required
		if f.HasDefault {
			dv, err := f.Type.Parse(ctx, f.Default)
			if err != nil {
				iss = typeforge.AppendIssues(iss, rebaseIssues("/"+f.Name, err)...)
				if typeforge.IsFailFast(ctx) {
					return out, pm, iss
				}
				continue
			}
			pm[f.Name] |= typeforge.PresenceDefaultApplied
			out[f.Name] = dv
			continue
		}
		if f.Required {
			iss = typeforge.AppendIssues(iss, typeforge.Issue{Path: "/" + f.Name, Code: typeforge.CodeRequired, Message: i18n.T(typeforge.CodeRequired, nil), Hint: "required property missing"})
			if typeforge.IsFailFast(ctx) {
				return out, pm, iss
			}
		}
	}
	return out, pm, iss
}

type instance struct {
	model *model
	data  map[string]any
	pm    typeforge.PresenceMap
}

func (in *instance) Model() typeforge.Model { return in.model }

func (in *instance) Get(name string) (any, bool) {
	if _, known := in.model.index[name]; !known {
		return nil, false
	}
	return in.data[name], true
}

// Map returns a copy so callers cannot mutate validated instance state.
func (in *instance) Map() map[string]any {
	out := make(map[string]any, len(in.data))
	for k, v := range in.data {
		out[k] = v
	}
	return out
}

func (in *instance) Presence() typeforge.PresenceMap { return in.pm }

// MarshalJSON encodes the coerced field map.
func (in *instance) MarshalJSON() ([]byte, error) { return json.Marshal(in.data) }

// rebaseIssues prefixes child issue paths with base, wrapping non-Issues
// errors with CodeParseError.
func rebaseIssues(base string, err error) typeforge.Issues {
	if err == nil {
		return nil
	}
	child, ok := typeforge.AsIssues(err)
	if !ok {
		return typeforge.Issues{{Path: base, Code: typeforge.CodeParseError, Message: err.Error(), Cause: err}}
	}
	var out typeforge.Issues
	for _, it := range child {
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
