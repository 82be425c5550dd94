package kind

import (
	"context"
	"strconv"

	typeforge "github.com/typeforge/typeforge"
	js "github.com/typeforge/typeforge/jsonschema"
)

// Array returns a homogeneous sequence type over the given element type.
// Pass Any() for schemas whose items node is absent; such arrays re-emit
// without an items key.
func Array(elem typeforge.Type) typeforge.Type { return arrayKind{elem: elem} }

type arrayKind struct{ elem typeforge.Type }

func (a arrayKind) Parse(ctx context.Context, v any) (any, error) {
	src, ok := v.([]any)
	if !ok {
		return nil, invalidType("expected array")
	}
	out := make([]any, 0, len(src))
	var iss typeforge.Issues
	for i := range src {
		ev, err := a.elem.Parse(ctx, src[i])
		if err != nil {
			iss = typeforge.AppendIssues(iss, rebaseIssues("/"+strconv.Itoa(i), err)...)
			if typeforge.IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		out = append(out, ev)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (a arrayKind) Validate(ctx context.Context, v any) error {
	src, ok := v.([]any)
	if !ok {
		return invalidType("expected array")
	}
	for i := range src {
		if err := a.elem.Validate(ctx, src[i]); err != nil {
			return rebaseIssues("/"+strconv.Itoa(i), err)
		}
	}
	return nil
}

func (a arrayKind) Schema() (*js.Schema, error) {
	if _, untyped := a.elem.(anyKind); untyped {
		return &js.Schema{Type: "array"}, nil
	}
	es, err := a.elem.Schema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "array", Items: es}, nil
}

// Elem exposes the element type for introspection.
func (a arrayKind) Elem() typeforge.Type { return a.elem }

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
