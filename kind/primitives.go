// Package kind provides the semantic value types the compiler assembles
// models from: primitives, arrays, free-form maps, unions, and the nullable
// wrapper. Every kind implements typeforge.Type (coercing Parse, Validate,
// JSON Schema re-emission).
package kind

import (
	"context"
	"encoding/json"
	"math"

	typeforge "github.com/typeforge/typeforge"
	"github.com/typeforge/typeforge/i18n"
	js "github.com/typeforge/typeforge/jsonschema"
)

// String returns the text value type.
func String() typeforge.Type { return stringKind{} }

// Number returns the floating-point value type (float64 carrier).
func Number() typeforge.Type { return numberKind{} }

// Integer returns the integer value type (int64 carrier).
func Integer() typeforge.Type { return integerKind{} }

// Bool returns the boolean value type.
func Bool() typeforge.Type { return boolKind{} }

// Null returns the absent-value marker type: it accepts only null.
func Null() typeforge.Type { return nullKind{} }

// Any returns the unconstrained value type.
func Any() typeforge.Type { return anyKind{} }

type stringKind struct{}

func (stringKind) Parse(ctx context.Context, v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, invalidType("expected string")
	}
	return s, nil
}

func (k stringKind) Validate(ctx context.Context, v any) error {
	_, err := k.Parse(ctx, v)
	return err
}

func (stringKind) Schema() (*js.Schema, error) { return &js.Schema{Type: "string"}, nil }

type numberKind struct{}

func (numberKind) Parse(ctx context.Context, v any) (any, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, typeforge.Issues{{Path: "/", Code: typeforge.CodeInvalidType, Message: i18n.T(typeforge.CodeInvalidType, nil), Cause: err}}
		}
		return f, nil
	case int:
		return float64(t), nil
	case int32:
		return float64(t), nil
	case int64:
		return float64(t), nil
	default:
		return nil, invalidType("expected number")
	}
}

func (k numberKind) Validate(ctx context.Context, v any) error {
	_, err := k.Parse(ctx, v)
	return err
}

func (numberKind) Schema() (*js.Schema, error) { return &js.Schema{Type: "number"}, nil }

type integerKind struct{}

func (integerKind) Parse(ctx context.Context, v any) (any, error) {
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int8:
		return int64(t), nil
	case int16:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case uint:
		return int64(t), nil
	case uint8:
		return int64(t), nil
	case uint16:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			return nil, typeforge.Issues{{Path: "/", Code: typeforge.CodeInvalidType, Message: i18n.T(typeforge.CodeInvalidType, nil), Cause: err}}
		}
		return i, nil
	case float64:
		// JSON decoding without UseNumber yields float64; accept integral values only.
		if t != math.Trunc(t) || math.IsInf(t, 0) || math.IsNaN(t) {
			return nil, invalidType("expected integer")
		}
		return int64(t), nil
	default:
		return nil, invalidType("expected integer")
	}
}

func (k integerKind) Validate(ctx context.Context, v any) error {
	_, err := k.Parse(ctx, v)
	return err
}

func (integerKind) Schema() (*js.Schema, error) { return &js.Schema{Type: "integer"}, nil }

type boolKind struct{}

func (boolKind) Parse(ctx context.Context, v any) (any, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, invalidType("expected boolean")
	}
	return b, nil
}

func (k boolKind) Validate(ctx context.Context, v any) error {
	_, err := k.Parse(ctx, v)
	return err
}

func (boolKind) Schema() (*js.Schema, error) { return &js.Schema{Type: "boolean"}, nil }

type nullKind struct{}

func (nullKind) Parse(ctx context.Context, v any) (any, error) {
	if v != nil {
		return nil, invalidType("expected null")
	}
	return nil, nil
}

func (k nullKind) Validate(ctx context.Context, v any) error {
	_, err := k.Parse(ctx, v)
	return err
}

func (nullKind) Schema() (*js.Schema, error) { return &js.Schema{Type: "null"}, nil }

type anyKind struct{}

func (anyKind) Parse(ctx context.Context, v any) (any, error) { return v, nil }

func (anyKind) Validate(ctx context.Context, v any) error { return nil }

func (anyKind) Schema() (*js.Schema, error) { return &js.Schema{}, nil }

// invalidType builds the single-issue error shared by the primitive kinds.
func invalidType(hint string) typeforge.Issues {
	return typeforge.Issues{{Path: "/", Code: typeforge.CodeInvalidType, Message: i18n.T(typeforge.CodeInvalidType, nil), Hint: hint}}
}
