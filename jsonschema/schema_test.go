package jsonschema_test

import (
	"testing"

	js "github.com/typeforge/typeforge/jsonschema"
)

func TestDecode_PropertyOrderAndDefaults(t *testing.T) {
	doc := []byte(`{
		"type": "object",
		"title": "Widget",
		"properties": {
			"zeta": {"type": "string", "default": "z"},
			"alpha": {"type": "integer"},
			"mid": {"type": "object", "properties": {"x": {"type": "boolean"}}}
		},
		"required": ["alpha"]
	}`)
	s, err := js.Decode(doc)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	want := []string{"zeta", "alpha", "mid"}
	got := s.PropertyNames()
	if len(got) != len(want) {
		t.Fatalf("property order length: got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("property order: got %v want %v", got, want)
		}
	}
	z := s.Properties["zeta"]
	if !z.HasDefault || z.Default != "z" {
		t.Fatalf("explicit default not captured: %+v", z)
	}
	if s.Properties["alpha"].HasDefault {
		t.Fatalf("alpha should have no default")
	}
	// nested properties keep their own order capture
	if n := s.Properties["mid"].PropertyNames(); len(n) != 1 || n[0] != "x" {
		t.Fatalf("nested property order: %v", n)
	}
}

func TestDecode_ExplicitNullDefault(t *testing.T) {
	s, err := js.Decode([]byte(`{"type":"string","default":null}`))
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if !s.HasDefault || s.Default != nil {
		t.Fatalf("explicit null default not captured: %+v", s)
	}
	out, err := s.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	if string(out) != `{"default":null,"type":"string"}` {
		t.Fatalf("null default dropped on re-emission: %s", out)
	}
}

func TestDefinitionsTable_Priority(t *testing.T) {
	s, err := js.Decode([]byte(`{
		"$defs": {"A": {"type": "string"}},
		"definitions": {"B": {"type": "integer"}}
	}`))
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	defs := s.DefinitionsTable()
	if _, ok := defs["A"]; !ok {
		t.Fatalf("$defs should win: %v", defs)
	}
	if _, ok := defs["B"]; ok {
		t.Fatalf("legacy definitions should be shadowed by $defs")
	}

	s2, _ := js.Decode([]byte(`{"definitions": {"B": {"type": "integer"}}}`))
	if _, ok := s2.DefinitionsTable()["B"]; !ok {
		t.Fatalf("legacy definitions key should be accepted")
	}

	s3, _ := js.Decode([]byte(`{}`))
	if defs := s3.DefinitionsTable(); defs == nil || len(defs) != 0 {
		t.Fatalf("absent definitions should yield an empty table, got %v", defs)
	}
}

func TestIsEmpty(t *testing.T) {
	s, _ := js.Decode([]byte(`{}`))
	if !s.IsEmpty() {
		t.Fatalf("{} should be empty")
	}
	s2, _ := js.Decode([]byte(`{"type":"string"}`))
	if s2.IsEmpty() {
		t.Fatalf("typed node should not be empty")
	}
}

func TestDecodeYAML(t *testing.T) {
	doc := []byte(`
type: object
title: FromYAML
properties:
  name:
    type: string
    default: anon
required:
  - name
`)
	s, err := js.DecodeYAML(doc)
	if err != nil {
		t.Fatalf("yaml decode err: %v", err)
	}
	if s.Title != "FromYAML" || s.Type != "object" {
		t.Fatalf("unexpected root: %+v", s)
	}
	n := s.Properties["name"]
	if n == nil || n.Type != "string" || !n.HasDefault || n.Default != "anon" {
		t.Fatalf("yaml property lost: %+v", n)
	}
	if len(s.Required) != 1 || s.Required[0] != "name" {
		t.Fatalf("yaml required lost: %v", s.Required)
	}
}

func TestDecodeLenient(t *testing.T) {
	// unquoted keys and single quotes, as LLMs tend to emit
	doc := []byte(`{type: 'object', properties: {a: {type: 'string'}}, required: ['a'],}`)
	s, err := js.DecodeLenient(doc)
	if err != nil {
		t.Fatalf("lenient decode err: %v", err)
	}
	if s.Type != "object" || s.Properties["a"] == nil || s.Properties["a"].Type != "string" {
		t.Fatalf("lenient decode lost structure: %+v", s)
	}
}

func TestDecode_InvalidJSON(t *testing.T) {
	if _, err := js.Decode([]byte(`{"type":`)); err == nil {
		t.Fatalf("expected error for truncated JSON")
	}
}
