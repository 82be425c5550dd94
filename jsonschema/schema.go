package jsonschema

import (
	json "github.com/goccy/go-json"
)

// Schema is the JSON Schema document model recognized by the compiler.
// Unrecognized keys are dropped on decode; untyped or empty nodes are
// treated as "accept anything".
type Schema struct {
	// Core
	Type        string `json:"type,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Ref         string `json:"$ref,omitempty"`
	Default     any    `json:"default,omitempty"`

	// Object
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// Composition
	AllOf []*Schema `json:"allOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty"`

	// Definitions ($defs takes priority over the legacy definitions key).
	Defs        map[string]*Schema `json:"$defs,omitempty"`
	Definitions map[string]*Schema `json:"definitions,omitempty"`

	// HasDefault distinguishes an explicit "default": null from an absent
	// default. Set during decode; honored during re-emission.
	HasDefault bool `json:"-"`

	// PropertyOrder records the document order of the properties mapping as
	// captured during decode. Hand-built documents may leave it nil; callers
	// iterate via PropertyNames which falls back to sorted keys.
	PropertyOrder []string `json:"-"`
}

// DefinitionsTable collects the root definitions block: $defs first, then the
// legacy definitions key; absence of both yields an empty table.
func (s *Schema) DefinitionsTable() map[string]*Schema {
	if len(s.Defs) > 0 {
		return s.Defs
	}
	if len(s.Definitions) > 0 {
		return s.Definitions
	}
	return map[string]*Schema{}
}

// PropertyNames returns property names in document order when captured,
// falling back to ascending key order for deterministic behavior.
func (s *Schema) PropertyNames() []string {
	if len(s.PropertyOrder) == len(s.Properties) && len(s.PropertyOrder) > 0 {
		return s.PropertyOrder
	}
	return sortedKeys(s.Properties)
}

// IsEmpty reports whether the node constrains nothing.
func (s *Schema) IsEmpty() bool {
	return s.Type == "" && s.Ref == "" &&
		len(s.Properties) == 0 && len(s.Required) == 0 && s.Items == nil &&
		len(s.AllOf) == 0 && len(s.AnyOf) == 0 &&
		!s.HasDefault && s.Title == "" && s.Description == ""
}

// MarshalJSON is hand-rolled so an explicit null default survives encoding
// (struct tags with omitempty would drop it).
func (s *Schema) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 8)
	if s.Type != "" {
		m["type"] = s.Type
	}
	if s.Title != "" {
		m["title"] = s.Title
	}
	if s.Description != "" {
		m["description"] = s.Description
	}
	if s.Ref != "" {
		m["$ref"] = s.Ref
	}
	if s.HasDefault || s.Default != nil {
		m["default"] = s.Default
	}
	if len(s.Properties) > 0 {
		m["properties"] = s.Properties
	}
	if len(s.Required) > 0 {
		m["required"] = s.Required
	}
	if s.Items != nil {
		m["items"] = s.Items
	}
	if len(s.AllOf) > 0 {
		m["allOf"] = s.AllOf
	}
	if len(s.AnyOf) > 0 {
		m["anyOf"] = s.AnyOf
	}
	if len(s.Defs) > 0 {
		m["$defs"] = s.Defs
	}
	if len(s.Definitions) > 0 {
		m["definitions"] = s.Definitions
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes the recognized keys and additionally captures default
// presence and property order, which plain struct decoding cannot express.
func (s *Schema) UnmarshalJSON(data []byte) error {
	type alias Schema
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if _, ok := raw["default"]; ok {
		a.HasDefault = true
	}
	if pv, ok := raw["properties"]; ok {
		order, err := objectKeys(pv)
		if err != nil {
			return err
		}
		a.PropertyOrder = order
	}
	*s = Schema(a)
	return nil
}
