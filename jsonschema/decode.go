package jsonschema

import (
	"bytes"
	"fmt"
	"sort"

	json "github.com/goccy/go-json"
	"github.com/kaptinlin/jsonrepair"
	"gopkg.in/yaml.v3"
)

// Decode parses a JSON Schema document from raw JSON bytes.
func Decode(data []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("jsonschema: invalid JSON: %w", err)
	}
	return &s, nil
}

// DecodeLenient repairs malformed JSON (single quotes, unquoted keys,
// trailing commas, truncated output) before decoding. Intended for schema
// documents arriving from LLMs or hand-edited manifests.
func DecodeLenient(data []byte) (*Schema, error) {
	repaired, err := jsonrepair.JSONRepair(string(data))
	if err != nil {
		return nil, fmt.Errorf("jsonschema: repair failed: %w", err)
	}
	return Decode([]byte(repaired))
}

// DecodeYAML parses a YAML-authored schema document. YAML maps are
// normalized to JSON-shaped values first, so property iteration falls back
// to deterministic sorted order.
func DecodeYAML(data []byte) (*Schema, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("jsonschema: invalid YAML: %w", err)
	}
	m := yamlAnyToStringMap(node)
	if m == nil {
		return nil, fmt.Errorf("jsonschema: YAML root is not a mapping")
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("jsonschema: cannot normalize YAML: %w", err)
	}
	return Decode(b)
}

// yamlAnyToStringMap converts YAML-decoded values (which may contain
// map[any]any) into JSON-like map[string]any recursively. Non-map roots
// return nil.
func yamlAnyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}

// objectKeys returns the keys of a raw JSON object in document order.
func objectKeys(raw []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("jsonschema: properties must be an object")
	}
	var keys []string
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return nil, err
		}
		k, ok := kt.(string)
		if !ok {
			return nil, fmt.Errorf("jsonschema: unexpected token %v in properties", kt)
		}
		keys = append(keys, k)
		if err := skipValue(dec); err != nil {
			return nil, err
		}
	}
	if _, err := dec.Token(); err != nil { // consume closing brace
		return nil, err
	}
	return keys, nil
}

// skipValue consumes one complete JSON value from the decoder.
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || (d != '{' && d != '[') {
		return nil
	}
	depth := 1
	for depth > 0 {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		if d2, ok := tok.(json.Delim); ok {
			switch d2 {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}

func sortedKeys(m map[string]*Schema) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
