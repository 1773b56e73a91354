package llm

import (
	"strings"

	"google.golang.org/genai"
)

// Schema is the subset of JSON Schema used for structured completions.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Minimum     *float64           `json:"minimum,omitempty"`
	Maximum     *float64           `json:"maximum,omitempty"`
}

// Object builds an object schema; required lists mandatory property names.
func Object(props map[string]*Schema, required ...string) *Schema {
	return &Schema{Type: "object", Properties: props, Required: required}
}

// Array builds an array schema.
func Array(items *Schema, description string) *Schema {
	return &Schema{Type: "array", Items: items, Description: description}
}

// String builds a string schema.
func String(description string) *Schema {
	return &Schema{Type: "string", Description: description}
}

// Integer builds a bounded integer schema.
func Integer(min, max float64, description string) *Schema {
	return &Schema{Type: "integer", Description: description, Minimum: &min, Maximum: &max}
}

func (s *Schema) toGenai() *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:        genaiType(s.Type),
		Description: s.Description,
		Required:    s.Required,
		Minimum:     s.Minimum,
		Maximum:     s.Maximum,
		Items:       s.Items.toGenai(),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, p := range s.Properties {
			out.Properties[name] = p.toGenai()
		}
	}
	return out
}

func genaiType(t string) genai.Type {
	switch strings.ToLower(t) {
	case "object":
		return genai.TypeObject
	case "array":
		return genai.TypeArray
	case "integer":
		return genai.TypeInteger
	case "number":
		return genai.TypeNumber
	case "boolean":
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}
