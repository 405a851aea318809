package xcsv

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// EnvelopeSchema returns a JSON Schema (Draft 7) describing the JSON
// envelope form of a document, as read by [ReadEnvelope] and written by
// [WriteEnvelope].
func EnvelopeSchema() *jsonschema.Schema {
	pair := &jsonschema.Schema{
		Type:        "object",
		Description: "A header item value with a units clause.",
		Properties: map[string]*jsonschema.Schema{
			"value": {Type: "string"},
			"units": {Types: []string{"string", "null"}},
		},
		Required:             []string{"value", "units"},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}

	headerValue := &jsonschema.Schema{
		Description: "A header item: plain text, a value/units pair, or a list accumulated from continuation lines.",
		AnyOf: []*jsonschema.Schema{
			{Type: "string"},
			pair,
			{
				Type: "array",
				Items: &jsonschema.Schema{
					AnyOf: []*jsonschema.Schema{{Type: "string"}, pair},
				},
			},
		},
	}

	columnHeader := &jsonschema.Schema{
		Type:        "object",
		Description: "The parsed tokens of one column label.",
		Properties: map[string]*jsonschema.Schema{
			"name":  {Type: "string"},
			"units": {Types: []string{"string", "null"}},
			"notes": {Types: []string{"string", "null"}},
		},
		Required:             []string{"name", "units", "notes"},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}

	cell := &jsonschema.Schema{
		Description: "One table cell: a number, text, or null for a missing value.",
		AnyOf: []*jsonschema.Schema{
			{Type: "number"},
			{Type: "string"},
			{Type: "null"},
		},
	}

	data := &jsonschema.Schema{
		Type:        "object",
		Description: "The table in columns orientation: column label to row-index-keyed cells.",
		AdditionalProperties: &jsonschema.Schema{
			Type:                 "object",
			AdditionalProperties: cell,
		},
	}

	metadata := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"header": {
				Type:                 "object",
				AdditionalProperties: headerValue,
			},
			"column_headers": {
				Type:                 "object",
				AdditionalProperties: columnHeader,
			},
		},
		Required: []string{"header", "column_headers"},
	}

	return &jsonschema.Schema{
		Schema:      "http://json-schema.org/draft-07/schema#",
		Title:       "XCSV JSON envelope",
		Description: "A whole XCSV document: extended-header and column-header metadata plus tabular data.",
		Type:        "object",
		Properties: map[string]*jsonschema.Schema{
			"metadata": metadata,
			"data":     data,
		},
		Required: []string{"metadata", "data"},
	}
}
