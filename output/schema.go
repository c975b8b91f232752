package output

import (
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/jtwebb/tokenize-comment/comment"
)

const draft7 = "http://json-schema.org/draft-07/schema#"

// Schema returns the JSON Schema (Draft 7) of an encoded [Document] list.
// A new schema is built on each call, so callers may modify the result.
func Schema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Schema:      draft7,
		Title:       "tokenize-comment output",
		Description: "Tokenized documentation comments in source order.",
		Type:        "array",
		Items:       documentSchema(),
	}
}

func documentSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "object",
		Description: "One tokenized comment and its location.",
		Properties: map[string]*jsonschema.Schema{
			"file": {
				Type:        "string",
				Description: `Path the comment was read from, or "-" for standard input.`,
			},
			"line": {
				Type:        "integer",
				Description: "1-based line of the opening delimiter.",
				Minimum:     jsonschema.Ptr(1.0),
			},
			"endLine": {
				Type:        "integer",
				Description: "1-based line of the closing delimiter.",
				Minimum:     jsonschema.Ptr(1.0),
			},
			"comment": commentSchema(),
		},
		PropertyOrder:        []string{"file", "line", "endLine", "comment"},
		Required:             []string{"file", "comment"},
		AdditionalProperties: falseSchema(),
	}
}

func commentSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"description": {
				Type:        "string",
				Description: "Free text before the first tag, or the value of the last @description tag.",
			},
			"tags": {
				Type:  "array",
				Items: entrySchema(comment.TypeTag, "A tag other than @description or @example."),
			},
			"examples": {
				Type:  "array",
				Items: entrySchema(comment.TypeExample, "The body of an @example tag."),
			},
		},
		PropertyOrder:        []string{"description", "tags", "examples"},
		Required:             []string{"description", "tags", "examples"},
		AdditionalProperties: falseSchema(),
	}
}

func entrySchema(kind, desc string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "object",
		Description: desc,
		Properties: map[string]*jsonschema.Schema{
			"type": {
				Type:  "string",
				Const: jsonschema.Ptr[any](kind),
			},
			"raw": {
				Type:        "string",
				Description: "The opening line, starting with @.",
			},
			"key": {
				Type:        "string",
				Description: "The identifier after @.",
				Pattern:     `^[A-Za-z][\w-]*$`,
			},
			"val": {
				Type:        "string",
				Description: "The rest of the opening line and its continuation lines.",
			},
		},
		PropertyOrder:        []string{"type", "raw", "key", "val"},
		Required:             []string{"type", "raw", "key", "val"},
		AdditionalProperties: falseSchema(),
	}
}

func falseSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}
