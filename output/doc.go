// Package output encodes tokenized comments as JSON or YAML.
//
// Each comment is wrapped in a [Document] that records where it came from.
// An [Encoder] writes a list of documents in the configured [Format]:
//
//	enc := output.NewEncoder(output.WithFormat(output.FormatYAML))
//
//	err := enc.Encode(os.Stdout, docs)
//
// JSON is produced with [encoding/json]; YAML with
// [github.com/goccy/go-yaml]. Both use the same field names.
//
// [Schema] returns a JSON Schema (Draft 7) describing the encoded list,
// built with [github.com/google/jsonschema-go/jsonschema].
package output
