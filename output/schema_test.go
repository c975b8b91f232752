package output_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtwebb/tokenize-comment/output"
)

func TestSchema(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(output.Schema())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))

	assert.Equal(t, "http://json-schema.org/draft-07/schema#", got["$schema"])
	assert.Equal(t, "array", got["type"])

	doc := got["items"].(map[string]any)
	assert.Equal(t, []any{"file", "comment"}, doc["required"])
	assert.Equal(t, false, doc["additionalProperties"])

	cmt := doc["properties"].(map[string]any)["comment"].(map[string]any)
	assert.Equal(t, []any{"description", "tags", "examples"}, cmt["required"])

	props := cmt["properties"].(map[string]any)

	tcs := map[string]struct {
		field string
		kind  string
	}{
		"tags":     {field: "tags", kind: "tag"},
		"examples": {field: "examples", kind: "example"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			items := props[tc.field].(map[string]any)["items"].(map[string]any)
			typ := items["properties"].(map[string]any)["type"].(map[string]any)
			assert.Equal(t, tc.kind, typ["const"])
			assert.Equal(t, []any{"type", "raw", "key", "val"}, items["required"])
		})
	}
}

func TestSchemaFresh(t *testing.T) {
	t.Parallel()

	a := output.Schema()
	a.Title = "changed"

	assert.NotEqual(t, a.Title, output.Schema().Title)
}
