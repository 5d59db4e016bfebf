package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument_RelaxedSyntax(t *testing.T) {
	doc, err := ParseDocument([]byte(`
// reference document
{
  "properties": {
    "editor.background": {
      "description": "Editor background color.", // trailing comment
      "$ref": "#/$colors/base",
    },
  },
  "$defs": {
    "colors": {
      "base": { "oneOf": [ { "pattern": "^#[0-9a-f]{6}$" }, ] },
    },
  },
}`))
	require.NoError(t, err)

	require.Contains(t, doc.Properties, "editor.background")
	node := doc.Properties["editor.background"]
	assert.Equal(t, "Editor background color.", node.Description)
	assert.Equal(t, "#/$colors/base", node.Ref)

	require.Contains(t, doc.Defs, "colors")
	require.Contains(t, doc.Defs["colors"], "base")
	require.Len(t, doc.Defs["colors"]["base"].OneOf, 1)
	assert.Equal(t, "^#[0-9a-f]{6}$", doc.Defs["colors"]["base"].OneOf[0].Pattern)
}

func TestParseDocument_MissingProperties(t *testing.T) {
	_, err := ParseDocument([]byte(`{ "$defs": {} }`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "properties")
}

func TestParseDocument_MalformedText(t *testing.T) {
	_, err := ParseDocument([]byte(`{ "properties": `))
	require.Error(t, err)
}
