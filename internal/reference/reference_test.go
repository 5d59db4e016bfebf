package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themelint/themelint/internal/schema"
	"github.com/themelint/themelint/internal/schema/resolve"
)

func TestBuiltin_ParsesAndResolves(t *testing.T) {
	doc, err := schema.ParseDocument(Builtin())
	require.NoError(t, err)

	m, err := resolve.Document(doc)
	require.NoError(t, err)
	require.Len(t, m, len(doc.Properties))

	base := m["editor.background"]
	require.NotNil(t, base)
	assert.False(t, base.AlphaRequired)
	assert.Equal(t, "#ffffff", base.Sample)

	transparent := m["editor.lineHighlightBackground"]
	require.NotNil(t, transparent)
	assert.True(t, transparent.AlphaRequired)
	assert.Equal(t, "#ffffffaa", transparent.Sample)
	require.Len(t, transparent.OneOf, 1)
	assert.Equal(t, "This color must be transparent to avoid obscuring content.",
		transparent.OneOf[0].PatternErrorMessage)

	deprecated := m["editorIndentGuide.background"]
	require.NotNil(t, deprecated)
	assert.Equal(t, "Deprecated: use editorIndentGuides.background instead.",
		deprecated.DeprecationMessage)
}

func TestBuiltin_ReturnsCopy(t *testing.T) {
	a := Builtin()
	a[0] = 'X'
	b := Builtin()
	assert.NotEqual(t, a[0], b[0])
}
