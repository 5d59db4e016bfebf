package colorfile

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempColors(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp("", "colors*.json")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(f.Name()) })
	defer f.Close()
	_, err = f.WriteString(content)
	require.NoError(t, err)
	return f.Name()
}

func TestParse_OrderPreserved(t *testing.T) {
	decls, err := Parse([]byte(`{
  "zeta.background": "#111111",
  "alpha.background": "#222222",
  "mid.background": "#333333"
}`))
	require.NoError(t, err)

	require.Len(t, decls, 3)
	assert.Equal(t, "zeta.background", decls[0].Property)
	assert.Equal(t, "alpha.background", decls[1].Property)
	assert.Equal(t, "mid.background", decls[2].Property)
}

func TestParse_RelaxedSyntax(t *testing.T) {
	decls, err := Parse([]byte(`{
  // my theme tweaks
  "editor.background": "#1e1e1e",
  "editor.foreground": "#d4d4d4", /* trailing comma next */
}`))
	require.NoError(t, err)

	require.Len(t, decls, 2)
	assert.Equal(t, "#1e1e1e", decls[0].Value)
}

func TestParse_NonStringValuesKept(t *testing.T) {
	decls, err := Parse([]byte(`{"editor.background": 123456, "editor.foreground": null}`))
	require.NoError(t, err)

	require.Len(t, decls, 2)
	assert.Equal(t, float64(123456), decls[0].Value)
	assert.Nil(t, decls[1].Value)
}

func TestParse_Empty(t *testing.T) {
	decls, err := Parse([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, decls)
}

func TestParse_TopLevelNotObject(t *testing.T) {
	_, err := Parse([]byte(`["#fff"]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top-level object")
}

func TestLoad_HashAndPath(t *testing.T) {
	path := writeTempColors(t, `{"editor.background": "#1e1e1e"}`)

	f, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, f.Path)
	assert.True(t, strings.HasPrefix(f.Hash, "sha256:"))
	require.Len(t, f.Declarations, 1)

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, f.Hash, again.Hash)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/colors.json")
	require.Error(t, err)
}
