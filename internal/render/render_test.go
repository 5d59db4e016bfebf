package render

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themelint/themelint/internal/schema"
)

func testReport() *schema.Report {
	return &schema.Report{
		Tool:    "themelint",
		Version: "test",
		Input: schema.Input{
			ColorsFile: "colors.json",
			ColorsHash: "sha256:abc",
			SchemaFile: "builtin",
		},
		Summary: schema.Summary{
			Verdict:      schema.VerdictInvalid,
			ValidCount:   1,
			WarnCount:    1,
			InvalidCount: 1,
		},
		Results: []schema.Result{
			{Property: "editor.background", Status: schema.StatusValid, Description: "Editor background color.", Value: "#1e1e1e"},
			{Property: "editorIndentGuide.background", Status: schema.StatusWarn, Description: "Indent guide color.", Value: "#333333", Message: "Use editorIndentGuides.background instead."},
			{Property: "bogus.prop", Status: schema.StatusInvalid, Value: "blue", Message: "Property bogus.prop is not allowed."},
		},
	}
}

func TestNewRenderer_UnknownFormat(t *testing.T) {
	_, err := NewRenderer("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestJSONRenderer_RoundTrips(t *testing.T) {
	r, err := NewRenderer("json")
	require.NoError(t, err)

	out, err := r.Render(testReport())
	require.NoError(t, err)

	var decoded schema.Report
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "themelint", decoded.Tool)
	assert.Equal(t, schema.VerdictInvalid, decoded.Summary.Verdict)
	require.Len(t, decoded.Results, 3)
	assert.Equal(t, "editor.background", decoded.Results[0].Property)
	// Valid entries must not carry a message field.
	assert.NotContains(t, string(out), `"message": ""`)
}

func TestMarkdownRenderer(t *testing.T) {
	r, err := NewRenderer("md")
	require.NoError(t, err)

	out, err := r.Render(testReport())
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "**Verdict:** INVALID")
	assert.Contains(t, s, "| editorIndentGuide.background | warn |")
	assert.Contains(t, s, "Property bogus.prop is not allowed.")
}

func TestTextRenderer(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })

	r, err := NewRenderer("text")
	require.NoError(t, err)

	out, err := r.Render(testReport())
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "ok editor.background = #1e1e1e")
	assert.Contains(t, s, "warn editorIndentGuide.background = #333333")
	assert.Contains(t, s, "fail bogus.prop = blue")
	assert.Contains(t, s, "INVALID: 1 valid, 1 deprecated, 1 invalid")

	lines := strings.Split(strings.TrimSpace(s), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "ok "), "results keep declaration order")
}
