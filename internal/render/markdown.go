package render

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/themelint/themelint/internal/schema"
)

type markdownRenderer struct{}

var mdTemplate = template.Must(template.New("report").Parse(`# Color Customization Report

**File:** {{ .Input.ColorsFile }}
**Verdict:** {{ .Summary.Verdict }}
**Valid:** {{ .Summary.ValidCount }} | **Deprecated:** {{ .Summary.WarnCount }} | **Invalid:** {{ .Summary.InvalidCount }}
{{ if .Results }}
---

| Property | Status | Value | Message |
|---|---|---|---|
{{ range .Results }}| {{ .Property }} | {{ .Status }} | ` + "`{{ .Value }}`" + ` | {{ .Message }} |
{{ end }}{{ end }}
---
*{{ .Tool }} {{ .Version }}*
`))

func (r *markdownRenderer) Render(report *schema.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := mdTemplate.Execute(&buf, report); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}
