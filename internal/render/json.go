package render

import (
	json "github.com/goccy/go-json"

	"github.com/themelint/themelint/internal/schema"
)

type jsonRenderer struct{}

func (r *jsonRenderer) Render(report *schema.Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
