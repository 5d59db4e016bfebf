package render

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"

	"github.com/themelint/themelint/internal/schema"
)

type textRenderer struct{}

var (
	markValid   = color.New(color.FgGreen).SprintFunc()
	markWarn    = color.New(color.FgYellow).SprintFunc()
	markInvalid = color.New(color.FgRed).SprintFunc()
)

// Render writes one line per declaration followed by a summary line. Color
// output is automatically disabled when stdout is not a terminal.
func (r *textRenderer) Render(report *schema.Report) ([]byte, error) {
	var buf bytes.Buffer

	for _, res := range report.Results {
		switch res.Status {
		case schema.StatusValid:
			fmt.Fprintf(&buf, "%s %s = %v\n", markValid("ok"), res.Property, res.Value)
		case schema.StatusWarn:
			fmt.Fprintf(&buf, "%s %s = %v\n    %s\n", markWarn("warn"), res.Property, res.Value, res.Message)
		case schema.StatusInvalid:
			fmt.Fprintf(&buf, "%s %s = %v\n    %s\n", markInvalid("fail"), res.Property, res.Value, res.Message)
		}
	}

	fmt.Fprintf(&buf, "\n%s: %d valid, %d deprecated, %d invalid\n",
		report.Summary.Verdict,
		report.Summary.ValidCount,
		report.Summary.WarnCount,
		report.Summary.InvalidCount)
	return buf.Bytes(), nil
}
