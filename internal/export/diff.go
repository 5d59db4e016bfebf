package export

import (
	"bytes"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a human-readable diff between two schema exports, or "" when
// they are identical. Both sides should come from Map with the same format
// so key ordering does not produce spurious differences.
func Diff(before, after []byte) string {
	if bytes.Equal(before, after) {
		return ""
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(before), string(after), true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}
