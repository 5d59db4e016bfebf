// Package export serializes a resolved schema map for external inspection
// and compares exports for drift between schema revisions.
package export

import (
	"fmt"
	"sort"

	json "github.com/goccy/go-json"
	yaml "github.com/goccy/go-yaml"

	"github.com/themelint/themelint/internal/schema"
)

// Map dumps the resolved schema map in the given format ("json" or "yaml").
// Keys are emitted in sorted order so exports of the same schema are
// byte-identical across runs.
func Map(m schema.Map, format string) ([]byte, error) {
	switch format {
	case "json":
		// goccy/go-json sorts map keys like encoding/json does.
		return json.MarshalIndent(m, "", "  ")
	case "yaml":
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		slice := make(yaml.MapSlice, 0, len(keys))
		for _, k := range keys {
			slice = append(slice, yaml.MapItem{Key: k, Value: m[k]})
		}
		return yaml.Marshal(slice)
	default:
		return nil, fmt.Errorf("unknown format %q: supported formats are json, yaml", format)
	}
}
