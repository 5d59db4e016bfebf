package schema

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/tailscale/hujson"
)

// ParseDocument parses relaxed-JSON schema text (comments and trailing
// commas allowed) into a Document. The text is standardized to plain JSON
// before decoding.
func ParseDocument(data []byte) (*Document, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("standardizing schema text: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(std, &doc); err != nil {
		return nil, fmt.Errorf("parsing schema document: %w", err)
	}
	if doc.Properties == nil {
		return nil, fmt.Errorf("schema document has no properties object")
	}
	return &doc, nil
}
