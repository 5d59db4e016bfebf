// Package colorfile loads a user's color customization file. The file is
// relaxed JSON (comments and trailing commas allowed) and its top level must
// be an object mapping property names to values.
package colorfile

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/tailscale/hujson"

	"github.com/themelint/themelint/internal/schema"
)

// File holds a loaded customization file with derived metadata.
type File struct {
	Path         string
	Hash         string // "sha256:<hex>"
	Declarations []schema.Declaration
}

// Load reads a customization file from disk, computes its hash, and parses
// its declarations.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading colors file: %w", err)
	}

	decls, err := Parse(data)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(data)
	return &File{
		Path:         path,
		Hash:         fmt.Sprintf("sha256:%x", sum),
		Declarations: decls,
	}, nil
}

// Parse decodes relaxed-JSON text into declarations. The decoder streams
// tokens so that document order is preserved, which a plain map decode would
// lose. Values keep whatever JSON type they have; type enforcement is the
// validator's job.
func Parse(data []byte) ([]schema.Declaration, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("standardizing colors file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(std))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing colors file: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("colors file must be a top-level object")
	}

	var decls []schema.Declaration
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing colors file: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("parsing colors file: unexpected key token %v", keyTok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("parsing value for %q: %w", key, err)
		}
		decls = append(decls, schema.Declaration{Property: key, Value: value})
	}
	return decls, nil
}
