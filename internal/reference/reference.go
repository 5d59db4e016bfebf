// Package reference bundles the fallback schema document used when the
// caller does not supply one, standing in for the host editor's built-in
// color reference.
package reference

import _ "embed"

//go:embed colors.jsonc
var builtin []byte

// Builtin returns a copy of the bundled reference schema document.
func Builtin() []byte {
	out := make([]byte, len(builtin))
	copy(out, builtin)
	return out
}
