// Package resolve flattens a raw schema document into the query-ready
// property map the validator consumes. Resolution runs exactly once per
// document load; the output map is treated as immutable afterwards.
package resolve

import (
	"fmt"
	"regexp"

	"github.com/themelint/themelint/internal/schema"
)

// refPattern matches internal references of the form #/$<category>/<name>.
var refPattern = regexp.MustCompile(`^#/\$([^/]+)/([^/]+)$`)

// Canonical probes for the transparency derivation: an opaque 6-digit hex
// color and the same color with an alpha channel.
const (
	probeOpaque = "#ffffff"
	probeAlpha  = "#ffffffaa"
)

// Resolver turns a schema.Document into a schema.Map. The cache dedups
// definitions referenced from many properties; entries are written once and
// never overwritten.
type Resolver struct {
	doc   *schema.Document
	cache map[string]map[string]*schema.Node
}

// New creates a resolver for the given document.
func New(doc *schema.Document) *Resolver {
	return &Resolver{
		doc:   doc,
		cache: make(map[string]map[string]*schema.Node),
	}
}

// Document is a convenience wrapper: resolve doc in one call.
func Document(doc *schema.Document) (schema.Map, error) {
	return New(doc).Resolve()
}

// Resolve produces the flat property map. It either fully succeeds or
// returns an error naming the first unresolvable reference; a partial map is
// never returned. The output key set is exactly the document's properties
// key set.
func (r *Resolver) Resolve() (schema.Map, error) {
	out := make(schema.Map, len(r.doc.Properties))
	for key, node := range r.doc.Properties {
		prop, err := r.resolveProperty(key, node)
		if err != nil {
			return nil, err
		}
		out[key] = prop
	}
	return out, nil
}

func (r *Resolver) resolveProperty(key string, node *schema.Node) (*schema.Property, error) {
	// Work on a copy so the source document is left untouched.
	merged := *node
	if merged.Ref != "" {
		def, err := r.lookup(merged.Ref)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", key, err)
		}
		mergeNode(&merged, def)
		merged.Ref = ""
	}

	prop := &schema.Property{
		Key:                key,
		Description:        merged.Description,
		DeprecationMessage: merged.DeprecationMessage,
		Sample:             merged.Sample,
	}

	for i, raw := range merged.OneOf {
		alt := *raw
		if alt.Ref != "" {
			def, err := r.lookup(alt.Ref)
			if err != nil {
				return nil, fmt.Errorf("property %q oneOf[%d]: %w", key, i, err)
			}
			mergeNode(&alt, def)
			alt.Ref = ""
		}

		// First non-empty deprecation message among the alternatives becomes
		// the property's own.
		if prop.DeprecationMessage == "" && alt.DeprecationMessage != "" {
			prop.DeprecationMessage = alt.DeprecationMessage
		}

		resolved := schema.Alternative{
			Pattern:             alt.Pattern,
			PatternErrorMessage: alt.PatternErrorMessage,
		}
		if alt.Pattern != "" {
			// A pattern that does not compile disables this alternative but
			// never fails the document.
			if re, err := regexp.Compile(alt.Pattern); err == nil {
				resolved.Compiled = re
			}
		}
		prop.OneOf = append(prop.OneOf, resolved)
	}

	prop.AlphaRequired = deriveAlphaRequired(prop.OneOf)
	if prop.Sample == "" {
		if prop.AlphaRequired {
			prop.Sample = probeAlpha
		} else {
			prop.Sample = probeOpaque
		}
	}
	return prop, nil
}

// deriveAlphaRequired probes every compiled pattern with the opaque and
// alpha forms. A property requires transparency only when some pattern
// accepts the 8-digit probe and none accepts the 6-digit probe.
func deriveAlphaRequired(alts []schema.Alternative) bool {
	var acceptsOpaque, acceptsAlpha bool
	for _, alt := range alts {
		if alt.Compiled == nil {
			continue
		}
		if alt.Compiled.MatchString(probeOpaque) {
			acceptsOpaque = true
		}
		if alt.Compiled.MatchString(probeAlpha) {
			acceptsAlpha = true
		}
	}
	return acceptsAlpha && !acceptsOpaque
}

// lookup resolves a $ref string against the document's $defs, consulting the
// write-once cache first.
func (r *Resolver) lookup(ref string) (*schema.Node, error) {
	m := refPattern.FindStringSubmatch(ref)
	if m == nil {
		return nil, fmt.Errorf("malformed $ref %q: want #/$<category>/<name>", ref)
	}
	category, name := m[1], m[2]

	if cached, ok := r.cache[category][name]; ok {
		return cached, nil
	}

	defs, ok := r.doc.Defs[category]
	if !ok {
		return nil, fmt.Errorf("dangling $ref %q: unknown category %q", ref, category)
	}
	def, ok := defs[name]
	if !ok {
		return nil, fmt.Errorf("dangling $ref %q: no definition %q under %q", ref, name, category)
	}

	if r.cache[category] == nil {
		r.cache[category] = make(map[string]*schema.Node)
	}
	r.cache[category][name] = def
	return def, nil
}

// mergeNode shallow-copies def's populated fields onto dst.
func mergeNode(dst, def *schema.Node) {
	if def.Description != "" {
		dst.Description = def.Description
	}
	if def.DeprecationMessage != "" {
		dst.DeprecationMessage = def.DeprecationMessage
	}
	if def.Pattern != "" {
		dst.Pattern = def.Pattern
	}
	if def.PatternErrorMessage != "" {
		dst.PatternErrorMessage = def.PatternErrorMessage
	}
	if def.Sample != "" {
		dst.Sample = def.Sample
	}
	if len(def.OneOf) > 0 {
		dst.OneOf = def.OneOf
	}
}
