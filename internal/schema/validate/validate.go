// Package validate classifies user color declarations against a resolved
// schema map. It is pure computation: no I/O, no mutation of its inputs, and
// no panics for structurally valid input.
package validate

import (
	"fmt"
	"regexp"

	"github.com/themelint/themelint/internal/schema"
)

// hexColorPattern is the case-insensitive color grammar: #RGB, #RGBA,
// #RRGGBB or #RRGGBBAA.
var hexColorPattern = regexp.MustCompile(`^#(?i:[0-9a-f]{6}(?:[0-9a-f]{2})?|[0-9a-f]{3}[0-9a-f]?)$`)

const (
	msgNotString    = "Color values must be strings"
	msgBadFormat    = "Invalid color format. Use #RGB, #RGBA, #RRGGBB or #RRGGBBAA."
	msgTransparency = "This color must be transparent to avoid obscuring content."

	noDescription = "No description available"
)

// Validate classifies every declaration against the resolved schema map.
// The result list preserves declaration order exactly; neither input is
// mutated, and calling twice with the same inputs yields equal output.
func Validate(schemaMap schema.Map, colors []schema.Declaration) []schema.Result {
	results := make([]schema.Result, 0, len(colors))
	for _, decl := range colors {
		results = append(results, validateOne(schemaMap, decl))
	}
	return results
}

func validateOne(schemaMap schema.Map, decl schema.Declaration) schema.Result {
	prop, ok := schemaMap[decl.Property]
	if !ok {
		return schema.Result{
			Property: decl.Property,
			Status:   schema.StatusInvalid,
			Value:    decl.Value,
			Message:  fmt.Sprintf("Property %s is not allowed.", decl.Property),
		}
	}

	desc := prop.Description
	if desc == "" {
		desc = noDescription
	}
	res := schema.Result{
		Property:    decl.Property,
		Description: desc,
		Value:       decl.Value,
	}

	// Deprecation takes precedence: a deprecated property reports the
	// deprecation text as a warning even when the value itself would fail
	// the format or transparency check.
	if prop.DeprecationMessage != "" {
		res.Status = schema.StatusWarn
		res.Message = prop.DeprecationMessage
		return res
	}

	if msg := checkValue(prop, decl.Value); msg != "" {
		res.Status = schema.StatusInvalid
		res.Message = msg
		return res
	}
	res.Status = schema.StatusValid
	return res
}

// checkValue runs the format and transparency checks, returning "" on
// success or the failure reason. Alternatives are tested in declaration
// order and the first failing one wins.
func checkValue(prop *schema.Property, value any) string {
	s, ok := value.(string)
	if !ok {
		return msgNotString
	}
	if s != "default" && !hexColorPattern.MatchString(s) {
		return msgBadFormat
	}
	for _, alt := range prop.OneOf {
		// Patterns are compiled at resolution time; a nil Compiled means the
		// alternative carries no pattern or an unusable one.
		if alt.Compiled == nil {
			continue
		}
		if !alt.Compiled.MatchString(s) {
			if alt.PatternErrorMessage != "" {
				return alt.PatternErrorMessage
			}
			return msgTransparency
		}
	}
	return ""
}
