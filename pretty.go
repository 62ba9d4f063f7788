package units

import (
	"strings"

	"github.com/goliatone/go-units/quantity"
)

// PrettyDimensions returns the derived presentation view of the dimension
// table: Title Case keys with spaces, unit strings rendered through the
// engine formatter. The view is computed once at construction; this returns
// a defensive copy.
func (r *Registry) PrettyDimensions() map[string]UnitMapping {
	out := make(map[string]UnitMapping, len(r.pretty))
	for key, mapping := range r.pretty {
		copied := make(UnitMapping, len(mapping))
		for system, unit := range mapping {
			copied[system] = unit
		}
		out[key] = copied
	}
	return out
}

// buildPretty derives the pretty view. A unit the formatter cannot render
// keeps its raw string rather than failing the whole view.
func buildPretty(dims map[string]UnitMapping, engine quantity.Engine) map[string]UnitMapping {
	pretty := make(map[string]UnitMapping, len(dims))
	for dimension, mapping := range dims {
		formatted := make(UnitMapping, len(mapping))
		for system, unit := range mapping {
			rendered, err := engine.Format(unit)
			if err != nil {
				rendered = unit
			}
			formatted[system] = rendered
		}
		pretty[prettyDimensionKey(dimension)] = formatted
	}
	return pretty
}

// prettyDimensionKey renders "mass_flow_rate" as "Mass Flow Rate". The
// transform is the exact inverse of NormalizeDimension, so pretty keys
// resolve through the same lookup path.
func prettyDimensionKey(key string) string {
	words := strings.Split(key, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
