package units

import (
	"encoding/json"
)

// ExportForm selects the rendering used by Export.
type ExportForm string

const (
	// ExportRaw emits the canonical dimension keys and unit strings.
	ExportRaw ExportForm = "raw"
	// ExportPretty emits the derived presentation view.
	ExportPretty ExportForm = "pretty"
)

// Snapshot is a read-only projection of the dimension table, suitable for
// configuration export or an API discovery endpoint.
type Snapshot struct {
	Form       ExportForm             `json:"form"`
	Systems    []string               `json:"systems"`
	Base       string                 `json:"base"`
	Default    string                 `json:"default"`
	Dimensions map[string]UnitMapping `json:"dimensions"`
}

// Export returns a snapshot of the registry in the requested form. Any form
// other than ExportPretty yields the raw table.
func (r *Registry) Export(form ExportForm) Snapshot {
	var dims map[string]UnitMapping
	if form == ExportPretty {
		dims = r.PrettyDimensions()
	} else {
		form = ExportRaw
		dims = make(map[string]UnitMapping, len(r.dims))
		for key, mapping := range r.dims {
			copied := make(UnitMapping, len(mapping))
			for system, unit := range mapping {
				copied[system] = unit
			}
			dims[key] = copied
		}
	}
	return Snapshot{
		Form:       form,
		Systems:    r.SupportedSystems(),
		Base:       r.base,
		Default:    r.fallback,
		Dimensions: dims,
	}
}

// ToJSON serialises the snapshot into indented JSON for files or transport.
func (s Snapshot) ToJSON() ([]byte, error) {
	type alias Snapshot
	return json.MarshalIndent(alias(s), "", "  ")
}
