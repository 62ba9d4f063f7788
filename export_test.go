package units

import (
	"encoding/json"
	"testing"
)

func TestExportRawSnapshot(t *testing.T) {
	registry := mustRegistry(t)
	snapshot := registry.Export(ExportRaw)

	if snapshot.Form != ExportRaw {
		t.Fatalf("snapshot form = %q, want %q", snapshot.Form, ExportRaw)
	}
	if snapshot.Base != BaseSystem || snapshot.Default != DefaultSystem {
		t.Fatalf("snapshot base/default = %q/%q, want %q/%q", snapshot.Base, snapshot.Default, BaseSystem, DefaultSystem)
	}
	if len(snapshot.Dimensions) != len(Dimensions) {
		t.Fatalf("snapshot has %d dimensions, want %d", len(snapshot.Dimensions), len(Dimensions))
	}
	if got := snapshot.Dimensions["pressure"]["si"]; got != "pascal" {
		t.Fatalf("snapshot pressure/si = %q, want %q", got, "pascal")
	}
}

func TestExportIsDetachedFromRegistry(t *testing.T) {
	registry := mustRegistry(t)
	snapshot := registry.Export(ExportRaw)
	snapshot.Dimensions["pressure"]["si"] = "mutated"

	fresh := registry.Export(ExportRaw)
	if got := fresh.Dimensions["pressure"]["si"]; got != "pascal" {
		t.Fatalf("mutating a snapshot leaked into the registry: %q", got)
	}
}

func TestExportPrettySnapshot(t *testing.T) {
	registry := mustRegistry(t)
	snapshot := registry.Export(ExportPretty)
	if snapshot.Form != ExportPretty {
		t.Fatalf("snapshot form = %q, want %q", snapshot.Form, ExportPretty)
	}
	if got := snapshot.Dimensions["Pressure"]["si"]; got != "Pa" {
		t.Fatalf("pretty snapshot Pressure/si = %q, want %q", got, "Pa")
	}
}

func TestSnapshotToJSONRoundTrip(t *testing.T) {
	registry := mustRegistry(t)
	data, err := registry.Export(ExportRaw).ToJSON()
	if err != nil {
		t.Fatalf("ToJSON returned error: %v", err)
	}

	var decoded Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	if decoded.Form != ExportRaw {
		t.Fatalf("decoded form = %q, want %q", decoded.Form, ExportRaw)
	}
	if got := decoded.Dimensions["length"]["imperial"]; got != "foot" {
		t.Fatalf("decoded length/imperial = %q, want %q", got, "foot")
	}
	if len(decoded.Systems) != len(UnitSystems) {
		t.Fatalf("decoded %d systems, want %d", len(decoded.Systems), len(UnitSystems))
	}
}
