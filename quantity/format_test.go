package quantity

import "testing"

func TestFormatUnit(t *testing.T) {
	engine := NewExprEngine()
	cases := []struct {
		unit string
		want string
	}{
		{"pascal", "Pa"},
		{"psi", "psi"},
		{"meter ** 2", "m²"},
		{"meter ** 3", "m³"},
		{"degF", "°F"},
		{"kelvin", "K"},
		{"foot / second ** 2", "ft/s²"},
		{"pound / (foot * second)", "lb/(ft·s)"},
		{"1 / meter", "1/m"},
		{"kilogram * meter / second", "kg·m/s"},
	}
	for _, tc := range cases {
		got, err := engine.Format(tc.unit)
		if err != nil {
			t.Fatalf("Format(%q) returned error: %v", tc.unit, err)
		}
		if got != tc.want {
			t.Fatalf("Format(%q) = %q, want %q", tc.unit, got, tc.want)
		}
	}
}

func TestFormatUnknownSymbolFails(t *testing.T) {
	engine := NewExprEngine()
	for _, unit := range []string{"", "cubits", "meter @ second"} {
		if _, err := engine.Format(unit); err == nil {
			t.Fatalf("Format(%q) succeeded, want error", unit)
		}
	}
}
