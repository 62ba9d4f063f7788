package units

// Supported unit-system keys.
const (
	SystemImperial = "imperial"
	SystemSI       = "si"
	SystemCGS      = "cgs"
	SystemUS       = "us"
)

const (
	// BaseSystem is the system every value is stored and computed in.
	BaseSystem = SystemSI
	// DefaultSystem is substituted when a caller requests an unknown
	// system, and seeds the ambient scope at the root of a call chain.
	DefaultSystem = SystemImperial
)

// UnitMapping maps a unit-system key to the unit string used for one
// dimension in that system.
type UnitMapping map[string]string

// UnitSystems lists the supported system keys in display order.
var UnitSystems = []string{SystemImperial, SystemSI, SystemCGS, SystemUS}

// Dimensions is the default registry table: dimension key to per-system
// unit strings. Every dimension defines every system; unit strings use the
// quantity grammar (identifiers, `*`, `/`, `**`, parentheses).
var Dimensions = map[string]UnitMapping{
	"pressure": {
		SystemImperial: "psi",
		SystemSI:       "pascal",
		SystemCGS:      "barye",
		SystemUS:       "psi",
	},
	"length": {
		SystemImperial: "foot",
		SystemSI:       "meter",
		SystemCGS:      "centimeter",
		SystemUS:       "foot",
	},
	"temperature": {
		SystemImperial: "degF",
		SystemSI:       "degC",
		SystemCGS:      "degC",
		SystemUS:       "degF",
	},
	"mass": {
		SystemImperial: "pound",
		SystemSI:       "kilogram",
		SystemCGS:      "gram",
		SystemUS:       "pound",
	},
	"time": {
		SystemImperial: "second",
		SystemSI:       "second",
		SystemCGS:      "second",
		SystemUS:       "second",
	},
	"current": {
		SystemImperial: "ampere",
		SystemSI:       "ampere",
		SystemCGS:      "ampere",
		SystemUS:       "ampere",
	},
	"luminosity": {
		SystemImperial: "candela",
		SystemSI:       "candela",
		SystemCGS:      "candela",
		SystemUS:       "candela",
	},
	"substance": {
		SystemImperial: "mole",
		SystemSI:       "mole",
		SystemCGS:      "mole",
		SystemUS:       "mole",
	},
	"area": {
		SystemImperial: "square_foot",
		SystemSI:       "meter ** 2",
		SystemCGS:      "centimeter ** 2",
		SystemUS:       "square_foot",
	},
	"volume": {
		SystemImperial: "cubic_foot",
		SystemSI:       "meter ** 3",
		SystemCGS:      "centimeter ** 3",
		SystemUS:       "cubic_foot",
	},
	"frequency": {
		SystemImperial: "hertz",
		SystemSI:       "hertz",
		SystemCGS:      "hertz",
		SystemUS:       "hertz",
	},
	"wavenumber": {
		SystemImperial: "1 / foot",
		SystemSI:       "1 / meter",
		SystemCGS:      "1 / centimeter",
		SystemUS:       "1 / foot",
	},
	"velocity": {
		SystemImperial: "foot / second",
		SystemSI:       "meter / second",
		SystemCGS:      "centimeter / second",
		SystemUS:       "foot / second",
	},
	"speed": {
		SystemImperial: "foot / second",
		SystemSI:       "meter / second",
		SystemCGS:      "centimeter / second",
		SystemUS:       "foot / second",
	},
	"volumetric_flow_rate": {
		SystemImperial: "cubic_foot / second",
		SystemSI:       "meter ** 3 / second",
		SystemCGS:      "centimeter ** 3 / second",
		SystemUS:       "cubic_foot / second",
	},
	"mass_flow_rate": {
		SystemImperial: "pound / second",
		SystemSI:       "kilogram / second",
		SystemCGS:      "gram / second",
		SystemUS:       "pound / second",
	},
	"acceleration": {
		SystemImperial: "foot / second ** 2",
		SystemSI:       "meter / second ** 2",
		SystemCGS:      "centimeter / second ** 2",
		SystemUS:       "foot / second ** 2",
	},
	"force": {
		SystemImperial: "pound_force",
		SystemSI:       "newton",
		SystemCGS:      "dyne",
		SystemUS:       "pound_force",
	},
	"energy": {
		SystemImperial: "foot_pound",
		SystemSI:       "joule",
		SystemCGS:      "erg",
		SystemUS:       "foot_pound",
	},
	"power": {
		SystemImperial: "foot_pound / second",
		SystemSI:       "watt",
		SystemCGS:      "erg / second",
		SystemUS:       "foot_pound / second",
	},
	"momentum": {
		SystemImperial: "pound * foot / second",
		SystemSI:       "kilogram * meter / second",
		SystemCGS:      "gram * centimeter / second",
		SystemUS:       "pound * foot / second",
	},
	"density": {
		SystemImperial: "pound / cubic_foot",
		SystemSI:       "kilogram / meter ** 3",
		SystemCGS:      "gram / centimeter ** 3",
		SystemUS:       "pound / foot ** 3",
	},
	"torque": {
		SystemImperial: "foot_pound",
		SystemSI:       "newton * meter",
		SystemCGS:      "dyne * centimeter",
		SystemUS:       "foot_pound",
	},
	"viscosity": {
		SystemImperial: "pound / (foot * second)",
		SystemSI:       "pascal * second",
		SystemCGS:      "poise",
		SystemUS:       "pound / (foot * second)",
	},
	"kinematic_viscosity": {
		SystemImperial: "square_foot / second",
		SystemSI:       "meter ** 2 / second",
		SystemCGS:      "stokes",
		SystemUS:       "square_foot / second",
	},
}
