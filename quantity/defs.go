package quantity

// Signatures encode a unit's dimensionality as a product of per-dimension
// primes. Two unit expressions are compatible exactly when their evaluated
// signatures coincide, because prime factorisation is unique and the
// exponents in the supported grammar stay small enough for float64
// arithmetic to be deterministic.
const (
	sigLength      = 2.0
	sigMass        = 3.0
	sigTime        = 5.0
	sigTemperature = 7.0
	sigCurrent     = 11.0
	sigLuminosity  = 13.0
	sigSubstance   = 17.0
)

// Derived signatures used by named composite units.
const (
	sigArea      = sigLength * sigLength
	sigVolume    = sigArea * sigLength
	sigFrequency = 1 / sigTime
	sigForce     = sigMass * sigLength / (sigTime * sigTime)
	sigPressure  = sigForce / sigArea
	sigEnergy    = sigForce * sigLength
	sigPower     = sigEnergy / sigTime
	sigDynVisc   = sigMass / (sigLength * sigTime)
	sigKinVisc   = sigArea / sigTime
)

// unitDef describes one atomic linear unit: its factor relative to the
// coherent SI unit of the same dimension, and its dimensional signature.
type unitDef struct {
	scale     float64
	signature float64
	symbol    string
}

// linearUnits is the table of atomic linear units the engine resolves
// identifiers against. Factors follow the exact legal definitions (survey
// foot excluded): 0.3048 m/ft, 0.45359237 kg/lb, and derived values.
var linearUnits = map[string]unitDef{
	"meter":       {1, sigLength, "m"},
	"centimeter":  {0.01, sigLength, "cm"},
	"inch":        {0.0254, sigLength, "in"},
	"foot":        {0.3048, sigLength, "ft"},
	"yard":        {0.9144, sigLength, "yd"},
	"mile":        {1609.344, sigLength, "mi"},
	"square_foot": {0.09290304, sigArea, "ft²"},
	"cubic_foot":  {0.028316846592, sigVolume, "ft³"},
	"liter":       {0.001, sigVolume, "L"},
	"kilogram":    {1, sigMass, "kg"},
	"gram":        {0.001, sigMass, "g"},
	"pound":       {0.45359237, sigMass, "lb"},
	"ounce":       {0.028349523125, sigMass, "oz"},
	"second":      {1, sigTime, "s"},
	"minute":      {60, sigTime, "min"},
	"hour":        {3600, sigTime, "h"},
	"ampere":      {1, sigCurrent, "A"},
	"candela":     {1, sigLuminosity, "cd"},
	"mole":        {1, sigSubstance, "mol"},
	"hertz":       {1, sigFrequency, "Hz"},
	"pascal":      {1, sigPressure, "Pa"},
	"bar":         {100000, sigPressure, "bar"},
	"barye":       {0.1, sigPressure, "Ba"},
	"psi":         {6894.757293168361, sigPressure, "psi"},
	"newton":      {1, sigForce, "N"},
	"dyne":        {1e-5, sigForce, "dyn"},
	"pound_force": {4.4482216152605, sigForce, "lbf"},
	"joule":       {1, sigEnergy, "J"},
	"erg":         {1e-7, sigEnergy, "erg"},
	"foot_pound":  {1.3558179483314004, sigEnergy, "ft·lb"},
	"watt":        {1, sigPower, "W"},
	"poise":       {0.1, sigDynVisc, "P"},
	"stokes":      {1e-4, sigKinVisc, "St"},
}

// affineUnit describes a temperature scale. Conversion pivots through
// kelvin: K = (value + offset) * scale.
type affineUnit struct {
	offset float64
	scale  float64
	symbol string
}

// affineUnits convert through an offset and therefore only resolve as a
// whole expression, never inside a compound one.
var affineUnits = map[string]affineUnit{
	"kelvin": {0, 1, "K"},
	"degC":   {273.15, 1, "°C"},
	"degF":   {459.67, 5.0 / 9.0, "°F"},
	"degR":   {0, 5.0 / 9.0, "°R"},
}

func (a affineUnit) toKelvin(value float64) float64 {
	return (value + a.offset) * a.scale
}

func (a affineUnit) fromKelvin(value float64) float64 {
	return value/a.scale - a.offset
}

// scaleEnv and signatureEnv are the two evaluation environments shared by
// every engine backend. Built once at package init; read-only afterwards.
var (
	scaleEnv     map[string]float64
	signatureEnv map[string]float64
)

func init() {
	scaleEnv = make(map[string]float64, len(linearUnits))
	signatureEnv = make(map[string]float64, len(linearUnits))
	for name, def := range linearUnits {
		scaleEnv[name] = def.scale
		signatureEnv[name] = def.signature
	}
}
