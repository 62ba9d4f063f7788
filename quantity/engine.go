package quantity

import (
	"errors"
	"fmt"
)

// Engine resolves unit expressions and converts numeric values between them.
// Implementations must be safe for concurrent use: the unit-definition table
// they evaluate against is read-only after construction.
type Engine interface {
	// Convert translates value from one unit expression to another. It fails
	// when either expression cannot be resolved or the two units are not
	// dimensionally compatible.
	Convert(value float64, from, to string) (float64, error)
	// Validate reports whether unit is a resolvable unit expression.
	Validate(unit string) error
	// Format renders unit in compact human-readable notation (e.g.
	// "meter ** 2" becomes "m²"). It fails for expressions containing
	// tokens without a display symbol.
	Format(unit string) (string, error)
}

// ProgramCache stores compiled unit programs keyed by unit expression.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// ParseError reports a unit expression the engine could not resolve.
type ParseError struct {
	Unit string
	Err  error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("quantity: cannot parse unit %q: %v", e.Unit, e.Err)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IncompatibleError reports a conversion between units of different
// dimensionality.
type IncompatibleError struct {
	From string
	To   string
}

func (e *IncompatibleError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("quantity: units %q and %q are not dimensionally compatible", e.From, e.To)
}

// convertResolved applies the shared conversion semantics once both unit
// expressions are resolved: affine units pivot through kelvin, linear units
// convert by scale ratio, and mismatched signatures or mixed affine/linear
// pairs are incompatible.
func convertResolved(value float64, from, to string, src, dst resolvedUnit) (float64, error) {
	switch {
	case src.affine != nil && dst.affine != nil:
		return dst.affine.fromKelvin(src.affine.toKelvin(value)), nil
	case src.affine != nil || dst.affine != nil:
		return 0, &IncompatibleError{From: from, To: to}
	}
	if !sameSignature(src.signature, dst.signature) {
		return 0, &IncompatibleError{From: from, To: to}
	}
	return value * src.scale / dst.scale, nil
}

func wrapParseError(unit string, err error) error {
	if err == nil {
		return nil
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		if parseErr.Unit == "" {
			parseErr.Unit = unit
		}
		return parseErr
	}
	return &ParseError{Unit: unit, Err: err}
}
