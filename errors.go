package units

import (
	"errors"
	"fmt"
	"strings"
)

// UnsupportedDimensionError reports a dimension key missing from the
// registry after normalization. Known carries the registry's dimension keys
// so callers can surface suggestions.
type UnsupportedDimensionError struct {
	Dimension string
	Known     []string
}

func (e *UnsupportedDimensionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("units: unknown dimension %q (known: %s)", e.Dimension, strings.Join(e.Known, ", "))
}

// ConversionError reports a unit conversion the quantity engine rejected,
// either because a unit string failed to parse or because the two units are
// not dimensionally compatible.
type ConversionError struct {
	Dimension string
	FromUnit  string
	ToUnit    string
	Err       error
}

func (e *ConversionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("units: cannot convert dimension %q (%s -> %s): %v", e.Dimension, e.FromUnit, e.ToUnit, e.Err)
}

func (e *ConversionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValueError is the value-rejection kind surfaced across the field
// transform boundary: raw input that is not numeric, or a registry/engine
// failure translated for the validation/serialization framework.
type ValueError struct {
	Value any
	Err   error
}

func (e *ValueError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("units: invalid value: %v", e.Err)
	}
	return fmt.Sprintf("units: cannot convert %v to a numeric value", e.Value)
}

func (e *ValueError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func wrapConversionError(dimension, fromUnit, toUnit string, err error) error {
	if err == nil {
		return nil
	}
	var convErr *ConversionError
	if errors.As(err, &convErr) {
		return err
	}
	return &ConversionError{
		Dimension: dimension,
		FromUnit:  fromUnit,
		ToUnit:    toUnit,
		Err:       err,
	}
}

// rejectValue translates internal error kinds into the ValueError rejection
// the external framework consumes. Errors already shaped as rejections pass
// through untouched.
func rejectValue(err error) error {
	if err == nil {
		return nil
	}
	var valueErr *ValueError
	if errors.As(err, &valueErr) {
		return err
	}
	var dimErr *UnsupportedDimensionError
	var convErr *ConversionError
	if errors.As(err, &dimErr) || errors.As(err, &convErr) {
		return &ValueError{Err: err}
	}
	return err
}
