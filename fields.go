package units

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
)

// Role selects which conversion pair a field transform applies.
type Role string

const (
	// RoleInput marks fields whose raw values arrive in the caller's
	// preferred units and are stored in base units.
	RoleInput Role = "Input"
	// RoleOutput marks fields populated internally in base units.
	RoleOutput Role = "Output"
)

// Transform is the hook pair handed to the external validation and
// serialization framework. OnArrive runs at field-validate time with the
// raw value; OnDepart runs at field-serialize time with the stored base
// value. Both read the ambient system from ctx, which may legitimately
// differ between the two phases of the same field.
type Transform struct {
	Role      Role
	Dimension string
	OnArrive  func(ctx context.Context, value any) (float64, error)
	OnDepart  func(ctx context.Context, value float64) (float64, error)
}

// Input builds the transform for request fields: arrive converts caller
// units to base, depart converts base back to caller units. The dimension
// binds at construction; hooks still defend against unknown dimensions at
// call time because schema-definition checks belong to the framework.
func (r *Registry) Input(dimension string) Transform {
	return Transform{
		Role:      RoleInput,
		Dimension: dimension,
		OnArrive: func(ctx context.Context, value any) (float64, error) {
			raw, err := coerceFloat(value)
			if err != nil {
				return 0, err
			}
			converted, err := r.ToBase(ctx, raw, dimension, r.System(ctx))
			if err != nil {
				return 0, rejectValue(err)
			}
			return converted, nil
		},
		OnDepart: r.departFromBase(dimension),
	}
}

// Output builds the transform for response fields: arrive accepts base
// units directly (coercion only), depart converts base to caller units.
func (r *Registry) Output(dimension string) Transform {
	return Transform{
		Role:      RoleOutput,
		Dimension: dimension,
		OnArrive: func(_ context.Context, value any) (float64, error) {
			return coerceFloat(value)
		},
		OnDepart: r.departFromBase(dimension),
	}
}

// Field dispatches to Input or Output; unknown roles default to Output so
// internally-populated fields never convert on arrival by accident.
func (r *Registry) Field(dimension string, role Role) Transform {
	if role == RoleInput {
		return r.Input(dimension)
	}
	return r.Output(dimension)
}

func (r *Registry) departFromBase(dimension string) func(context.Context, float64) (float64, error) {
	return func(ctx context.Context, value float64) (float64, error) {
		converted, err := r.FromBase(ctx, value, dimension, r.System(ctx))
		if err != nil {
			return 0, rejectValue(err)
		}
		return converted, nil
	}
}

// coerceFloat accepts the numeric shapes a serialization framework hands
// over: floats, ints, numeric strings and json.Number. Anything else is a
// ValueError.
func coerceFloat(value any) (float64, error) {
	switch typed := value.(type) {
	case float64:
		return typed, nil
	case float32:
		return float64(typed), nil
	case int:
		return float64(typed), nil
	case int8:
		return float64(typed), nil
	case int16:
		return float64(typed), nil
	case int32:
		return float64(typed), nil
	case int64:
		return float64(typed), nil
	case uint:
		return float64(typed), nil
	case uint8:
		return float64(typed), nil
	case uint16:
		return float64(typed), nil
	case uint32:
		return float64(typed), nil
	case uint64:
		return float64(typed), nil
	case json.Number:
		parsed, err := typed.Float64()
		if err != nil {
			return 0, &ValueError{Value: value}
		}
		return parsed, nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0, &ValueError{Value: value}
		}
		return parsed, nil
	default:
		return 0, &ValueError{Value: value}
	}
}
