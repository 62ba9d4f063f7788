package units

import "context"

// ToBase converts value from the given system's preferred unit into the
// base unit for dimension. Results are memoized in the call chain's
// conversion cache when ctx carries one.
func (r *Registry) ToBase(ctx context.Context, value float64, dimension, system string) (float64, error) {
	return r.convert(ctx, value, dimension, system, ToBase)
}

// FromBase converts value from the base unit for dimension into the given
// system's preferred unit.
func (r *Registry) FromBase(ctx context.Context, value float64, dimension, system string) (float64, error) {
	return r.convert(ctx, value, dimension, system, FromBase)
}

func (r *Registry) convert(ctx context.Context, value float64, dimension, system string, direction Direction) (float64, error) {
	mapping, err := r.mapping(dimension)
	if err != nil {
		return 0, err
	}
	dim := NormalizeDimension(dimension)
	sys := r.resolveSystem(system)

	key := CacheKey{Value: value, Dimension: dim, System: sys, Direction: direction}
	cache := cacheFrom(ctx)
	if cached, ok := cache.lookup(key); ok {
		return cached, nil
	}

	preferred := mapping[sys]
	base := mapping[r.base]
	from, to := preferred, base
	if direction == FromBase {
		from, to = base, preferred
	}

	converted, err := r.engine.Convert(value, from, to)
	if err != nil {
		return 0, wrapConversionError(dim, from, to, err)
	}
	cache.store(key, converted)
	return converted, nil
}
