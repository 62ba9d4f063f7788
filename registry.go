package units

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-units/quantity"
)

// Registry holds the dimension table, the quantity engine and the scope
// configuration. It is built once at startup and read-only afterwards, so a
// single instance is safe to share across concurrent call chains.
type Registry struct {
	dims      map[string]UnitMapping
	pretty    map[string]UnitMapping
	systems   []string
	systemSet map[string]struct{}
	base      string
	fallback  string
	engine    quantity.Engine
	logger    ScopeLogger
}

// Option configures Registry construction.
type Option func(*registryConfig)

type registryConfig struct {
	dims     map[string]UnitMapping
	base     string
	fallback string
	engine   quantity.Engine
	logger   ScopeLogger
	cache    quantity.ProgramCache
}

// WithDimensions replaces the default dimension table. The map is copied so
// the registry stays immutable after construction.
func WithDimensions(dims map[string]UnitMapping) Option {
	return func(cfg *registryConfig) {
		cfg.dims = dims
	}
}

// WithBaseSystem overrides the system used for internal storage.
func WithBaseSystem(system string) Option {
	return func(cfg *registryConfig) {
		cfg.base = strings.ToLower(system)
	}
}

// WithDefaultSystem overrides the fallback substituted for unknown systems.
func WithDefaultSystem(system string) Option {
	return func(cfg *registryConfig) {
		cfg.fallback = strings.ToLower(system)
	}
}

// WithQuantityEngine swaps the quantity-algebra backend.
func WithQuantityEngine(engine quantity.Engine) Option {
	return func(cfg *registryConfig) {
		cfg.engine = engine
	}
}

// WithScopeLogger attaches a logger that receives scope diagnostics such as
// unknown-system fallbacks.
func WithScopeLogger(logger ScopeLogger) Option {
	return func(cfg *registryConfig) {
		if logger == nil {
			cfg.logger = noopScopeLogger{}
			return
		}
		cfg.logger = logger
	}
}

// WithProgramCache wires a compiled-unit cache into the default engine. It
// has no effect when WithQuantityEngine supplies a backend directly.
func WithProgramCache(cache quantity.ProgramCache) Option {
	return func(cfg *registryConfig) {
		cfg.cache = cache
	}
}

// New validates the dimension table and builds a Registry. Every dimension
// must define the same set of system keys, no unit string may be empty, and
// every unit string must resolve through the quantity engine.
func New(opts ...Option) (*Registry, error) {
	cfg := registryConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.dims == nil {
		cfg.dims = Dimensions
	}
	if cfg.engine == nil {
		var engineOpts []quantity.ExprEngineOption
		if cfg.cache != nil {
			engineOpts = append(engineOpts, quantity.ExprWithProgramCache(cfg.cache))
		}
		cfg.engine = quantity.NewExprEngine(engineOpts...)
	}
	if cfg.base == "" {
		cfg.base = BaseSystem
	}
	if cfg.fallback == "" {
		cfg.fallback = DefaultSystem
	}
	if cfg.logger == nil {
		cfg.logger = noopScopeLogger{}
	}
	if len(cfg.dims) == 0 {
		return nil, fmt.Errorf("units: dimension table must not be empty")
	}

	systemSet := map[string]struct{}{}
	for _, mapping := range cfg.dims {
		for system := range mapping {
			systemSet[strings.ToLower(system)] = struct{}{}
		}
	}

	dims := make(map[string]UnitMapping, len(cfg.dims))
	for dimension, mapping := range cfg.dims {
		key := NormalizeDimension(dimension)
		if len(mapping) != len(systemSet) {
			return nil, fmt.Errorf("units: dimension %q does not define every system", dimension)
		}
		copied := make(UnitMapping, len(mapping))
		for system, unit := range mapping {
			systemKey := strings.ToLower(system)
			if unit == "" {
				return nil, fmt.Errorf("units: dimension %q has an empty unit for system %q", dimension, system)
			}
			if err := cfg.engine.Validate(unit); err != nil {
				return nil, fmt.Errorf("units: dimension %q system %q: %w", dimension, system, err)
			}
			copied[systemKey] = unit
		}
		dims[key] = copied
	}

	if _, ok := systemSet[cfg.base]; !ok {
		return nil, fmt.Errorf("units: base system %q is not defined by the dimension table", cfg.base)
	}
	if _, ok := systemSet[cfg.fallback]; !ok {
		return nil, fmt.Errorf("units: default system %q is not defined by the dimension table", cfg.fallback)
	}

	r := &Registry{
		dims:      dims,
		systems:   orderSystems(systemSet),
		systemSet: systemSet,
		base:      cfg.base,
		fallback:  cfg.fallback,
		engine:    cfg.engine,
		logger:    cfg.logger,
	}
	r.pretty = buildPretty(r.dims, r.engine)
	return r, nil
}

// NormalizeDimension lowers the key and collapses whitespace runs into
// single underscores, so "Mass Flow Rate", "mass flow rate" and
// "MASS_FLOW_RATE" all resolve to "mass_flow_rate".
func NormalizeDimension(key string) string {
	return strings.Join(strings.Fields(strings.ToLower(key)), "_")
}

// UnitFor returns the unit string for dimension in system. The dimension is
// normalized before lookup; an unknown dimension fails with
// UnsupportedDimensionError. An unknown system silently resolves to the
// default system — callers needing strict membership must consult
// SupportedSystems themselves.
func (r *Registry) UnitFor(dimension, system string) (string, error) {
	mapping, err := r.mapping(dimension)
	if err != nil {
		return "", err
	}
	return mapping[r.resolveSystem(system)], nil
}

// BaseUnitFor returns the unit string for dimension in the base system.
func (r *Registry) BaseUnitFor(dimension string) (string, error) {
	return r.UnitFor(dimension, r.base)
}

// Base returns the base system key.
func (r *Registry) Base() string {
	return r.base
}

// Default returns the fallback system key.
func (r *Registry) Default() string {
	return r.fallback
}

// SupportedSystems returns the system keys derived from the dimension
// table, in display order.
func (r *Registry) SupportedSystems() []string {
	out := make([]string, len(r.systems))
	copy(out, r.systems)
	return out
}

// DimensionKeys returns the normalized dimension keys in sorted order.
func (r *Registry) DimensionKeys() []string {
	keys := make([]string, 0, len(r.dims))
	for key := range r.dims {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (r *Registry) mapping(dimension string) (UnitMapping, error) {
	key := NormalizeDimension(dimension)
	mapping, ok := r.dims[key]
	if !ok {
		return nil, &UnsupportedDimensionError{Dimension: dimension, Known: r.DimensionKeys()}
	}
	return mapping, nil
}

func (r *Registry) resolveSystem(system string) string {
	key := strings.ToLower(strings.TrimSpace(system))
	if _, ok := r.systemSet[key]; !ok {
		return r.fallback
	}
	return key
}

// orderSystems keeps the canonical UnitSystems order for known keys and
// appends any extra keys sorted.
func orderSystems(systemSet map[string]struct{}) []string {
	seen := map[string]struct{}{}
	var ordered []string
	for _, system := range UnitSystems {
		if _, ok := systemSet[system]; ok {
			ordered = append(ordered, system)
			seen[system] = struct{}{}
		}
	}
	var extra []string
	for system := range systemSet {
		if _, ok := seen[system]; !ok {
			extra = append(extra, system)
		}
	}
	sort.Strings(extra)
	return append(ordered, extra...)
}
