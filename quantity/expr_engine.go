package quantity

import (
	"fmt"
	"math"
	"strings"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"
)

// ExprEngineOption configures an expr-backed engine instance.
type ExprEngineOption func(*exprEngine)

// ExprWithProgramCache wires a ProgramCache into the expr engine so unit
// expressions compile once per process instead of once per conversion.
func ExprWithProgramCache(cache ProgramCache) ExprEngineOption {
	return func(e *exprEngine) {
		e.cache = cache
	}
}

// exprEngine evaluates unit expressions using github.com/expr-lang/expr.
type exprEngine struct {
	cache ProgramCache
}

// NewExprEngine constructs the default Engine backed by expr-lang/expr.
func NewExprEngine(opts ...ExprEngineOption) Engine {
	e := &exprEngine{}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// resolvedUnit carries everything needed to convert through a unit: either
// the affine scale for temperature units, or the linear factor plus the
// dimensional signature.
type resolvedUnit struct {
	scale     float64
	signature float64
	affine    *affineUnit
}

func (e *exprEngine) Convert(value float64, from, to string) (float64, error) {
	if strings.TrimSpace(from) == strings.TrimSpace(to) {
		// Identical units convert exactly, affine scales included.
		if _, err := e.resolve(from); err != nil {
			return 0, err
		}
		return value, nil
	}
	src, err := e.resolve(from)
	if err != nil {
		return 0, err
	}
	dst, err := e.resolve(to)
	if err != nil {
		return 0, err
	}
	return convertResolved(value, from, to, src, dst)
}

func (e *exprEngine) Validate(unit string) error {
	_, err := e.resolve(unit)
	return err
}

func (e *exprEngine) Format(unit string) (string, error) {
	return formatUnit(unit)
}

func (e *exprEngine) resolve(unit string) (resolvedUnit, error) {
	trimmed := strings.TrimSpace(unit)
	if trimmed == "" {
		return resolvedUnit{}, wrapParseError(unit, fmt.Errorf("expression must not be empty"))
	}
	if af, ok := affineUnits[trimmed]; ok {
		af := af
		return resolvedUnit{affine: &af}, nil
	}
	program, err := e.loadOrCompile(trimmed)
	if err != nil {
		return resolvedUnit{}, err
	}
	scale, err := runUnitProgram(program, scaleEnv)
	if err != nil {
		return resolvedUnit{}, wrapParseError(unit, err)
	}
	signature, err := runUnitProgram(program, signatureEnv)
	if err != nil {
		return resolvedUnit{}, wrapParseError(unit, err)
	}
	return resolvedUnit{scale: scale, signature: signature}, nil
}

func (e *exprEngine) loadOrCompile(expression string) (*exprvm.Program, error) {
	if e.cache != nil {
		if cached, ok := e.cache.Get(expression); ok {
			if program, ok := cached.(*exprvm.Program); ok {
				return program, nil
			}
		}
	}
	program, err := exprlang.Compile(expression, exprlang.Env(scaleEnv))
	if err != nil {
		return nil, wrapParseError(expression, err)
	}
	if e.cache != nil {
		e.cache.Set(expression, program)
	}
	return program, nil
}

func runUnitProgram(program *exprvm.Program, env map[string]float64) (float64, error) {
	result, err := exprlang.Run(program, env)
	if err != nil {
		return 0, err
	}
	return numericResult(result)
}

func numericResult(result any) (float64, error) {
	switch typed := result.(type) {
	case float64:
		return typed, nil
	case float32:
		return float64(typed), nil
	case int:
		return float64(typed), nil
	case int64:
		return float64(typed), nil
	default:
		return 0, fmt.Errorf("expression yielded non-numeric result %T", result)
	}
}

// sameSignature compares prime-encoded signatures with a relative epsilon to
// absorb rounding differences between evaluation orders.
func sameSignature(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	return diff <= 1e-9*math.Max(math.Abs(a), math.Abs(b))
}
