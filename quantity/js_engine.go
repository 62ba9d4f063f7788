//go:build js_eval

package quantity

import (
	"fmt"
	"strings"

	"github.com/dop251/goja"
)

// jsEngine evaluates unit expressions with goja. JavaScript shares the
// grammar of the registry's unit strings (`**`, `*`, `/`, parentheses), so
// expressions run unmodified against globals bound to the unit tables.
type jsEngine struct {
	cache ProgramCache
}

// NewJSEngine constructs an Engine backed by goja.
func NewJSEngine(opts ...JSEngineOption) Engine {
	cfg := applyJSEngineOptions(opts)
	return &jsEngine{cache: cfg.cache}
}

func (e *jsEngine) Convert(value float64, from, to string) (float64, error) {
	if strings.TrimSpace(from) == strings.TrimSpace(to) {
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

func (e *jsEngine) Validate(unit string) error {
	_, err := e.resolve(unit)
	return err
}

func (e *jsEngine) Format(unit string) (string, error) {
	return formatUnit(unit)
}

func (e *jsEngine) resolve(unit string) (resolvedUnit, error) {
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
	scale, err := e.run(program, scaleEnv)
	if err != nil {
		return resolvedUnit{}, wrapParseError(unit, err)
	}
	signature, err := e.run(program, signatureEnv)
	if err != nil {
		return resolvedUnit{}, wrapParseError(unit, err)
	}
	return resolvedUnit{scale: scale, signature: signature}, nil
}

func (e *jsEngine) loadOrCompile(expression string) (*goja.Program, error) {
	if e.cache != nil {
		if cached, ok := e.cache.Get(expression); ok {
			if program, ok := cached.(*goja.Program); ok {
				return program, nil
			}
		}
	}
	program, err := goja.Compile("", e.wrapExpression(expression), true)
	if err != nil {
		return nil, wrapParseError(expression, err)
	}
	if e.cache != nil {
		e.cache.Set(expression, program)
	}
	return program, nil
}

func (e *jsEngine) run(program *goja.Program, env map[string]float64) (float64, error) {
	vm := goja.New()
	for name, value := range env {
		if err := vm.Set(name, value); err != nil {
			return 0, err
		}
	}
	value, err := vm.RunProgram(program)
	if err != nil {
		return 0, err
	}
	return value.ToFloat(), nil
}

func (e *jsEngine) wrapExpression(expression string) string {
	return fmt.Sprintf("(function(){ \"use strict\"; return (%s); })()", expression)
}

func jsEngineAvailable() bool {
	return true
}
