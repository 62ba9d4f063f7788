package units

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

type scopeContextKey struct{}

// scopeState is the per-call-chain cell holding the current unit system.
type scopeState struct {
	mu     sync.Mutex
	system string
}

// Token restores the system that was current immediately before the
// SetSystem call that produced it. Use it at most once, within the call
// chain that produced it; nested sets restored in reverse order reproduce
// the original value at every level.
type Token struct {
	state *scopeState
	prev  string
}

// Restore rolls the chain's ambient system back to the pre-set value.
func (t Token) Restore() {
	if t.state == nil {
		return
	}
	t.state.mu.Lock()
	t.state.system = t.prev
	t.state.mu.Unlock()
}

// NewScope derives a context owning a fresh scope cell and an empty
// conversion cache. The cell inherits the system current in ctx, or the
// default system at the root of a chain. Every logical unit of work that
// can run concurrently with siblings must derive its own scope; sub-calls
// sharing the returned context share the cell.
func (r *Registry) NewScope(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, scopeContextKey{}, &scopeState{system: r.System(ctx)})
	return context.WithValue(ctx, cacheContextKey{}, newConversionCache())
}

// System returns the ambient unit system for the call chain, falling back
// to the default system when ctx carries no scope.
func (r *Registry) System(ctx context.Context) string {
	state := scopeStateFrom(ctx)
	if state == nil {
		return r.fallback
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	return state.system
}

// SetSystem updates the chain's ambient system and returns a Token that
// restores the previous value. An unknown system is substituted with the
// default system after emitting one ScopeLogEvent — a diagnostic, not an
// error. Calling SetSystem on a context without a scope returns a zero
// Token and changes nothing.
func (r *Registry) SetSystem(ctx context.Context, system string) Token {
	key := strings.ToLower(strings.TrimSpace(system))
	if _, ok := r.systemSet[key]; !ok {
		r.logger.LogScope(ScopeLogEvent{
			Requested:   system,
			Substituted: r.fallback,
			Hint:        r.base,
			Message:     fmt.Sprintf("units: unknown unit system %q, falling back to %q. Did you mean %q?", system, r.fallback, r.base),
		})
		key = r.fallback
	}
	state := scopeStateFrom(ctx)
	if state == nil {
		return Token{}
	}
	state.mu.Lock()
	prev := state.system
	state.system = key
	state.mu.Unlock()
	return Token{state: state, prev: prev}
}

func scopeStateFrom(ctx context.Context) *scopeState {
	if ctx == nil {
		return nil
	}
	state, _ := ctx.Value(scopeContextKey{}).(*scopeState)
	return state
}

// ScopeLogEvent describes a scope diagnostic worth surfacing, such as an
// unknown-system fallback.
type ScopeLogEvent struct {
	Requested   string
	Substituted string
	Hint        string
	Message     string
}

// ScopeLogger receives scope diagnostics.
type ScopeLogger interface {
	LogScope(ScopeLogEvent)
}

// ScopeLoggerFunc adapts a function to ScopeLogger.
type ScopeLoggerFunc func(ScopeLogEvent)

// LogScope implements ScopeLogger.
func (f ScopeLoggerFunc) LogScope(event ScopeLogEvent) {
	if f != nil {
		f(event)
	}
}

type noopScopeLogger struct{}

func (noopScopeLogger) LogScope(ScopeLogEvent) {}
