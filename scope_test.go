package units

import (
	"context"
	"runtime"
	"sync"
	"testing"
)

func TestSystemDefaultsWithoutScope(t *testing.T) {
	registry := mustRegistry(t)
	if got := registry.System(context.Background()); got != DefaultSystem {
		t.Fatalf("System without scope = %q, want %q", got, DefaultSystem)
	}
}

func TestSetSystemAndRestore(t *testing.T) {
	registry := mustRegistry(t)
	ctx := registry.NewScope(context.Background())

	if got := registry.System(ctx); got != "imperial" {
		t.Fatalf("fresh scope system = %q, want %q", got, "imperial")
	}
	token := registry.SetSystem(ctx, "si")
	if got := registry.System(ctx); got != "si" {
		t.Fatalf("after set, system = %q, want %q", got, "si")
	}
	token.Restore()
	if got := registry.System(ctx); got != "imperial" {
		t.Fatalf("after restore, system = %q, want %q", got, "imperial")
	}
}

func TestNestedSetsRestoreInOrder(t *testing.T) {
	registry := mustRegistry(t)
	ctx := registry.NewScope(context.Background())

	outer := registry.SetSystem(ctx, "imperial")
	var sequence []string
	sequence = append(sequence, registry.System(ctx))

	nested := registry.SetSystem(ctx, "si")
	sequence = append(sequence, registry.System(ctx))
	nested.Restore()

	sequence = append(sequence, registry.System(ctx))
	outer.Restore()

	want := []string{"imperial", "si", "imperial"}
	for i := range want {
		if sequence[i] != want[i] {
			t.Fatalf("sequence = %v, want %v", sequence, want)
		}
	}
}

func TestSetSystemNormalizesCase(t *testing.T) {
	var events []ScopeLogEvent
	registry := mustRegistry(t, WithScopeLogger(ScopeLoggerFunc(func(event ScopeLogEvent) {
		events = append(events, event)
	})))
	ctx := registry.NewScope(context.Background())

	token := registry.SetSystem(ctx, "SI")
	defer token.Restore()
	if got := registry.System(ctx); got != "si" {
		t.Fatalf("System = %q, want %q", got, "si")
	}
	if len(events) != 0 {
		t.Fatalf("valid system emitted %d diagnostics, want 0", len(events))
	}
}

func TestSetSystemUnknownFallsBackWithDiagnostic(t *testing.T) {
	var events []ScopeLogEvent
	registry := mustRegistry(t, WithScopeLogger(ScopeLoggerFunc(func(event ScopeLogEvent) {
		events = append(events, event)
	})))
	ctx := registry.NewScope(context.Background())

	token := registry.SetSystem(ctx, "bogus")
	defer token.Restore()

	if got := registry.System(ctx); got != DefaultSystem {
		t.Fatalf("System after unknown set = %q, want default %q", got, DefaultSystem)
	}
	if len(events) != 1 {
		t.Fatalf("unknown system emitted %d diagnostics, want 1", len(events))
	}
	event := events[0]
	if event.Requested != "bogus" {
		t.Fatalf("event.Requested = %q, want %q", event.Requested, "bogus")
	}
	if event.Substituted != DefaultSystem {
		t.Fatalf("event.Substituted = %q, want %q", event.Substituted, DefaultSystem)
	}
	if event.Hint != BaseSystem {
		t.Fatalf("event.Hint = %q, want %q", event.Hint, BaseSystem)
	}
}

func TestSetSystemWithoutScopeIsInert(t *testing.T) {
	registry := mustRegistry(t)
	token := registry.SetSystem(context.Background(), "si")
	token.Restore()
	if got := registry.System(context.Background()); got != DefaultSystem {
		t.Fatalf("System = %q, want %q", got, DefaultSystem)
	}
}

func TestScopeInheritedBySubCalls(t *testing.T) {
	registry := mustRegistry(t)
	ctx := registry.NewScope(context.Background())
	token := registry.SetSystem(ctx, "si")
	defer token.Restore()

	read := func(ctx context.Context) string {
		return registry.System(ctx)
	}
	if got := read(ctx); got != "si" {
		t.Fatalf("sub-call read %q, want %q", got, "si")
	}

	nested := registry.NewScope(ctx)
	if got := registry.System(nested); got != "si" {
		t.Fatalf("nested scope inherited %q, want %q", got, "si")
	}
	nestedToken := registry.SetSystem(nested, "cgs")
	nestedToken.Restore()
	if got := registry.System(ctx); got != "si" {
		t.Fatalf("outer scope mutated by nested chain: %q", got)
	}
}

func TestScopeIsolationUnderConcurrency(t *testing.T) {
	registry := mustRegistry(t)
	root := context.Background()

	const chains = 50
	var wg sync.WaitGroup
	errs := make(chan string, chains)

	for i := 0; i < chains; i++ {
		system := "imperial"
		if i%2 == 1 {
			system = "si"
		}
		wg.Add(1)
		go func(system string) {
			defer wg.Done()
			ctx := registry.NewScope(root)
			token := registry.SetSystem(ctx, system)
			defer token.Restore()
			runtime.Gosched()
			if got := registry.System(ctx); got != system {
				errs <- got + " != " + system
			}
		}(system)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("scope leaked across chains: %s", err)
	}
}
