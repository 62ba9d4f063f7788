package units

import (
	"context"
	"testing"
)

func TestCacheStartsEmpty(t *testing.T) {
	registry := mustRegistry(t)
	ctx := registry.NewScope(context.Background())
	if entries := CacheEntries(ctx); len(entries) != 0 {
		t.Fatalf("fresh scope cache has %d entries, want 0", len(entries))
	}
}

func TestCachePopulatesOnConversion(t *testing.T) {
	registry := mustRegistry(t)
	ctx := registry.NewScope(context.Background())

	if _, err := registry.ToBase(ctx, 14.696, "pressure", "imperial"); err != nil {
		t.Fatalf("ToBase returned error: %v", err)
	}
	if _, err := registry.FromBase(ctx, 101325, "pressure", "imperial"); err != nil {
		t.Fatalf("FromBase returned error: %v", err)
	}

	entries := CacheEntries(ctx)
	if len(entries) != 2 {
		t.Fatalf("cache has %d entries, want 2", len(entries))
	}
	key := CacheKey{Value: 14.696, Dimension: "pressure", System: "imperial", Direction: ToBase}
	if _, ok := entries[key]; !ok {
		t.Fatalf("cache missing entry for %+v", key)
	}
}

func TestCacheIsolationAcrossChains(t *testing.T) {
	registry := mustRegistry(t)

	first := registry.NewScope(context.Background())
	if _, err := registry.ToBase(first, 1, "length", "imperial"); err != nil {
		t.Fatalf("ToBase returned error: %v", err)
	}
	if len(CacheEntries(first)) == 0 {
		t.Fatalf("first chain cache should be populated")
	}

	second := registry.NewScope(context.Background())
	ClearCache(second)
	if entries := CacheEntries(second); len(entries) != 0 {
		t.Fatalf("second chain observes %d entries, want 0", len(entries))
	}
	if len(CacheEntries(first)) == 0 {
		t.Fatalf("first chain cache was clobbered by the second chain")
	}
}

func TestClearCache(t *testing.T) {
	registry := mustRegistry(t)
	ctx := registry.NewScope(context.Background())
	if _, err := registry.ToBase(ctx, 2, "length", "imperial"); err != nil {
		t.Fatalf("ToBase returned error: %v", err)
	}
	ClearCache(ctx)
	if entries := CacheEntries(ctx); len(entries) != 0 {
		t.Fatalf("cache has %d entries after clear, want 0", len(entries))
	}
}

func TestReplaceCache(t *testing.T) {
	registry := mustRegistry(t)
	ctx := registry.NewScope(context.Background())

	// Sentinel value distinguishes a memo hit from a fresh conversion.
	seed := map[CacheKey]float64{
		{Value: 1, Dimension: "length", System: "imperial", Direction: ToBase}: 99,
	}
	ReplaceCache(ctx, seed)
	delete(seed, CacheKey{Value: 1, Dimension: "length", System: "imperial", Direction: ToBase})

	entries := CacheEntries(ctx)
	if len(entries) != 1 {
		t.Fatalf("cache has %d entries after replace, want 1 (caller map ownership leaked)", len(entries))
	}

	got, err := registry.ToBase(ctx, 1, "length", "imperial")
	if err != nil {
		t.Fatalf("ToBase returned error: %v", err)
	}
	if got != 99 {
		t.Fatalf("ToBase ignored the replaced cache: got %v, want sentinel 99", got)
	}
}

func TestCacheHelpersWithoutScope(t *testing.T) {
	if entries := CacheEntries(context.Background()); entries != nil {
		t.Fatalf("CacheEntries without scope = %v, want nil", entries)
	}
	ClearCache(context.Background())
	ReplaceCache(context.Background(), map[CacheKey]float64{})
}
