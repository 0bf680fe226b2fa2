package ecs

import "testing"

type statsMarker struct{}

func TestStorageStats(t *testing.T) {
	registry := NewComponentRegistry()
	RegisterComponent[int](registry)
	RegisterComponent[string](registry)
	RegisterComponent[float64](registry)
	RegisterComponent[statsMarker](registry)

	storage := NewStorage(registry)

	stats := storage.CollectStats()
	if stats.ArchetypeCount != 0 || stats.TotalEntityCount != 0 || stats.SingletonCount != 0 {
		t.Fatalf("expected empty stats, got %+v", stats)
	}

	storage.Spawn(42, "hello")
	storage.Spawn(100, "world")
	storage.Spawn(200.0, "test", statsMarker{})

	NewSingleton[float64](storage, 3.14)
	NewSingleton[string](storage, "singleton")

	stats = storage.CollectStats()

	if stats.ArchetypeCount != 2 {
		t.Errorf("expected 2 archetypes, got %d", stats.ArchetypeCount)
	}
	if stats.TotalEntityCount != 3 {
		t.Errorf("expected 3 entities, got %d", stats.TotalEntityCount)
	}
	if stats.SingletonCount != 2 {
		t.Errorf("expected 2 singletons, got %d", stats.SingletonCount)
	}
	if stats.MarkerCount != 1 {
		t.Errorf("expected 1 marker index, got %d", stats.MarkerCount)
	}
	if len(stats.ArchetypeBreakdown) != 2 {
		t.Fatalf("expected 2 archetype breakdown entries, got %d", len(stats.ArchetypeBreakdown))
	}
	if stats.ArchetypeBreakdown[0].EntityCount != 2 {
		t.Errorf("expected breakdown sorted by entity count, got %+v", stats.ArchetypeBreakdown)
	}
	if got := stats.ArchetypeBreakdown[0].Label(); got != "int, string" {
		t.Errorf("unexpected label %q", got)
	}
	if len(stats.SingletonTypes) != 2 || stats.SingletonTypes[0] != "float64" {
		t.Errorf("unexpected singleton types %v", stats.SingletonTypes)
	}
}
