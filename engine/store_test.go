package engine

import (
	"testing"

	"github.com/lixenwraith/corridor/core"
)

type testComponent struct {
	Value int
}

func TestStoreSetGet(t *testing.T) {
	s := NewStore[testComponent]()

	s.SetComponent(1, testComponent{Value: 10})
	s.SetComponent(2, testComponent{Value: 20})
	s.SetComponent(1, testComponent{Value: 11})

	if s.CountEntities() != 2 {
		t.Fatalf("Expected 2 entities, got %d", s.CountEntities())
	}
	v, ok := s.GetComponent(1)
	if !ok || v.Value != 11 {
		t.Errorf("Expected updated value 11, got %d (ok=%v)", v.Value, ok)
	}
	if _, ok := s.GetComponent(3); ok {
		t.Error("Expected missing entity to report false")
	}
}

func TestStoreRemovePreservesOrder(t *testing.T) {
	s := NewStore[testComponent]()
	for e := core.Entity(1); e <= 5; e++ {
		s.SetComponent(e, testComponent{Value: int(e)})
	}

	s.RemoveEntity(2)
	s.RemoveEntity(4)
	s.RemoveEntity(99)

	got := s.GetAllEntities()
	want := []core.Entity{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected %d, got %d", i, want[i], got[i])
		}
	}
	if s.HasEntity(2) {
		t.Error("Removed entity still present")
	}
}

func TestStoreSnapshotIsolation(t *testing.T) {
	s := NewStore[testComponent]()
	s.SetComponent(1, testComponent{})
	s.SetComponent(2, testComponent{})

	entities := s.GetAllEntities()
	for _, e := range entities {
		s.RemoveEntity(e)
	}

	if len(entities) != 2 {
		t.Errorf("Expected iteration copy to keep 2 entities, got %d", len(entities))
	}
	if s.CountEntities() != 0 {
		t.Errorf("Expected empty store, got %d", s.CountEntities())
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore[testComponent]()
	var as AnyStore = s
	s.SetComponent(1, testComponent{})
	s.SetComponent(2, testComponent{})

	as.ClearAllComponent()
	if as.CountEntity() != 0 || as.HasComponent(1) {
		t.Error("Expected store cleared through AnyStore")
	}
}
