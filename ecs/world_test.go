package ecs

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/milk9111/stargate/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should return false")
				}
			}
		})
	}
}

func TestRecycledSlotGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot reuse, got ids %d and %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatalf("expected a new generation for the recycled slot")
	}
	if Has(w, fresh, h.Kind()) {
		t.Fatalf("recycled entity must not inherit components")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
}

func TestComponentsTable(t *testing.T) {
	w := NewWorld()

	hInt := component.NewComponent[int]()
	hStr := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name  string
		setup func() error
		check func(t *testing.T)
	}{
		{
			name:  "add_int",
			setup: func() error { return Add(w, e1, hInt.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, hInt.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
		},
		{
			name: "add_string_to_both",
			setup: func() error {
				a, b := "a", "b"
				if err := Add(w, e1, hStr.Kind(), &a); err != nil {
					return err
				}
				return Add(w, e2, hStr.Kind(), &b)
			},
			check: func(t *testing.T) {
				if !Has(w, e1, hStr.Kind()) || !Has(w, e2, hStr.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
			},
		},
		{
			name:  "pointer_is_shared",
			setup: func() error { return nil },
			check: func(t *testing.T) {
				v, _ := Get(w, e1, hInt.Kind())
				*v = 42
				again, _ := Get(w, e1, hInt.Kind())
				if *again != 42 {
					t.Fatalf("expected mutation through pointer, got %d", *again)
				}
			},
		},
		{
			name:  "remove_string",
			setup: func() error { return nil },
			check: func(t *testing.T) {
				if !Remove(w, e1, hStr.Kind()) {
					t.Fatalf("expected remove to succeed")
				}
				if Has(w, e1, hStr.Kind()) {
					t.Fatalf("component should be gone")
				}
				if !Has(w, e2, hStr.Kind()) {
					t.Fatalf("e2 should keep its component")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
		})
	}
}

func TestAddRejectsNilAndInvalidKind(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	h := component.NewComponent[int]()

	if err := Add(w, e, h.Kind(), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	var zero component.ComponentKind[int]
	if err := Add(w, e, zero, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestForEachAndQuery(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	_ = Add(w, e1, ka, intPtr(1))
	_ = Add(w, e2, ka, intPtr(2))
	_ = Add(w, e2, kb, intPtr(3))
	_ = Add(w, e3, kb, intPtr(4))

	t.Run("for_each", func(t *testing.T) {
		var ents []Entity
		ForEach(w, ka, func(e Entity, _ *int) { ents = append(ents, e) })
		set := toSet(ents)
		if _, ok := set[e1]; !ok {
			t.Fatalf("expected e1 in ForEach result")
		}
		if _, ok := set[e3]; ok {
			t.Fatalf("did not expect e3 in ForEach result")
		}
	})

	t.Run("query_intersection", func(t *testing.T) {
		res := Query(w, ka, kb)
		if len(res) != 1 || res[0] != e2 {
			t.Fatalf("expected only e2, got %v", res)
		}
	})

	t.Run("query_missing_store", func(t *testing.T) {
		kc := component.NewComponentKind[int]()
		if res := Query(w, ka, kc); len(res) != 0 {
			t.Fatalf("expected empty when other store missing, got %v", res)
		}
	})

	t.Run("ignores_dead_entities", func(t *testing.T) {
		DestroyEntity(w, e2)
		if res := Query(w, ka, kb); len(res) != 0 {
			t.Fatalf("expected empty result after destroy, got %v", res)
		}
	})
}

func TestSingleton(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	if _, ok := Singleton(w, h.Kind()); ok {
		t.Fatalf("expected no singleton in empty world")
	}
	e := CreateEntity(w)
	_ = Add(w, e, h.Kind(), intPtr(7))
	v, ok := Singleton(w, h.Kind())
	if !ok || *v != 7 {
		t.Fatalf("expected singleton 7, got %v ok=%v", v, ok)
	}
}

func TestFrameClockAndEvents(t *testing.T) {
	w := NewWorld()
	w.Advance(16 * time.Millisecond)
	w.Advance(-time.Second)
	w.Advance(17 * time.Millisecond)

	if Delta(w) != 17*time.Millisecond {
		t.Fatalf("expected delta 17ms, got %v", Delta(w))
	}
	if Elapsed(w) != 33*time.Millisecond {
		t.Fatalf("expected elapsed 33ms, got %v", Elapsed(w))
	}
	if Frame(w) != 3 {
		t.Fatalf("expected 3 frames, got %d", Frame(w))
	}

	w.Events().Push(Event{Type: "a"})
	w.Events().Push(Event{Type: "b"})
	got := w.Events().Drain()
	if len(got) != 2 || got[0].Type != "a" || got[1].Type != "b" {
		t.Fatalf("unexpected events %v", got)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("queue should be empty after drain")
	}
}

func TestEntityStringAndKindName(t *testing.T) {
	w := NewWorld()
	first := CreateEntity(w)
	DestroyEntity(w, first)
	again := CreateEntity(w)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "zero", got: Entity(0).String(), want: "none"},
		{name: "first", got: first.String(), want: "1v0"},
		{name: "recycled", got: again.String(), want: "1v1"},
		{name: "kind", got: component.StageComponent.Kind().Name(), want: "component.Stage"},
		{name: "invalid kind", got: component.ComponentKind[int]{}.Name(), want: "<invalid>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	err := Add(w, first, component.StageComponent.Kind(), &component.Stage{})
	if err == nil || err.Error() != "ecs: entity not alive: component.Stage on 1v0" {
		t.Fatalf("stale add error = %v", err)
	}
}

type recordSystem struct {
	name string
	log  *[]string
}

func (s recordSystem) Update(w *World) {
	*s.log = append(*s.log, fmt.Sprintf("%s@%d", s.name, Frame(w)))
}

func TestSchedulerStep(t *testing.T) {
	var log []string
	s := NewScheduler(recordSystem{"a", &log}, nil, recordSystem{"b", &log})
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want nil systems dropped", s.Len())
	}
	w := NewWorld()
	s.Step(w, 16*time.Millisecond)
	s.Step(w, 16*time.Millisecond)

	want := []string{"a@1", "b@1", "a@2", "b@2"}
	if fmt.Sprint(log) != fmt.Sprint(want) {
		t.Fatalf("run order = %v, want %v", log, want)
	}
	if Elapsed(w) != 32*time.Millisecond {
		t.Fatalf("Elapsed() = %v, want 32ms", Elapsed(w))
	}
}
