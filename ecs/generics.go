package ecs

import (
	"fmt"

	"github.com/milk9111/stargate/ecs/component"
)

// Kind is satisfied by every component.ComponentKind[T].
type Kind interface {
	ID() component.ComponentID
	Valid() bool
}

// Add stores value on e. Errors wrap the component sentinels with the
// entity and kind involved.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !w.entities.isAlive(e) {
		return fmt.Errorf("%w: %s on %s", component.ErrEntityNotAlive, kind.Name(), e)
	}
	if !kind.Valid() {
		return fmt.Errorf("%w: entity %s", component.ErrInvalidComponentKind, e)
	}
	if value == nil {
		return fmt.Errorf("%w: %s on %s", component.ErrNilComponent, kind.Name(), e)
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil {
		return false
	}
	return w.store(kind.ID(), false).Remove(e)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil {
		return false
	}
	return w.store(kind.ID(), false).Has(e)
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil {
		return nil, false
	}
	value := w.store(kind.ID(), false).Get(e)
	if value == nil {
		return nil, false
	}
	cast, ok := value.(*T)
	return cast, ok
}

// ForEach visits every entity carrying kind. fn may add or remove other
// components but must not destroy entities holding kind.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	store := w.store(kind.ID(), false)
	if store == nil {
		return
	}
	ents := append([]Entity(nil), store.denseEntities...)
	for _, e := range ents {
		v, ok := store.Get(e).(*T)
		if !ok {
			continue
		}
		fn(e, v)
	}
}

// First returns the lowest-index entity carrying kind, which is how
// singleton components are looked up.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	store := w.store(kind.ID(), false)
	if store == nil || store.Len() == 0 {
		return 0, false
	}
	return store.denseEntities[0], true
}

// Singleton returns the component value held by the first entity carrying kind.
func Singleton[T any](w *World, kind component.ComponentKind[T]) (*T, bool) {
	e, ok := First(w, kind)
	if !ok {
		return nil, false
	}
	return Get(w, e, kind)
}

// Query returns entities carrying every one of kinds.
func Query(w *World, kinds ...Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s == nil {
			return nil
		}
		stores = append(stores, s)
	}
	smallest := stores[0]
	for _, s := range stores[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.Len())
	for _, e := range smallest.denseEntities {
		match := true
		for _, s := range stores {
			if !s.Has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}
