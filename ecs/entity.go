package ecs

import "fmt"

// Entity is a slot id in the low 32 bits and the slot's generation in the
// high 32. Destroying an entity bumps the generation, so handles kept by
// tweens or events after a node is recycled stop matching.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID { return entityID(uint32(e)) }

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

// String prints slot and generation, e.g. "7v2".
func (e Entity) String() string {
	if !e.Valid() {
		return "none"
	}
	return fmt.Sprintf("%dv%d", e.id(), e.generation())
}

// Valid reports whether e was ever handed out.
func (e Entity) Valid() bool { return e > 0 }
