package ecs

import "fmt"

// Handle is a stable reference to an entity. A handle outlives the entity it
// names: once the entity is compacted away the handle stops resolving,
// even if its pool slot is reused.
type Handle struct {
	Index      uint32
	Generation uint32
}

// NilHandle never resolves.
var NilHandle Handle

func (h Handle) IsNil() bool { return h.Generation == 0 }

func (h Handle) String() string { return fmt.Sprintf("%d@%d", h.Index, h.Generation) }

type slot struct {
	entity     *Entity
	generation uint32
}
