package ecs

import "fmt"

// Group is a non-exclusive classification tag used for fast iteration.
type Group uint8

// MaxGroups bounds the number of groups.
const MaxGroups = 32

func checkGroup(g Group) {
	if g >= MaxGroups {
		panic(fmt.Errorf("%w: %d", ErrInvalidGroup, g))
	}
}

// Entity owns its components and records its group memberships. Entities
// are created by Manager.AddEntity only.
type Entity struct {
	manager *Manager
	handle  Handle
	active  bool

	components    []Component // attachment order
	slots         [MaxComponents]Component
	componentBits Bitset

	groupBits Bitset
	listed    Bitset // groups whose cached list currently holds e
}

func (e *Entity) Handle() Handle { return e.handle }
func (e *Entity) Manager() *Manager { return e.manager }
func (e *Entity) IsActive() bool { return e.active }

// Components returns the attached components in attachment order. The slice
// must not be modified.
func (e *Entity) Components() []Component { return e.components }

// Destroy marks the entity inactive. It stays in the pool and in its group
// lists until the next Manager.Refresh.
func (e *Entity) Destroy() { e.active = false }

// Update runs every component's Update in attachment order.
func (e *Entity) Update(dt float64) {
	for _, c := range e.components {
		c.Update(dt)
	}
}

// Draw runs every component's Draw in attachment order.
func (e *Entity) Draw(c Canvas) {
	for _, comp := range e.components {
		comp.Draw(c)
	}
}

func (e *Entity) HasGroup(g Group) bool {
	checkGroup(g)
	return e.groupBits.Has(uint8(g))
}

// AddGroup tags e with g and appends it to the manager's list for g.
// Adding a group twice does not list the entity twice.
func (e *Entity) AddGroup(g Group) {
	checkGroup(g)
	e.groupBits.Set(uint8(g))
	if e.listed.Has(uint8(g)) {
		return
	}
	e.listed.Set(uint8(g))
	e.manager.groups[g] = append(e.manager.groups[g], e)
}

// DelGroup removes the tag. The list entry goes away at the next Refresh.
func (e *Entity) DelGroup(g Group) {
	checkGroup(g)
	e.groupBits.Clear(uint8(g))
}

func (e *Entity) detach(id ComponentID) {
	c := e.slots[id]
	e.slots[id] = nil
	e.componentBits.Clear(uint8(id))
	for i, other := range e.components {
		if other == c {
			e.components = append(e.components[:i], e.components[i+1:]...)
			break
		}
	}
}

func (e *Entity) release() {
	clear(e.components)
	e.components = nil
	e.slots = [MaxComponents]Component{}
	e.componentBits = 0
	e.groupBits = 0
	e.listed = 0
}
