package ecs

// Manager is the registry: it owns every entity and system and keeps a
// cached entity list per group.
//
// Structural removal happens only in Refresh. Destroy and DelGroup just flip
// flags, so lists can be iterated safely during Update.
type Manager struct {
	entities []*Entity
	groups   [MaxGroups][]*Entity
	systems  []System

	slots []slot
	free  []uint32
}

// NewManager creates an empty registry.
func NewManager() *Manager {
	return &Manager{}
}

// AddEntity creates an active entity owned by m.
func (m *Manager) AddEntity() *Entity {
	var idx uint32
	if n := len(m.free); n > 0 {
		idx = m.free[n-1]
		m.free = m.free[:n-1]
	} else {
		idx = uint32(len(m.slots))
		m.slots = append(m.slots, slot{generation: 1})
	}
	e := &Entity{
		manager: m,
		active:  true,
		handle:  Handle{Index: idx, Generation: m.slots[idx].generation},
	}
	m.slots[idx].entity = e
	m.entities = append(m.entities, e)
	return e
}

// Resolve returns the entity named by h while it is still in the pool.
// Destroyed entities resolve until they are compacted.
func (m *Manager) Resolve(h Handle) (*Entity, bool) {
	if h.IsNil() || int(h.Index) >= len(m.slots) {
		return nil, false
	}
	s := m.slots[h.Index]
	if s.generation != h.Generation || s.entity == nil {
		return nil, false
	}
	return s.entity, true
}

// Alive reports whether h resolves to an active entity.
func (m *Manager) Alive(h Handle) bool {
	e, ok := m.Resolve(h)
	return ok && e.active
}

// AddSystem registers s. Systems run in registration order.
func (m *Manager) AddSystem(s System) {
	m.systems = append(m.systems, s)
}

// Update runs every system, then every active entity. Entities destroyed
// earlier in the frame do not tick.
func (m *Manager) Update(dt float64) {
	for _, s := range m.systems {
		s.Update(m, dt)
	}
	for _, e := range m.entities {
		if e.active {
			e.Update(dt)
		}
	}
}

// Draw draws every active entity in pool order.
func (m *Manager) Draw(c Canvas) {
	for _, e := range m.entities {
		if e.active {
			e.Draw(c)
		}
	}
}

// DrawGroup draws the active entities of one group in list order.
func (m *Manager) DrawGroup(g Group, c Canvas) {
	for _, e := range m.Group(g) {
		if e.active {
			e.Draw(c)
		}
	}
}

// Refresh compacts the registry: group lists lose entries whose entity is
// inactive or no longer tagged, then inactive entities leave the pool and
// drop their components.
func (m *Manager) Refresh() {
	for g := range m.groups {
		list := m.groups[g]
		kept := list[:0]
		for _, e := range list {
			if e.active && e.groupBits.Has(uint8(g)) {
				kept = append(kept, e)
				continue
			}
			e.listed.Clear(uint8(g))
		}
		clear(list[len(kept):])
		m.groups[g] = kept
	}

	kept := m.entities[:0]
	for _, e := range m.entities {
		if e.active {
			kept = append(kept, e)
			continue
		}
		m.releaseSlot(e.handle)
		e.release()
	}
	clear(m.entities[len(kept):])
	m.entities = kept
}

func (m *Manager) releaseSlot(h Handle) {
	s := &m.slots[h.Index]
	s.entity = nil
	s.generation++
	if s.generation == 0 {
		s.generation = 1
	}
	m.free = append(m.free, h.Index)
}

// Clear destroys every entity and compacts.
func (m *Manager) Clear() {
	for _, e := range m.entities {
		e.Destroy()
	}
	m.Refresh()
}

// ClearAllExcept destroys every entity not tagged with g and compacts.
func (m *Manager) ClearAllExcept(g Group) {
	checkGroup(g)
	for _, e := range m.entities {
		if !e.groupBits.Has(uint8(g)) {
			e.Destroy()
		}
	}
	m.Refresh()
}

// Group returns the cached list for g. Callers must not modify it.
func (m *Manager) Group(g Group) []*Entity {
	checkGroup(g)
	return m.groups[g]
}

// EntityByGroup returns the i-th entry of g's list, or false when i is out
// of range.
func (m *Manager) EntityByGroup(g Group, i int) (*Entity, bool) {
	list := m.Group(g)
	if i < 0 || i >= len(list) {
		return nil, false
	}
	return list[i], true
}

// Entities returns the pool in insertion order. Callers must not modify it.
func (m *Manager) Entities() []*Entity { return m.entities }

// Len returns the number of pooled entities, including destroyed ones not
// yet compacted.
func (m *Manager) Len() int { return len(m.entities) }
