package ecs

// System performs cross-entity logic once per frame, before entities update.
type System interface {
	Update(m *Manager, dt float64)
}

// SystemFunc adapts a function to the System interface.
type SystemFunc func(m *Manager, dt float64)

func (f SystemFunc) Update(m *Manager, dt float64) { f(m, dt) }
