package system

import (
	"time"

	"clue-hunter/internal/component"
	"clue-hunter/internal/ecs"
	"clue-hunter/internal/session"
	"clue-hunter/internal/vmath"
)

// FireFunc spawns a projectile at origin heading along dir.
type FireFunc func(m *ecs.Manager, origin, dir vmath.Vec2) *ecs.Entity

// Shooting turns fire presses into projectiles.
type Shooting struct {
	Session *session.State
	Fire    FireFunc
}

func NewShooting(s *session.State, fire FireFunc) *Shooting {
	return &Shooting{Session: s, Fire: fire}
}

func (sh *Shooting) Update(m *ecs.Manager, _ float64) {
	s := sh.Session
	fired := s.Input.ConsumeFire()
	if !fired || s.Blocked() {
		return
	}
	pe, ok := m.Resolve(s.Player)
	if !ok || !pe.IsActive() {
		return
	}
	ammo, ok := ecs.Lookup[*component.Ammo](pe)
	if !ok {
		return
	}
	if !ammo.Use() {
		s.Media.PlaySound("empty", 1)
		s.Say("Out of ammo", time.Second)
		return
	}
	dir := vmath.V(1, 0)
	if ctl, ok := ecs.Lookup[*component.Controller](pe); ok {
		dir = ctl.Facing
	}
	t, _ := ecs.Lookup[*component.Transform](pe)
	sh.Fire(m, t.Center(), dir)
	s.Media.PlaySound("shoot", 1)
}
