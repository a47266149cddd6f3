package component

import "clue-hunter/internal/ecs"

// Health tracks hit points. Cooldown, in seconds, is the minimum gap between
// two accepted hits; it counts down every frame.
type Health struct {
	ecs.Base
	Current, Max int
	Cooldown     float64

	cooldownLeft float64
}

func NewHealth(hp int, cooldown float64) *Health {
	return &Health{Current: hp, Max: hp, Cooldown: cooldown}
}

func (h *Health) Update(dt float64) {
	h.cooldownLeft = max(h.cooldownLeft-dt, 0)
}

// Damage subtracts n unless the cooldown is running. It reports whether the
// hit landed.
func (h *Health) Damage(n int) bool {
	if h.cooldownLeft > 0 {
		return false
	}
	h.Current -= n
	h.cooldownLeft = h.Cooldown
	return true
}

// Heal adds n, capped at Max.
func (h *Health) Heal(n int) {
	h.Current = min(h.Current+n, h.Max)
}

func (h *Health) Dead() bool { return h.Current <= 0 }

// CoolingDown reports whether hits are currently ignored.
func (h *Health) CoolingDown() bool { return h.cooldownLeft > 0 }
