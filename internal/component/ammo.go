package component

import "clue-hunter/internal/ecs"

// Ammo is the player's magazine.
type Ammo struct {
	ecs.Base
	Current     int
	Max         int
	PerMagazine int
}

func NewAmmo(current, max, perMagazine int) *Ammo {
	return &Ammo{Current: current, Max: max, PerMagazine: perMagazine}
}

// Use spends one round, reporting false when empty.
func (a *Ammo) Use() bool {
	if a.Current <= 0 {
		return false
	}
	a.Current--
	return true
}

// Reload adds one magazine, capped at Max, and returns the rounds added.
func (a *Ammo) Reload() int {
	before := a.Current
	a.Current = min(a.Current+a.PerMagazine, a.Max)
	return a.Current - before
}
