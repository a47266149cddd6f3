// Package system holds the cross-entity rules run by the manager once per
// frame, before entities update.
package system

import "clue-hunter/internal/component"

// AABB reports whether two rectangles overlap. Touching edges do not count.
func AABB(a, b component.Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}
