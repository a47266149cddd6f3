package component

import (
	"math"

	"clue-hunter/internal/vmath"
)

// sin(22.5°): beyond this a direction component counts toward that axis.
const octantThreshold = 0.38268343236508984

// Steer snaps a unit direction to the nearest of eight compass directions.
// Diagonals come back scaled by 1/√2 so every result has unit length.
func Steer(dir vmath.Vec2) vmath.Vec2 {
	sx, sy := axisSign(dir.X), axisSign(dir.Y)
	if sx != 0 && sy != 0 {
		return vmath.V(sx*vmath.InvSqrt2, sy*vmath.InvSqrt2)
	}
	return vmath.V(sx, sy)
}

func axisSign(v float64) float64 {
	if math.Abs(v) <= octantThreshold {
		return 0
	}
	if v < 0 {
		return -1
	}
	return 1
}

// facing picks the walk animation for the dominant axis of dir. The flip
// flag only changes on horizontal movement.
func facing(dir vmath.Vec2, flip bool) (string, bool) {
	if math.Abs(dir.X) >= math.Abs(dir.Y) {
		return AnimWalk, dir.X < 0
	}
	if dir.Y < 0 {
		return AnimWalkUp, flip
	}
	return AnimWalkDown, flip
}
