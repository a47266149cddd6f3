package session

import "time"

// Key is a logical game input.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyFire
	numKeys
)

// HoldWindow is how long a key counts as held after its last press event.
// Terminals report key repeats but no releases, so holding is inferred from
// the repeat stream.
const HoldWindow = 180 * time.Millisecond

// Input tracks recent key presses.
type Input struct {
	last     [numKeys]time.Time
	fireEdge bool
}

// Press records a press of k at now.
func (in *Input) Press(k Key, now time.Time) {
	if k >= numKeys {
		return
	}
	in.last[k] = now
	if k == KeyFire {
		in.fireEdge = true
	}
}

// Held reports whether k was pressed within HoldWindow of now.
func (in *Input) Held(k Key, now time.Time) bool {
	if k >= numKeys || in.last[k].IsZero() {
		return false
	}
	return now.Sub(in.last[k]) <= HoldWindow
}

// Axis returns the held direction as -1/0/1 per axis.
func (in *Input) Axis(now time.Time) (dx, dy float64) {
	if in.Held(KeyLeft, now) {
		dx--
	}
	if in.Held(KeyRight, now) {
		dx++
	}
	if in.Held(KeyUp, now) {
		dy--
	}
	if in.Held(KeyDown, now) {
		dy++
	}
	return dx, dy
}

// ConsumeFire returns true once per fire press.
func (in *Input) ConsumeFire() bool {
	f := in.fireEdge
	in.fireEdge = false
	return f
}

// Reset forgets every press.
func (in *Input) Reset() { *in = Input{} }
