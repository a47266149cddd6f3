package component

import "clue-hunter/internal/ecs"

// ObjectKind says what a pickup does.
type ObjectKind uint8

const (
	ObjectClue ObjectKind = iota
	ObjectMagazine
	ObjectPotion
)

func (k ObjectKind) String() string {
	switch k {
	case ObjectClue:
		return "clue"
	case ObjectMagazine:
		return "magazine"
	case ObjectPotion:
		return "potion"
	}
	return "unknown"
}

// Object marks a pickup. Question is the quiz question behind a clue.
type Object struct {
	ecs.Base
	Kind     ObjectKind
	Question int
}
