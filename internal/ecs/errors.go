package ecs

import "errors"

var (
	// ErrTooManyComponents is returned when more than MaxComponents distinct
	// component types are registered.
	ErrTooManyComponents = errors.New("ecs: component type capacity exceeded")
	// ErrDuplicateComponent is returned when a component type is attached
	// twice to the same entity.
	ErrDuplicateComponent = errors.New("ecs: component already attached")
	// ErrComponentNotFound is returned when querying a component type the
	// entity does not carry.
	ErrComponentNotFound = errors.New("ecs: component not found")
	// ErrMissingPrerequisite is returned by Init hooks whose sibling
	// component has not been attached yet.
	ErrMissingPrerequisite = errors.New("ecs: prerequisite component missing")
	// ErrInvalidGroup is raised for group values at or above MaxGroups.
	ErrInvalidGroup = errors.New("ecs: group out of range")
)
