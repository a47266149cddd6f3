package ecs

import (
	"fmt"
	"reflect"
	"sync"

	"clue-hunter/internal/vmath"

	"github.com/gdamore/tcell/v2"
)

// MaxComponents bounds the number of distinct component types. Type IDs are
// bit positions in Bitset and indices into the per-entity lookup array.
const MaxComponents = 32

// ComponentID is the small integer assigned to a component type the first
// time the type is referenced.
type ComponentID uint8

// Canvas receives the draw calls issued by components.
type Canvas interface {
	// DrawGlyph draws glyph centred on a world position.
	DrawGlyph(pos vmath.Vec2, glyph string, style tcell.Style)
	// DrawText draws text at a screen cell.
	DrawText(x, y int, text string, style tcell.Style)
}

// Component is a unit of state and behavior attached to one entity.
//
// Init runs exactly once, right after attachment, with Owner already set.
// Update runs once per frame while the owner is active; Draw only renders.
// Implementations embed Base, which supplies the owner binding and no-op
// hooks.
type Component interface {
	Init() error
	Update(dt float64)
	Draw(c Canvas)
	bind(e *Entity)
}

// Base is embedded by every component.
type Base struct {
	owner *Entity
}

func (b *Base) bind(e *Entity) { b.owner = e }

// Owner returns the entity the component is attached to.
func (b *Base) Owner() *Entity { return b.owner }

func (*Base) Init() error { return nil }
func (*Base) Update(float64) {}
func (*Base) Draw(Canvas) {}

// typeRegistry hands out component IDs in first-reference order.
type typeRegistry struct {
	mu    sync.Mutex
	limit int
	ids   map[reflect.Type]ComponentID
}

func newTypeRegistry(limit int) *typeRegistry {
	return &typeRegistry{limit: limit, ids: make(map[reflect.Type]ComponentID)}
}

func (r *typeRegistry) id(t reflect.Type) (ComponentID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.ids[t]; ok {
		return id, nil
	}
	if len(r.ids) >= r.limit {
		return 0, fmt.Errorf("%w: %v would be type #%d (max %d)", ErrTooManyComponents, t, len(r.ids)+1, r.limit)
	}
	id := ComponentID(len(r.ids))
	r.ids[t] = id
	return id, nil
}

func (r *typeRegistry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ids)
}

var types = newTypeRegistry(MaxComponents)

// Register assigns (or returns) the ID of component type T.
func Register[T Component]() (ComponentID, error) {
	return types.id(reflect.TypeFor[T]())
}

// TypeOf returns the ID of component type T. It panics when the type space
// is exhausted; call Register for every type at startup to surface that
// early.
func TypeOf[T Component]() ComponentID {
	id, err := Register[T]()
	if err != nil {
		panic(err)
	}
	return id
}

// RegisteredTypes returns how many component types have an ID.
func RegisteredTypes() int { return types.len() }

// Add attaches c to e and runs its Init hook. Attaching a type the entity
// already carries fails with ErrDuplicateComponent and leaves the existing
// component in place. When Init fails the component is detached again.
func Add[T Component](e *Entity, c T) (T, error) {
	var zero T
	id, err := Register[T]()
	if err != nil {
		return zero, err
	}
	if e.componentBits.Has(uint8(id)) {
		return zero, fmt.Errorf("%w: %v", ErrDuplicateComponent, reflect.TypeFor[T]())
	}
	c.bind(e)
	e.slots[id] = c
	e.componentBits.Set(uint8(id))
	e.components = append(e.components, c)
	if err := c.Init(); err != nil {
		e.detach(id)
		return zero, fmt.Errorf("init %v: %w", reflect.TypeFor[T](), err)
	}
	return c, nil
}

// MustAdd is Add for builders where a failure is a programming error.
func MustAdd[T Component](e *Entity, c T) T {
	c, err := Add(e, c)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the component of type T, or ErrComponentNotFound.
func Get[T Component](e *Entity) (T, error) {
	var zero T
	id, err := Register[T]()
	if err != nil {
		return zero, err
	}
	if !e.componentBits.Has(uint8(id)) {
		return zero, fmt.Errorf("%w: %v", ErrComponentNotFound, reflect.TypeFor[T]())
	}
	return e.slots[id].(T), nil
}

// Lookup is Get without the error value.
func Lookup[T Component](e *Entity) (T, bool) {
	c, err := Get[T](e)
	return c, err == nil
}

// Has reports whether e carries a component of type T.
func Has[T Component](e *Entity) bool {
	id, err := Register[T]()
	return err == nil && e.componentBits.Has(uint8(id))
}

// Require returns the T attached to e, attaching fallback() first when the
// entity has none.
func Require[T Component](e *Entity, fallback func() T) (T, error) {
	if c, ok := Lookup[T](e); ok {
		return c, nil
	}
	return Add(e, fallback())
}
