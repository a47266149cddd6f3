package ecs

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	groupA Group = iota
	groupB
)

// position is a minimal data component.
type position struct {
	Base
	X, Y float64
}

// counter counts its hook calls.
type counter struct {
	Base
	inits, updates int
}

func (c *counter) Init() error {
	c.inits++
	return nil
}

func (c *counter) Update(dt float64) { c.updates++ }

// follower resolves its sibling position in Init.
type follower struct {
	Base
	pos *position
}

func (f *follower) Init() error {
	p, err := Get[*position](f.Owner())
	if err != nil {
		return err
	}
	f.pos = p
	return nil
}

// trace appends its name to a shared log on Update.
type trace struct {
	Base
	name string
	log  *[]string
}

func (t *trace) Update(float64) { *t.log = append(*t.log, t.name) }

type traceB struct{ trace }

func TestAddGetHas(t *testing.T) {
	m := NewManager()
	e := m.AddEntity()

	assert.False(t, Has[*position](e))
	p, err := Add(e, &position{X: 1, Y: 2})
	require.NoError(t, err)
	assert.Same(t, e, p.Owner(), "owner must be bound")
	assert.True(t, Has[*position](e))

	got, err := Get[*position](e)
	require.NoError(t, err)
	assert.Same(t, p, got)
}

func TestInitRunsOnceAfterBinding(t *testing.T) {
	e := NewManager().AddEntity()
	c := MustAdd(e, &counter{})
	assert.Equal(t, 1, c.inits)
}

func TestDuplicateAddIsRejected(t *testing.T) {
	e := NewManager().AddEntity()
	first := MustAdd(e, &position{X: 1})

	_, err := Add(e, &position{X: 99})
	require.ErrorIs(t, err, ErrDuplicateComponent)

	got, _ := Get[*position](e)
	assert.Same(t, first, got, "existing component must not be overwritten")
	assert.Len(t, e.Components(), 1)
}

func TestGetMissingComponent(t *testing.T) {
	e := NewManager().AddEntity()
	_, err := Get[*counter](e)
	assert.True(t, errors.Is(err, ErrComponentNotFound))

	_, ok := Lookup[*counter](e)
	assert.False(t, ok)
}

func TestInitFailureDetaches(t *testing.T) {
	e := NewManager().AddEntity()
	_, err := Add(e, &follower{})
	require.ErrorIs(t, err, ErrComponentNotFound)
	assert.False(t, Has[*follower](e))
	assert.Empty(t, e.Components())

	MustAdd(e, &position{X: 4})
	f, err := Add(e, &follower{})
	require.NoError(t, err)
	assert.Equal(t, 4.0, f.pos.X)
}

func TestRequireAttachesFallback(t *testing.T) {
	e := NewManager().AddEntity()
	p, err := Require(e, func() *position { return &position{X: 7} })
	require.NoError(t, err)
	assert.Equal(t, 7.0, p.X)

	again, err := Require(e, func() *position { return &position{X: 1} })
	require.NoError(t, err)
	assert.Same(t, p, again)
}

func TestTypeRegistryCapacity(t *testing.T) {
	r := newTypeRegistry(2)
	intType := reflect.TypeFor[int]()

	a, err := r.id(reflect.ArrayOf(1, intType))
	require.NoError(t, err)
	b, err := r.id(reflect.ArrayOf(2, intType))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	again, err := r.id(reflect.ArrayOf(1, intType))
	require.NoError(t, err)
	assert.Equal(t, a, again, "IDs are stable")

	_, err = r.id(reflect.ArrayOf(3, intType))
	assert.ErrorIs(t, err, ErrTooManyComponents)
}

func TestTypeOfIsStable(t *testing.T) {
	assert.Equal(t, TypeOf[*position](), TypeOf[*position]())
	assert.NotEqual(t, TypeOf[*position](), TypeOf[*counter]())
	assert.LessOrEqual(t, RegisteredTypes(), MaxComponents)
}

func TestUpdateFansOutInAttachmentOrder(t *testing.T) {
	var log []string
	e := NewManager().AddEntity()
	MustAdd(e, &traceB{trace{name: "second", log: &log}})
	MustAdd(e, &trace{name: "first", log: &log})

	e.Update(0.016)
	assert.Equal(t, []string{"second", "first"}, log)
}

func TestDestroyDefersRemoval(t *testing.T) {
	m := NewManager()
	e := m.AddEntity()
	e.AddGroup(groupA)

	e.Destroy()
	e.Destroy()
	assert.False(t, e.IsActive())
	assert.Contains(t, m.Group(groupA), e, "stays listed until Refresh")
	assert.Equal(t, 1, m.Len())

	m.Refresh()
	assert.Empty(t, m.Group(groupA))
	assert.Equal(t, 0, m.Len())
}

func TestRefreshDropsUntaggedEntries(t *testing.T) {
	m := NewManager()
	keep := m.AddEntity()
	keep.AddGroup(groupA)
	keep.AddGroup(groupB)
	drop := m.AddEntity()
	drop.AddGroup(groupA)

	drop.DelGroup(groupA)
	assert.Len(t, m.Group(groupA), 2)

	m.Refresh()
	assert.Equal(t, []*Entity{keep}, m.Group(groupA))
	assert.Equal(t, []*Entity{keep}, m.Group(groupB))
	assert.Equal(t, 2, m.Len(), "untagging does not remove the entity")
}

func TestAddGroupDoesNotDuplicate(t *testing.T) {
	m := NewManager()
	e := m.AddEntity()
	e.AddGroup(groupA)
	e.AddGroup(groupA)
	assert.Len(t, m.Group(groupA), 1)

	e.DelGroup(groupA)
	e.AddGroup(groupA)
	assert.Len(t, m.Group(groupA), 1, "re-tag before Refresh reuses the entry")

	e.DelGroup(groupA)
	m.Refresh()
	e.AddGroup(groupA)
	assert.Len(t, m.Group(groupA), 1)
	assert.True(t, e.HasGroup(groupA))
}

func TestNoInactiveEntityAfterRefresh(t *testing.T) {
	m := NewManager()
	var all []*Entity
	for i := range 20 {
		e := m.AddEntity()
		e.AddGroup(Group(i % 3))
		all = append(all, e)
	}
	for i, e := range all {
		if i%4 == 0 {
			e.Destroy()
		}
	}
	m.Refresh()

	for _, e := range m.Entities() {
		assert.True(t, e.IsActive())
	}
	for g := Group(0); g < 3; g++ {
		for _, e := range m.Group(g) {
			assert.True(t, e.IsActive())
			assert.True(t, e.HasGroup(g))
		}
	}
	assert.Equal(t, 15, m.Len())
}

func TestHandlesDetectStaleEntities(t *testing.T) {
	m := NewManager()
	e := m.AddEntity()
	h := e.Handle()

	got, ok := m.Resolve(h)
	require.True(t, ok)
	assert.Same(t, e, got)
	assert.True(t, m.Alive(h))

	e.Destroy()
	_, ok = m.Resolve(h)
	assert.True(t, ok, "destroyed entity resolves until compaction")
	assert.False(t, m.Alive(h))

	m.Refresh()
	_, ok = m.Resolve(h)
	assert.False(t, ok)

	reused := m.AddEntity()
	assert.Equal(t, h.Index, reused.Handle().Index, "slot is recycled")
	_, ok = m.Resolve(h)
	assert.False(t, ok, "old generation must not resolve to the new entity")

	_, ok = m.Resolve(NilHandle)
	assert.False(t, ok)
}

func TestRefreshReleasesComponents(t *testing.T) {
	m := NewManager()
	e := m.AddEntity()
	MustAdd(e, &position{})
	e.Destroy()
	m.Refresh()
	assert.Empty(t, e.Components())
	assert.False(t, Has[*position](e))
}

func TestManagerUpdateRunsSystemsFirst(t *testing.T) {
	m := NewManager()
	var log []string
	e := m.AddEntity()
	MustAdd(e, &trace{name: "entity", log: &log})
	m.AddSystem(SystemFunc(func(*Manager, float64) { log = append(log, "sys1") }))
	m.AddSystem(SystemFunc(func(*Manager, float64) { log = append(log, "sys2") }))

	m.Update(0.016)
	assert.Equal(t, []string{"sys1", "sys2", "entity"}, log)
}

func TestInactiveEntitiesDoNotTick(t *testing.T) {
	m := NewManager()
	e := m.AddEntity()
	c := MustAdd(e, &counter{})
	m.AddSystem(SystemFunc(func(*Manager, float64) { e.Destroy() }))

	m.Update(0.016)
	assert.Zero(t, c.updates)
}

func TestClear(t *testing.T) {
	m := NewManager()
	for range 5 {
		m.AddEntity().AddGroup(groupA)
	}
	m.Clear()
	assert.Zero(t, m.Len())
	assert.Empty(t, m.Group(groupA))
}

func TestClearAllExcept(t *testing.T) {
	m := NewManager()
	keep := m.AddEntity()
	keep.AddGroup(groupB)
	for range 3 {
		m.AddEntity().AddGroup(groupA)
	}
	m.AddEntity()

	m.ClearAllExcept(groupB)
	assert.Equal(t, []*Entity{keep}, m.Entities())
	assert.Empty(t, m.Group(groupA))
}

func TestEntityByGroupBounds(t *testing.T) {
	m := NewManager()
	e := m.AddEntity()
	e.AddGroup(groupA)

	got, ok := m.EntityByGroup(groupA, 0)
	require.True(t, ok)
	assert.Same(t, e, got)

	_, ok = m.EntityByGroup(groupA, 1)
	assert.False(t, ok)
	_, ok = m.EntityByGroup(groupA, -1)
	assert.False(t, ok)
	_, ok = m.EntityByGroup(groupB, 0)
	assert.False(t, ok)
}

func TestInvalidGroupPanics(t *testing.T) {
	e := NewManager().AddEntity()
	assert.Panics(t, func() { e.AddGroup(MaxGroups) })
}

func TestBitset(t *testing.T) {
	var b Bitset
	b.Set(0)
	b.Set(31)
	assert.True(t, b.Has(0))
	assert.True(t, b.Has(31))
	assert.False(t, b.Has(5))

	b.Clear(31)
	assert.False(t, b.Has(31))
	assert.True(t, b.Has(0))
}
