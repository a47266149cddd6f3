package vmath

import "sort"

// Set is an ordered collection of distinct vectors.
type Set struct {
	items []Vec2
}

func (s *Set) search(v Vec2) int {
	return sort.Search(len(s.items), func(i int) bool { return !s.items[i].Less(v) })
}

// Insert adds v and reports whether it was not already present.
func (s *Set) Insert(v Vec2) bool {
	i := s.search(v)
	if i < len(s.items) && s.items[i] == v {
		return false
	}
	s.items = append(s.items, Vec2{})
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = v
	return true
}

func (s *Set) Contains(v Vec2) bool {
	i := s.search(v)
	return i < len(s.items) && s.items[i] == v
}

func (s *Set) Len() int { return len(s.items) }

// Items returns the members in ascending order. The slice must not be modified.
func (s *Set) Items() []Vec2 { return s.items }
