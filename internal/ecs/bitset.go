package ecs

// Bitset records membership for up to 32 small integer IDs. It backs both
// the component-type and the group masks of an entity.
type Bitset uint32

func (b *Bitset) Set(i uint8) { *b |= 1 << i }
func (b *Bitset) Clear(i uint8) { *b &^= 1 << i }

func (b Bitset) Has(i uint8) bool { return b&(1<<i) != 0 }
