package ecs

// EntityId packs the archetype ID into the upper 32 bits and the slot index
// inside that archetype into the lower 32 bits.
//
// IDs are only stable while an entity keeps its component set. Adding or
// removing a component moves the entity to another archetype and yields a
// new ID.
type EntityId uint64

// NewEntityId creates an EntityId from an archetype ID and entity index
func NewEntityId(archetypeId uint32, index uint32) EntityId {
	return EntityId(uint64(archetypeId)<<32 | uint64(index))
}

// ArchetypeId extracts the archetype ID from the entity ID
func (e EntityId) ArchetypeId() uint32 {
	return uint32(e >> 32)
}

// Index extracts the entity index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}
