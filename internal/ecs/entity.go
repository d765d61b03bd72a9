package ecs

// EntityId packs the archetype id in the upper 32 bits and the slot index in the lower 32 bits.
// The zero value never names a live entity. Ids carry no generation: after Delete, the next Spawn into
// the same archetype reuses the freed slot and so the same id.
type EntityId uint64

// NewEntityId builds an EntityId from an archetype id and slot index.
func NewEntityId(archetypeId uint32, index uint32) EntityId {
	return EntityId(uint64(archetypeId)<<32 | uint64(index))
}

// ArchetypeId returns the archetype half of the id.
func (e EntityId) ArchetypeId() uint32 {
	return uint32(e >> 32)
}

// Index returns the slot half of the id.
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}
