package ecs

import "weak"

// EntityRef follows one entity across archetype moves. AddComponent and
// RemoveComponent give the entity a new EntityId; the ref is updated in place
// so holders keep pointing at the same entity. Deleting the entity clears it.
type EntityRef struct {
	Id        EntityId
	Archetype *Archetype
}

// CreateEntityRef returns the ref for id, reusing a live one if it exists.
// Unknown or deleted IDs return nil.
func (s *Storage) CreateEntityRef(id EntityId) *EntityRef {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok || !archetype.Contains(id.Index()) {
		return nil
	}

	if ptr, ok := archetype.refs.Get(id); ok {
		if ref := ptr.Value(); ref != nil {
			return ref
		}
		archetype.refs.Del(id)
	}

	ref := &EntityRef{Id: id, Archetype: archetype}
	archetype.refs.Put(id, weak.Make(ref))
	return ref
}

// ResolveEntityRef returns the entity's current ID, or false once the entity
// has been deleted or the ref invalidated.
func (s *Storage) ResolveEntityRef(ref *EntityRef) (EntityId, bool) {
	if ref == nil || ref.Archetype == nil {
		return 0, false
	}
	return ref.Id, true
}

// InvalidateEntityRef detaches ref from its entity. It returns false if the
// ref was already invalid.
func (s *Storage) InvalidateEntityRef(ref *EntityRef) bool {
	if ref == nil || ref.Archetype == nil {
		return false
	}
	ref.Archetype.refs.Del(ref.Id)
	ref.Id = 0
	ref.Archetype = nil
	return true
}

// moveRef hands the ref for id over to the entity's new home.
func (a *Archetype) moveRef(id, newId EntityId, to *Archetype) {
	ptr, ok := a.refs.Get(id)
	if !ok {
		return
	}
	a.refs.Del(id)
	if ref := ptr.Value(); ref != nil {
		ref.Id = newId
		ref.Archetype = to
		to.refs.Put(newId, ptr)
	}
}

// dropRef clears the ref of a deleted slot.
func (a *Archetype) dropRef(entityIndex uint32) {
	id := NewEntityId(a.id, entityIndex)
	ptr, ok := a.refs.Get(id)
	if !ok {
		return
	}
	a.refs.Del(id)
	if ref := ptr.Value(); ref != nil {
		ref.Id = 0
		ref.Archetype = nil
	}
}
