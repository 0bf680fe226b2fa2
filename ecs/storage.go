package ecs

import (
	"reflect"
	"sort"
	"unsafe"
)

// Storage is the world: every entity, component column, marker index and
// singleton lives here.
type Storage struct {
	archetypes map[uint32]*Archetype
	registry   *ComponentRegistry
	markers    map[reflect.Type]*markerIndex
	singletons map[reflect.Type]*singletonEntry
}

// NewStorage creates a new ECS storage system with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		archetypes: make(map[uint32]*Archetype),
		registry:   registry,
		markers:    make(map[reflect.Type]*markerIndex),
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// Registry returns the registry the storage was created with.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// GetArchetype returns an archetype storage (if one exists)
func (s *Storage) GetArchetype(components ...any) *Archetype {
	types := extractComponentTypes(components)
	return s.archetypes[hashTypesToUint32(types)]
}

// GetArchetypeByTypes returns an archetype storage (if one exists) based on reflect.Type
func (s *Storage) GetArchetypeByTypes(types []reflect.Type) *Archetype {
	sorted := append([]reflect.Type(nil), types...)
	sort.Sort(byTypeName(sorted))
	return s.archetypes[hashTypesToUint32(sorted)]
}

// GetArchetypeById returns the archetype with the given ID, or nil.
func (s *Storage) GetArchetypeById(id uint32) *Archetype {
	return s.archetypes[id]
}

// GetArchetypes returns every archetype ordered by ID.
func (s *Storage) GetArchetypes() []*Archetype {
	out := make([]*Archetype, 0, len(s.archetypes))
	for _, archetype := range s.archetypes {
		out = append(out, archetype)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

func (s *Storage) archetypeFor(types []reflect.Type) (uint32, *Archetype) {
	archetypeId := hashTypesToUint32(types)
	archetype, exists := s.archetypes[archetypeId]
	if !exists {
		archetype = NewArchetype(archetypeId, types, s.registry)
		s.archetypes[archetypeId] = archetype
	}
	return archetypeId, archetype
}

// Spawn creates a new entity with the provided components. Components may be
// passed by value or by pointer; they are always copied into storage.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	types := extractComponentTypes(components)
	archetypeId, archetype := s.archetypeFor(types)

	id := NewEntityId(archetypeId, archetype.Spawn(components))
	s.indexMarkers(id, types)
	return id
}

// Delete removes all data related to the entity ID. Unknown IDs are ignored.
func (s *Storage) Delete(id EntityId) {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok || !archetype.Contains(id.Index()) {
		return
	}

	s.unindexMarkers(id, archetype.types)
	archetype.Delete(id.Index())
}

// Alive reports whether id refers to a live entity.
func (s *Storage) Alive(id EntityId) bool {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	return ok && archetype.Contains(id.Index())
}

// AddComponent attaches component to the entity and returns the entity's new ID.
// If the entity already has a component of that type it is overwritten in
// place and the ID is unchanged. Unknown IDs return 0.
func (s *Storage) AddComponent(id EntityId, component any) EntityId {
	oldArchetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok || !oldArchetype.Contains(id.Index()) {
		return 0
	}

	compType := componentType(component)
	if idx := oldArchetype.column(compType); idx != -1 {
		oldArchetype.storages[idx].Set(int(id.Index()), component)
		return id
	}

	newTypes := make([]reflect.Type, 0, len(oldArchetype.types)+1)
	newTypes = append(newTypes, oldArchetype.types...)
	newTypes = append(newTypes, compType)
	sort.Sort(byTypeName(newTypes))

	components := make([]any, 0, len(newTypes))
	for _, typ := range newTypes {
		if typ == compType {
			components = append(components, component)
		} else {
			components = append(components, oldArchetype.GetComponent(id.Index(), typ))
		}
	}

	return s.move(id, oldArchetype, newTypes, components)
}

// RemoveComponent detaches the component type from the entity and returns the
// entity's new ID. Removing the last component deletes the entity and returns 0.
func (s *Storage) RemoveComponent(id EntityId, compType reflect.Type) EntityId {
	oldArchetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok || !oldArchetype.Contains(id.Index()) {
		return 0
	}
	if !oldArchetype.HasComponent(compType) {
		return id
	}

	newTypes := make([]reflect.Type, 0, len(oldArchetype.types)-1)
	for _, typ := range oldArchetype.types {
		if typ != compType {
			newTypes = append(newTypes, typ)
		}
	}

	if len(newTypes) == 0 {
		s.Delete(id)
		return 0
	}

	components := make([]any, 0, len(newTypes))
	for _, typ := range newTypes {
		components = append(components, oldArchetype.GetComponent(id.Index(), typ))
	}

	return s.move(id, oldArchetype, newTypes, components)
}

// move re-homes an entity into the archetype for newTypes. components must be
// in the same order as newTypes.
func (s *Storage) move(id EntityId, from *Archetype, newTypes []reflect.Type, components []any) EntityId {
	newArchetypeId, newArchetype := s.archetypeFor(newTypes)
	newId := NewEntityId(newArchetypeId, newArchetype.Spawn(components))

	s.unindexMarkers(id, from.types)
	from.moveRef(id, newId, newArchetype)
	from.Delete(id.Index())
	s.indexMarkers(newId, newTypes)
	return newId
}

// GetComponent returns the component for the given entity ID and component type
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return nil
	}
	return archetype.GetComponent(id.Index(), compType)
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok || !archetype.Contains(id.Index()) {
		return false
	}
	return archetype.HasComponent(compType)
}

// EntityCount returns the number of live entities across all archetypes.
func (s *Storage) EntityCount() int {
	total := 0
	for _, archetype := range s.archetypes {
		total += archetype.Len()
	}
	return total
}

func componentType(component any) reflect.Type {
	compType := reflect.TypeOf(component)
	if compType != nil && compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
	}
	return compType
}

// extractComponentTypes extracts and sorts component types from a slice of components
func extractComponentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		compType := componentType(comp)
		if compType == nil {
			panic("components cannot be nil")
		}

		// Components can be structs or primitives (int, string, etc.)
		// But not pointers, maps, channels, or functions (those aren't value types)
		switch compType.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
			panic("components cannot be pointers, maps, channels, or functions")
		}

		for _, seen := range types {
			if seen == compType {
				panic("duplicate component type " + compType.String())
			}
		}
		types = append(types, compType)
	}
	sort.Sort(byTypeName(types))
	return types
}

// hashTypesToUint32 generates a uint32 hash for a sorted slice of types
func hashTypesToUint32(types []reflect.Type) uint32 {
	var h uint32 = 2166136261     // FNV-1a 32-bit offset basis
	const prime uint32 = 16777619 // FNV-1a 32-bit prime

	for _, t := range types {
		// The type descriptor pointer is unique per type.
		ptr := uintptr((*iface)(unsafe.Pointer(&t)).data)
		val := uint32(ptr)
		if unsafe.Sizeof(uintptr(0)) == 8 {
			val ^= uint32(uint64(ptr) >> 32)
		}

		h ^= val
		h *= prime
	}

	return h
}

// ComponentReader is anything ReadComponent can look components up in.
type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the entity's T, or nil if it has none.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}
