package ecs

import (
	"iter"
	"reflect"
)

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage instance has its own ComponentRegistry, allowing multiple
// independent worlds to coexist without interference.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iComponentStorage
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iComponentStorage),
	}
}

// RegisterComponent registers a new component type with the given registry.
// This must be called for each component type before it can be spawned.
// Registering the same type twice is a no-op.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	if _, ok := r.factories[t]; ok {
		return
	}
	r.factories[t] = func() iComponentStorage {
		return &blockStorage[T]{}
	}
}

// Registered reports whether the component type has a factory.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

func (r *ComponentRegistry) getFactory(t reflect.Type) func() iComponentStorage {
	return r.factories[t]
}

// isMarker reports whether t is a zero-size struct, i.e. a tag without data.
func isMarker(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.Size() == 0
}

const blockSize = 64

// blockStorage stores components of type T in fixed-size blocks so that
// pointers handed out by Get stay valid while the column grows.
type blockStorage[T any] struct {
	blocks    []*[blockSize]T
	filled    []*[blockSize]bool
	freeSlots []int
	nextIndex int
	count     int
}

func unwrap[T any](item any) (T, bool) {
	switch v := item.(type) {
	case *T:
		return *v, true
	case T:
		return v, true
	}
	var zero T
	return zero, false
}

func (cs *blockStorage[T]) slot(index int) (int, int, bool) {
	if index < 0 {
		return 0, 0, false
	}
	blockIdx, slotIdx := index/blockSize, index%blockSize
	if blockIdx >= len(cs.blocks) {
		return 0, 0, false
	}
	return blockIdx, slotIdx, true
}

// Append adds a component to storage and returns its index, reusing freed
// slots first. Returns -1 if item is not a T or *T.
func (cs *blockStorage[T]) Append(item any) int {
	value, ok := unwrap[T](item)
	if !ok {
		return -1
	}

	var index int
	if n := len(cs.freeSlots); n > 0 {
		index = cs.freeSlots[n-1]
		cs.freeSlots = cs.freeSlots[:n-1]
	} else {
		index = cs.nextIndex
		cs.nextIndex++
		if index/blockSize >= len(cs.blocks) {
			cs.blocks = append(cs.blocks, new([blockSize]T))
			cs.filled = append(cs.filled, new([blockSize]bool))
		}
	}

	blockIdx, slotIdx := index/blockSize, index%blockSize
	cs.blocks[blockIdx][slotIdx] = value
	cs.filled[blockIdx][slotIdx] = true
	cs.count++
	return index
}

// Set overwrites an occupied slot in place.
func (cs *blockStorage[T]) Set(index int, item any) bool {
	blockIdx, slotIdx, ok := cs.slot(index)
	if !ok || !cs.filled[blockIdx][slotIdx] {
		return false
	}
	value, ok := unwrap[T](item)
	if !ok {
		return false
	}
	cs.blocks[blockIdx][slotIdx] = value
	return true
}

// Get returns a *T for the slot, or nil if it is empty.
func (cs *blockStorage[T]) Get(index int) any {
	blockIdx, slotIdx, ok := cs.slot(index)
	if !ok || !cs.filled[blockIdx][slotIdx] {
		return nil
	}
	return &cs.blocks[blockIdx][slotIdx]
}

// Delete marks a component slot as empty and zeroes it.
func (cs *blockStorage[T]) Delete(index int) {
	blockIdx, slotIdx, ok := cs.slot(index)
	if !ok || !cs.filled[blockIdx][slotIdx] {
		return
	}
	var zero T
	cs.filled[blockIdx][slotIdx] = false
	cs.blocks[blockIdx][slotIdx] = zero
	cs.freeSlots = append(cs.freeSlots, index)
	cs.count--
}

func (cs *blockStorage[T]) Has(index int) bool {
	blockIdx, slotIdx, ok := cs.slot(index)
	return ok && cs.filled[blockIdx][slotIdx]
}

func (cs *blockStorage[T]) Len() int {
	return cs.count
}

// Iter yields occupied indices in ascending order.
func (cs *blockStorage[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < cs.nextIndex; i++ {
			if cs.filled[i/blockSize][i%blockSize] && !yield(i) {
				return
			}
		}
	}
}
