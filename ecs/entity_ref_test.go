package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/bootstrap3d/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityRefLifecycle(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1, Y: 2})

	ref := storage.CreateEntityRef(id)
	require.NotNil(t, ref)
	assert.Equal(t, id, ref.Id)
	assert.NotNil(t, ref.Archetype)

	resolved, ok := storage.ResolveEntityRef(ref)
	require.True(t, ok)
	assert.Equal(t, float32(2), ecs.ReadComponent[Position](storage, resolved).Y)

	assert.True(t, storage.InvalidateEntityRef(ref))
	assert.False(t, storage.InvalidateEntityRef(ref))
	_, ok = storage.ResolveEntityRef(ref)
	assert.False(t, ok)
	assert.True(t, storage.Alive(id), "invalidating a ref leaves the entity alone")
}

func TestEntityRefReuse(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 5, Y: 10})

	assert.Same(t, storage.CreateEntityRef(id), storage.CreateEntityRef(id))

	other := storage.Spawn(Position{X: 1, Y: 1})
	assert.NotSame(t, storage.CreateEntityRef(id), storage.CreateEntityRef(other))
}

func TestEntityRefFollowsMoves(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1, Y: 1}, Name{Value: "mover"})
	ref := storage.CreateEntityRef(id)

	t.Run("add component", func(t *testing.T) {
		moved := storage.AddComponent(id, Velocity{DX: 1})
		require.NotEqual(t, id, moved)

		resolved, ok := storage.ResolveEntityRef(ref)
		require.True(t, ok)
		assert.Equal(t, moved, resolved)
		assert.Equal(t, "mover", ecs.ReadComponent[Name](storage, resolved).Value)
		assert.Same(t, ref, storage.CreateEntityRef(moved))
		id = moved
	})

	t.Run("overwrite in place", func(t *testing.T) {
		assert.Equal(t, id, storage.AddComponent(id, Velocity{DX: 2}))
		resolved, ok := storage.ResolveEntityRef(ref)
		require.True(t, ok)
		assert.Equal(t, id, resolved)
	})

	t.Run("remove component", func(t *testing.T) {
		moved := storage.RemoveComponent(id, reflect.TypeFor[Position]())
		resolved, ok := storage.ResolveEntityRef(ref)
		require.True(t, ok)
		assert.Equal(t, moved, resolved)
		assert.False(t, storage.HasComponent(resolved, reflect.TypeFor[Position]()))
		id = moved
	})

	t.Run("delete", func(t *testing.T) {
		storage.Delete(id)
		_, ok := storage.ResolveEntityRef(ref)
		assert.False(t, ok)
	})
}

func TestEntityRefRemovingLastComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{})
	ref := storage.CreateEntityRef(id)

	assert.Equal(t, ecs.EntityId(0), storage.RemoveComponent(id, reflect.TypeFor[Position]()))
	_, ok := storage.ResolveEntityRef(ref)
	assert.False(t, ok)
}

func TestEntityRefInvalidInput(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	_, ok := storage.ResolveEntityRef(nil)
	assert.False(t, ok)
	assert.False(t, storage.InvalidateEntityRef(nil))
	assert.Nil(t, storage.CreateEntityRef(ecs.NewEntityId(9999, 1)))

	id := storage.Spawn(Position{})
	storage.Delete(id)
	assert.Nil(t, storage.CreateEntityRef(id))
}
