package ecs_test

import (
	"testing"

	"github.com/plus3/bootstrap3d/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type moving struct {
	*Position
	*Velocity
}

func TestViewGet(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	t.Run("all components present", func(t *testing.T) {
		id := storage.Spawn(Position{X: 10, Y: 20}, Velocity{DX: 1.5, DY: 2.5}, Name{Value: "extra"})
		item := ecs.NewView[moving](storage).Get(id)
		require.NotNil(t, item)
		assert.Equal(t, float32(10), item.Position.X)
		assert.Equal(t, float32(2.5), item.Velocity.DY)
	})

	t.Run("missing component", func(t *testing.T) {
		id := storage.Spawn(Position{X: 5, Y: 10})
		assert.Nil(t, ecs.NewView[moving](storage).Get(id))
	})

	t.Run("unknown entity", func(t *testing.T) {
		assert.Nil(t, ecs.NewView[moving](storage).Get(ecs.NewEntityId(9999, 9999)))
	})

	t.Run("deleted entity", func(t *testing.T) {
		id := storage.Spawn(Position{}, Velocity{})
		storage.Delete(id)
		assert.Nil(t, ecs.NewView[moving](storage).Get(id))
	})

	t.Run("primitive component", func(t *testing.T) {
		id := storage.Spawn(Position{X: 7}, Score(1000))
		item := ecs.NewView[struct {
			*Position
			*Score
		}](storage).Get(id)
		require.NotNil(t, item)
		*item.Score = 2000
		assert.Equal(t, Score(2000), *ecs.ReadComponent[Score](storage, id))
	})
}

func TestViewFill(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	view := ecs.NewView[moving](storage)

	var result moving
	assert.True(t, view.Fill(storage.Spawn(Position{X: 3}, Velocity{DX: 4}), &result))
	assert.Equal(t, float32(3), result.Position.X)
	assert.Equal(t, float32(4), result.Velocity.DX)

	assert.False(t, view.Fill(storage.Spawn(Position{X: 1}), &result))
}

func TestViewMutation(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1, Y: 1}, Velocity{})

	item := ecs.NewView[moving](storage).Get(id)
	require.NotNil(t, item)
	item.Position.X = 100
	item.Velocity.DY = 10

	assert.Equal(t, float32(100), ecs.ReadComponent[Position](storage, id).X)
	assert.Equal(t, float32(10), ecs.ReadComponent[Velocity](storage, id).DY)
}

func TestViewOptional(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	named := storage.Spawn(Position{X: 1}, Name{Value: "named"})
	plain := storage.Spawn(Position{X: 2})
	storage.Spawn(Velocity{})

	type labelled struct {
		*Position
		Name *Name `ecs:"optional"`
	}
	view := ecs.NewView[labelled](storage)

	got := map[ecs.EntityId]labelled{}
	for id, item := range view.Iter() {
		got[id] = item
	}
	require.Len(t, got, 2)
	require.NotNil(t, got[named].Name)
	assert.Equal(t, "named", got[named].Name.Value)
	assert.Nil(t, got[plain].Name)
	assert.Equal(t, float32(2), got[plain].Position.X)
}

func TestViewInvalidTypes(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { ecs.NewView[Position](storage) })
	assert.Panics(t, func() {
		ecs.NewView[struct{ Position Position }](storage)
	})
	assert.Panics(t, func() {
		ecs.NewView[struct {
			*Position
			Name *Name `ecs:"maybe"`
		}](storage)
	})
}

func TestViewIter(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	t.Run("empty", func(t *testing.T) {
		count := 0
		for range ecs.NewView[moving](storage).Iter() {
			count++
		}
		assert.Equal(t, 0, count)
	})

	ids := []ecs.EntityId{
		storage.Spawn(Position{X: 1}, Velocity{DX: 0.1}),
		storage.Spawn(Position{X: 2}, Velocity{DX: 0.2}),
		storage.Spawn(Position{X: 3}, Velocity{DX: 0.3}, Name{Value: "three"}),
	}
	storage.Spawn(Position{X: 99})
	storage.Spawn(Velocity{DX: 99})

	t.Run("across archetypes", func(t *testing.T) {
		got := map[ecs.EntityId]float32{}
		for id, item := range ecs.NewView[moving](storage).Iter() {
			got[id] = item.Position.X
		}
		assert.Equal(t, map[ecs.EntityId]float32{ids[0]: 1, ids[1]: 2, ids[2]: 3}, got)
	})

	t.Run("values", func(t *testing.T) {
		var sum float32
		for item := range ecs.NewView[moving](storage).Values() {
			sum += item.Velocity.DX
		}
		assert.InDelta(t, 0.6, sum, 1e-6)
	})

	t.Run("early break", func(t *testing.T) {
		count := 0
		for range ecs.NewView[moving](storage).Iter() {
			count++
			break
		}
		assert.Equal(t, 1, count)
	})
}
