package ecs_test

import (
	"reflect"
	"slices"
	"testing"

	"github.com/plus3/bootstrap3d/ecs"
	"github.com/stretchr/testify/assert"
)

func TestTagged(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		storage.Spawn(Position{})

		assert.Empty(t, slices.Collect(ecs.Tagged[Player](storage)))
		assert.Equal(t, 0, ecs.TaggedCount[Player](storage))
	})

	t.Run("spawn and delete", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		p1 := storage.Spawn(Position{X: 1}, Player{})
		p2 := storage.Spawn(Name{Value: "p2"}, Player{})
		e := storage.Spawn(Position{X: 3}, Enemy{})

		assert.ElementsMatch(t, []ecs.EntityId{p1, p2}, slices.Collect(ecs.Tagged[Player](storage)))
		assert.ElementsMatch(t, []ecs.EntityId{e}, slices.Collect(ecs.Tagged[Enemy](storage)))

		storage.Delete(p1)
		assert.ElementsMatch(t, []ecs.EntityId{p2}, slices.Collect(ecs.Tagged[Player](storage)))
		assert.Equal(t, 1, ecs.TaggedCount[Player](storage))
	})

	t.Run("index follows archetype moves", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		id := storage.Spawn(Position{X: 1}, Player{})

		moved := storage.AddComponent(id, Velocity{DX: 1})
		assert.Equal(t, []ecs.EntityId{moved}, slices.Collect(ecs.Tagged[Player](storage)))

		tagged := storage.AddComponent(moved, Enemy{})
		assert.Equal(t, []ecs.EntityId{tagged}, slices.Collect(ecs.Tagged[Enemy](storage)))
		assert.Equal(t, []ecs.EntityId{tagged}, slices.Collect(ecs.Tagged[Player](storage)))

		untagged := storage.RemoveComponent(tagged, reflect.TypeFor[Player]())
		assert.Empty(t, slices.Collect(ecs.Tagged[Player](storage)))
		assert.Equal(t, []ecs.EntityId{untagged}, slices.Collect(ecs.Tagged[Enemy](storage)))
	})

	t.Run("non-marker type panics", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		assert.Panics(t, func() { ecs.Tagged[Position](storage) })
	})
}
