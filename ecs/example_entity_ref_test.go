package ecs_test

import (
	"fmt"

	"github.com/plus3/bootstrap3d/ecs"
)

// ExampleStorage_CreateEntityRef keeps track of an entity while adding a
// component moves it to another archetype.
func ExampleStorage_CreateEntityRef() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	storage := ecs.NewStorage(registry)

	id := storage.Spawn(Position{X: 3, Y: 4})
	ref := storage.CreateEntityRef(id)

	moved := storage.AddComponent(id, Velocity{DX: 1})
	current, _ := storage.ResolveEntityRef(ref)
	fmt.Println("id changed:", moved != id)
	fmt.Println("ref follows:", current == moved)

	storage.Delete(current)
	_, alive := storage.ResolveEntityRef(ref)
	fmt.Println("alive after delete:", alive)

	// Output:
	// id changed: true
	// ref follows: true
	// alive after delete: false
}
