package ecs_test

import (
	"fmt"

	"github.com/plus3/bootstrap3d/ecs"
)

type GameConfig struct {
	MaxPlayers int
	Difficulty string
}

type GameScore struct {
	Points int
	Level  int
}

// ExampleNewSingleton demonstrates creating and accessing singleton components.
// Singletons are global components not associated with any entity, useful for
// game state, configuration, or other application-wide data.
func ExampleNewSingleton() {
	registry := ecs.NewComponentRegistry()
	storage := ecs.NewStorage(registry)

	config := ecs.NewSingleton[GameConfig](storage, GameConfig{
		MaxPlayers: 4,
		Difficulty: "Normal",
	})

	fmt.Printf("Config: %d players, %s difficulty\n", config.Get().MaxPlayers, config.Get().Difficulty)

	config.Get().Difficulty = "Hard"

	// A second accessor sees the same data; its initializer is ignored.
	sameConfig := ecs.NewSingleton[GameConfig](storage, GameConfig{Difficulty: "Easy"})
	fmt.Printf("Same config: %s difficulty\n", sameConfig.Get().Difficulty)

	// Output:
	// Config: 4 players, Normal difficulty
	// Same config: Hard difficulty
}

// ExampleReadSingleton shows access to a singleton outside of systems.
func ExampleReadSingleton() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())

	fmt.Println(ecs.ReadSingleton[GameScore](storage) == nil)

	storage.AddSingleton(GameScore{Points: 10, Level: 1})
	score := ecs.ReadSingleton[GameScore](storage)
	fmt.Printf("%d points, level %d\n", score.Points, score.Level)

	// Overwriting keeps the same cell, so earlier pointers observe the change.
	storage.AddSingleton(GameScore{Points: 250, Level: 3})
	fmt.Printf("%d points, level %d\n", score.Points, score.Level)

	// Output:
	// true
	// 10 points, level 1
	// 250 points, level 3
}
