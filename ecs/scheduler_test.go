package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/bootstrap3d/ecs"
	"github.com/stretchr/testify/assert"
)

type MovementSystem struct {
	Entities ecs.Query[struct {
		*Position
		*Velocity
	}]
	ExecuteCount int
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	for item := range s.Entities.Values() {
		item.Position.X += item.Velocity.DX * float32(frame.DeltaTime)
		item.Position.Y += item.Velocity.DY * float32(frame.DeltaTime)
	}
}

type spawnOnStartup struct {
	runs int
}

func (s *spawnOnStartup) Execute(frame *ecs.UpdateFrame) {
	s.runs++
	frame.Commands.Spawn(Position{}, Velocity{DX: 10, DY: 20})
}

func TestScheduler(t *testing.T) {
	registry := newTestRegistry()

	t.Run("system execution order and query initialization", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		var order []string
		scheduler.Register(ecs.SystemFunc(func(*ecs.UpdateFrame) { order = append(order, "a") }))
		scheduler.Register(ecs.SystemFunc(func(*ecs.UpdateFrame) { order = append(order, "b") }))

		scheduler.Once(1.0)
		scheduler.Once(1.0)

		if len(order) != 4 || order[0] != "a" || order[1] != "b" {
			t.Errorf("unexpected execution order %v", order)
		}
	})

	t.Run("startup runs once before the first frame", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		startup := &spawnOnStartup{}
		movement := &MovementSystem{}
		scheduler.RegisterStartup(startup)
		scheduler.Register(movement)

		scheduler.Once(0.5)
		scheduler.Once(0.5)

		if startup.runs != 1 {
			t.Errorf("expected startup to run once, got %d", startup.runs)
		}
		if movement.ExecuteCount != 2 {
			t.Errorf("expected MovementSystem to execute twice, got %d", movement.ExecuteCount)
		}

		found := false
		for item := range movement.Entities.Values() {
			if item.Position.X == 10.0 && item.Position.Y == 20.0 {
				found = true
			}
		}
		if !found {
			t.Error("expected startup entity to be visible and moved by both frames")
		}

		assert.Panics(t, func() { scheduler.RegisterStartup(&spawnOnStartup{}) })
	})

	t.Run("explicit startup", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)
		scheduler.RegisterStartup(&spawnOnStartup{})

		assert.False(t, scheduler.Started())
		scheduler.Startup()
		scheduler.Startup()
		assert.True(t, scheduler.Started())
		assert.Equal(t, 1, storage.EntityCount())
		assert.Equal(t, uint64(0), scheduler.Frames())
	})

	t.Run("frame metadata", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		var frames []ecs.UpdateFrame
		record := ecs.SystemFunc(func(f *ecs.UpdateFrame) { frames = append(frames, *f) })
		scheduler.RegisterStartup(record)
		scheduler.Register(record)

		scheduler.Once(0.25)

		if assert.Len(t, frames, 2) {
			assert.Equal(t, ecs.Startup, frames[0].Stage)
			assert.Equal(t, uint64(0), frames[0].Number)
			assert.Equal(t, ecs.Update, frames[1].Stage)
			assert.Equal(t, uint64(1), frames[1].Number)
			assert.Equal(t, 250*time.Millisecond, frames[1].Delta())
		}
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		movement := &MovementSystem{}
		scheduler.Register(movement)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		if movement.ExecuteCount == 0 {
			t.Error("expected system to execute at least once")
		}
	})

	t.Run("stats", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)
		scheduler.RegisterStartup(&spawnOnStartup{})
		scheduler.Register(&MovementSystem{})

		stats := scheduler.GetStats()
		assert.Equal(t, 2, stats.SystemCount)
		assert.Equal(t, time.Duration(0), stats.Systems[1].MinDuration)

		scheduler.Once(0.1)
		scheduler.Once(0.1)
		stats = scheduler.GetStats()

		assert.Equal(t, int64(3), stats.TotalExecutions)
		assert.Equal(t, uint64(2), stats.Frames)
		assert.Equal(t, "spawnOnStartup", stats.Systems[0].Name)
		assert.Equal(t, ecs.Startup, stats.Systems[0].Stage)
		assert.Equal(t, "MovementSystem", stats.Systems[1].Name)
		assert.Equal(t, int64(2), stats.Systems[1].ExecutionCount)
	})
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "Startup", ecs.Startup.String())
	assert.Equal(t, "Update", ecs.Update.String())
	assert.Equal(t, "Unknown", ecs.Stage(9).String())
}

func TestUpdateFrameDelta(t *testing.T) {
	tests := []struct {
		seconds float64
		want    time.Duration
	}{
		{0.25, 250 * time.Millisecond},
		{2.0 / 3, 666666667 * time.Nanosecond},
		{1.0 / 60, 16666667 * time.Nanosecond},
		{0, 0},
		{-0.5, 0},
	}
	for _, tt := range tests {
		frame := &ecs.UpdateFrame{DeltaTime: tt.seconds}
		assert.Equal(t, tt.want, frame.Delta(), "DeltaTime %v", tt.seconds)
	}
}
