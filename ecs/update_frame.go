package ecs

import (
	"math"
	"time"
)

// UpdateFrame is handed to every system for one scheduler pass.
type UpdateFrame struct {
	// DeltaTime is the time since the previous frame in seconds.
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
	// Stage is the stage the frame belongs to.
	Stage Stage
	// Number counts update frames starting at 1. Startup frames use 0.
	Number uint64
}

func newUpdateFrame(dt float64, storage *Storage, stage Stage, number uint64) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Storage:   storage,
		Stage:     stage,
		Number:    number,
	}
}

// Delta returns DeltaTime rounded to the nearest nanosecond. Negative deltas
// clamp to zero.
func (f *UpdateFrame) Delta() time.Duration {
	if f.DeltaTime <= 0 {
		return 0
	}
	return time.Duration(math.Round(f.DeltaTime * float64(time.Second)))
}
