package scene

import (
	"time"

	"github.com/plus3/bootstrap3d/ecs"
	"github.com/plus3/bootstrap3d/input"
	"github.com/plus3/bootstrap3d/window"
)

// Options wires the scene to its host. Zero values fall back to defaults.
type Options struct {
	Keyboard input.Keyboard
	Mouse    input.Mouse
	Windows  window.Manager
	Observer Observer

	DiagnosticInterval time.Duration
	CursorToggleKey    input.Key
	VsyncToggleKey     input.Key
	FreeFly            bool
}

const (
	DefaultCursorToggleKey = input.KeyM
	DefaultVsyncToggleKey  = input.KeyV
)

// Setup installs the scene: components, singletons, the four spawn systems
// and the per-frame systems in the order input, camera, diagnostics, window.
type Setup struct {
	Options
}

func (p Setup) Build(scheduler *ecs.Scheduler) {
	opts := p.withDefaults()
	storage := scheduler.Storage()

	RegisterComponents(storage.Registry())
	storage.AddSingleton(NewDiagnosticTimer(opts.DiagnosticInterval))
	storage.AddSingleton(InputToggleState{})

	scheduler.RegisterStartup(SpawnGroundPlane())
	scheduler.RegisterStartup(SpawnCube())
	scheduler.RegisterStartup(SpawnCamera(opts.FreeFly))
	scheduler.RegisterStartup(SpawnLight())

	scheduler.Register(&CursorToggleInput{
		Keyboard: opts.Keyboard,
		Toggle:   input.KeyEdge{Key: opts.CursorToggleKey},
	})
	if opts.FreeFly {
		scheduler.Register(&FreeFlySystem{Keyboard: opts.Keyboard, Mouse: opts.Mouse})
	}
	scheduler.Register(&DiagnosticReporter{Observer: opts.Observer})
	scheduler.Register(&CursorLockSystem{Windows: opts.Windows})
	scheduler.Register(&VsyncToggleSystem{
		Keyboard: opts.Keyboard,
		Windows:  opts.Windows,
		Toggle:   input.KeyEdge{Key: opts.VsyncToggleKey},
	})
}

func (p Setup) withDefaults() Options {
	opts := p.Options
	if opts.DiagnosticInterval <= 0 {
		opts.DiagnosticInterval = DefaultDiagnosticPeriod
	}
	if opts.CursorToggleKey == input.KeyUnknown {
		opts.CursorToggleKey = DefaultCursorToggleKey
	}
	if opts.VsyncToggleKey == input.KeyUnknown {
		opts.VsyncToggleKey = DefaultVsyncToggleKey
	}
	if opts.Observer == nil {
		opts.Observer = LogObserver{}
	}
	return opts
}
