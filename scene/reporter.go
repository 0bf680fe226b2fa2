package scene

import (
	"fmt"
	"slices"
	"sync"

	"github.com/plus3/bootstrap3d/ecs"
)

// Sample is one tagged entity's position at report time.
type Sample struct {
	Entity   ecs.EntityId
	Position Vec3
}

// Report is the burst emitted when the diagnostic timer completes a period.
// It covers every tagged entity in a single frame.
type Report struct {
	Frame   uint64
	Samples []Sample
}

// Observer receives diagnostic reports.
type Observer interface {
	Observe(Report)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Report)

func (f ObserverFunc) Observe(r Report) { f(r) }

// LogObserver writes one info line per sample to the scene logger.
type LogObserver struct{}

func (LogObserver) Observe(r Report) {
	log := Logger()
	for _, s := range r.Samples {
		log.Info(fmt.Sprintf("x = %g, y = %g, z = %g", s.Position.X, s.Position.Y, s.Position.Z),
			"entity", s.Entity, "frame", r.Frame)
	}
}

// Recorder keeps every report it observes.
type Recorder struct {
	mu      sync.Mutex
	reports []Report
}

// Observe appends report.
func (r *Recorder) Observe(report Report) {
	r.mu.Lock()
	r.reports = append(r.reports, report)
	r.mu.Unlock()
}

// Reports returns a copy of the recorded reports.
func (r *Recorder) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.reports)
}

// Len returns the number of recorded reports.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports)
}

// DiagnosticReporter samples the translation of every Thing entity each time
// the diagnostic timer completes a period.
type DiagnosticReporter struct {
	Timer    ecs.Singleton[DiagnosticTimer]
	Observer Observer
}

func (r *DiagnosticReporter) Execute(frame *ecs.UpdateFrame) {
	timer := r.Timer.Get()
	if timer == nil {
		return
	}
	if !timer.Tick(frame.Delta()).JustFinished() {
		return
	}

	samples := make([]Sample, 0, ecs.TaggedCount[Thing](frame.Storage))
	for id := range ecs.Tagged[Thing](frame.Storage) {
		transform := ecs.ReadComponent[Transform](frame.Storage, id)
		if transform == nil {
			continue
		}
		samples = append(samples, Sample{Entity: id, Position: transform.Translation})
	}
	if len(samples) == 0 {
		return
	}
	slices.SortFunc(samples, func(a, b Sample) int {
		switch {
		case a.Entity < b.Entity:
			return -1
		case a.Entity > b.Entity:
			return 1
		}
		return 0
	})

	observer := r.Observer
	if observer == nil {
		observer = LogObserver{}
	}
	observer.Observe(Report{Frame: frame.Number, Samples: samples})
}
