package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/bootstrap3d/ecs"
	"github.com/plus3/bootstrap3d/scene"
	"github.com/plus3/bootstrap3d/window"
)

// Report summarises one headless run.
type Report struct {
	// Configuration
	Frames        int
	FrameInterval time.Duration
	FreeFly       bool

	// Results
	FramesRun     uint64
	TotalTime     time.Duration
	FrameTime     Stats
	Entities      int
	Tagged        int
	Reports       []scene.Report
	CursorLocked  bool
	Cursor        window.Cursor
	PresentMode   window.PresentMode
	WindowChanges int
	Camera        scene.Vec3
	Systems       []ecs.SystemStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// Stats holds frame-time samples and their summary.
type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

// Finalize computes Min, Max and Avg from Samples.
func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]
	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// collect reads the final world and window state into the report.
func (r *Report) collect(scheduler *ecs.Scheduler, win *window.Headless, recorder *scene.Recorder) {
	storage := scheduler.Storage()
	r.FramesRun = scheduler.Frames()
	r.FrameTime.Finalize()
	r.Entities = storage.EntityCount()
	r.Tagged = ecs.TaggedCount[scene.Thing](storage)
	r.Reports = recorder.Reports()
	r.Cursor = win.Cursor()
	r.PresentMode = win.PresentMode()
	r.WindowChanges = win.Changes()
	r.Systems = scheduler.GetStats().Systems

	if toggle := ecs.ReadSingleton[scene.InputToggleState](storage); toggle != nil {
		r.CursorLocked = toggle.CursorLocked
	}
	view := ecs.NewView[struct {
		*scene.Camera
		*scene.Transform
	}](storage)
	for cam := range view.Values() {
		r.Camera = cam.Transform.Translation
		break
	}
}

// Generate writes the report as markdown.
func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Bootstrap Run Report

## Configuration
- **Frames:** {{.Frames}}
- **Frame Interval:** {{.FrameInterval}}
- **Free-fly Camera:** {{.FreeFly}}

## Results
- **Frames Run:** {{.FramesRun}}
- **Total Time:** {{.TotalTime}}
- **Frame Delta:**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}

## Scene
- **Entities:** {{.Entities}} ({{.Tagged}} tagged)
- **Camera:** {{vec .Camera}}
- **Cursor Locked:** {{.CursorLocked}} (grab {{.Cursor.Grab}}, visible {{.Cursor.Visible}})
- **Present Mode:** {{.PresentMode}}
- **Window Changes:** {{.WindowChanges}}

## Diagnostic Reports ({{len .Reports}})
{{range .Reports}}- frame {{.Frame}}:{{range .Samples}} {{vec .Position}}{{end}}
{{else}}- none
{{end}}
## Systems
| System | Stage | Runs | Avg | Max |
|---|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.Stage}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:  {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc: {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:      {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"vec": func(v scene.Vec3) string {
			return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
