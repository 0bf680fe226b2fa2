package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/bootstrap3d/ecs"
	"github.com/plus3/bootstrap3d/scene"
	"github.com/plus3/bootstrap3d/window"
)

// SceneStatus is what the scene inspector displays.
type SceneStatus struct {
	CursorLocked  bool
	HasWindow     bool
	PresentMode   window.PresentMode
	Cursor        window.Cursor
	TimerFraction float64
	TimerPeriod   string
	Tagged        []scene.Sample
}

// ReadSceneStatus snapshots the scene's toggle, window and diagnostic state.
func ReadSceneStatus(storage *ecs.Storage, windows window.Manager) SceneStatus {
	var status SceneStatus
	if toggle := ecs.ReadSingleton[scene.InputToggleState](storage); toggle != nil {
		status.CursorLocked = toggle.CursorLocked
	}
	if timer := ecs.ReadSingleton[scene.DiagnosticTimer](storage); timer != nil {
		status.TimerFraction = timer.Fraction()
		status.TimerPeriod = timer.Duration().String()
	}
	if windows != nil {
		if w, ok := windows.Primary(); ok {
			status.HasWindow = true
			status.PresentMode = w.PresentMode()
			status.Cursor = w.Cursor()
		}
	}
	for id := range ecs.Tagged[scene.Thing](storage) {
		if t := ecs.ReadComponent[scene.Transform](storage, id); t != nil {
			status.Tagged = append(status.Tagged, scene.Sample{Entity: id, Position: t.Translation})
		}
	}
	return status
}

// SceneInspector shows the cursor lock, present mode, diagnostic timer and
// tagged entity positions.
type SceneInspector struct {
	Storage *ecs.Storage
	Windows window.Manager
}

func (si *SceneInspector) Render() {
	if !imgui.BeginV("Scene", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	status := ReadSceneStatus(si.Storage, si.Windows)
	imgui.Text(fmt.Sprintf("Cursor locked: %t", status.CursorLocked))
	if status.HasWindow {
		imgui.Text("Present mode: " + status.PresentMode.String())
		imgui.Text(fmt.Sprintf("Cursor: %s visible=%t", status.Cursor.Grab, status.Cursor.Visible))
	} else {
		imgui.Text("No primary window")
	}
	imgui.Text(fmt.Sprintf("Diagnostics: %.0f%% of %s", status.TimerFraction*100, status.TimerPeriod))

	imgui.Separator()
	if len(status.Tagged) == 0 {
		imgui.Text("No tagged entities")
		return
	}
	for _, s := range status.Tagged {
		imgui.BulletText(fmt.Sprintf("0x%X x = %.2f, y = %.2f, z = %.2f", uint64(s.Entity), s.Position.X, s.Position.Y, s.Position.Z))
	}
}
