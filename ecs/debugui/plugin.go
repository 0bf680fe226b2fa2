package debugui

import (
	"github.com/plus3/bootstrap3d/ecs"
	"github.com/plus3/bootstrap3d/scene"
	"github.com/plus3/bootstrap3d/window"
)

// Overlay installs the ImGui system and the scene, entity and performance
// windows. The host must begin and end the ImGui frame around Scheduler.Once.
type Overlay struct {
	Windows window.Manager
}

func (o Overlay) Build(scheduler *ecs.Scheduler) {
	storage := scheduler.Storage()
	ecs.RegisterComponent[ImguiItem](storage.Registry())
	storage.AddSingleton(ImguiInputState{})

	inspector := &SceneInspector{Storage: storage, Windows: o.Windows}
	browser := &EntityBrowser{Storage: storage, LabelOf: func(id ecs.EntityId) string {
		if name := ecs.ReadComponent[scene.Name](storage, id); name != nil {
			return name.Value
		}
		return ""
	}}
	perf := &PerformanceStats{Storage: storage, Scheduler: scheduler}

	storage.Spawn(ImguiItem{Render: inspector.Render})
	storage.Spawn(ImguiItem{Render: browser.Render})
	storage.Spawn(ImguiItem{Render: perf.Render})

	scheduler.Register(&ImguiSystem{})
}
