package ebiten_test

import (
	"context"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/bootstrap3d/ecs"
	"github.com/plus3/bootstrap3d/ecs/debugui"
	debugui_ebiten "github.com/plus3/bootstrap3d/ecs/debugui/ebiten"
)

// Game drives the scheduler inside an ImGui frame and draws the overlay on
// top of the game content.
type Game struct {
	ctx       context.Context
	scheduler *ecs.Scheduler
	imgui     *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	g.imgui.Frame(func() { g.scheduler.Once(1.0 / 60.0) })
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.imgui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imgui.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.New("ECS ImGui Example", 1280, 720)

	registry := ecs.NewComponentRegistry()
	storage := ecs.NewStorage(registry)
	scheduler := ecs.NewScheduler(storage)
	scheduler.AddPlugins(debugui.Overlay{})

	storage.Spawn(debugui.ImguiItem{
		Render: func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from ECS!")
			imgui.End()
		},
	})

	game := &Game{ctx: context.Background(), scheduler: scheduler, imgui: backend}
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
