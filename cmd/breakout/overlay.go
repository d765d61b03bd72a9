package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/breakout/internal/breakout"
	"github.com/plus3/breakout/internal/debugui"
	debugui_ebiten "github.com/plus3/breakout/internal/debugui/ebiten"
	"github.com/plus3/breakout/internal/ecs"
)

const overlayWidth = 840

// overlay is the -debug ImGui layer. It runs in its own ECS world so the game's storage only holds
// game state.
type overlay struct {
	scheduler *ecs.Scheduler
	backend   *ecs.Singleton[debugui_ebiten.ImguiBackend]
	input     *ecs.Singleton[debugui.ImguiInputState]
	timer     *debugui.FrameTimer
}

func newOverlay(session *breakout.Session, width, height int) *overlay {
	backend := debugui_ebiten.NewImguiBackend("Breakout (debug)", max(width, overlayWidth), max(height, 640))

	registry := ecs.NewComponentRegistry()
	debugui.RegisterComponents(registry)
	ecs.RegisterComponent[debugui_ebiten.ImguiBackend](registry)
	storage := ecs.NewStorage(registry)

	o := &overlay{
		scheduler: ecs.NewScheduler(storage),
		backend:   ecs.NewSingleton(storage, backend),
		input:     ecs.NewSingleton(storage, debugui.ImguiInputState{}),
		timer:     debugui.NewFrameTimer(),
	}

	sessionPanel := debugui.NewSessionPanel(session.Snapshot, session.Click)
	objects := debugui.NewObjectBrowser(session.Scene(), 20)
	perf := debugui.NewPerformancePanel(120)
	gameStorage := session.Scene().Storage()

	storage.Spawn(debugui.ImguiItem{Render: sessionPanel.Render})
	storage.Spawn(debugui.ImguiItem{Render: objects.Render})
	storage.Spawn(debugui.ImguiItem{Render: func() {
		perf.Render(gameStorage, session.Scheduler(), o.timer.Delta())
	}})

	o.scheduler.Register(&debugui.ImguiSystem{})
	return o
}

func (o *overlay) update() {
	o.backend.Get().BeginFrame()
	o.scheduler.Once(1.0 / 60.0)
	o.backend.Get().EndFrame()
}

func (o *overlay) wantsMouse() bool {
	return o.input.Get().WantCaptureMouse
}

func (o *overlay) draw(screen *ebiten.Image) {
	o.backend.Get().Draw(screen)
}

func (o *overlay) layout(width, height int) {
	o.backend.Get().Layout(width, height)
}
