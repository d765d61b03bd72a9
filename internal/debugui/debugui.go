// Package debugui draws Dear ImGui panels over the game. Panels are ECS entities carrying an ImguiItem;
// ImguiSystem defers their render functions to the end of the frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/breakout/internal/ecs"
)

// ImguiItem holds a render function that is called once per frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState records whether ImGui wants the pointer or keyboard this frame. Frontends check it
// before forwarding clicks to the game.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem refreshes ImguiInputState and queues every ImguiItem for rendering.
type ImguiSystem struct {
	InputState ecs.Singleton[ImguiInputState]
	items      *ecs.View[struct{ *ImguiItem }]
}

func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	if i.items == nil {
		i.items = ecs.NewView[struct{ *ImguiItem }](frame.Storage)
	}

	io := imgui.CurrentIO()
	state := i.InputState.Get()
	state.WantCaptureMouse = io.WantCaptureMouse()
	state.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for item := range i.items.Values() {
		frame.Commands.Defer(item.Render)
	}
}

// RegisterComponents adds the overlay's component types to registry.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
	ecs.RegisterComponent[ImguiInputState](registry)
}
