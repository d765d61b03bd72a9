package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/breakout/internal/breakout"
)

// SessionPanel shows the live game state.
type SessionPanel struct {
	snapshot func() breakout.Snapshot
	serve    func()
}

// NewSessionPanel reads state through snapshot. serve, if set, backs a Serve button.
func NewSessionPanel(snapshot func() breakout.Snapshot, serve func()) *SessionPanel {
	return &SessionPanel{snapshot: snapshot, serve: serve}
}

func stateColor(s breakout.State) imgui.Vec4 {
	switch s {
	case breakout.InPlay:
		return imgui.NewVec4(0.3, 0.9, 0.3, 1)
	case breakout.Won:
		return imgui.NewVec4(0.3, 0.6, 1, 1)
	case breakout.Lost:
		return imgui.NewVec4(1, 0.3, 0.3, 1)
	}
	return imgui.NewVec4(1, 0.85, 0.3, 1)
}

// Render draws the panel.
func (p *SessionPanel) Render() {
	snap := p.snapshot()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 300), imgui.CondOnce)
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Session: %s", snap.Session))
	imgui.Text(fmt.Sprintf("Variant: %s", snap.Variant))
	imgui.PushStyleColorVec4(imgui.ColText, stateColor(snap.State))
	imgui.Text(fmt.Sprintf("State: %s", snap.State))
	imgui.PopStyleColor()
	if p.serve != nil && snap.State == breakout.AwaitingServe {
		imgui.SameLine()
		if imgui.Button("Serve") {
			p.serve()
		}
	}

	imgui.Separator()
	for _, line := range sessionLines(snap) {
		imgui.Text(line)
	}

	imgui.End()
}

// sessionLines formats the numeric part of a snapshot.
func sessionLines(snap breakout.Snapshot) []string {
	killer := ""
	if snap.Killer {
		killer = " (killer)"
	}
	return []string{
		fmt.Sprintf("Tick: %d", snap.Frames),
		fmt.Sprintf("Lives: %d  Score: %d  Bricks: %d", snap.Lives, snap.Score, snap.Bricks),
		fmt.Sprintf("Kicker: %d%s", snap.KickerCount, killer),
		fmt.Sprintf("Batting: %d bounces, paddle %.0f px/s", snap.BatBudget, snap.BatSpeed),
		fmt.Sprintf("Ball: (%.1f, %.1f) v=(%.2f, %.2f)", snap.Ball.X, snap.Ball.Y, snap.Ball.VX, snap.Ball.VY),
		fmt.Sprintf("Paddle: x=%.1f", snap.PaddleBounds.X),
		fmt.Sprintf("Last contact: %s", snap.LastContact),
	}
}
