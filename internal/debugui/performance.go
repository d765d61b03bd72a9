package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/breakout/internal/ecs"
)

// PerformancePanel plots frame times and lists world and scheduler statistics.
type PerformancePanel struct {
	history []float32
	index   int
	filled  int
}

// NewPerformancePanel keeps the last historyFrames frame times.
func NewPerformancePanel(historyFrames int) *PerformancePanel {
	return &PerformancePanel{history: make([]float32, max(historyFrames, 1))}
}

func (p *PerformancePanel) record(deltaTime float32) {
	p.history[p.index] = deltaTime * 1000
	p.index = (p.index + 1) % len(p.history)
	p.filled = min(p.filled+1, len(p.history))
}

// average returns the mean recorded frame time in milliseconds.
func (p *PerformancePanel) average() float32 {
	if p.filled == 0 {
		return 0
	}
	var sum float32
	for _, ft := range p.history[:p.filled] {
		sum += ft
	}
	return sum / float32(p.filled)
}

// Render draws the panel for the world in storage, ticked by scheduler.
func (p *PerformancePanel) Render(storage *ecs.Storage, scheduler *ecs.Scheduler, deltaTime float32) {
	p.record(deltaTime)

	imgui.SetNextWindowPosV(imgui.NewVec2(460, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 320), imgui.CondOnce)
	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := storage.CollectStats()
	imgui.Text(fmt.Sprintf("Entities: %d", stats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))

	avg := p.average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000/avg))
	}
	imgui.Separator()
	imgui.Text("Frame Time (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &p.history[0], int32(len(p.history)))

	sched := scheduler.Stats()
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Ticks: %d", sched.Frames))
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()
		for _, s := range sched.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(s.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", s.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(formatDuration(s.AvgDuration))
			imgui.TableNextColumn()
			imgui.Text(formatDuration(s.MaxDuration))
		}
		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Archetypes") {
		if imgui.BeginTableV("ArchetypeTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("ID")
			imgui.TableSetupColumn("Components")
			imgui.TableSetupColumn("Entities")
			imgui.TableHeadersRow()
			for _, arch := range stats.ArchetypeBreakdown {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("0x%X", arch.ID))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", len(arch.ComponentTypes)))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", arch.EntityCount))
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singletons") {
		for _, name := range stats.SingletonTypes {
			imgui.BulletText(name)
		}
		imgui.TreePop()
	}

	imgui.End()
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Millisecond:
		return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fµs", float64(d)/float64(time.Microsecond))
	}
	return fmt.Sprintf("%dns", d.Nanoseconds())
}

// FrameTimer measures wall time between frames.
type FrameTimer struct {
	last time.Time
	now  func() time.Time
}

// NewFrameTimer starts timing from now.
func NewFrameTimer() *FrameTimer {
	return &FrameTimer{last: time.Now(), now: time.Now}
}

// Delta returns the seconds since the previous call.
func (ft *FrameTimer) Delta() float32 {
	now := ft.now()
	delta := float32(now.Sub(ft.last).Seconds())
	ft.last = now
	return delta
}
