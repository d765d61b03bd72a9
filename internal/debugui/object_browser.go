package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/breakout/internal/scene"
)

// ObjectBrowser lists scene objects, filtered by tag, kind, colour or label text.
type ObjectBrowser struct {
	scene       *scene.Scene
	filterText  string
	perPage     int
	currentPage int
}

// NewObjectBrowser shows perPage objects at a time.
func NewObjectBrowser(s *scene.Scene, perPage int) *ObjectBrowser {
	return &ObjectBrowser{scene: s, perPage: max(perPage, 1)}
}

// filterObjects keeps the objects whose tag, kind, colour or text contains filter, case-insensitively.
func filterObjects(objects []scene.Drawable, filter string) []scene.Drawable {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return objects
	}
	var out []scene.Drawable
	for _, d := range objects {
		haystack := strings.ToLower(strings.Join([]string{d.Tag.String(), d.Kind.String(), d.Color.String(), d.Text}, " "))
		if strings.Contains(haystack, filter) {
			out = append(out, d)
		}
	}
	return out
}

func pageCount(n, perPage int) int {
	return max((n+perPage-1)/perPage, 1)
}

// Render draws the browser.
func (b *ObjectBrowser) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(440, 300), imgui.CondOnce)
	if !imgui.BeginV("Scene Objects", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##filter", "brick, label, red...", &b.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear") {
		b.filterText = ""
	}

	objects := filterObjects(b.scene.Shapes(), b.filterText)
	pages := pageCount(len(objects), b.perPage)
	b.currentPage = min(b.currentPage, pages-1)

	imgui.Text(fmt.Sprintf("%d objects", len(objects)))
	if pages > 1 {
		imgui.SameLine()
		if imgui.Button("Prev") && b.currentPage > 0 {
			b.currentPage--
		}
		imgui.SameLine()
		imgui.Text(fmt.Sprintf("%d/%d", b.currentPage+1, pages))
		imgui.SameLine()
		if imgui.Button("Next") && b.currentPage < pages-1 {
			b.currentPage++
		}
	}

	start := b.currentPage * b.perPage
	end := min(start+b.perPage, len(objects))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ObjectTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Tag")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Colour")
		imgui.TableSetupColumn("Bounds")
		imgui.TableHeadersRow()
		for _, d := range objects[start:end] {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%X", uint64(d.Id)))
			imgui.TableNextColumn()
			imgui.Text(d.Tag.String())
			imgui.TableNextColumn()
			imgui.Text(d.Kind.String())
			imgui.TableNextColumn()
			imgui.Text(d.Color.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.0f,%.0f %.0fx%.0f", d.Bounds.X, d.Bounds.Y, d.Bounds.W, d.Bounds.H))
		}
		imgui.EndTable()
	}

	imgui.End()
}
