package scene

import (
	"sort"
	"strings"

	"github.com/plus3/breakout/internal/ecs"
)

// Object is what a point query returns.
type Object struct {
	Id     ecs.EntityId
	Tag    Tag
	Bounds Bounds
}

// Drawable is a flattened object for renderers.
type Drawable struct {
	Id     ecs.EntityId
	Kind   Kind
	Tag    Tag
	Bounds Bounds
	Color  Color
	Text   string
}

type objectView struct {
	Id ecs.EntityId
	*Bounds
	*Shape
	*Fill
	*Tagged
	Text *Text `ecs:"optional"`
}

// Scene is a fixed-size 2D canvas of rectangles, ovals and labels stored as ECS entities. Later objects
// stack above earlier ones.
type Scene struct {
	width, height float64
	storage       *ecs.Storage
	objects       *ecs.View[objectView]
	grid          *grid
	seq           uint64
}

// New creates a scene in storage. The storage's registry must include RegisterComponents.
func New(storage *ecs.Storage, width, height float64) *Scene {
	return &Scene{
		width:   width,
		height:  height,
		storage: storage,
		objects: ecs.NewView[objectView](storage),
		grid:    newGrid(),
	}
}

// Width of the canvas.
func (s *Scene) Width() float64 { return s.width }

// Height of the canvas.
func (s *Scene) Height() float64 { return s.height }

// Storage returns the ECS storage holding the scene's entities.
func (s *Scene) Storage() *ecs.Storage { return s.storage }

func (s *Scene) add(kind Kind, b Bounds, tag Tag, fill Color, extra ...any) ecs.EntityId {
	s.seq++
	components := append([]any{b, Shape{Kind: kind, Z: s.seq}, Fill{Color: fill}, Tagged{Tag: tag}}, extra...)
	id := s.storage.Spawn(components...)
	if tag.Collidable() {
		s.grid.insert(id, b)
	}
	return id
}

// AddRect adds a filled rectangle.
func (s *Scene) AddRect(b Bounds, tag Tag, fill Color) ecs.EntityId {
	return s.add(KindRect, b, tag, fill)
}

// AddOval adds a filled oval inscribed in b.
func (s *Scene) AddOval(b Bounds, tag Tag, fill Color) ecs.EntityId {
	return s.add(KindOval, b, tag, fill)
}

// AddLabel adds a decoration label whose top edge is at y. The label is measured with GlyphWidth and
// GlyphHeight and placed according to align relative to x.
func (s *Scene) AddLabel(text string, x, y float64, align Align, fill Color) ecs.EntityId {
	b := labelBounds(text, x, y, align)
	return s.add(KindLabel, b, TagDecoration, fill, Text{Value: text, Align: align, AnchorX: x})
}

func labelBounds(text string, x, y float64, align Align) Bounds {
	w := MeasureText(text)
	switch align {
	case AlignCenter:
		x -= w / 2
	case AlignRight:
		x -= w
	}
	return Bounds{X: x, Y: y, W: w, H: float64(GlyphHeight * (strings.Count(text, "\n") + 1))}
}

// MeasureText returns the width of text in scene units.
func MeasureText(text string) float64 {
	longest, n := 0, 0
	for _, r := range text {
		if r == '\n' {
			n = 0
			continue
		}
		n++
		longest = max(longest, n)
	}
	return float64(longest * GlyphWidth)
}

// Remove deletes the object. It reports false if it was already gone.
func (s *Scene) Remove(id ecs.EntityId) bool {
	item := s.objects.Get(id)
	if item == nil {
		return false
	}
	if item.Tag.Collidable() {
		s.grid.remove(id, *item.Bounds)
	}
	return s.storage.Delete(id)
}

// Contains reports whether the object is still in the scene.
func (s *Scene) Contains(id ecs.EntityId) bool {
	return s.objects.Get(id) != nil
}

// Move shifts the object by (dx, dy).
func (s *Scene) Move(id ecs.EntityId, dx, dy float64) {
	item := s.objects.Get(id)
	if item == nil {
		return
	}
	s.place(item, item.Bounds.X+dx, item.Bounds.Y+dy)
}

// MoveTo places the object's top-left corner at (x, y).
func (s *Scene) MoveTo(id ecs.EntityId, x, y float64) {
	item := s.objects.Get(id)
	if item == nil {
		return
	}
	s.place(item, x, y)
}

func (s *Scene) place(item *objectView, x, y float64) {
	collidable := item.Tag.Collidable()
	if collidable {
		s.grid.remove(item.Id, *item.Bounds)
	}
	item.Bounds.X, item.Bounds.Y = x, y
	if item.Text != nil {
		item.Text.AnchorX = anchorFor(*item.Bounds, item.Text.Align)
	}
	if collidable {
		s.grid.insert(item.Id, *item.Bounds)
	}
}

func anchorFor(b Bounds, align Align) float64 {
	switch align {
	case AlignCenter:
		return b.X + b.W/2
	case AlignRight:
		return b.X + b.W
	}
	return b.X
}

// SetFill changes the object's colour.
func (s *Scene) SetFill(id ecs.EntityId, c Color) {
	if item := s.objects.Get(id); item != nil {
		item.Fill.Color = c
	}
}

// SetText replaces a label's text, keeping its alignment anchor.
func (s *Scene) SetText(id ecs.EntityId, text string) {
	item := s.objects.Get(id)
	if item == nil || item.Text == nil {
		return
	}
	item.Text.Value = text
	*item.Bounds = labelBounds(text, item.Text.AnchorX, item.Bounds.Y, item.Text.Align)
}

// Get returns the object's bounds, tag and colour.
func (s *Scene) Get(id ecs.EntityId) (Drawable, bool) {
	item := s.objects.Get(id)
	if item == nil {
		return Drawable{}, false
	}
	return drawable(item), true
}

// ObjectAt returns the topmost collidable object containing (x, y).
func (s *Scene) ObjectAt(x, y float64) (Object, bool) {
	var (
		found Object
		top   uint64
		ok    bool
	)
	for _, id := range s.grid.at(x, y) {
		item := s.objects.Get(id)
		if item == nil || !item.Bounds.Contains(x, y) {
			continue
		}
		if !ok || item.Shape.Z > top {
			found = Object{Id: id, Tag: item.Tag, Bounds: *item.Bounds}
			top = item.Shape.Z
			ok = true
		}
	}
	return found, ok
}

// Count returns the number of objects carrying tag.
func (s *Scene) Count(tag Tag) int {
	n := 0
	for item := range s.objects.Values() {
		if item.Tag == tag {
			n++
		}
	}
	return n
}

// Shapes returns every object, bottom first.
func (s *Scene) Shapes() []Drawable {
	var out []Drawable
	var order []uint64
	for _, item := range s.objects.Iter() {
		out = append(out, drawable(&item))
		order = append(order, item.Shape.Z)
	}
	sort.Sort(&byZ{items: out, z: order})
	return out
}

type byZ struct {
	items []Drawable
	z     []uint64
}

func (b *byZ) Len() int           { return len(b.items) }
func (b *byZ) Less(i, j int) bool { return b.z[i] < b.z[j] }
func (b *byZ) Swap(i, j int) {
	b.items[i], b.items[j] = b.items[j], b.items[i]
	b.z[i], b.z[j] = b.z[j], b.z[i]
}

func drawable(item *objectView) Drawable {
	d := Drawable{
		Id:     item.Id,
		Kind:   item.Shape.Kind,
		Tag:    item.Tag,
		Bounds: *item.Bounds,
		Color:  item.Fill.Color,
	}
	if item.Text != nil {
		d.Text = item.Text.Value
	}
	return d
}
