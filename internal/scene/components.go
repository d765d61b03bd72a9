package scene

import (
	"image/color"

	"github.com/plus3/breakout/internal/ecs"
)

// Kind is the drawable shape of an object.
type Kind uint8

const (
	KindRect Kind = iota
	KindOval
	KindLabel
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindOval:
		return "oval"
	case KindLabel:
		return "label"
	}
	return "unknown"
}

// Tag says what an object is to the game. Only paddles and bricks are collidable.
type Tag uint8

const (
	TagDecoration Tag = iota
	TagPaddle
	TagBrick
	TagBall
)

func (t Tag) String() string {
	switch t {
	case TagDecoration:
		return "decoration"
	case TagPaddle:
		return "paddle"
	case TagBrick:
		return "brick"
	case TagBall:
		return "ball"
	}
	return "unknown"
}

// Collidable reports whether objects with this tag are returned by ObjectAt.
func (t Tag) Collidable() bool {
	return t == TagPaddle || t == TagBrick
}

// Color is a named fill colour.
type Color uint8

const (
	Black Color = iota
	White
	Red
	Orange
	Yellow
	Green
	Blue
	Gray
)

var palette = [...]color.RGBA{
	Black:  {0x00, 0x00, 0x00, 0xff},
	White:  {0xff, 0xff, 0xff, 0xff},
	Red:    {0xe5, 0x39, 0x35, 0xff},
	Orange: {0xfb, 0x8c, 0x00, 0xff},
	Yellow: {0xfd, 0xd8, 0x35, 0xff},
	Green:  {0x43, 0xa0, 0x47, 0xff},
	Blue:   {0x1e, 0x88, 0xe5, 0xff},
	Gray:   {0x9e, 0x9e, 0x9e, 0xff},
}

var colorNames = [...]string{"black", "white", "red", "orange", "yellow", "green", "blue", "gray"}

// RGBA returns the colour's display value.
func (c Color) RGBA() color.RGBA {
	if int(c) >= len(palette) {
		return palette[Black]
	}
	return palette[c]
}

func (c Color) String() string {
	if int(c) >= len(colorNames) {
		return "unknown"
	}
	return colorNames[c]
}

// Align anchors a label's X coordinate.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Label glyph metrics. Labels are measured as monospace text so the core never depends on a font.
const (
	GlyphWidth  = 6
	GlyphHeight = 16
)

// Bounds is an axis-aligned box with its top-left corner at (X, Y).
type Bounds struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside the box. Left and top edges are inclusive, right and
// bottom edges exclusive.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Shape holds how an object is drawn and its stacking order.
type Shape struct {
	Kind Kind
	Z    uint64
}

// Fill is the object's colour.
type Fill struct {
	Color Color
}

// Tagged holds the object's game role.
type Tagged struct {
	Tag Tag
}

// Text is the content of a label. AnchorX is the X the label was placed at before alignment.
type Text struct {
	Value   string
	Align   Align
	AnchorX float64
}

// RegisterComponents adds the scene's component types to registry.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Bounds](registry)
	ecs.RegisterComponent[Shape](registry)
	ecs.RegisterComponent[Fill](registry)
	ecs.RegisterComponent[Tagged](registry)
	ecs.RegisterComponent[Text](registry)
}
