package breakout

import "github.com/plus3/breakout/internal/scene"

// Brick colours, two rows each, repeating every ten rows.
var brickColors = [...]scene.Color{scene.Red, scene.Orange, scene.Yellow, scene.Green, scene.Blue}

// BrickColor returns the colour of a brick row.
func BrickColor(row int) scene.Color {
	return brickColors[(row%10)/2]
}

// layBricks adds the brick grid to s and returns how many bricks it placed.
func layBricks(s *scene.Scene, cfg Config) int {
	n := 0
	y := cfg.BrickOffset
	for row := 0; row < cfg.BrickRows; row++ {
		x := 0.0
		for col := 0; col < cfg.BrickCols; col++ {
			s.AddRect(scene.Bounds{X: x, Y: y, W: cfg.BrickWidth, H: cfg.BrickHeight}, scene.TagBrick, BrickColor(row))
			x += cfg.BrickWidth + cfg.BrickSpacing
			n++
		}
		y += cfg.BrickHeight + cfg.BrickSpacing
	}
	return n
}
