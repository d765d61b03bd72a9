package breakout

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every error Config.Validate returns.
var ErrInvalidConfig = errors.New("invalid config")

// MaxLives is the most lives a game can start with; the HUD has a marker state for each.
const MaxLives = 3

// Variant selects the rule set.
type Variant string

const (
	// Classic bounces and breaks bricks with no scoring, escalation, batting or HUD.
	Classic Variant = "classic"
	// Extended adds scoring, the kicker, batting, corner kicks and the HUD.
	Extended Variant = "extended"
)

// ParseVariant accepts "classic" or "extended".
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case Classic, Extended:
		return v, nil
	}
	return "", fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, s)
}

// Config holds every tunable of a game. Lengths are in pixels, speeds in pixels per tick unless noted.
type Config struct {
	Variant Variant `toml:"variant"`

	BrickRows    int     `toml:"brick_rows"`
	BrickCols    int     `toml:"brick_cols"`
	BrickWidth   float64 `toml:"brick_width"`
	BrickHeight  float64 `toml:"brick_height"`
	BrickSpacing float64 `toml:"brick_spacing"`
	BrickOffset  float64 `toml:"brick_offset"`

	BallRadius   float64 `toml:"ball_radius"`
	PaddleWidth  float64 `toml:"paddle_width"`
	PaddleHeight float64 `toml:"paddle_height"`
	PaddleOffset float64 `toml:"paddle_offset"`

	// WindowWidth and WindowHeight override the size derived from the brick grid when non-zero.
	WindowWidth  float64 `toml:"window_width"`
	WindowHeight float64 `toml:"window_height"`

	InitialYSpeed float64 `toml:"initial_y_speed"`
	MaxXSpeed     float64 `toml:"max_x_speed"`
	MinXSpeed     float64 `toml:"min_x_speed"`
	ServeDeadzone float64 `toml:"serve_deadzone"`

	Lives    int `toml:"lives"`
	TickRate int `toml:"tick_rate"`

	// BatSpeedThreshold is the paddle speed, in pixels per second, above which a paddle hit bats the ball.
	BatSpeedThreshold float64 `toml:"bat_speed_threshold"`
	BattingBounces    int     `toml:"batting_bounces"`

	// Seed feeds the serve RNG. Zero picks a time-based seed.
	Seed uint64 `toml:"seed"`
}

// DefaultConfig returns the standard 10x10 extended game.
func DefaultConfig() Config {
	return Config{
		Variant:           Extended,
		BrickRows:         10,
		BrickCols:         10,
		BrickWidth:        40,
		BrickHeight:       15,
		BrickSpacing:      5,
		BrickOffset:       50,
		BallRadius:        10,
		PaddleWidth:       75,
		PaddleHeight:      15,
		PaddleOffset:      50,
		InitialYSpeed:     5.0,
		MaxXSpeed:         3.5,
		MinXSpeed:         1,
		ServeDeadzone:     1,
		Lives:             3,
		TickRate:          120,
		BatSpeedThreshold: 2000,
		BattingBounces:    10,
	}
}

// Width is the window width: the override, or the brick grid's width.
func (c Config) Width() float64 {
	if c.WindowWidth > 0 {
		return c.WindowWidth
	}
	return float64(c.BrickCols)*(c.BrickWidth+c.BrickSpacing) - c.BrickSpacing
}

// Height is the window height: the override, or three brick grids below the offset.
func (c Config) Height() float64 {
	if c.WindowHeight > 0 {
		return c.WindowHeight
	}
	return c.BrickOffset + 3*(float64(c.BrickRows)*(c.BrickHeight+c.BrickSpacing)-c.BrickSpacing)
}

// TickInterval is the pause between ticks.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Bricks is the number of bricks laid out at the start of a game.
func (c Config) Bricks() int {
	return c.BrickRows * c.BrickCols
}

// Validate reports the first bad field.
func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
	}

	if _, err := ParseVariant(string(c.Variant)); err != nil {
		return err
	}
	switch {
	case c.BrickRows <= 0 || c.BrickCols <= 0:
		return invalid("brick grid %dx%d must be positive", c.BrickRows, c.BrickCols)
	case c.BrickWidth <= 0 || c.BrickHeight <= 0:
		return invalid("brick size %gx%g must be positive", c.BrickWidth, c.BrickHeight)
	case c.BrickSpacing < 0 || c.BrickOffset < 0:
		return invalid("brick spacing and offset must not be negative")
	case c.BallRadius <= 0:
		return invalid("ball_radius %g must be positive", c.BallRadius)
	case c.PaddleWidth <= 0 || c.PaddleHeight <= 0:
		return invalid("paddle size %gx%g must be positive", c.PaddleWidth, c.PaddleHeight)
	case c.WindowWidth < 0 || c.WindowHeight < 0:
		return invalid("window size must not be negative")
	case c.Width() < c.PaddleWidth || c.Width() < 2*c.BallRadius:
		return invalid("window width %g is narrower than the paddle or ball", c.Width())
	case c.PaddleOffset < c.PaddleHeight || c.PaddleOffset > c.Height():
		return invalid("paddle_offset %g must lie between paddle height and window height", c.PaddleOffset)
	case c.InitialYSpeed <= 0:
		return invalid("initial_y_speed %g must be positive", c.InitialYSpeed)
	case c.MaxXSpeed <= 0:
		return invalid("max_x_speed %g must be positive", c.MaxXSpeed)
	case c.MinXSpeed < 0 || c.MinXSpeed > c.MaxXSpeed:
		return invalid("min_x_speed %g must lie in [0, %g]", c.MinXSpeed, c.MaxXSpeed)
	case c.ServeDeadzone < 0 || c.ServeDeadzone >= c.MaxXSpeed:
		return invalid("serve_deadzone %g must lie in [0, %g)", c.ServeDeadzone, c.MaxXSpeed)
	case c.Lives < 1 || c.Lives > MaxLives:
		return invalid("lives %d must lie in [1, %d]", c.Lives, MaxLives)
	case c.TickRate <= 0:
		return invalid("tick_rate %d must be positive", c.TickRate)
	case c.BatSpeedThreshold <= 0:
		return invalid("bat_speed_threshold %g must be positive", c.BatSpeedThreshold)
	case c.BattingBounces <= 0:
		return invalid("batting_bounces %d must be positive", c.BattingBounces)
	}
	return nil
}
