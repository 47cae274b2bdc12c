package types

import (
	"fmt"

	"github.com/cbodonnell/pong/pkg/game/constants"
)

// Paddle is a vertically moving rectangle. X and Y are its top-left corner.
type Paddle struct {
	X int
	Y int
	W int
	H int
}

func NewPaddle(x int) Paddle {
	return Paddle{
		X: x,
		Y: constants.PaddleStartingY,
		W: constants.PaddleWidth,
		H: constants.PaddleHeight,
	}
}

// CenterY returns the vertical center of the paddle.
func (p Paddle) CenterY() int {
	return p.Y + p.H/2
}

// MoveBy moves the paddle vertically and keeps it inside [0, ScreenHeight-H].
func (p *Paddle) MoveBy(dy int) {
	p.Y = clamp(p.Y+dy, 0, constants.ScreenHeight-p.H)
}

func (p *Paddle) Center() {
	p.Y = constants.ScreenHeight/2 - p.H/2
}

// Ball is a square moving at an integer velocity per frame.
type Ball struct {
	X    int
	Y    int
	DX   int
	DY   int
	Size int
}

func (b Ball) CenterY() int {
	return b.Y + b.Size/2
}

// Step advances the ball by its velocity.
func (b *Ball) Step() {
	b.X += b.DX
	b.Y += b.DY
}

// Overlaps reports whether the ball touches the paddle rectangle. Edges count.
func (b Ball) Overlaps(p Paddle) bool {
	return b.X <= p.X+p.W &&
		b.X+b.Size >= p.X &&
		b.Y <= p.Y+p.H &&
		b.Y+b.Size >= p.Y
}

// Score holds the points of both sides.
type Score struct {
	Left  int
	Right int
}

func (s *Score) Reset() {
	s.Left = 0
	s.Right = 0
}

func (s Score) String() string {
	return fmt.Sprintf("%d-%d", s.Left, s.Right)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
