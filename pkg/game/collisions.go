package game

import (
	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/game/types"
)

// ReflectWalls flips DY when the ball reaches the top or bottom bound while
// moving into it, and puts the ball back on the bound it crossed.
// It reports whether a reflection happened.
func ReflectWalls(b *types.Ball) bool {
	bottom := constants.ScreenHeight - b.Size
	switch {
	case b.Y <= 0 && b.DY < 0:
		b.Y = 0
	case b.Y >= bottom && b.DY > 0:
		b.Y = bottom
	default:
		return false
	}
	b.DY = -b.DY
	return true
}

// CollidePaddles resolves a hit against the paddle the ball is moving toward.
func CollidePaddles(b *types.Ball, left, right types.Paddle) bool {
	switch {
	case b.DX < 0 && b.Overlaps(left):
		b.X = left.X + left.W
	case b.DX > 0 && b.Overlaps(right):
		b.X = right.X - b.Size
	default:
		return false
	}

	paddle := left
	if b.DX > 0 {
		paddle = right
	}
	b.DX = -b.DX
	b.DY = Deflection(*b, paddle)
	return true
}

// Deflection maps where the ball struck the paddle to a vertical speed.
// Integer division truncates toward zero, so a center hit yields zero.
func Deflection(b types.Ball, p types.Paddle) int {
	offset := b.CenterY() - p.CenterY()
	return ClampDeflection(offset / constants.DeflectionDivisor)
}

// ClampDeflection bounds a vertical speed to [-MaxBallSpeedY, MaxBallSpeedY].
func ClampDeflection(dy int) int {
	if dy > constants.MaxBallSpeedY {
		return constants.MaxBallSpeedY
	}
	if dy < -constants.MaxBallSpeedY {
		return -constants.MaxBallSpeedY
	}
	return dy
}

// CheckScore returns the side awarded a point by the ball's position.
// At most one side can score per frame.
func CheckScore(b types.Ball) types.Side {
	if b.X <= 0 {
		return types.SideRight
	}
	if b.X >= constants.ScreenWidth {
		return types.SideLeft
	}
	return types.SideNone
}
