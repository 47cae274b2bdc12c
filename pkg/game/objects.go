package game

import (
	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/game/types"
)

// MovePaddle moves the human paddle while Up or Down is held.
func MovePaddle(p *types.Paddle, held types.Buttons) {
	if held.Has(types.ButtonUp) {
		p.MoveBy(-constants.PaddleSpeed)
	}
	if held.Has(types.ButtonDown) {
		p.MoveBy(constants.PaddleSpeed)
	}
}

// TrackBall steps the AI paddle toward the ball's vertical center.
// There is no prediction, so a fast ball outruns it.
func TrackBall(p *types.Paddle, b types.Ball) {
	ballY, paddleY := b.CenterY(), p.CenterY()
	switch {
	case ballY < paddleY:
		p.MoveBy(-constants.PaddleSpeed)
	case ballY > paddleY:
		p.MoveBy(constants.PaddleSpeed)
	}
}

// AnimateTitleBall bounces the decorative title ball around the screen.
func AnimateTitleBall(b *types.Ball) {
	b.Step()
	if b.X <= 0 || b.X >= constants.ScreenWidth-b.Size {
		b.DX = -b.DX
	}
	if b.Y <= 0 || b.Y >= constants.ScreenHeight-b.Size {
		b.DY = -b.DY
	}
}
