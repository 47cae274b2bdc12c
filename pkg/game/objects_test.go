package game

import (
	"testing"

	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/stretchr/testify/assert"
)

func TestMovePaddle(t *testing.T) {
	maxY := constants.ScreenHeight - constants.PaddleHeight
	tests := []struct {
		name  string
		y     int
		held  types.Buttons
		wantY int
	}{
		{name: "up", y: 100, held: types.ButtonUp, wantY: 95},
		{name: "down", y: 100, held: types.ButtonDown, wantY: 105},
		{name: "both", y: 100, held: types.ButtonUp | types.ButtonDown, wantY: 100},
		{name: "nothing", y: 100, wantY: 100},
		{name: "clamped at top", y: 3, held: types.ButtonUp, wantY: 0},
		{name: "clamped at bottom", y: maxY - 2, held: types.ButtonDown, wantY: maxY},
		{name: "A does not move", y: 100, held: types.ButtonA, wantY: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := types.NewPaddle(constants.LeftPaddleX)
			p.Y = tt.y
			MovePaddle(&p, tt.held)
			assert.Equal(t, tt.wantY, p.Y)
		})
	}
}

func TestTrackBall(t *testing.T) {
	maxY := constants.ScreenHeight - constants.PaddleHeight
	tests := []struct {
		name        string
		paddleY     int
		ballCenterY int
		wantY       int
	}{
		{name: "ball above", paddleY: 210, ballCenterY: 100, wantY: 205},
		{name: "ball below", paddleY: 210, ballCenterY: 300, wantY: 215},
		{name: "aligned", paddleY: 210, ballCenterY: 240, wantY: 210},
		{name: "clamped at top", paddleY: 2, ballCenterY: 0, wantY: 0},
		{name: "clamped at bottom", paddleY: maxY, ballCenterY: constants.ScreenHeight, wantY: maxY},
		{name: "one pixel off still moves a full step", paddleY: 210, ballCenterY: 241, wantY: 215},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := types.NewPaddle(constants.RightPaddleX)
			p.Y = tt.paddleY
			ball := types.Ball{X: 300, Y: tt.ballCenterY - constants.BallSize/2, Size: constants.BallSize}
			TrackBall(&p, ball)
			assert.Equal(t, tt.wantY, p.Y)
		})
	}
}

func TestAnimateTitleBall(t *testing.T) {
	b := types.Ball{X: constants.ScreenWidth - constants.BallSize - 2, Y: 2, DX: 2, DY: -2, Size: constants.BallSize}
	AnimateTitleBall(&b)
	assert.Equal(t, constants.ScreenWidth-constants.BallSize, b.X)
	assert.Equal(t, 0, b.Y)
	assert.Equal(t, -2, b.DX, "reverses on the right edge")
	assert.Equal(t, 2, b.DY, "reverses on the top edge")

	AnimateTitleBall(&b)
	assert.Equal(t, constants.ScreenWidth-constants.BallSize-2, b.X)
	assert.Equal(t, 2, b.Y)
	assert.Equal(t, -2, b.DX)
	assert.Equal(t, 2, b.DY)
}

func TestAnimateTitleBall_staysOnScreen(t *testing.T) {
	b := types.NewMatchState().TitleBall
	for i := 0; i < 5000; i++ {
		AnimateTitleBall(&b)
		assert.GreaterOrEqual(t, b.X, 0)
		assert.LessOrEqual(t, b.X, constants.ScreenWidth-b.Size)
		assert.GreaterOrEqual(t, b.Y, 0)
		assert.LessOrEqual(t, b.Y, constants.ScreenHeight-b.Size)
	}
}
