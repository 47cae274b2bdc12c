package objects

import (
	"image/color"

	"github.com/cbodonnell/pong/client/render"
	"github.com/cbodonnell/pong/pkg/game/types"
)

// BallObject draws a ball with the ball texture stretched to the ball size.
type BallObject struct {
	texture render.Texture
	ball    func(m *types.MatchState) types.Ball
	tint    color.Color
}

// NewBallObject draws the game ball.
func NewBallObject(texture render.Texture) *BallObject {
	return &BallObject{
		texture: texture,
		ball:    func(m *types.MatchState) types.Ball { return m.Ball },
		tint:    ColorForeground,
	}
}

// NewTitleBallObject draws the decorative title ball.
func NewTitleBallObject(texture render.Texture) *BallObject {
	return &BallObject{
		texture: texture,
		ball:    func(m *types.MatchState) types.Ball { return m.TitleBall },
		tint:    ColorForeground,
	}
}

func (o *BallObject) Draw(s render.Surface, m *types.MatchState) {
	b := o.ball(m)
	if o.texture == nil {
		s.FillRect(b.X, b.Y, b.Size, b.Size, o.tint)
		return
	}
	sx, sy := render.ScaleToSize(o.texture, b.Size, b.Size)
	s.DrawImage(o.texture, b.X, b.Y, sx, sy, o.tint)
}
