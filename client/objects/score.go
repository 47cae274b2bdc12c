package objects

import (
	"strconv"

	"github.com/cbodonnell/pong/client/render"
	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/game/types"
)

const scoreFontSize = 32

// ScoreObject draws each side's score centered over its half of the court.
type ScoreObject struct {
	y int
}

func NewScoreObject(y int) *ScoreObject {
	return &ScoreObject{y: y}
}

func (o *ScoreObject) Draw(s render.Surface, m *types.MatchState) {
	left := strconv.Itoa(m.Score.Left)
	right := strconv.Itoa(m.Score.Right)
	quarter := constants.ScreenWidth / 4
	s.DrawText(quarter-s.MeasureText(left, scoreFontSize)/2, o.y, left, scoreFontSize, ColorForeground)
	s.DrawText(3*quarter-s.MeasureText(right, scoreFontSize)/2, o.y, right, scoreFontSize, ColorForeground)
}
