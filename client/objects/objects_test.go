package objects

import (
	"testing"

	"github.com/cbodonnell/pong/client/render/rendertest"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaddleObject_Draw(t *testing.T) {
	m := types.NewMatchState()
	m.Left.Y = 12
	m.Right.Y = 400

	r := &rendertest.Recorder{}
	NewGroup(NewPaddleObject(types.SideLeft), NewPaddleObject(types.SideRight)).Draw(r, m)

	rects := r.ByOp(rendertest.OpFillRect)
	require.Len(t, rects, 2)
	assert.Equal(t, []int{20, 12, 10, 60}, []int{rects[0].X, rects[0].Y, rects[0].W, rects[0].H})
	assert.Equal(t, []int{610, 400, 10, 60}, []int{rects[1].X, rects[1].Y, rects[1].W, rects[1].H})
}

func TestBallObject_Draw(t *testing.T) {
	m := types.NewMatchState()
	m.Ball = types.Ball{X: 50, Y: 60, Size: 16}
	tex := rendertest.Texture{W: 64, H: 64}

	r := &rendertest.Recorder{}
	NewBallObject(tex).Draw(r, m)
	NewTitleBallObject(tex).Draw(r, m)

	images := r.ByOp(rendertest.OpDrawImage)
	require.Len(t, images, 2)
	assert.Equal(t, 50, images[0].X)
	assert.Equal(t, 60, images[0].Y)
	assert.Equal(t, 0.25, images[0].SX)
	assert.Equal(t, 0.25, images[0].SY)
	assert.Equal(t, m.TitleBall.X, images[1].X)
	assert.Equal(t, m.TitleBall.Y, images[1].Y)
}

func TestBallObject_DrawWithoutTexture(t *testing.T) {
	m := types.NewMatchState()
	r := &rendertest.Recorder{}
	NewBallObject(nil).Draw(r, m)
	assert.Len(t, r.ByOp(rendertest.OpFillRect), 1)
}

func TestLogoObject_Draw(t *testing.T) {
	m := types.NewMatchState()

	r := &rendertest.Recorder{}
	NewLogoObject(nil, 40).Draw(r, m)
	assert.Equal(t, []string{"PONG"}, r.Texts())
	assert.Empty(t, r.ByOp(rendertest.OpDrawImage))

	r = &rendertest.Recorder{}
	NewLogoObject(rendertest.Texture{W: 200, H: 80}, 40).Draw(r, m)
	images := r.ByOp(rendertest.OpDrawImage)
	require.Len(t, images, 1)
	assert.Equal(t, 220, images[0].X)
	assert.Equal(t, 40, images[0].Y)
	assert.Empty(t, r.Texts())
}

func TestMenuObject_Draw(t *testing.T) {
	m := types.NewMatchState()
	m.Selected = types.MenuOptionOptions

	r := &rendertest.Recorder{}
	NewMenuObject(240).Draw(r, m)

	texts := r.ByOp(rendertest.OpDrawText)
	require.Len(t, texts, 3)
	assert.Equal(t, "Start Game", texts[0].Text)
	assert.Equal(t, "> Options <", texts[1].Text)
	assert.Equal(t, ColorHighlight, texts[1].Color)
	assert.Equal(t, "Exit", texts[2].Text)
	assert.Equal(t, 240, texts[0].Y)
	assert.Equal(t, 320, texts[2].Y)
	// 4 runes at 10px each, centered on a 640px screen
	assert.Equal(t, 300, texts[2].X)
}

func TestScoreObject_Draw(t *testing.T) {
	m := types.NewMatchState()
	m.Score = types.Score{Left: 3, Right: 12}

	r := &rendertest.Recorder{}
	NewScoreObject(20).Draw(r, m)

	texts := r.ByOp(rendertest.OpDrawText)
	require.Len(t, texts, 2)
	assert.Equal(t, "3", texts[0].Text)
	assert.Equal(t, 155, texts[0].X)
	assert.Equal(t, "12", texts[1].Text)
	assert.Equal(t, 470, texts[1].X)
}

func TestTextOverlayObject_Draw(t *testing.T) {
	m := types.NewMatchState()
	m.Score = types.Score{Left: 5, Right: 1}

	r := &rendertest.Recorder{}
	NewTextOverlayObject(NewTextOverlayObjectOptions{
		TextFunc: func(m *types.MatchState) string { return m.Score.String() },
		Y:        100,
		Size:     24,
	}).Draw(r, m)
	NewTextOverlayObject(NewTextOverlayObjectOptions{Y: 10}).Draw(r, m)

	texts := r.ByOp(rendertest.OpDrawText)
	require.Len(t, texts, 1, "empty text is skipped")
	assert.Equal(t, "5-1", texts[0].Text)
	assert.Equal(t, 305, texts[0].X)
	assert.Equal(t, ColorForeground, texts[0].Color)
}

func TestCenterLineObject_Draw(t *testing.T) {
	r := &rendertest.Recorder{}
	NewCenterLineObject().Draw(r, types.NewMatchState())
	rects := r.ByOp(rendertest.OpFillRect)
	assert.Len(t, rects, 24)
	for _, rect := range rects {
		assert.Equal(t, 319, rect.X)
	}
}
