package objects

import (
	"image/color"

	"github.com/cbodonnell/pong/client/render"
	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/game/types"
)

var (
	ColorBackground = color.Black
	ColorForeground = color.White
	ColorHighlight  = color.RGBA{R: 255, G: 220, B: 0, A: 255}
	ColorDim        = color.RGBA{R: 120, G: 120, B: 120, A: 255}
)

// GameObject is anything drawn from the match state.
type GameObject interface {
	Draw(s render.Surface, m *types.MatchState)
}

// Group draws its children in order.
type Group struct {
	children []GameObject
}

var _ GameObject = &Group{}

func NewGroup(children ...GameObject) *Group {
	return &Group{
		children: children,
	}
}

func (g *Group) AddChild(child GameObject) {
	g.children = append(g.children, child)
}

func (g *Group) GetChildren() []GameObject {
	return g.children
}

func (g *Group) Draw(s render.Surface, m *types.MatchState) {
	for _, child := range g.children {
		child.Draw(s, m)
	}
}

// Background clears the surface.
type Background struct {
	clr color.Color
}

func NewBackground(clr color.Color) *Background {
	return &Background{clr: clr}
}

func (o *Background) Draw(s render.Surface, _ *types.MatchState) {
	s.Clear(o.clr)
}

// centerX returns the x-coordinate that horizontally centers str on screen.
func centerX(s render.Surface, str string, size float64) int {
	return (constants.ScreenWidth - s.MeasureText(str, size)) / 2
}
