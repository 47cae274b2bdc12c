package scenes

import (
	"github.com/cbodonnell/pong/client/objects"
	"github.com/cbodonnell/pong/pkg/game/types"
)

const restartHint = "Press A or B to return"

type GameOverScene struct {
	*BaseScene
}

var _ Scene = &GameOverScene{}

func NewGameOverScene() *GameOverScene {
	root := objects.NewGroup(
		objects.NewBackground(objects.ColorBackground),
		objects.NewTextOverlayObject(objects.NewTextOverlayObjectOptions{
			TextFunc: winnerText,
			Y:        160,
			Size:     48,
			Color:    objects.ColorHighlight,
		}),
		objects.NewTextOverlayObject(objects.NewTextOverlayObjectOptions{
			TextFunc: func(m *types.MatchState) string { return m.Score.String() },
			Y:        240,
			Size:     32,
		}),
		objects.NewTextOverlayObject(objects.NewTextOverlayObjectOptions{
			Text:  restartHint,
			Y:     340,
			Size:  20,
			Color: objects.ColorDim,
		}),
	)
	return &GameOverScene{
		BaseScene: NewBaseScene(root),
	}
}

func winnerText(m *types.MatchState) string {
	switch m.Winner {
	case types.SideLeft:
		return "You Win!"
	case types.SideRight:
		return "CPU Wins!"
	default:
		return "Game Over"
	}
}
