package scenes

import (
	"github.com/cbodonnell/pong/client/objects"
	"github.com/cbodonnell/pong/client/render"
	"github.com/cbodonnell/pong/pkg/game/types"
)

const scoreY = 20

type GameScene struct {
	*BaseScene
}

type GameSceneOptions struct {
	// Ball is the ball texture. The ball is drawn as a square when nil.
	Ball render.Texture
}

var _ Scene = &GameScene{}

func NewGameScene(opts GameSceneOptions) *GameScene {
	root := objects.NewGroup(
		objects.NewBackground(objects.ColorBackground),
		objects.NewCenterLineObject(),
		objects.NewScoreObject(scoreY),
		objects.NewPaddleObject(types.SideLeft),
		objects.NewPaddleObject(types.SideRight),
		objects.NewBallObject(opts.Ball),
	)
	return &GameScene{
		BaseScene: NewBaseScene(root),
	}
}
