package scenes

import (
	"github.com/cbodonnell/pong/client/objects"
	"github.com/cbodonnell/pong/client/render"
	"github.com/cbodonnell/pong/pkg/game/types"
)

// Scene renders one game state.
type Scene interface {
	objects.GameObject

	// Scene specific methods
	GetRoot() objects.GameObject
}

type BaseScene struct {
	Root objects.GameObject
}

func NewBaseScene(root objects.GameObject) *BaseScene {
	return &BaseScene{
		Root: root,
	}
}

func (s *BaseScene) GetRoot() objects.GameObject {
	return s.Root
}

func (s *BaseScene) Draw(surface render.Surface, m *types.MatchState) {
	s.Root.Draw(surface, m)
}

// Set holds the scene drawn for each game state.
type Set struct {
	Title    Scene
	Playing  Scene
	GameOver Scene
}

type NewSetOptions struct {
	// Ball is the ball texture. May be nil.
	Ball render.Texture
	// Logo is the title logo. May be nil.
	Logo render.Texture
}

func NewSet(opts NewSetOptions) *Set {
	return &Set{
		Title:    NewTitleScene(TitleSceneOptions{Ball: opts.Ball, Logo: opts.Logo}),
		Playing:  NewGameScene(GameSceneOptions{Ball: opts.Ball}),
		GameOver: NewGameOverScene(),
	}
}

// For returns the scene for state. Unknown states fall back to the title.
func (s *Set) For(state types.GameState) Scene {
	switch state {
	case types.GameStatePlaying:
		return s.Playing
	case types.GameStateGameOver:
		return s.GameOver
	default:
		return s.Title
	}
}
