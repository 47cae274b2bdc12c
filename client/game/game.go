package game

import (
	"fmt"

	"github.com/cbodonnell/pong/client/input"
	"github.com/cbodonnell/pong/client/render"
	"github.com/cbodonnell/pong/client/scenes"
	"github.com/cbodonnell/pong/pkg/game"
	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// sampler produces the controller input for each tick.
	sampler input.Sampler
	// gameManager advances the match state.
	gameManager *game.GameManager
	// match is the state owned by the loop.
	match *types.MatchState
	// scenes holds the scene drawn for each game state.
	scenes *scenes.Set
	// fonts provides font faces for text. May be nil.
	fonts render.FaceSource
	// scene is the state whose scene was last selected.
	scene types.GameState
}

type NewGameOptions struct {
	Debug       bool
	Sampler     input.Sampler
	GameManager *game.GameManager
	Scenes      *scenes.Set
	Fonts       render.FaceSource
}

func NewGame(opts NewGameOptions) (*Game, error) {
	if opts.Sampler == nil {
		return nil, fmt.Errorf("input sampler is required")
	}
	if opts.Scenes == nil {
		return nil, fmt.Errorf("scene set is required")
	}
	gameManager := opts.GameManager
	if gameManager == nil {
		gameManager = game.NewGameManager(game.NewGameManagerOptions{})
	}

	match := types.NewMatchState()
	return &Game{
		debug:       opts.Debug,
		sampler:     opts.Sampler,
		gameManager: gameManager,
		match:       match,
		scenes:      opts.Scenes,
		fonts:       opts.Fonts,
		scene:       match.State,
	}, nil
}

// Match returns the state owned by the loop.
func (g *Game) Match() *types.MatchState {
	return g.match
}

func (g *Game) Update() error {
	in := g.sampler.Sample()
	if !g.gameManager.Step(g.match, in) {
		log.Info("Quit requested from %s", g.match.State)
		return ebiten.Termination
	}

	if g.match.State != g.scene {
		log.Debug("Switching scene from %s to %s", g.scene, g.match.State)
		g.scene = g.match.State
	}

	return nil
}

// DrawTo draws the scene for the current state onto s.
func (g *Game) DrawTo(s render.Surface) {
	g.scenes.For(g.match.State).Draw(s, g.match)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.DrawTo(render.NewEbitenSurface(screen, g.fonts))
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   State: %s", g.match.State))

	if g.match.State == types.GameStateTitle {
		return
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Score: %s", g.match.Score))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Match: %s", g.match.MatchID))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return constants.ScreenWidth, constants.ScreenHeight
}
