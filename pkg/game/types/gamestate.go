package types

import "github.com/cbodonnell/pong/pkg/game/constants"

type GameState int

const (
	GameStateTitle GameState = iota
	GameStatePlaying
	GameStateGameOver
)

func (s GameState) String() string {
	switch s {
	case GameStateTitle:
		return "Title"
	case GameStatePlaying:
		return "Playing"
	case GameStateGameOver:
		return "GameOver"
	}
	return "Unknown"
}

// Side identifies one of the two players.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	}
	return "None"
}

// MatchState is everything the loop mutates. It is owned by a single
// goroutine and handed to the renderer read-only between updates.
type MatchState struct {
	// MatchID identifies the current match in logs. Empty before the first match.
	MatchID string
	// State is the active state of the state machine.
	State GameState
	// Selected is the highlighted title menu entry.
	Selected MenuOption
	// Left is the human-controlled paddle.
	Left Paddle
	// Right is the AI-controlled paddle.
	Right Paddle
	// Ball is the game ball.
	Ball Ball
	// Score is the current score. Preserved on GameOver until the next match starts.
	Score Score
	// Winner is set when the match ends.
	Winner Side
	// TitleBall is the decorative ball animated on the title screen.
	TitleBall Ball
}

// NewMatchState returns the initial state: title screen, StartGame selected,
// centered paddles, and the ball parked at the center without velocity.
func NewMatchState() *MatchState {
	return &MatchState{
		State:    GameStateTitle,
		Selected: MenuOptionStartGame,
		Left:     NewPaddle(constants.LeftPaddleX),
		Right:    NewPaddle(constants.RightPaddleX),
		Ball: Ball{
			X:    constants.BallStartingX,
			Y:    constants.BallStartingY,
			Size: constants.BallSize,
		},
		TitleBall: Ball{
			X:    constants.TitleBallStartingX,
			Y:    constants.TitleBallStartingY,
			DX:   constants.TitleBallSpeed,
			DY:   constants.TitleBallSpeed,
			Size: constants.BallSize,
		},
	}
}
