package game

import (
	"math/rand"
	"time"

	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/google/uuid"
)

// Rand is the source of serve directions.
type Rand interface {
	Intn(n int) int
}

// Action is a side effect requested by a state transition.
type Action int

const (
	ActionNone Action = iota
	ActionStartMatch
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStartMatch:
		return "StartMatch"
	case ActionQuit:
		return "Quit"
	}
	return "Unknown"
}

// GameManager advances a MatchState one frame at a time.
type GameManager struct {
	rand       Rand
	newMatchID func() string
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	// Rand picks serve directions. Defaults to a time-seeded math/rand source.
	Rand Rand
	// NewMatchID generates match identifiers. Defaults to uuid.NewString.
	NewMatchID func() string
}

func NewGameManager(opts NewGameManagerOptions) *GameManager {
	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	newMatchID := opts.NewMatchID
	if newMatchID == nil {
		newMatchID = uuid.NewString
	}
	return &GameManager{
		rand:       r,
		newMatchID: newMatchID,
	}
}

// IsQuitCombo reports whether Start was just pressed while B is held.
func IsQuitCombo(in types.Input) bool {
	return in.Pressed.Has(types.ButtonStart) && in.Held.Has(types.ButtonB)
}

// Transition computes the input-driven transition out of state. The returned
// action must be applied by the caller; the state itself is not mutated.
// Playing has no input-driven transition: it ends on the winning score.
func Transition(state types.GameState, selected types.MenuOption, in types.Input) (types.GameState, Action) {
	if IsQuitCombo(in) {
		return state, ActionQuit
	}

	switch state {
	case types.GameStateTitle:
		if !in.Pressed.Has(types.ButtonA) {
			break
		}
		switch selected {
		case types.MenuOptionStartGame:
			return types.GameStatePlaying, ActionStartMatch
		case types.MenuOptionExit:
			return state, ActionQuit
		}
	case types.GameStateGameOver:
		if in.Pressed.Has(types.ButtonA) || in.Pressed.Has(types.ButtonB) {
			return types.GameStateTitle, ActionNone
		}
	}

	return state, ActionNone
}

// NavigateMenu applies Up/Down edges to the title selection with wraparound.
func NavigateMenu(selected types.MenuOption, in types.Input) types.MenuOption {
	if in.Pressed.Has(types.ButtonUp) {
		selected = selected.Prev()
	}
	if in.Pressed.Has(types.ButtonDown) {
		selected = selected.Next()
	}
	return selected
}

// Step runs one frame. It returns false once the loop should terminate.
func (gm *GameManager) Step(m *types.MatchState, in types.Input) bool {
	if log.Enabled(log.LogLevelTrace) {
		log.Trace("Frame state=%s pressed=%s held=%s ball=(%d,%d) score=%s", m.State, in.Pressed, in.Held, m.Ball.X, m.Ball.Y, m.Score)
	}

	switch m.State {
	case types.GameStateTitle:
		return gm.updateTitle(m, in)
	case types.GameStatePlaying:
		return gm.updatePlaying(m, in)
	case types.GameStateGameOver:
		return gm.updateGameOver(m, in)
	default:
		log.Error("Unknown game state %d, returning to title", m.State)
		m.State = types.GameStateTitle
	}
	return true
}

func (gm *GameManager) updateTitle(m *types.MatchState, in types.Input) bool {
	if !IsQuitCombo(in) {
		if selected := NavigateMenu(m.Selected, in); selected != m.Selected {
			log.Debug("Menu selection changed from %s to %s", m.Selected, selected)
			m.Selected = selected
		}
	}

	next, action := Transition(m.State, m.Selected, in)
	switch action {
	case ActionQuit:
		log.Info("Exit requested from title")
		return false
	case ActionStartMatch:
		gm.StartMatch(m)
	default:
		if in.Pressed.Has(types.ButtonA) && m.Selected == types.MenuOptionOptions {
			log.Debug("Options menu is not implemented")
		}
	}
	gm.setState(m, next)

	if m.State == types.GameStateTitle {
		AnimateTitleBall(&m.TitleBall)
	}
	return true
}

func (gm *GameManager) updatePlaying(m *types.MatchState, in types.Input) bool {
	if _, action := Transition(m.State, m.Selected, in); action == ActionQuit {
		log.Info("Exit requested during match %s at %s", m.MatchID, m.Score)
		return false
	}

	MovePaddle(&m.Left, in.Held)
	TrackBall(&m.Right, m.Ball)

	m.Ball.Step()
	ReflectWalls(&m.Ball)
	if CollidePaddles(&m.Ball, m.Left, m.Right) {
		log.Trace("Ball deflected with velocity (%d,%d)", m.Ball.DX, m.Ball.DY)
	}

	scorer := CheckScore(m.Ball)
	if scorer == types.SideNone {
		return true
	}
	gm.awardPoint(m, scorer)
	return true
}

func (gm *GameManager) updateGameOver(m *types.MatchState, in types.Input) bool {
	next, action := Transition(m.State, m.Selected, in)
	if action == ActionQuit {
		log.Info("Exit requested from game over")
		return false
	}
	gm.setState(m, next)
	return true
}

// StartMatch resets scores, paddles and ball for a new match.
func (gm *GameManager) StartMatch(m *types.MatchState) {
	m.MatchID = gm.newMatchID()
	m.Score.Reset()
	m.Winner = types.SideNone
	m.Left.Center()
	m.Right.Center()
	gm.Serve(&m.Ball)
	log.Info("Starting match %s", m.MatchID)
}

// Serve re-centers the ball and picks each velocity sign independently.
func (gm *GameManager) Serve(b *types.Ball) {
	b.X = constants.BallStartingX
	b.Y = constants.BallStartingY
	b.Size = constants.BallSize
	b.DX = gm.randomSign() * constants.BallSpeed
	b.DY = gm.randomSign() * constants.BallSpeed
}

func (gm *GameManager) randomSign() int {
	if gm.rand.Intn(2) == 0 {
		return 1
	}
	return -1
}

func (gm *GameManager) awardPoint(m *types.MatchState, scorer types.Side) {
	switch scorer {
	case types.SideLeft:
		m.Score.Left++
	case types.SideRight:
		m.Score.Right++
	}
	log.Debug("Match %s: %s scored, score %s", m.MatchID, scorer, m.Score)
	gm.Serve(&m.Ball)

	if winner := Winner(m.Score); winner != types.SideNone {
		m.Winner = winner
		gm.setState(m, types.GameStateGameOver)
		log.Info("Match %s over: %s wins %s", m.MatchID, winner, m.Score)
	}
}

// Winner returns the side that has reached the winning score, if any.
func Winner(s types.Score) types.Side {
	switch {
	case s.Left >= constants.WinningScore:
		return types.SideLeft
	case s.Right >= constants.WinningScore:
		return types.SideRight
	}
	return types.SideNone
}

func (gm *GameManager) setState(m *types.MatchState, next types.GameState) {
	if next == m.State {
		return
	}
	log.Debug("Game state changed from %s to %s", m.State, next)
	m.State = next
}
