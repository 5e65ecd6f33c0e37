package gamemaster

import (
	"fmt"

	"santorini/game"
)

// UpdateGetter drains at most one pending update per call; it returns nils
// once the game is over or when no move has been played yet.
type UpdateGetter func() (game.Move, game.State)

// Engine hosts a match for external callers: it owns the authoritative
// state, validates every submitted move and publishes resulting states.
type Engine interface {
	Init() (game.State, UpdateGetter)
	Play(game.Move) error
}

type update struct {
	move  game.Move
	state game.State
}

type localEngine struct {
	state    *game.GameState
	updateCh chan update
	gameOver bool
}

func NewLocalEngine() *localEngine {
	return &localEngine{}
}

func (e *localEngine) Init() (game.State, UpdateGetter) {
	e.state = game.NewGameState()
	e.updateCh = make(chan update, 1)

	return e.state.Copy(), func() (game.Move, game.State) {
		select {
		case u, ok := <-e.updateCh:
			if !ok { // Game over
				return nil, nil
			}
			return u.move, u.state
		default:
			// No updates yet, return nil immediately
			return nil, nil
		}
	}
}

func (e *localEngine) Play(move game.Move) error {
	if e.gameOver {
		return fmt.Errorf("game is over - no moves allowed")
	}

	action, ok := move.(game.Action)
	if !ok {
		return fmt.Errorf("illegal move: not a santorini action")
	}

	isLegal := false
	for _, legal := range e.state.LegalActions() {
		if legal == action {
			isLegal = true
			break
		}
	}
	if !isLegal {
		return fmt.Errorf("illegal move %v", action)
	}

	e.state.Apply(action)

	if e.state.IsTerminal() {
		e.gameOver = true
		// Send final update then close
		e.updateCh <- update{move: move, state: e.state.Copy()}
		close(e.updateCh)
	} else {
		e.updateCh <- update{move: move, state: e.state.Copy()}
	}

	return nil
}
