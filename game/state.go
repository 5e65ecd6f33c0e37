package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

const (
	// NoPlayer marks a game with no outcome yet.
	NoPlayer = -1
	// TerminalPlayerID is reported by CurrentPlayer once the game is over.
	TerminalPlayerID = -2
)

// GameState is the full Santorini position: the 5x5 board, each player's
// worker pair, placement progress and outcome. Each player's worker pair is
// stored canonically ordered (lower cell index first) so that worker 0 always
// names the lower-indexed worker; two plays that differ only in which of two
// interchangeable workers acts collapse into one action.
type GameState struct {
	board            [NumCells]Cell
	workerPositions  [NumPlayers][2]int
	numWorkersPlaced int
	currentPlayer    int
	outcome          int
	legalActions     []Action
	history          []Action
}

// NewGameState returns the initial state: empty board, no workers placed,
// player 0 to move, all placement pairs legal.
func NewGameState() *GameState {
	gs := &GameState{
		currentPlayer: 0,
		outcome:       NoPlayer,
	}
	gs.setLegalActions()
	return gs
}

// Copy returns an independent deep copy.
func (gs *GameState) Copy() *GameState {
	legalActionsCopy := make([]Action, len(gs.legalActions))
	copy(legalActionsCopy, gs.legalActions)

	historyCopy := make([]Action, len(gs.history))
	copy(historyCopy, gs.history)

	return &GameState{
		board:            gs.board,
		workerPositions:  gs.workerPositions,
		numWorkersPlaced: gs.numWorkersPlaced,
		currentPlayer:    gs.currentPlayer,
		outcome:          gs.outcome,
		legalActions:     legalActionsCopy,
		history:          historyCopy,
	}
}

// Player returns the identifier of the current player.
func (gs *GameState) Player() string {
	return fmt.Sprintf("Player%d", gs.currentPlayer)
}

// CurrentPlayer returns the player to move, or TerminalPlayerID once the
// game is over. The internal field keeps identifying the losing side so
// Returns stays well defined.
func (gs *GameState) CurrentPlayer() int {
	if gs.IsTerminal() {
		return TerminalPlayerID
	}
	return gs.currentPlayer
}

// Outcome returns the winning player, or NoPlayer while the game is live.
func (gs *GameState) Outcome() int {
	return gs.outcome
}

func (gs *GameState) IsTerminal() bool {
	return gs.outcome != NoPlayer
}

// Winner returns the winner's identifier, or "" while the game is live.
func (gs *GameState) Winner() string {
	if gs.outcome == NoPlayer {
		return ""
	}
	return fmt.Sprintf("Player%d", gs.outcome)
}

// Returns reports the terminal utilities per player: +1 for the winner and
// -1 for the loser, or all zero while the game is live.
func (gs *GameState) Returns() []float64 {
	returns := make([]float64, NumPlayers)
	if gs.outcome != NoPlayer {
		returns[gs.outcome] = 1
		returns[1-gs.outcome] = -1
	}
	return returns
}

// CellAt returns the cell at the given index.
func (gs *GameState) CellAt(cell int) Cell {
	return gs.board[cell]
}

// WorkerPositions returns the given player's worker cells, lower index first.
func (gs *GameState) WorkerPositions(player int) [2]int {
	return gs.workerPositions[player]
}

func (gs *GameState) NumWorkersPlaced() int {
	return gs.numWorkersPlaced
}

// LegalActions returns the cached legal action set for the current state.
// Empty exactly when the game is over.
func (gs *GameState) LegalActions() []Action {
	return gs.legalActions
}

// LegalMoves returns the legal actions behind the Move interface.
func (gs *GameState) LegalMoves() []Move {
	moves := make([]Move, len(gs.legalActions))
	for i, action := range gs.legalActions {
		moves[i] = action
	}
	return moves
}

// Play applies a move to a copy of the state and returns it.
func (gs *GameState) Play(move Move) State {
	next := gs.Copy()
	next.Apply(move.(Action))
	return next
}

// Apply mutates the state by one action from the current legal set, flips
// the turn and recomputes the legal actions. Applying an action outside the
// legal set is a programmer error; the legal-action recomputation may end the
// game via the stalemate rule, so IsTerminal is accurate on return.
func (gs *GameState) Apply(action Action) {
	if action.IsPlacement() {
		cell1, cell2 := action.PlacementCells()
		gs.board[cell1] = gs.board[cell1].withOccupant(gs.currentPlayer)
		gs.board[cell2] = gs.board[cell2].withOccupant(gs.currentPlayer)
		// The placement table is lexicographic so the pair is already ordered
		gs.workerPositions[gs.currentPlayer] = [2]int{cell1, cell2}
		gs.numWorkersPlaced += 2
	} else {
		workerID := action.WorkerID()
		from := gs.workerPositions[gs.currentPlayer][workerID]
		to := neighbor(from, action.moveDirection())
		build := neighbor(to, action.buildDirection())

		gs.board[from] = gs.board[from].cleared()
		gs.board[to] = gs.board[to].withOccupant(gs.currentPlayer)
		gs.board[build]++

		pair := &gs.workerPositions[gs.currentPlayer]
		pair[workerID] = to
		if pair[0] > pair[1] {
			pair[0], pair[1] = pair[1], pair[0]
		}

		if gs.board[to].Height() == NumFloors {
			gs.outcome = gs.currentPlayer
		}
	}

	gs.history = append(gs.history, action)
	gs.currentPlayer = 1 - gs.currentPlayer
	gs.setLegalActions()
}

func neighbor(cell int, d direction) int {
	row, col := Coord(cell)
	return (row+d.dr)*NumCols + (col + d.dc)
}

// setLegalActions recomputes the legal action cache for the player to move.
// A play-phase player left with no legal action loses on the spot, so the
// outcome can flip here rather than during Apply.
func (gs *GameState) setLegalActions() {
	gs.legalActions = nil
	if gs.outcome != NoPlayer {
		return
	}

	if gs.numWorkersPlaced < 2*NumPlayers {
		for i := 0; i < NumPlacementActions; i++ {
			pair := placementCells[i]
			if !gs.board[pair[0]].IsOccupied() && !gs.board[pair[1]].IsOccupied() {
				gs.legalActions = append(gs.legalActions, Action(i))
			}
		}
	} else if gs.board[gs.workerPositions[gs.currentPlayer][0]].Height() < NumFloors &&
		gs.board[gs.workerPositions[gs.currentPlayer][1]].Height() < NumFloors {
		gs.appendMoveBuildActions()
	}

	if len(gs.legalActions) == 0 {
		gs.outcome = 1 - gs.currentPlayer
	}
}

func (gs *GameState) appendMoveBuildActions() {
	for workerID := 0; workerID < 2; workerID++ {
		from := gs.workerPositions[gs.currentPlayer][workerID]
		fromRow, fromCol := Coord(from)
		fromHeight := gs.board[from].Height()

		for moveID, move := range directions {
			toRow, toCol := fromRow+move.dr, fromCol+move.dc
			if toRow < 0 || toRow >= NumRows || toCol < 0 || toCol >= NumCols {
				continue
			}
			to := toRow*NumCols + toCol
			// Climb rule: up at most one floor; down any number. A dome at
			// height 4 always fails the climb check from height < 3.
			if gs.board[to].IsOccupied() || gs.board[to].Height() > fromHeight+1 {
				continue
			}

			for buildID, build := range directions {
				buildRow, buildCol := toRow+build.dr, toCol+build.dc
				if buildRow < 0 || buildRow >= NumRows || buildCol < 0 || buildCol >= NumCols {
					continue
				}
				buildCell := buildRow*NumCols + buildCol
				if gs.board[buildCell].Height() == DomeHeight {
					continue
				}
				// An occupied build target is only legal when it is the cell
				// the worker just vacated: the build direction exactly
				// reverses the move, and opposite direction ids sum to 7.
				if gs.board[buildCell].IsOccupied() && moveID+buildID != 7 {
					continue
				}
				gs.legalActions = append(gs.legalActions,
					NewMoveBuildAction(workerID, moveID, buildID))
			}
		}
	}
}

// History returns the actions applied so far, in play order.
func (gs *GameState) History() []Action {
	return gs.history
}

// InformationStateString returns the canonical action history, space-joined
// in play order. Santorini is perfect-information so the history is the
// whole information state.
func (gs *GameState) InformationStateString() string {
	texts := make([]string, len(gs.history))
	for i, action := range gs.history {
		texts[i] = action.String()
	}
	return strings.Join(texts, " ")
}

// String renders the board as five newline-separated rows, one character per
// cell: digits 0..4 for empty cells, a..e for player 0 and A..E for player 1.
func (gs *GameState) String() string {
	var sb strings.Builder
	sb.Grow(NumCells + NumRows - 1)
	for row := 0; row < NumRows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < NumCols; col++ {
			sb.WriteByte(gs.board[row*NumCols+col].Char())
		}
	}
	return sb.String()
}

// ObservationString returns the board rendering; both players observe the
// full state.
func (gs *GameState) ObservationString() string {
	return gs.String()
}

// ObservationTensor projects the state into a dense [CellStates x 5 x 5]
// tensor, channel-major. Channels 0..3 one-hot the cell height for heights
// 0..3 (a domed cell sets no height channel). Channels 4 and 5 carry the
// height under the current player's and the opponent's workers respectively,
// keeping the encoding perspective equivariant.
func (gs *GameState) ObservationTensor() []float32 {
	tensor := make([]float32, CellStates*NumCells)
	for cell, c := range gs.board {
		h := c.Height()
		if h <= NumFloors {
			tensor[h*NumCells+cell] = 1
		}
		if c.IsOccupied() {
			channel := NumFloors + 1
			if c.Occupant() != gs.currentPlayer {
				channel++
			}
			tensor[channel*NumCells+cell] = float32(h)
		}
	}
	return tensor
}

// Hash folds the position into a 64-bit FNV-1a digest for tree reuse checks.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	hasher.Write(boardBytes(gs.board))
	binary.Write(hasher, binary.LittleEndian, int64(gs.currentPlayer))
	binary.Write(hasher, binary.LittleEndian, int64(gs.numWorkersPlaced))
	binary.Write(hasher, binary.LittleEndian, int64(gs.outcome))

	return StateHash(hasher.Sum64())
}

func boardBytes(board [NumCells]Cell) []byte {
	bytes := make([]byte, NumCells)
	for i, c := range board {
		bytes[i] = byte(c)
	}
	return bytes
}
