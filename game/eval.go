package game

// EvaluateHeights tallies each player's worker heights to produce a relative
// score between -1 and 1 from the current player's perspective. Height is
// the dominant positional resource: a worker on floor 2 is one step from
// winning.
func EvaluateHeights(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	if gs.numWorkersPlaced < 2*NumPlayers {
		return 0
	}
	return gs.calculateHeightScore()
}

// EvaluateMobility scores each player's freedom of movement: the number of
// move steps open to their workers, where a cell reachable by both workers
// counts once per worker.
func EvaluateMobility(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	if gs.numWorkersPlaced < 2*NumPlayers {
		return 0
	}
	return gs.calculateMobilityScore()
}

// EvaluateHeightMobility combines worker heights and mobility.
func EvaluateHeightMobility(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	if gs.numWorkersPlaced < 2*NumPlayers {
		return 0
	}
	heightScore := gs.calculateHeightScore()
	mobilityScore := gs.calculateMobilityScore()

	return (2*heightScore + mobilityScore) / 3
}

func (gs *GameState) calculateHeightScore() float64 {
	heights := [NumPlayers]float64{}
	for player := 0; player < NumPlayers; player++ {
		for _, cell := range gs.workerPositions[player] {
			heights[player] += float64(gs.board[cell].Height())
		}
	}
	current := gs.currentPlayer
	return normalize(heights[current], heights[1-current])
}

func (gs *GameState) calculateMobilityScore() float64 {
	moves := [NumPlayers]float64{}
	for player := 0; player < NumPlayers; player++ {
		moves[player] = float64(gs.countMoveDestinations(player))
	}
	current := gs.currentPlayer
	return normalize(moves[current], moves[1-current])
}

// countMoveDestinations counts the legal move steps (ignoring builds) open
// to a player's workers.
func (gs *GameState) countMoveDestinations(player int) int {
	count := 0
	for _, from := range gs.workerPositions[player] {
		fromRow, fromCol := Coord(from)
		fromHeight := gs.board[from].Height()
		for _, move := range directions {
			toRow, toCol := fromRow+move.dr, fromCol+move.dc
			if toRow < 0 || toRow >= NumRows || toCol < 0 || toCol >= NumCols {
				continue
			}
			to := toRow*NumCols + toCol
			if gs.board[to].IsOccupied() || gs.board[to].Height() > fromHeight+1 {
				continue
			}
			count++
		}
	}
	return count
}

// normalize converts two tallies into a single score between -1 and 1.
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	// [a/(a+b)-0.5]*2 = (a-b)/(a+b)
	return (value - otherValue) / total
}
