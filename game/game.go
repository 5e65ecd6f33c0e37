package game

// Framework-level game metadata.
const (
	// CellStates is the observation channel count: one per walkable height
	// plus the ground plane, plus one occupancy channel per player.
	CellStates = 1 + NumFloors + NumPlayers

	MinUtility = -1.0
	MaxUtility = 1.0
	UtilitySum = 0.0

	// MaxGameLength bounds any game: one ply per placed worker (four, though
	// the two placement actions take only two plies) plus one height
	// increment per move until every cell is domed.
	MaxGameLength = NumPlayers*2 + NumCells*(NumFloors+1)
)

// ObservationTensorShape is the channel-major shape of ObservationTensor.
var ObservationTensorShape = []int{CellStates, NumRows, NumCols}

// GameInfo describes the game's mechanics to a framework consumer.
type GameInfo struct {
	ShortName          string
	LongName           string
	Sequential         bool
	Deterministic      bool
	PerfectInformation bool
	ZeroSum            bool
	TerminalRewards    bool
	NumPlayers         int
	NumDistinctActions int
}

// Info holds the fixed facts about Santorini.
var Info = GameInfo{
	ShortName:          "santorini",
	LongName:           "Santorini",
	Sequential:         true,
	Deterministic:      true,
	PerfectInformation: true,
	ZeroSum:            true,
	TerminalRewards:    true,
	NumPlayers:         NumPlayers,
	NumDistinctActions: NumDistinctActions,
}
