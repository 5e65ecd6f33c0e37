package game

const (
	NumPlayers = 2
	NumRows    = 5
	NumCols    = 5
	NumCells   = NumRows * NumCols

	// NumFloors is the highest walkable floor; a worker stepping onto it wins.
	// One more block on top of it is a dome.
	NumFloors    = 3
	numFloorBits = 3
	DomeHeight   = NumFloors + 1
)

// Cell packs a square's building height and occupant into one byte: the low
// three bits hold the height (0..4), the next two bits hold the occupant
// (0 empty, 1 player 0, 2 player 1).
type Cell uint8

const heightMask = (1 << numFloorBits) - 1

func (c Cell) Height() int {
	return int(c & heightMask)
}

// Occupant returns the player standing on the cell, or -1 if it is empty.
func (c Cell) Occupant() int {
	return int(c>>numFloorBits) - 1
}

func (c Cell) IsOccupied() bool {
	return c>>numFloorBits > 0
}

func (c Cell) withHeight(height int) Cell {
	return (c &^ heightMask) | Cell(height)
}

func (c Cell) withOccupant(player int) Cell {
	return (c & heightMask) | Cell(player+1)<<numFloorBits
}

func (c Cell) cleared() Cell {
	return c & heightMask
}

// Char renders the cell as one character: digits 0..4 for empty cells,
// a..e for player 0 and A..E for player 1, offset by the height under the
// worker.
func (c Cell) Char() byte {
	h := byte(c.Height())
	switch c.Occupant() {
	case 0:
		return 'a' + h
	case 1:
		return 'A' + h
	default:
		return '0' + h
	}
}

// Coord splits a cell index into (row, col).
func Coord(cell int) (int, int) {
	return cell / NumCols, cell % NumCols
}

// direction is one of the 8 king-move offsets. The order matches the numpad
// symbol table below; opposite directions sum to 7, which the move generator
// relies on to recognize a build back onto the just-vacated cell.
type direction struct {
	dr, dc int
}

var directions = [8]direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// directionSymbols maps a direction id to its numpad character.
var directionSymbols = [8]byte{'7', '8', '9', '4', '6', '1', '2', '3'}
