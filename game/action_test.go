package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActionSpaceSize(t *testing.T) {
	require.Equal(t, 300, NumPlacementActions, "25 cells should give 300 unordered pairs")
	require.Equal(t, 428, NumDistinctActions, "300 placements plus 2*8*8 plays")
}

func TestPlacementEncoding(t *testing.T) {
	t.Run("bijection over all cell pairs", func(t *testing.T) {
		index := 0
		for i := 0; i < NumCells; i++ {
			for j := i + 1; j < NumCells; j++ {
				action := NewPlacementAction(i, j)
				require.Equal(t, Action(index), action,
					"Pairs should enumerate in lexicographic order")
				require.True(t, action.IsPlacement())

				cell1, cell2 := action.PlacementCells()
				require.Equal(t, i, cell1, "Decoding should invert encoding")
				require.Equal(t, j, cell2, "Decoding should invert encoding")
				index++
			}
		}
		require.Equal(t, NumPlacementActions, index)
	})
}

func TestMoveBuildEncoding(t *testing.T) {
	t.Run("bijection over worker, move and build", func(t *testing.T) {
		for workerID := 0; workerID < 2; workerID++ {
			for moveID := 0; moveID < 8; moveID++ {
				for buildID := 0; buildID < 8; buildID++ {
					action := NewMoveBuildAction(workerID, moveID, buildID)
					require.False(t, action.IsPlacement())
					require.GreaterOrEqual(t, int(action), NumPlacementActions)
					require.Less(t, int(action), NumDistinctActions)

					require.Equal(t, workerID, action.WorkerID())
					require.Equal(t, moveID, action.MoveDirectionID())
					require.Equal(t, buildID, action.BuildDirectionID())
				}
			}
		}
	})
}

func TestActionString(t *testing.T) {
	t.Run("placement text form", func(t *testing.T) {
		// Cells 1 and 13 are (0,1) and (2,3)
		require.Equal(t, "P0123", NewPlacementAction(1, 13).String())
		require.Equal(t, "P0001", NewPlacementAction(0, 1).String())
		require.Equal(t, "P4344", NewPlacementAction(23, 24).String())
	})

	t.Run("move-and-build text form", func(t *testing.T) {
		// Direction ids map to numpad symbols 7 8 9 4 6 1 2 3
		require.Equal(t, "0M7B3", NewMoveBuildAction(0, 0, 7).String())
		require.Equal(t, "1M6B4", NewMoveBuildAction(1, 4, 3).String())
		require.Equal(t, "0M2B8", NewMoveBuildAction(0, 6, 1).String())
	})
}

func TestActionStringRoundTrip(t *testing.T) {
	for id := 0; id < NumDistinctActions; id++ {
		action := Action(id)
		parsed, err := ParseAction(action.String())
		require.NoError(t, err, "Every in-range action should parse back")
		require.Equal(t, action, parsed,
			"ParseAction should invert String for action %d (%s)", id, action)
	}
}

func TestParseActionErrors(t *testing.T) {
	malformed := []string{
		"",
		"P123",
		"P12345",
		"X0123",
		"P0150",  // column out of range
		"P1200",  // cells out of order
		"P0101",  // cells not distinct
		"2M7B3",  // no such worker
		"0M5B3",  // 5 is not a direction symbol
		"0M7C3",  // B marker missing
		"0M7B35", // trailing garbage
	}

	for _, s := range malformed {
		_, err := ParseAction(s)
		require.Error(t, err, "Parsing %q should fail", s)
	}
}

func TestActionIsDeterministic(t *testing.T) {
	require.False(t, Action(0).IsStochastic(), "Santorini has no chance events")
	require.False(t, NewMoveBuildAction(1, 7, 7).IsStochastic())
}

func ExampleAction_String() {
	fmt.Println(NewPlacementAction(0, 1))
	fmt.Println(NewMoveBuildAction(0, 6, 1))
	// Output:
	// P0001
	// 0M2B8
}
