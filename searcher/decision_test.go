package searcher

import (
	"sync"
	"testing"

	"santorini/game"

	"github.com/stretchr/testify/require"
)

func TestDecisionSelectOrExpand(t *testing.T) {
	t.Run("expanding a node with unexplored moves", func(t *testing.T) {
		state := game.NewGameState()
		node := newDecision(nil, state)

		gotChild, gotState, gotSelected := node.SelectOrExpand(state)

		require.False(t, gotSelected, "Node should perform expansion")
		require.NotEqual(t, node, gotChild, "Expansion should produce a new child")
		require.Equal(t, Loss, gotChild.rewards, "Child should apply a temporary loss")
		require.Equal(t, 1.0, gotChild.visits, "Child should apply a temporary loss")
		require.Len(t, node.explored, 1, "Node should record the explored move")
		require.Len(t, node.children, 1, "Node should add a new child")
		require.Equal(t, 2, gotState.(*game.GameState).NumWorkersPlaced(),
			"Child state should reflect the expanded placement")
		require.Equal(t, "Player1", gotChild.player,
			"Child node should belong to the next player")
	})

	t.Run("selecting the max UCT child of a fully expanded node", func(t *testing.T) {
		state := game.NewGameState()
		maxMove := game.NewPlacementAction(0, 1)
		otherMove := game.NewPlacementAction(2, 3)
		maxChild := &decision{player: "Player0", rewards: 1, visits: 1}
		otherChild := &decision{player: "Player0", rewards: 0, visits: 1}
		node := &decision{
			player:   "Player0",
			explored: []game.Move{otherMove, maxMove},
			children: map[game.Move]*decision{otherMove: otherChild, maxMove: maxChild},
			rewards:  1,
			visits:   2,
		}

		gotChild, gotState, gotSelected := node.SelectOrExpand(state)

		require.True(t, gotSelected, "Node should perform selection")
		require.Equal(t, maxChild, gotChild, "Node should select child with max policy value")
		require.Equal(t, 1+Loss, gotChild.rewards, "Child should apply a temporary loss")
		require.Equal(t, 2.0, gotChild.visits, "Child should apply a temporary loss")
		require.Equal(t, 2, gotState.(*game.GameState).NumWorkersPlaced(),
			"State should update by the move to the max policy child")
		require.Equal(t, 1.0, node.rewards, "Node stats should not change")
		require.Equal(t, 2.0, node.visits, "Node stats should not change")
	})

	t.Run("selection minimizes opponent rewards on turn change", func(t *testing.T) {
		state := game.NewGameState()
		minMove := game.NewPlacementAction(0, 1)
		otherMove := game.NewPlacementAction(2, 3)
		minChild := &decision{player: "Player1", rewards: 0, visits: 1}
		otherChild := &decision{player: "Player1", rewards: 1, visits: 1}
		node := &decision{
			player:   "Player0",
			explored: []game.Move{otherMove, minMove},
			children: map[game.Move]*decision{otherMove: otherChild, minMove: minChild},
			rewards:  1,
			visits:   2,
		}

		gotChild, _, gotSelected := node.SelectOrExpand(state)

		require.True(t, gotSelected, "Node should perform selection")
		require.Equal(t, minChild, gotChild,
			"Node should select the child that minimizes opponent rewards")
	})

	t.Run("stagnating on a terminal node", func(t *testing.T) {
		node := &decision{}
		state := game.NewGameState()

		gotChild, gotState, gotSelected := node.SelectOrExpand(state)

		require.Equal(t, node, gotChild, "Should return the same node")
		require.Equal(t, game.State(state), gotState, "Should return the same state")
		require.False(t, gotSelected, "Should not select any child or expand")
	})
}

func TestDecisionBackup(t *testing.T) {
	t.Run("recording win on root node", func(t *testing.T) {
		node := &decision{
			parent:  nil,
			player:  "Player0",
			rewards: 0,
			visits:  0,
		}

		got := node.Backup("Player0", Win)

		require.Nil(t, got, "Should return no parent")
		require.Equal(t, Win, node.rewards, "Should apply a win reward")
		require.Equal(t, 1.0, node.visits, "Should add a visit")
	})

	t.Run("recording win on non-root node", func(t *testing.T) {
		// Setup a node with a parent and a virtual loss
		parent := &decision{}
		node := &decision{
			parent:  parent,
			player:  "Player0",
			rewards: Loss,
			visits:  1,
		}

		got := node.Backup("Player0", Win)

		require.Equal(t, parent, got, "Should return the parent node")
		require.Equal(t, Win, node.rewards, "Should reverse virtual loss and add a win")
		require.Equal(t, 1.0, node.visits, "Should reverse virtual loss and add a visit")
	})

	t.Run("recording loss on non-root node", func(t *testing.T) {
		parent := &decision{}
		node := &decision{
			parent:  parent,
			player:  "Player0",
			rewards: Loss,
			visits:  1,
		}

		got := node.Backup("Player1", Win)

		require.Equal(t, parent, got, "Should return the parent node")
		require.Equal(t, Loss, node.rewards, "Should reverse virtual loss and add a loss")
		require.Equal(t, 1.0, node.visits, "Should reverse virtual loss and add a visit")
	})

	t.Run("cutoff scores credit the evaluated player", func(t *testing.T) {
		node := &decision{player: "Player1"}

		node.Backup("Player1", 0.25)

		require.Equal(t, 0.25, node.rewards, "Should credit the score as-is")

		other := &decision{player: "Player0"}
		other.Backup("Player1", 0.25)

		require.Equal(t, -0.25, other.rewards, "Should negate the score for the opponent")
	})
}

func TestDecisionPolicy(t *testing.T) {
	move1 := game.NewPlacementAction(0, 1)
	move2 := game.NewPlacementAction(2, 3)
	node := &decision{
		explored: []game.Move{move1, move2},
		children: map[game.Move]*decision{
			move1: {visits: 3},
			move2: {visits: 7},
		},
	}

	policy := node.Policy()

	require.Equal(t, map[game.Move]float64{move1: 3, move2: 7}, policy,
		"Policy should report visit counts per explored move")
}

func TestDecisionRaceConditions(t *testing.T) {
	t.Run("concurrent expansion", func(t *testing.T) {
		state := game.NewGameState()
		node := newDecision(nil, state)

		var wg sync.WaitGroup
		got := make([]*decision, 2)
		for i := 0; i < 2; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				child, _, selected := node.SelectOrExpand(state)
				require.False(t, selected, "Node should be expanded")
				got[i] = child
			}()
		}
		wg.Wait()

		require.Len(t, node.children, 2, "Node should have two children")
		require.NotEqual(t, got[0], got[1], "Node should expand with different moves")
		for i := 0; i < 2; i++ {
			require.Equal(t, Loss, got[i].rewards, "Child should apply a temporary loss")
			require.Equal(t, 1.0, got[i].visits, "Child should apply a temporary loss")
		}
	})

	t.Run("concurrent backup", func(t *testing.T) {
		// Setup a node with 2 virtual losses
		parent := &decision{}
		node := &decision{
			parent:  parent,
			player:  "Player0",
			rewards: Loss * 2,
			visits:  2,
		}

		var wg sync.WaitGroup
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got := node.Backup("Player0", Win)
				require.Equal(t, parent, got, "Should return the parent node")
			}()
		}
		wg.Wait()

		require.Equal(t, Win*2, node.rewards,
			"Node should reverse virtual losses and add two wins")
		require.Equal(t, 2.0, node.visits,
			"Node should reverse virtual losses and add two visits")
	})
}
