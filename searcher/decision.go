package searcher

import (
	"sync"

	"santorini/game"
)

// decision is a search tree node for a player's turn. Santorini is fully
// deterministic so decision nodes are the only node kind; rewards and visits
// are guarded for tree-parallel search with virtual loss.
type decision struct {
	sync.RWMutex
	parent     *decision
	player     string
	hash       game.StateHash
	unexplored []game.Move
	explored   []game.Move
	children   map[game.Move]*decision
	rewards    float64
	visits     float64
}

func newDecision(parent *decision, state game.State) *decision {
	return &decision{
		parent:     parent,
		player:     state.Player(),
		hash:       state.Hash(),
		unexplored: state.LegalMoves(),
		children:   map[game.Move]*decision{},
	}
}

// SelectOrExpand walks one ply: on a node with unexplored moves it expands a
// new child, otherwise it selects the max-UCT child. Terminal nodes return
// themselves. The returned flag is true only for selection, so the caller
// keeps descending until it reaches a fresh or terminal node.
func (d *decision) SelectOrExpand(state game.State) (*decision, game.State, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.unexplored) == 0 && len(d.explored) == 0 { // Terminal node
		return d, state, false
	}

	if len(d.unexplored) > 0 { // Expandable node
		child, childState := d.addChild(state)
		child.applyLoss()
		return child, childState, false
	}

	// Fully expanded node
	move := d.pickChild()
	child := d.children[move]
	child.applyLoss()
	return child, state.Play(move), true
}

func (d *decision) addChild(state game.State) (*decision, game.State) {
	move := d.unexplored[len(d.unexplored)-1]
	d.unexplored = d.unexplored[:len(d.unexplored)-1]

	childState := state.Play(move)
	child := newDecision(d, childState)
	d.explored = append(d.explored, move)
	d.children[move] = child
	return child, childState
}

func (d *decision) pickChild() game.Move {
	if d.visits == 0 {
		panic("node has children but no visits")
	}

	policy := newUCT(CSquared, d.visits)

	var maxMove game.Move
	maxScore := 0.0
	for i, move := range d.explored {
		child := d.children[move]
		score := policy.evaluate(child.value(d.player), child.Visits())
		if i == 0 || score > maxScore {
			maxScore = score
			maxMove = move
		}
	}
	return maxMove
}

// value returns the child's accumulated rewards from the given player's
// perspective: a child owned by the opponent counts negated.
func (d *decision) value(player string) float64 {
	d.RLock()
	defer d.RUnlock()

	if d.player == player {
		return d.rewards
	}
	return -d.rewards
}

func (d *decision) Visits() float64 {
	d.RLock()
	defer d.RUnlock()

	return d.visits
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

// Backup records a playout outcome: the score is credited from the given
// player's perspective and negated for the opponent's nodes. Non-root nodes
// first reverse the virtual loss applied on descent.
func (d *decision) Backup(player string, score float64) *decision {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
	}

	if d.player == player {
		d.rewards += score
	} else {
		d.rewards -= score
	}
	d.visits++

	return d.parent
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

// Policy returns the visit count per explored move.
func (d *decision) Policy() map[game.Move]float64 {
	d.RLock()
	defer d.RUnlock()

	policy := make(map[game.Move]float64, len(d.explored))
	for _, move := range d.explored {
		policy[move] = d.children[move].Visits()
	}
	return policy
}
