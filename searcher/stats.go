package searcher

import "planner/env"

// node holds the accumulated statistics for one state: the discovered
// actions in insertion order and, in parallel slices, their visit counts
// and running mean returns. count is the state's total across all actions.
type node struct {
	actions []env.Action
	visits  []int
	values  []float64
	count   int
}

// table is the statistics store for one planning session, keyed by state
// hash. It is owned by the searcher and only mutated by widening and
// backup; equal states must hash equally so rollouts reaching the same
// state share a node.
type table struct {
	nodes map[env.StateHash]*node
}

func newTable() *table {
	return &table{nodes: make(map[env.StateHash]*node)}
}

// get returns the node for state, or nil if the state was never visited.
func (t *table) get(s env.State) *node {
	return t.nodes[s.Hash()]
}

func (t *table) ensure(s env.State) *node {
	n, ok := t.nodes[s.Hash()]
	if !ok {
		n = &node{}
		t.nodes[s.Hash()] = n
	}
	return n
}

// add appends an action unless an equal one was already discovered, and
// returns the action's index along with whether it was newly added.
// Exact-equality dedup is best effort: continuous actions essentially
// never collide, so the widening cap is the de facto limiter.
func (n *node) add(a env.Action) (int, bool) {
	for i, b := range n.actions {
		if b.Equal(a) {
			return i, false
		}
	}
	n.actions = append(n.actions, a)
	n.visits = append(n.visits, 0)
	n.values = append(n.values, 0)
	return len(n.actions) - 1, true
}

// backup records one simulated return for the ith action. The mean is
// updated incrementally, exact for any update order and O(1) per call.
// The action and state counters move together, keeping the state total
// equal to the sum over its actions.
func (n *node) backup(i int, q float64) {
	n.visits[i]++
	n.values[i] += (q - n.values[i]) / float64(n.visits[i])
	n.count++
}
