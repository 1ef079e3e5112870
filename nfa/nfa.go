package nfa

import (
	"fmt"

	"github.com/coregx/rxfa/arena"
	"github.com/coregx/rxfa/internal/conv"
	"github.com/coregx/rxfa/internal/sparse"
)

// Handle is a reference to a compiled NFA's designated start state. The
// accept set is implicit in individual states' accept flags; parsing always
// produces exactly one, but the simulators below tolerate automata with any
// number of accept states (including zero or many), since subset
// construction and hand-built automata can produce either.
type Handle struct {
	start     *State
	arena     *arena.Arena
	numStates int
}

// Start returns the NFA's start state.
func (h *Handle) Start() *State { return h.start }

// NumStates returns the number of states allocated while building this NFA.
func (h *Handle) NumStates() int { return h.numStates }

func (h *Handle) String() string {
	return fmt.Sprintf("NFA{states: %d}", h.numStates)
}

// epsilonClosure adds every state reachable from the frontier by any number
// of epsilon transitions (including the frontier states themselves) into
// out, which must already be cleared of whatever the caller doesn't want
// carried over. It uses seen to avoid revisiting a state already queued
// this call; that dedup set is mandatory for correctness on ε-cycles, which
// Thompson construction's '+'/'*' can and do produce.
func epsilonClosure(frontier []*State, seen *sparse.SparseSet, out *[]*State) {
	stack := append([]*State(nil), frontier...)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen.Contains(s.id) {
			continue
		}
		seen.Insert(s.id)
		*out = append(*out, s)
		stack = append(stack, s.EpsilonTargets()...)
	}
}

// EpsilonClosure returns every state reachable from frontier by any number
// of epsilon transitions, including the frontier states themselves,
// deduplicated by state ID. capacity must be greater than the largest ID
// any state involved can have (Handle.NumStates() is always sufficient). Subset construction uses this to compute the NFA-state
// subset a DFA state corresponds to.
func EpsilonClosure(frontier []*State, capacity int) []*State {
	seen := sparse.NewSparseSet(conv.IntToUint32(capacity))
	var out []*State
	epsilonClosure(frontier, seen, &out)
	return out
}

// Simulate evaluates the NFA against input and reports whether the whole
// input is accepted. It maintains the current ε-closure as an explicitly
// deduplicated set, so it terminates even when the automaton contains
// ε-cycles (any '+'/'*' chain can introduce one). Complexity is
// O(len(input) * states * transitions-per-state).
func (h *Handle) Simulate(input []rune) bool {
	seen := sparse.NewSparseSet(conv.IntToUint32(h.numStates))
	var current []*State
	epsilonClosure([]*State{h.start}, seen, &current)

	for _, sym := range input {
		var next []*State
		var targets []*State
		for _, s := range current {
			targets = append(targets, s.Targets(sym)...)
		}
		seen.Clear()
		epsilonClosure(targets, seen, &next)
		current = next
	}

	for _, s := range current {
		if s.IsAccept() {
			return true
		}
	}
	return false
}

// SimulateFriendly evaluates the NFA the same way Simulate does, but without
// the per-step dedup set. It is faster when the caller can guarantee the
// automaton has no ε-cycle reachable from any state it visits; on an
// automaton that does contain one, the ε-closure walk follows the cycle
// forever, so the "current" list grows without bound and this function
// does not terminate. This trade-off is why it is a separate,
// clearly-named operation rather than a configuration flag: callers must
// opt into the unsafe fast path at the call site.
func (h *Handle) SimulateFriendly(input []rune) bool {
	current := epsilonClosureFriendly([]*State{h.start})

	for _, sym := range input {
		var targets []*State
		for _, s := range current {
			targets = append(targets, s.Targets(sym)...)
		}
		current = epsilonClosureFriendly(targets)
	}

	for _, s := range current {
		if s.IsAccept() {
			return true
		}
	}
	return false
}

func epsilonClosureFriendly(frontier []*State) []*State {
	var out []*State
	stack := append([]*State(nil), frontier...)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, s)
		stack = append(stack, s.EpsilonTargets()...)
	}
	return out
}
