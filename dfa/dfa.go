package dfa

import "fmt"

// Handle is a reference to a compiled DFA's start state.
type Handle struct {
	start     State
	numStates int
}

// Start returns the DFA's start state.
func (h *Handle) Start() State { return h.start }

// NumStates returns the number of states this DFA has.
func (h *Handle) NumStates() int { return h.numStates }

func (h *Handle) String() string {
	return fmt.Sprintf("DFA{states: %d}", h.numStates)
}

// Simulate evaluates the DFA against input by a linear scan: for each
// symbol, look up the transition from the current state. A sparse DFA
// rejects on a missing transition. A dense DFA rejects a symbol outside its
// alphabet and panics on an in-alphabet symbol whose table slot is empty
// (an incomplete dense DFA is malformed, not a "reject"). Accept iff the final
// state is accepting. Complexity is O(len(input)) with a small constant.
func (h *Handle) Simulate(input []rune) bool {
	current := h.start
	for _, sym := range input {
		next, ok := current.Transition(sym)
		if !ok {
			return false
		}
		current = next
	}
	return current.IsAccept()
}
