package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/coregx/rxfa/arena"
	"github.com/coregx/rxfa/nfa"
)

// subsetKey uniquely identifies a DFA state by the sorted NFA state IDs it
// represents. Two subsets with the same members, regardless of the order
// they were discovered in, always produce the same key — required so the
// queue in FromNFA converges instead of re-creating a DFA state for a
// subset it has already seen. A sorted-ID string, rather than a hash, is
// used deliberately: spec requires the key be *stable*, and a hash alone
// admits (astronomically unlikely but not impossible) collisions that would
// silently merge two distinct subsets.
type subsetKey string

func keyOf(states []*nfa.State) subsetKey {
	ids := make([]uint32, len(states))
	for i, s := range states {
		ids[i] = s.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return subsetKey(sb.String())
}

func anyAccept(states []*nfa.State) bool {
	for _, s := range states {
		if s.IsAccept() {
			return true
		}
	}
	return false
}

// symbolsOf collects, in first-seen order and without duplicates, every
// symbol any state in states has a non-epsilon transition on.
func symbolsOf(states []*nfa.State) []nfa.Symbol {
	seen := make(map[nfa.Symbol]bool)
	var out []nfa.Symbol
	for _, s := range states {
		for _, sym := range s.Symbols() {
			if !seen[sym] {
				seen[sym] = true
				out = append(out, sym)
			}
		}
	}
	return out
}

// queueItem pairs a DFA state being built with the NFA-state subset it
// represents, so FromNFA can later recompute its outgoing transitions.
type queueItem struct {
	dfaState *SparseState
	nfaSet   []*nfa.State
}

// FromNFA converts h into a sparse DFA by subset construction: each DFA
// state corresponds to the ε-closure of some subset of NFA states,
// discovered breadth-first from the start state's own closure.
func FromNFA(h *nfa.Handle, a *arena.Arena) *Handle {
	capacity := h.NumStates()
	seen := make(map[subsetKey]*SparseState)

	var nextID uint32
	newDFAState := func(accept bool) *SparseState {
		s := arena.Alloc(a, SparseState{id: nextID, accept: accept, trans: make(map[Symbol]*SparseState)})
		nextID++
		return s
	}

	start := nfa.EpsilonClosure([]*nfa.State{h.Start()}, capacity)
	startKey := keyOf(start)
	startState := newDFAState(anyAccept(start))
	seen[startKey] = startState

	queue := []queueItem{{dfaState: startState, nfaSet: start}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		for _, sym := range symbolsOf(item.nfaSet) {
			var targets []*nfa.State
			for _, s := range item.nfaSet {
				targets = append(targets, s.Targets(sym)...)
			}
			closure := nfa.EpsilonClosure(targets, capacity)
			key := keyOf(closure)

			target, exists := seen[key]
			if !exists {
				target = newDFAState(anyAccept(closure))
				seen[key] = target
				queue = append(queue, queueItem{dfaState: target, nfaSet: closure})
			}
			item.dfaState.AddTransition(sym, target)
		}
	}

	return &Handle{start: startState, numStates: len(seen)}
}
