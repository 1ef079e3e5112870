package dfa

import "github.com/coregx/rxfa/arena"

// NewDenseFromSparse rebuilds h (which must be backed by *SparseState, as
// FromNFA produces) as a dense DFA, indexable in O(1) per transition
// instead of hashing into a map. The alphabet is exactly the set of symbols
// observed anywhere in h's transition table, numbered in the order this
// walk first encounters them — the "capability the symbol type supplies"
// spec.md calls for, computed automatically rather than handed in by the
// caller, since a dense DFA derived this way is always built for one
// specific source DFA and never needs to cover any symbol beyond what that
// source actually uses.
//
// The alphabet is global (every symbol used anywhere in h), but an
// individual sparse state typically only has transitions for the symbols
// its own branch of the pattern uses — e.g. in "ab|cd" the state reached
// after "ab" has no transition on 'c'/'d', even though both are in the
// DFA's overall alphabet via the "cd" branch. A dense table sized to the
// global alphabet but populated only from that state's own sparse
// transitions would therefore have real gaps for in-alphabet symbols,
// which DenseState.Transition treats as a fatal malformed-DFA precondition
// rather than a reject. To keep the result complete by construction, every
// state's table slot for an alphabet symbol it has no transition of its
// own for is pointed at a single non-accepting dead state that self-loops
// on every symbol, so the dense walk rejects exactly where the sparse walk
// would have.
func NewDenseFromSparse(h *Handle, a *arena.Arena) *Handle {
	sparseStart, ok := h.Start().(*SparseState)
	if !ok {
		panic("dfa: NewDenseFromSparse requires a DFA built over SparseState")
	}

	alphabet := NewRuneAlphabet()
	order := walkSparse(sparseStart)
	for _, s := range order {
		s.Each(func(sym Symbol, _ *SparseState) {
			alphabet.Add(sym)
		})
	}

	dead := arena.Alloc(a, DenseState{
		accept:   false,
		alphabet: alphabet,
		table:    make([]*DenseState, alphabet.Size()),
	})
	for ord := range dead.table {
		dead.table[ord] = dead
	}

	dense := make(map[*SparseState]*DenseState, len(order))
	for _, s := range order {
		d := arena.Alloc(a, DenseState{
			accept:   s.IsAccept(),
			alphabet: alphabet,
			table:    make([]*DenseState, alphabet.Size()),
		})
		for ord := range d.table {
			d.table[ord] = dead
		}
		dense[s] = d
	}
	for _, s := range order {
		d := dense[s]
		s.Each(func(sym Symbol, target *SparseState) {
			ord, _ := alphabet.Ordinal(sym)
			d.SetTransition(ord, dense[target])
		})
	}

	return &Handle{start: dense[sparseStart], numStates: len(order) + 1}
}

// walkSparse returns every state reachable from start, in first-visit
// order.
func walkSparse(start *SparseState) []*SparseState {
	var order []*SparseState
	visited := make(map[*SparseState]bool)
	stack := []*SparseState{start}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[s] {
			continue
		}
		visited[s] = true
		order = append(order, s)
		s.Each(func(_ Symbol, target *SparseState) {
			if !visited[target] {
				stack = append(stack, target)
			}
		})
	}
	return order
}
