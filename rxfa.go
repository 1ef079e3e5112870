// Package rxfa compiles regular expressions into finite automata and
// evaluates them against input. It glues together three lower-level
// packages: arena (the bump allocator every automaton is built in), nfa
// (Thompson construction and simulation), and dfa (subset construction and
// simulation).
//
// A typical caller either holds its own arena.Arena and calls ParseRegex
// directly, or uses Compile for the common case of one arena per pattern.
package rxfa

import (
	"github.com/coregx/rxfa/arena"
	"github.com/coregx/rxfa/dfa"
	"github.com/coregx/rxfa/nfa"
)

// ParseRegex parses pattern into an NFA allocated from a. It is a thin
// re-export of nfa.ParseRegex, kept at the top level so callers that also
// want AsDFA don't need to import the nfa package directly for the common
// path.
func ParseRegex(pattern string, a *arena.Arena) (*nfa.Handle, error) {
	return nfa.ParseRegex(pattern, a)
}

// Compile parses pattern into an NFA backed by a freshly created arena. Use
// this when the caller has no reason to share an arena across multiple
// patterns; each call to Compile owns its arena exclusively, and the arena
// must be kept reachable for as long as the returned Handle is used.
func Compile(pattern string) (*nfa.Handle, *arena.Arena, error) {
	a := arena.New(arena.DefaultConfig())
	h, err := nfa.ParseRegex(pattern, a)
	if err != nil {
		return nil, nil, err
	}
	return h, a, nil
}

// AsDFA converts an NFA into an equivalent DFA via subset construction,
// allocating the DFA's states from a. The arena may be the same one h's
// states were built in, or a separate one — the two automata don't need to
// share storage once the conversion is complete, since the DFA only ever
// reads h's states to compute ε-closures during construction and never
// retains references to them afterward.
func AsDFA(h *nfa.Handle, a *arena.Arena) *dfa.Handle {
	return dfa.FromNFA(h, a)
}
