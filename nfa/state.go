// Package nfa implements Thompson-construction NFAs over an alphabet of
// Unicode code points: a recursive-descent parser that emits states into an
// arena, and two simulators (general and "friendly") that evaluate whether a
// whole input matches.
package nfa

// Symbol is a single code point consumed by a non-epsilon transition.
type Symbol = rune

// entry holds every target reachable from a state on one key: either a
// single symbol, or (when epsilon is true) the absence of a symbol. Keeping
// an ordered slice of targets per key, rather than a set, means duplicate
// pushes of the same target are preserved verbatim (the simulator dedups on
// the fly, per the API's contract) and iteration order is observable.
type entry struct {
	epsilon bool
	sym     Symbol
	targets []*State
}

// State is a single NFA state: an accept flag plus a small per-key map of
// outgoing transitions. Most states have at most two or three distinct keys
// and at most two or three targets each, so entries is a short linearly
// scanned slice rather than a hash map — avoiding a map allocation for the
// overwhelmingly common case.
type State struct {
	id      uint32
	accept  bool
	entries []entry
}

// ID returns the monotonically increasing identifier assigned to this state
// when it was allocated. It exists purely so ε-closure sets and
// subset-construction keys can live in a dense uint32 domain; the
// arena-backed *State pointer, not this ID, is the stable reference callers
// should hold onto.
func (s *State) ID() uint32 { return s.id }

// IsAccept reports whether this state is an accepting state.
func (s *State) IsAccept() bool { return s.accept }

// SetAccept updates the accept flag.
func (s *State) SetAccept(accept bool) { s.accept = accept }

// PushTransition appends one outgoing transition. A nil target denotes a
// self-transition (the state transitions to itself). Pushing the same
// (key, target) pair more than once is allowed and produces a duplicate
// target entry; simulators are required to dedup on the fly rather than
// reject it here.
func (s *State) PushTransition(epsilon bool, sym Symbol, target *State) {
	if target == nil {
		target = s
	}
	for i := range s.entries {
		e := &s.entries[i]
		if e.epsilon == epsilon && (epsilon || e.sym == sym) {
			e.targets = append(e.targets, target)
			return
		}
	}
	s.entries = append(s.entries, entry{epsilon: epsilon, sym: sym, targets: []*State{target}})
}

// PushEpsilon appends an epsilon transition to target (nil means self).
func (s *State) PushEpsilon(target *State) {
	s.PushTransition(true, 0, target)
}

// PushSymbol appends a transition on sym to target (nil means self).
func (s *State) PushSymbol(sym Symbol, target *State) {
	s.PushTransition(false, sym, target)
}

// Targets returns the ordered target list for a non-epsilon transition on
// sym, or nil if the state has no such transition.
func (s *State) Targets(sym Symbol) []*State {
	for i := range s.entries {
		e := &s.entries[i]
		if !e.epsilon && e.sym == sym {
			return e.targets
		}
	}
	return nil
}

// EpsilonTargets returns the ordered target list for this state's epsilon
// transitions, or nil if it has none.
func (s *State) EpsilonTargets() []*State {
	for i := range s.entries {
		if s.entries[i].epsilon {
			return s.entries[i].targets
		}
	}
	return nil
}

// Symbols returns, in first-seen insertion order, every distinct symbol this
// state has a non-epsilon transition on. Used by subset construction to
// enumerate the symbols reachable from a subset of states.
func (s *State) Symbols() []Symbol {
	var syms []Symbol
	for i := range s.entries {
		if !s.entries[i].epsilon {
			syms = append(syms, s.entries[i].sym)
		}
	}
	return syms
}
