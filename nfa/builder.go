package nfa

import "github.com/coregx/rxfa/arena"

// Builder allocates NFA states into an arena and assigns each one a
// monotonically increasing ID. It is the only thing in this package that
// touches the arena directly; the parser drives it to wire up fragments.
type Builder struct {
	a      *arena.Arena
	nextID uint32
}

// NewBuilder creates a Builder that allocates from a.
func NewBuilder(a *arena.Arena) *Builder {
	return &Builder{a: a}
}

// NewState allocates a fresh state with no outgoing transitions.
func (b *Builder) NewState(accept bool) *State {
	id := b.nextID
	b.nextID++
	return arena.Alloc(b.a, State{id: id, accept: accept})
}

// NumStates returns how many states this builder has allocated so far.
func (b *Builder) NumStates() int {
	return int(b.nextID)
}
