package nfa

// fragment is a transient, parser-local description of a just-built
// sub-automaton. It does not outlive the parser: it is superseded as
// fragments are composed into larger ones.
//
// Two shapes, matching the design's Empty/NonEmpty tags: when empty is
// true, start and end are always the same state and the fragment recognises
// exactly the empty string. When empty is false, start and end may or may
// not be distinct, and there is a path from start to end.
type fragment struct {
	start, end *State
	empty      bool
}
