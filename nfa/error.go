package nfa

import "fmt"

// ParseErrorKind classifies why a pattern failed to parse. The taxonomy is
// closed: these five kinds are the only ways parsing can fail.
type ParseErrorKind uint8

const (
	// DanglingOperator indicates a quantifier (+ * ?) appeared where no
	// atom preceded it.
	DanglingOperator ParseErrorKind = iota

	// OperatorOnEmpty indicates a quantifier was applied to an empty group,
	// e.g. "()+". A group whose alternation branches are all empty, such as
	// "(|)", is not empty in this sense and may be quantified.
	OperatorOnEmpty

	// UnbalancedOpen indicates input ended with a '(' never matched by a
	// ')'.
	UnbalancedOpen

	// UnbalancedClose indicates a ')' appeared at the outermost level,
	// with no corresponding '('.
	UnbalancedClose

	// UnexpectedEof indicates input ended where an atom was required.
	UnexpectedEof
)

// String returns a human-readable name for the error kind.
func (k ParseErrorKind) String() string {
	switch k {
	case DanglingOperator:
		return "DanglingOperator"
	case OperatorOnEmpty:
		return "OperatorOnEmpty"
	case UnbalancedOpen:
		return "UnbalancedOpen"
	case UnbalancedClose:
		return "UnbalancedClose"
	case UnexpectedEof:
		return "UnexpectedEof"
	default:
		return fmt.Sprintf("UnknownParseErrorKind(%d)", k)
	}
}

// Sentinel errors, one per kind, so callers can write
// errors.Is(err, nfa.ErrUnbalancedOpen) the way they would with any wrapped
// stdlib error.
var (
	ErrDanglingOperator = &ParseError{Kind: DanglingOperator}
	ErrOperatorOnEmpty  = &ParseError{Kind: OperatorOnEmpty}
	ErrUnbalancedOpen   = &ParseError{Kind: UnbalancedOpen}
	ErrUnbalancedClose  = &ParseError{Kind: UnbalancedClose}
	ErrUnexpectedEof    = &ParseError{Kind: UnexpectedEof}
)

// ParseError reports a regex pattern that could not be parsed.
type ParseError struct {
	Kind    ParseErrorKind
	Pattern string
	Pos     int // rune offset into Pattern where the error was detected
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("regex parse error at position %d in %q: %s", e.Pos, e.Pattern, e.Kind)
	}
	return fmt.Sprintf("regex parse error at position %d: %s", e.Pos, e.Kind)
}

// Is implements error comparison for errors.Is: two *ParseError values are
// considered equal if they share a Kind, regardless of Pattern/Pos.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
