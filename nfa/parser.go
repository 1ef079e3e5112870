package nfa

import "github.com/coregx/rxfa/arena"

// Grammar recognised, whole-string, one pass, no lookahead beyond the
// current and next code point:
//
//	group   = concat ( '|' concat )*
//	concat  = base*
//	base    = atom ( '+' | '*' | '?' )*
//	atom    = '(' group ')' | any_code_point_except_operator
//
// '*' is zero-or-more, '+' is one-or-more, '?' is zero-or-one, '|' is
// alternation (lowest precedence, left-associative), juxtaposition is
// concatenation, and '(...)' groups. The operator set is { + * ? | ( ) };
// every other code point is a literal.

// parser holds the rune input and the builder fragments are wired into.
// Recursion depth equals regex nesting depth; adversarial deeply-nested
// patterns could overflow the Go call stack, which is an acceptable
// trade-off here in exchange for a parser that reads exactly like the
// grammar above (the grammar's own terms are the function names).
type parser struct {
	pattern string
	runes   []rune
	pos     int
	b       *Builder
}

func newParser(pattern string, a *arena.Arena) *parser {
	return &parser{pattern: pattern, runes: []rune(pattern), b: NewBuilder(a)}
}

func (p *parser) atEOF() bool        { return p.pos >= len(p.runes) }
func (p *parser) peek() rune         { return p.runes[p.pos] }
func (p *parser) advance()           { p.pos++ }
func (p *parser) atCloseParen() bool { return !p.atEOF() && p.peek() == ')' }
func (p *parser) atAlt() bool        { return !p.atEOF() && p.peek() == '|' }
func (p *parser) atQuantifier() bool {
	if p.atEOF() {
		return false
	}
	switch p.peek() {
	case '+', '*', '?':
		return true
	default:
		return false
	}
}

func (p *parser) errAt(kind ParseErrorKind) *ParseError {
	return &ParseError{Kind: kind, Pattern: p.pattern, Pos: p.pos}
}

// ParseRegex parses pattern into an NFA allocated from a. The returned
// Handle's designated accept state is the final state of the outermost
// group, per the contract that parsing produces exactly one accept state.
func ParseRegex(pattern string, a *arena.Arena) (*Handle, error) {
	p := newParser(pattern, a)
	frag, err := p.parseGroup()
	if err != nil {
		return nil, err
	}
	if !p.atEOF() {
		// The only way parseGroup can return with input remaining is a
		// ')' that no enclosing '(' consumed.
		return nil, p.errAt(UnbalancedClose)
	}
	frag.end.SetAccept(true)
	return &Handle{start: frag.start, arena: a, numStates: p.b.NumStates()}, nil
}

// parseGroup = concat ( '|' concat )*
func (p *parser) parseGroup() (fragment, error) {
	first, err := p.parseConcat()
	if err != nil {
		return fragment{}, err
	}
	if !p.atAlt() {
		return first, nil
	}

	// Alternation: two fresh states shared by every branch, allocated once
	// on the first '|' seen for this group.
	us := p.b.NewState(false)
	ue := p.b.NewState(false)
	p.addAlternationBranch(us, ue, first)

	for p.atAlt() {
		p.advance() // consume '|'
		branch, err := p.parseConcat()
		if err != nil {
			return fragment{}, err
		}
		p.addAlternationBranch(us, ue, branch)
	}

	// Alternation always allocates two fresh, distinct states, so the
	// result is structurally NonEmpty regardless of what its branches
	// matched — even "(|)" produces two states joined by epsilon edges,
	// not a single collapsed state.
	return fragment{start: us, end: ue, empty: false}, nil
}

func (p *parser) addAlternationBranch(us, ue *State, branch fragment) {
	if branch.empty {
		us.PushEpsilon(ue)
		return
	}
	us.PushEpsilon(branch.start)
	branch.end.PushEpsilon(ue)
}

// parseConcat = base*
func (p *parser) parseConcat() (fragment, error) {
	var bases []fragment
	for !p.atEOF() && !p.atAlt() && !p.atCloseParen() {
		if p.atQuantifier() && len(bases) == 0 {
			return fragment{}, p.errAt(DanglingOperator)
		}
		base, err := p.parseBase()
		if err != nil {
			return fragment{}, err
		}
		bases = append(bases, base)
	}

	switch len(bases) {
	case 0:
		n := p.b.NewState(false)
		return fragment{start: n, end: n, empty: true}, nil
	case 1:
		return bases[0], nil
	default:
		for i := 0; i < len(bases)-1; i++ {
			bases[i].end.PushEpsilon(bases[i+1].start)
		}
		return fragment{start: bases[0].start, end: bases[len(bases)-1].end, empty: false}, nil
	}
}

// parseBase = atom ( '+' | '*' | '?' )*
func (p *parser) parseBase() (fragment, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return fragment{}, err
	}
	for p.atQuantifier() {
		if atom.empty {
			return fragment{}, p.errAt(OperatorOnEmpty)
		}
		switch p.peek() {
		case '+':
			atom.end.PushEpsilon(atom.start)
		case '?':
			atom.start.PushEpsilon(atom.end)
		case '*':
			atom.end.PushEpsilon(atom.start)
			atom.start.PushEpsilon(atom.end)
		}
		p.advance()
	}
	return atom, nil
}

// parseAtom = '(' group ')' | any_code_point_except_operator
//
// The atEOF check below is defensive only: every call site reaches
// parseAtom through parseBase, which parseConcat's loop only calls once it
// has already confirmed !atEOF. Nothing in this grammar calls parseAtom at
// end of input, so UnexpectedEof can never actually surface through
// ParseRegex; the arm exists so parseAtom still fails closed, rather than
// indexing past the end of the rune slice, if that invariant is ever
// violated by a future change to parseConcat/parseBase.
func (p *parser) parseAtom() (fragment, error) {
	if p.atEOF() {
		return fragment{}, p.errAt(UnexpectedEof)
	}

	switch p.peek() {
	case '(':
		p.advance()
		inner, err := p.parseGroup()
		if err != nil {
			return fragment{}, err
		}
		if p.atEOF() {
			return fragment{}, p.errAt(UnbalancedOpen)
		}
		// parseGroup only stops at ')' or EOF; EOF was just ruled out.
		p.advance() // consume ')'
		return inner, nil

	case ')':
		return fragment{}, p.errAt(UnbalancedClose)

	case '+', '*', '?', '|':
		return fragment{}, p.errAt(DanglingOperator)

	default:
		c := p.peek()
		p.advance()
		start := p.b.NewState(false)
		end := p.b.NewState(false)
		start.PushSymbol(c, end)
		return fragment{start: start, end: end}, nil
	}
}
