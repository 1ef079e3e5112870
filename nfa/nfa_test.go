package nfa

import (
	"strings"
	"testing"

	"github.com/coregx/rxfa/arena"
)

func TestSimulate_CounterPattern(t *testing.T) {
	h := mustParse(t, "ab*(c|)")
	cases := map[string]bool{
		"":          false,
		"a":         true,
		"ab":        true,
		"ac":        true,
		"abb":       true,
		"abbc":      true,
		"abbbbbbbc": true,
		"abbcc":     false,
		"abaa":      false,
	}
	for in, want := range cases {
		if got := h.Simulate([]rune(in)); got != want {
			t.Errorf("Simulate(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSimulate_DivisibleByThreeBinary(t *testing.T) {
	h := mustParse(t, "(0|(1(01*(00)*0)*1)*)*")
	cases := map[string]bool{
		"0":   true,
		"11":  true,
		"110": true,
		"10":  false,
		"":    true,
	}
	for in, want := range cases {
		if got := h.Simulate([]rune(in)); got != want {
			t.Errorf("Simulate(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSimulate_LongQuantifierChain(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 100000-byte scenario in short mode")
	}
	h := mustParse(t, "a*b*a*b*a*b*a*b*a*b*(|)?a")
	bs := strings.Repeat("b", 100000)
	if got := h.Simulate([]rune(bs)); got != false {
		t.Errorf("Simulate(100000 b's) = %v, want false", got)
	}
	bsa := bs + "a"
	if got := h.Simulate([]rune(bsa)); got != true {
		t.Errorf("Simulate(100000 b's + a) = %v, want true", got)
	}
}

func TestSimulate_NestedQuantifierPattern(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 100000-byte scenario in short mode")
	}
	h := mustParse(t, "(((a|b)+c?(a|b)*)?(c(a|b)+|a?b?c+)((a|b|c)*)(a(a)+)?)+")
	cases := map[string]bool{
		strings.Repeat("a", 100000): false,
		strings.Repeat("b", 100000): false,
		strings.Repeat("c", 100000): true,
	}
	for in, want := range cases {
		if got := h.Simulate([]rune(in)); got != want {
			t.Errorf("Simulate on %d-rune input: got %v, want %v", len(in), got, want)
		}
	}
}

func TestSimulateFriendly_MatchesGeneral_NoEpsilonCycle(t *testing.T) {
	patterns := []string{"ab?(c|)", "ab|cd", "(a|b)c?(a|b)?", "a??"}
	inputs := []string{"", "a", "ab", "abc", "abbbc", "cd", "xyz"}
	for _, p := range patterns {
		h := mustParse(t, p)
		for _, in := range inputs {
			general := h.Simulate([]rune(in))
			friendly := h.SimulateFriendly([]rune(in))
			if general != friendly {
				t.Errorf("pattern %q input %q: general=%v friendly=%v", p, in, general, friendly)
			}
		}
	}
}

func TestSimulateFriendly_OptionalChainAcceptsLikeGeneral(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 20; i++ {
		sb.WriteString("a?")
	}
	for i := 0; i < 20; i++ {
		sb.WriteByte('a')
	}
	h := mustParse(t, sb.String())
	input := strings.Repeat("a", 20)
	if !h.Simulate([]rune(input)) {
		t.Fatalf("general Simulate should accept a^n against (a?)^n a^n")
	}
	if !h.SimulateFriendly([]rune(input)) {
		t.Fatalf("friendly SimulateFriendly should accept a^n against (a?)^n a^n")
	}
}

func TestEpsilonClosure_DedupsOnCycle(t *testing.T) {
	a := arena.New(arena.DefaultConfig())
	b := NewBuilder(a)
	s := b.NewState(false)
	s.PushEpsilon(s) // self-loop
	closure := EpsilonClosure([]*State{s}, b.NumStates())
	if len(closure) != 1 {
		t.Fatalf("EpsilonClosure on self-looping state: got %d states, want 1", len(closure))
	}
}
