package letterword

import (
	"strconv"

	"github.com/dotasmt/dotasmt/region"
)

// ActionKind tags the two cases of Action (spec §9 design note: the
// dynamic-typed pre-link is represented as a Go tagged variant rather
// than an interface{}).
type ActionKind uint8

const (
	// ActionNone marks the root letter-word, which has no predecessor.
	ActionNone ActionKind = iota
	// ActionDelay marks a pure time-passage step, carrying the concrete
	// delay increment consumed.
	ActionDelay
	// ActionNamed marks a synchronous action step, carrying the action name.
	ActionNamed
)

// Action is the tagged label attached to a LetterWord recording how it was
// reached from its predecessor: either a concrete delay or a named action.
type Action struct {
	Kind  ActionKind
	Delay region.Decimal
	Name  string
}

// NoAction is the zero-value Action used by the root letter-word.
var NoAction = Action{Kind: ActionNone}

// DelayAction builds a delay-tagged Action.
func DelayAction(d region.Decimal) Action { return Action{Kind: ActionDelay, Delay: d} }

// NamedAction builds an action-tagged Action.
func NamedAction(name string) Action { return Action{Kind: ActionNamed, Name: name} }

// LetterWord is a fractional-ordered sequence of non-empty letter sets
// representing the equivalence class of a joint configuration of two
// automata under the region construction (spec §3).
//
// Prev and Via record how this letter-word was reached, for counterexample
// reconstruction (spec §4.5); they take no part in equality, ordering, or
// hashing/keying — two letter-words with the same Sets/Frac are the same
// configuration regardless of how each was discovered.
type LetterWord struct {
	Sets []LetterSet
	Frac []region.Decimal

	Prev *LetterWord
	Via  Action
}

// New builds a LetterWord from sets and their fractional positions,
// validating the representation invariants of spec §3: non-empty, equal
// lengths, first fractional position is 0, and fractional positions are
// strictly increasing.
func New(sets []LetterSet, frac []region.Decimal) (LetterWord, error) {
	if len(sets) == 0 {
		return LetterWord{}, ErrEmptyLetterWord
	}
	if len(sets) != len(frac) {
		return LetterWord{}, ErrLengthMismatch
	}
	if !frac[0].IsZero() {
		return LetterWord{}, ErrFractionalOrder
	}
	for i := 1; i < len(frac); i++ {
		if !frac[i-1].Less(frac[i]) {
			return LetterWord{}, ErrFractionalOrder
		}
	}

	return LetterWord{Sets: append([]LetterSet(nil), sets...), Frac: append([]region.Decimal(nil), frac...)}, nil
}

// Init builds the initial letter-word for an inclusion check between two
// automata's initial locations, both at the zero point region.
func Init(initA, initB string) LetterWord {
	set := NewLetterSet(
		NewLetter(SideA, initA, region.NewPoint(0)),
		NewLetter(SideB, initB, region.NewPoint(0)),
	)
	lw, _ := New([]LetterSet{set}, []region.Decimal{region.Zero})

	return lw
}

// Equal reports whether lw and other denote the same configuration:
// same sets (in order) and same fractional positions. Prev/Via are
// ignored, matching the reference semantics.
func (lw LetterWord) Equal(other LetterWord) bool {
	if len(lw.Sets) != len(other.Sets) || len(lw.Frac) != len(other.Frac) {
		return false
	}
	for i := range lw.Sets {
		if !lw.Sets[i].Equal(other.Sets[i]) {
			return false
		}
		if !lw.Frac[i].Equal(other.Frac[i]) {
			return false
		}
	}

	return true
}

// IsAllInfinite reports whether every letter in lw has reached the
// infinite region — the delay_seq fixed point (spec §4.3).
func (lw LetterWord) IsAllInfinite() bool {
	for _, set := range lw.Sets {
		for _, l := range set {
			if !l.Region.IsInfRegion() {
				return false
			}
		}
	}

	return true
}

// IsBad reports whether lw is a "bad" configuration for an A-vs-B
// inclusion check: some B-side letter is at an accepting location but no
// A-side letter is (spec §4.5).
func (lw LetterWord) IsBad(acceptA, acceptB map[string]bool) bool {
	aAccept, bAccept := false, false
	for _, set := range lw.Sets {
		for _, l := range set {
			switch l.Side {
			case SideA:
				if acceptA[l.Location] {
					aAccept = true
				}
			case SideB:
				if acceptB[l.Location] {
					bAccept = true
				}
			}
		}
	}

	return bAccept && !aAccept
}

// LastFrac returns the fractional position of the final set.
func (lw LetterWord) LastFrac() region.Decimal { return lw.Frac[len(lw.Frac)-1] }

// String renders lw for diagnostics, e.g. "[{A:1,[0,0]}] @ [0]".
func (lw LetterWord) String() string {
	out := "["
	for i, set := range lw.Sets {
		if i > 0 {
			out += ", "
		}
		out += set.String()
	}
	out += "] @ ["
	for i, f := range lw.Frac {
		if i > 0 {
			out += ", "
		}
		out += strconv.FormatFloat(f.Float64(), 'g', -1, 64)
	}
	out += "]"

	return out
}
