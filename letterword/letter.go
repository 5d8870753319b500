package letterword

import "github.com/dotasmt/dotasmt/region"

// Side tags which automaton a Letter belongs to (spec §3: "side ∈ {A,B}").
type Side uint8

const (
	// SideA marks a letter belonging to the left-hand automaton of an
	// inclusion check.
	SideA Side = iota
	// SideB marks a letter belonging to the right-hand automaton.
	SideB
)

// String renders the side as the single-character label used throughout
// the inclusion engine's diagnostics.
func (s Side) String() string {
	if s == SideB {
		return "B"
	}

	return "A"
}

// Letter is a triple (side, location, region) — one automaton's current
// configuration within a joint letter-word (spec §3).
type Letter struct {
	Side     Side
	Location string
	Region   region.Region
}

// NewLetter builds a Letter.
func NewLetter(side Side, location string, r region.Region) Letter {
	return Letter{Side: side, Location: location, Region: r}
}

// Equal reports structural equality: same side, location, and region.
func (l Letter) Equal(other Letter) bool {
	return l.Side == other.Side && l.Location == other.Location && l.Region.Equal(other.Region)
}

// Less gives a total order over letters (side, then location, then
// region), used to keep letter sets in a canonical, deterministic order.
func (l Letter) Less(other Letter) bool {
	if l.Side != other.Side {
		return l.Side < other.Side
	}
	if l.Location != other.Location {
		return l.Location < other.Location
	}

	return l.Region.Less(other.Region)
}

// String renders "side:location,region" as in the reference notation.
func (l Letter) String() string {
	return l.Side.String() + ":" + l.Location + "," + l.Region.String()
}
