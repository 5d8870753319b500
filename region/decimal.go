package region

// Decimal is an exact base-10 fraction N/10^D, the representation the
// fractional-part-split algorithm of spec §4.4 is defined over. Letter-word
// fractional positions (package letterword) are Decimal values so that
// RoundDiv2 can be applied exactly, digit by digit, the way the original
// implementation's decimal-string arithmetic does.
type Decimal struct {
	N int64 // numerator
	D int   // decimal digits of precision; value is N / 10^D
}

func pow10(d int) int64 {
	p := int64(1)
	for i := 0; i < d; i++ {
		p *= 10
	}

	return p
}

// normalize strips trailing zero digits so D is always the minimal
// precision needed to represent the value exactly (matching the "d
// decimal digits 0.xxxn" framing of spec §4.4, where n is never itself
// a multiple of 10 unless the whole value is 0).
func normalize(n int64, d int) Decimal {
	for d > 0 && n != 0 && n%10 == 0 {
		n /= 10
		d--
	}

	return Decimal{N: n, D: d}
}

// NewDecimal builds the normalized decimal n/10^d.
func NewDecimal(n int64, d int) Decimal { return normalize(n, d) }

// Zero is the decimal value 0.
var Zero = Decimal{N: 0, D: 0}

// One is the decimal value 1.
var One = Decimal{N: 1, D: 0}

// IsZero reports whether d represents exactly 0.
func (d Decimal) IsZero() bool { return d.N == 0 }

// align rescales a and b to a common number of digits, returning their
// numerators at that common precision.
func align(a, b Decimal) (an, bn int64, d int) {
	d = a.D
	if b.D > d {
		d = b.D
	}

	return a.N * pow10(d-a.D), b.N * pow10(d-b.D), d
}

// Add returns a+b, exact.
func (a Decimal) Add(b Decimal) Decimal {
	an, bn, d := align(a, b)

	return normalize(an+bn, d)
}

// Sub returns a-b, exact. Negative results are not meaningful for this
// algebra and are not produced by any caller in this module.
func (a Decimal) Sub(b Decimal) Decimal {
	an, bn, d := align(a, b)

	return normalize(an-bn, d)
}

// Less reports a < b.
func (a Decimal) Less(b Decimal) bool {
	an, bn, _ := align(a, b)

	return an < bn
}

// Equal reports a == b.
func (a Decimal) Equal(b Decimal) bool {
	an, bn, _ := align(a, b)

	return an == bn
}

// Float64 converts to a float64, for display and test assertions only —
// never for comparisons that must be exact.
func (d Decimal) Float64() float64 {
	return float64(d.N) / float64(pow10(d.D))
}

// RoundDiv2 implements spec §4.4's round_div_2: given r in (0,1], return a
// value at least r/2 and below r (exactly r/2 in the first two cases
// below), used to pick a witness fractional position inside the half
// closest to the previous witness.
//
//   - r == 1            -> 1/2
//   - n even (or n==1, after padding one extra digit) -> n/2 at that precision
//   - n odd and n>1      -> (n+1)/2 at the same precision
//
// where r = n/10^d is r's minimal decimal representation.
func RoundDiv2(r Decimal) Decimal {
	if r.Equal(One) {
		return Decimal{N: 5, D: 1}
	}

	n, d := r.N, r.D
	switch {
	case n == 1:
		// Pad with an extra digit: 0.0..01 -> 0.0..010, then halve.
		n, d = 10, d+1

		return normalize(n/2, d)
	case n%2 == 0:
		return normalize(n/2, d)
	default: // odd, > 1
		return normalize((n+1)/2, d)
	}
}
