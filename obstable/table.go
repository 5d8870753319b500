package obstable

import (
	"fmt"

	"github.com/dotasmt/dotasmt/automaton"
	"github.com/dotasmt/dotasmt/region"
	"github.com/dotasmt/dotasmt/tword"
)

// Table is the learner's observation table: R, S, E, and the teacher they
// were built against (spec §3).
type Table struct {
	teacher *automaton.Automaton
	Actions []string

	R     map[string]*Row
	order []string // insertion order of R keys, for deterministic iteration

	S []*Row
	E []tword.TimedWord
}

// NewTable builds a fresh table against teacher, seeded with the empty
// word in both R and S (spec §3: "the empty word is always in S").
func NewTable(teacher *automaton.Automaton) *Table {
	t := &Table{
		teacher: teacher,
		Actions: append([]string(nil), teacher.Alphabet...),
		R:       make(map[string]*Row),
	}
	t.AddPath(tword.Empty)
	_ = t.AddToS(tword.Empty)

	return t
}

// Rows returns every row currently in R, in the order they were created.
func (t *Table) Rows() []*Row {
	out := make([]*Row, len(t.order))
	for i, key := range t.order {
		out[i] = t.R[key]
	}

	return out
}

func (t *Table) known(key string) bool {
	if _, ok := t.R[key]; ok {
		return true
	}
	for _, row := range t.S {
		if row.Prefix.String() == key {
			return true
		}
	}

	return false
}

// AddPath adds w and every one of its prefixes to R, stopping once a
// prefix reaches the sink (spec §4.6 addPath; rows are never removed).
func (t *Table) AddPath(w tword.TimedWord) {
	for _, p := range w.Prefixes() {
		key := p.String()
		if t.known(key) {
			continue
		}
		row := NewRow(t.teacher, p)
		t.R[key] = row
		t.order = append(t.order, key)
		if row.IsSink() {
			break
		}
	}
}

// AddToS promotes the row for w from R to S, and — unless w leads to
// sink — ensures every one-action, zero-delay extension of w is present
// in R (spec §4.6 addToS, the stricter variant confirmed in §9: zero
// extensions are always populated for every S member).
func (t *Table) AddToS(w tword.TimedWord) error {
	key := w.String()
	row, ok := t.R[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotInR, key)
	}
	delete(t.R, key)
	t.S = append(t.S, row)

	if row.IsSink() {
		return nil
	}
	for _, a := range t.Actions {
		ext := w.Append(tword.NewStep(a, 0))
		extKey := ext.String()
		if t.known(extKey) {
			continue
		}
		extRow := NewRow(t.teacher, ext)
		t.R[extKey] = extRow
		t.order = append(t.order, extKey)
	}

	return nil
}

// RowFor looks up the row for prefix, whether it currently lives in R or
// has been promoted to S.
func (t *Table) RowFor(prefix tword.TimedWord) (*Row, bool) {
	key := prefix.String()
	if r, ok := t.R[key]; ok {
		return r, true
	}
	for _, r := range t.S {
		if r.Prefix.String() == key {
			return r, true
		}
	}

	return nil, false
}

// Close checks whether every row in R is indistinguishable from some row
// already in S (the standard L*-style closedness check). If it finds one
// that is not, it promotes that row to S and reports added=true — the
// caller should re-run Close until it reports false before encoding.
func (t *Table) Close() (added bool, err error) {
	for _, r := range t.Rows() {
		equivalentToSome := false
		for _, s := range t.S {
			_, distinguished, derr := t.FindDistinguishingSuffix(r, s, region.Zero, region.Zero)
			if derr != nil {
				return false, derr
			}
			if !distinguished {
				equivalentToSome = true

				break
			}
		}
		if !equivalentToSome {
			if err := t.AddToS(r.Prefix); err != nil {
				return false, err
			}

			return true, nil
		}
	}

	return false, nil
}

// AddSuffix appends e to E if not already present, growing the
// discriminator set monotonically (spec §3).
func (t *Table) AddSuffix(e tword.TimedWord) {
	for _, existing := range t.E {
		if existing.Equal(e) {
			return
		}
	}
	t.E = append(t.E, e)
}
