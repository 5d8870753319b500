package learner

import (
	"errors"

	"github.com/projectdiscovery/gologger"

	"github.com/dotasmt/dotasmt/automaton"
	"github.com/dotasmt/dotasmt/candidate"
	"github.com/dotasmt/dotasmt/constraint"
	"github.com/dotasmt/dotasmt/inclusion"
	"github.com/dotasmt/dotasmt/metrics"
	"github.com/dotasmt/dotasmt/obstable"
)

// ErrNoModelFound is returned when cfg.MaxStates is exhausted without the
// constraint solver ever finding a satisfiable assignment consistent with
// an equivalent candidate.
var ErrNoModelFound = errors.New("learner: exhausted max state count without converging")

// Learn runs the active-learning loop of spec §7 against teacher,
// returning the learned automaton and the metrics counters accumulated
// along the way.
func Learn(teacher Teacher, cfg Config) (*automaton.Automaton, metrics.Counters, error) {
	var counters metrics.Counters

	completeTeacher := teacher
	if teacher.SinkName == "" {
		var err error
		completeTeacher, err = automaton.BuildAssistant(teacher)
		if err != nil {
			return nil, counters, err
		}
	}

	table := obstable.NewTable(completeTeacher)

	for stateNum := 1; stateNum <= cfg.MaxStates; stateNum++ {
		gologger.Debug().Msgf("learner: trying state_num=%d", stateNum)
		if err := stabilize(table); err != nil {
			return nil, counters, err
		}

		for {
			solver := constraint.NewFDSolver()
			enc := constraint.NewEncoder(solver, table, cfg.ClockBound, stateNum).WithEnhancedResetPairs(cfg.EnhancedResetPairs)
			restart, err := enc.EncodeAll()
			if err != nil {
				return nil, counters, err
			}
			if restart {
				gologger.Debug().Msgf("learner: C4 grew the suffix set, re-encoding state_num=%d", stateNum)
				if err := stabilize(table); err != nil {
					return nil, counters, err
				}

				continue
			}

			ok, err := solver.Check()
			if err != nil {
				return nil, counters, err
			}
			counters.SyncMembershipQueries(completeTeacher.MembershipQueryCount())
			counters.SetLocations(stateNum)
			if !ok {
				gologger.Debug().Msgf("learner: state_num=%d unsatisfiable, growing", stateNum)

				break
			}

			cand, err := candidate.Assemble(enc, solver.Model(), table, stateNum, completeTeacher.Alphabet, "candidate")
			if err != nil {
				return nil, counters, err
			}

			counters.RecordEquivalenceQuery()
			equivalent, cex, err := inclusion.Equivalent(cfg.ClockBound, completeTeacher, cand)
			if err != nil {
				return nil, counters, err
			}
			if equivalent {
				counters.SyncMembershipQueries(completeTeacher.MembershipQueryCount())
				gologger.Info().Msgf("learner: converged at state_num=%d after %d membership and %d equivalence queries",
					stateNum, counters.MembershipQueries, counters.EquivalenceQueries)

				return cand, counters, nil
			}

			gologger.Debug().Msgf("learner: equivalence query failed, counterexample %q", cex.String())
			table.AddPath(cex)
			if err := stabilize(table); err != nil {
				return nil, counters, err
			}
		}
	}

	gologger.Error().Msgf("learner: exhausted max_states=%d without converging", cfg.MaxStates)

	return nil, counters, ErrNoModelFound
}

// stabilize repeatedly closes table until every R-row is indistinguishable
// from some S-row (spec §4.6's prefix-closure/closedness precondition for
// encoding against a fixed state_num).
func stabilize(table *obstable.Table) error {
	for {
		added, err := table.Close()
		if err != nil {
			return err
		}
		if !added {
			return nil
		}
	}
}
