package solver

import (
	"github.com/satkit/dpllsat/tribool"
	"github.com/sirupsen/logrus"
)

// assign sets variable v to value and walks its occurrence list, maintaining
// every derived invariant of spec §3 in one pass: rem[c] accuracy,
// satisfier[c] accuracy, nunsat accuracy, and the heuristic tallies. It is
// idempotent — assigning an already-set variable is a no-op success,
// exactly as spec §4.2 requires, which is what lets the propagation queue
// enqueue a variable more than once safely.
//
// On conflict it performs its own partial rollback (unassignUpto) before
// returning false, so a caller never has to know how far the failed
// assignment got before failing.
func (s *Solver) assign(v int, value bool) bool {
	if s.assn[v] != tribool.Undef {
		return true
	}
	s.assn[v] = tribool.NewFromBool(value)
	s.logger.WithFields(logrus.Fields{"var": v, "value": value}).Debug("assign")

	apps := s.f.Appearances[v]
	for i, app := range apps {
		c := app.Clause()
		s.rem[c]--

		if app.Positive() == value {
			// Case A: this occurrence satisfies (or keeps satisfied) c.
			if s.satisfier[c] == 0 {
				s.satisfier[c] = v + 1
				s.nunsat--
				s.unmarkClause(c)
				s.logger.WithFields(logrus.Fields{"var": v, "clause": c}).Debug("satisfied")
			}
			continue
		}

		// Case B: this occurrence contradicts value. It can never help
		// satisfy c again while v holds this value, so it is removed from
		// its own tally — and only its own, per the I4 contract (see
		// DESIGN.md's note on the divergence from the original source here).
		if app.Positive() {
			s.nposApp[v]--
		} else {
			s.nnegApp[v]--
		}

		if s.satisfier[c] != 0 {
			continue
		}
		switch s.rem[c] {
		case 0:
			// Every literal in c is now falsified: conflict.
			s.logger.WithFields(logrus.Fields{"var": v, "clause": c}).Debug("contradiction")
			s.tracker.BackpropConflict(v, s.clauseVarsExcept(c, v))
			s.unassignUpto(v, value, i+1)
			return false
		case 1:
			s.logger.WithFields(logrus.Fields{"var": v, "clause": c}).Debug("unit")
			s.enqueueUnit(c)
		}
	}
	return true
}

// enqueueUnit finds clause c's sole unassigned literal and queues it,
// recording which clause forced it so backjumping can later attribute the
// failure correctly.
func (s *Solver) enqueueUnit(c int) {
	for _, l := range s.f.Clauses[c].Lits {
		if s.assn[l.Index()] == tribool.Undef {
			s.queue.Push(l)
			s.proppingClause[l.Index()] = c
			return
		}
	}
}

// unassignUpto reverses the first upto steps of an assign(v, value) call,
// the bounded form that lets a mid-assign conflict undo exactly the
// occurrences it touched and no more.
func (s *Solver) unassignUpto(v int, value bool, upto int) {
	if s.assn[v] == tribool.Undef {
		return
	}
	s.assn[v] = tribool.Undef

	apps := s.f.Appearances[v]
	for i := 0; i < upto; i++ {
		app := apps[i]
		c := app.Clause()
		s.rem[c]++

		if app.Positive() == value {
			if s.satisfier[c] == v+1 {
				s.satisfier[c] = 0
				s.nunsat++
				s.markClause(c)
			}
			continue
		}
		if app.Positive() {
			s.nposApp[v]++
		} else {
			s.nnegApp[v]++
		}
	}
}

// unassign fully reverses assign(v, value).
func (s *Solver) unassign(v int, value bool) {
	s.unassignUpto(v, value, len(s.f.Appearances[v]))
}

// unmarkClause removes every literal of c from the heuristic tallies —
// called the instant c becomes satisfied, since npos_app/nneg_app only ever
// count occurrences in not-yet-satisfied clauses (spec §3 I4).
func (s *Solver) unmarkClause(c int) {
	s.markOrUnmarkClause(c, -1)
}

// markClause restores every literal of c to the heuristic tallies — called
// when c becomes unsatisfied again on backtrack.
func (s *Solver) markClause(c int) {
	s.markOrUnmarkClause(c, 1)
}

func (s *Solver) markOrUnmarkClause(c int, delta int) {
	for _, l := range s.f.Clauses[c].Lits {
		if l.Sign() {
			s.nnegApp[l.Index()] += delta
		} else {
			s.nposApp[l.Index()] += delta
		}
	}
}
