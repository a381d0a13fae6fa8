// Package solver implements the search engine of spec §2–§5: assignment
// state, a counter-based propagation engine, and a depth-first backtracking
// driver with conflict-directed backjumping. It never parses DIMACS text and
// never formats output — those cross the Reporter boundary below, the
// second of the two interfaces spec.md allows the core to depend on (the
// first, formula.Builder, is defined in the formula package and driven by
// the dimacs package).
package solver

import (
	"github.com/satkit/dpllsat/config"
	"github.com/satkit/dpllsat/conflict"
	"github.com/satkit/dpllsat/formula"
	"github.com/satkit/dpllsat/lit"
	"github.com/satkit/dpllsat/tribool"
	"github.com/sirupsen/logrus"
)

// Reporter consumes the outcome of a search: either a complete assignment
// vector (SAT) or nothing at all (UNSAT). Formatting that outcome for a
// terminal, a file, or a test assertion is the reporter's job, not the
// solver's.
type Reporter interface {
	SAT(assignment []bool)
	UNSAT()
}

// Solver is the search engine's aggregate state — the module-level arrays
// of the original design collapsed into fields owned by one struct with a
// lifetime bounded by Solve, per spec §9's "no process-wide singletons"
// note.
type Solver struct {
	config *config.Config
	logger *logrus.Logger

	f *formula.Formula

	// Assignment state (spec §3 "Derived, per-clause/per-variable, mutable").
	assn      []tribool.Tribool
	rem       []int
	satisfier []int
	nunsat    int
	nposApp   []int
	nnegApp   []int

	// Propagation engine (spec §3 "Propagation queue").
	queue          *lit.Queue
	nproppedAt     []int
	proppingClause []int

	// Conflict tracker (spec §3/§4.4).
	tracker *conflict.Tracker

	// Stats, surfaced the way EricR-saturday's Solver surfaces NConflicts
	// etc. to its CLI.
	decisions    int
	propagations int
	conflicts    int

	// onTryValue is a test-only instrumentation hook: when set, it is
	// invoked at the start of every tryValue call. Production code never
	// sets it.
	onTryValue func(v int, value bool)
}

// New builds a Solver over a fully-loaded Formula. The formula is never
// mutated afterward; everything mutable lives in the fields above.
func New(f *formula.Formula, conf *config.Config) *Solver {
	if conf == nil {
		conf = config.New()
	}

	s := &Solver{
		config:         conf,
		logger:         conf.Logger,
		f:              f,
		assn:           make([]tribool.Tribool, f.V),
		rem:            make([]int, f.C),
		satisfier:      make([]int, f.C),
		nposApp:        make([]int, f.V),
		nnegApp:        make([]int, f.V),
		queue:          lit.NewQueue(),
		nproppedAt:     make([]int, f.V),
		proppingClause: make([]int, f.V),
		tracker:        conflict.New(f.V),
	}
	for c, cl := range f.Clauses {
		s.rem[c] = cl.Len()
	}
	s.nunsat = f.C
	for v := range s.nposApp {
		for _, app := range f.Appearances[v] {
			if app.Positive() {
				s.nposApp[v]++
			} else {
				s.nnegApp[v]++
			}
		}
	}
	return s
}

// Solve runs the search driver to completion and reports the outcome.
func (s *Solver) Solve(r Reporter) bool {
	if s.dfs(0) {
		r.SAT(s.assignment())
		return true
	}
	r.UNSAT()
	return false
}

// assignment reports every variable's current boolean value, with any
// variable left unset (search stops as soon as every clause is satisfied,
// so variables that never appeared, or appear only in clauses already
// satisfied by others, can stay unset) defaulting to false — the same default the original C implementation
// prints for an unset slot.
func (s *Solver) assignment() []bool {
	out := make([]bool, s.f.V)
	for v, a := range s.assn {
		out[v] = a.True()
	}
	return out
}

// NVars returns the number of variables in the formula.
func (s *Solver) NVars() int { return s.f.V }

// NClauses returns the number of clauses in the formula.
func (s *Solver) NClauses() int { return s.f.C }

// NDecisions returns the number of branching decisions made during search.
func (s *Solver) NDecisions() int { return s.decisions }

// NPropagations returns the number of unit propagations performed.
func (s *Solver) NPropagations() int { return s.propagations }

// NConflicts returns the number of decisions whose first value failed in a
// way that named the decision variable, so that its opposite value was
// tried. Failures that backjump past a decision are not counted.
func (s *Solver) NConflicts() int { return s.conflicts }

// clauseVarsExcept returns every variable index appearing in clause c other
// than v, used to spread conflict attribution across a clause's other
// literals (spec §4.4's backprop_conflict).
func (s *Solver) clauseVarsExcept(c, v int) []int {
	lits := s.f.Clauses[c].Lits
	out := make([]int, 0, len(lits))
	for _, l := range lits {
		if u := l.Index(); u != v {
			out = append(out, u)
		}
	}
	return out
}
