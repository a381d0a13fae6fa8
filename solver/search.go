package solver

import "github.com/satkit/dpllsat/tribool"

// dfs is the search driver of spec §4.5. It returns true the moment every
// clause is satisfied, and otherwise picks the most-constrained unset
// variable, tries its majority sign first (true on a tie), and either returns SAT, tries
// the opposite sign after absorbing lifted conflict information, or
// backjumps straight past this level when the first failure turns out to
// have been irrelevant to it.
func (s *Solver) dfs(level int) bool {
	if s.nunsat == 0 {
		return true
	}

	v, ok := s.mostConstrainedVar()
	if !ok {
		// Every variable is set yet clauses remain unsatisfied, or no
		// variable was ever eligible — the "stuck without satisfying"
		// terminal of spec §4.5. In typical inputs nunsat reaches 0 first.
		return false
	}

	s.nproppedAt[v] = s.queue.Len()
	s.tracker.ClearVar(v)
	s.decisions++

	firstValue := s.nposApp[v] >= s.nnegApp[v]

	if s.tryValue(v, firstValue, level) {
		return true
	}

	if !s.tracker.InConflictSet(v) {
		// The failure beneath v never named v: backjump past it without
		// trying the second sign.
		return false
	}

	s.conflicts++
	s.tracker.AugmentConflict(v)

	return s.tryValue(v, !firstValue, level)
}

// mostConstrainedVar chooses an unset variable maximizing
// npos_app[v]+nneg_app[v], breaking ties by lowest index (the scan only
// replaces its candidate on a strictly greater score, and runs low to
// high, so the first variable to reach the maximum wins). It returns
// (0, false) when no unset variable has a positive score — the zero-score
// terminal spec §9 calls out, which dfs only ever reaches after already
// ruling out nunsat == 0.
func (s *Solver) mostConstrainedVar() (int, bool) {
	best := -1
	bestScore := 0

	for v := 0; v < s.f.V; v++ {
		if s.assn[v] != tribool.Undef {
			continue
		}
		if score := s.nposApp[v] + s.nnegApp[v]; score > bestScore {
			best = v
			bestScore = score
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// tryValue packages one branch attempt: assign, propagate, recurse, and on
// any failure undo in the exact reverse order so that every success path is
// matched by a precisely-scoped undo on the failure path (spec §4.5).
func (s *Solver) tryValue(v int, value bool, level int) bool {
	if s.onTryValue != nil {
		s.onTryValue(v, value)
	}
	if !s.assign(v, value) {
		return false
	}
	if s.doUnitPropagations(s.nproppedAt[v]) {
		if s.dfs(level + 1) {
			return true
		}
		s.undoUnitPropagations(s.nproppedAt[v], s.queue.Len())
	}
	s.unassign(v, value)

	return false
}
