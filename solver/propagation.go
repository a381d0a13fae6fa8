package solver

// doUnitPropagations drains the propagation queue from position from to its
// current end, assigning each queued literal in turn. The queue may grow
// during the loop, since assigning one forced literal can make another
// clause unit — do_unit_propagations's range naturally picks those up
// because it re-reads s.queue.Len() every iteration.
//
// Each propagated variable's conflict sets are cleared before it's assigned:
// a fresh implication starts with a clean conflict record (spec §4.6).
func (s *Solver) doUnitPropagations(from int) bool {
	for i := from; i < s.queue.Len(); i++ {
		l := s.queue.At(i)
		v := l.Index()

		s.tracker.ClearVar(v)

		if !s.assign(v, !l.Sign()) {
			s.undoUnitPropagations(from, i)
			return false
		}
		s.propagations++
	}
	return true
}

// undoUnitPropagations reverses queue positions [low, high) in reverse
// order. Before unassigning each one, it re-records the conflict
// attribution for the clause that forced it — the fact that this
// propagation happened at all is itself a conflict dependency, and it must
// be visible up the tree even though the propagation is about to be wiped
// out (spec §4.6).
func (s *Solver) undoUnitPropagations(low, high int) {
	for i := high - 1; i >= low; i-- {
		l := s.queue.At(i)
		v := l.Index()

		s.tracker.BackpropConflict(v, s.clauseVarsExcept(s.proppingClause[v], v))
		s.unassign(v, !l.Sign())
	}
	s.queue.Truncate(low)
}
