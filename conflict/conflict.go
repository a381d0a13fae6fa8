// Package conflict implements the conflict tracker of spec §3/§4.4: for
// every variable v, the set of variables whose assignment contributed to a
// failure observed at v, and the inverse relation. These two sets drive the
// search driver's backjumping decision.
package conflict

// set is a small map-backed set, the shape adapted from the generic Set[T]
// pattern (map[T]any with Add/Delete/Has/All via iter.Seq) used for
// membership sets elsewhere in the retrieval pack; specialized here to int
// since a conflict set only ever holds variable indices.
type set map[int]struct{}

func (s set) add(v int)      { s[v] = struct{}{} }
func (s set) has(v int) bool { _, ok := s[v]; return ok }
func (s set) clear() {
	for v := range s {
		delete(s, v)
	}
}

// Tracker owns the conflict/in_conflict relation for every variable. Its
// zero value is not usable; construct with New.
type Tracker struct {
	conflict   []set
	inConflict []set
}

// New returns a Tracker sized for n variables, all conflict sets empty.
func New(n int) *Tracker {
	t := &Tracker{
		conflict:   make([]set, n),
		inConflict: make([]set, n),
	}
	for i := range t.conflict {
		t.conflict[i] = set{}
		t.inConflict[i] = set{}
	}
	return t
}

// edge records u -> v: u contributed to a failure observed at v. Both sides
// of the symmetry invariant (u ∈ conflict[v] ⇔ v ∈ in_conflict[u]) are
// always written together so the invariant can never be observed broken.
func (t *Tracker) edge(u, v int) {
	if u == v {
		return
	}
	t.conflict[v].add(u)
	t.inConflict[u].add(v)
}

// ClearVar clears both of v's sets — called when v becomes a fresh decision
// variable or when a unit-propagated assignment of v begins.
func (t *Tracker) ClearVar(v int) {
	t.conflict[v].clear()
	t.inConflict[v].clear()
}

// BackpropConflict is called when variable v's assignment caused clause c to
// become empty. For every other variable appearing in c, it records that
// that variable's assignment contributed to v's failure, then lifts in any
// conflict knowledge already recorded against those variables.
func (t *Tracker) BackpropConflict(v int, clauseVars []int) {
	for _, u := range clauseVars {
		t.edge(u, v)
	}
	t.AugmentConflict(v)
}

// AugmentConflict lifts conflict knowledge recorded at variables that named
// v: for every u that is in_conflict with v, every variable w in u's
// conflict set (other than v itself) is also recorded as contributing to
// v's failure. After lifting, in_conflict[v] is cleared — its content has
// been fully consumed into conflict[v].
func (t *Tracker) AugmentConflict(v int) {
	for u := range t.inConflict[v] {
		for w := range t.conflict[u] {
			if w != v {
				t.edge(w, v)
			}
		}
	}
	t.inConflict[v].clear()
}

// InConflictSet reports whether anything has named v in its conflict
// analysis — i.e. whether a failure beneath v was relevant to v at all.
func (t *Tracker) InConflictSet(v int) bool {
	return len(t.inConflict[v]) > 0
}

// ConflictVars returns the variables currently in v's conflict set as a
// plain slice, useful for tests and diagnostics.
func (t *Tracker) ConflictVars(v int) []int {
	out := make([]int, 0, len(t.conflict[v]))
	for u := range t.conflict[v] {
		out = append(out, u)
	}
	return out
}

// HasConflictEdge reports whether u ∈ conflict[v] — exposed for invariant
// testing (spec §8's I5/I6).
func (t *Tracker) HasConflictEdge(u, v int) bool {
	return t.conflict[v].has(u)
}

// HasInConflictEdge reports whether v ∈ in_conflict[u] — the mirror of
// HasConflictEdge, used to assert the symmetry invariant directly.
func (t *Tracker) HasInConflictEdge(u, v int) bool {
	return t.inConflict[u].has(v)
}
