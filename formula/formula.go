// Package formula holds the immutable formula store: the clauses of a CNF
// problem and, for each variable, the list of clauses it occurs in. Once
// built, a Formula is never mutated again — all of the solver's working
// state lives elsewhere, keyed by the indices this package hands out.
package formula

import "github.com/satkit/dpllsat/lit"

// App is an occurrence entry: an encoded reference from a variable back to a
// clause it appears in, together with the sign of that appearance. It is
// encoded the same way lit.Lit encodes a literal — a single signed integer —
// because the two ideas are the same shape: "clause c, positively" and
// "clause c, negatively" differ only in a sign bit.
type App int

// NewApp returns the occurrence entry for clause index c with the given
// sign (true for a positive occurrence).
func NewApp(c int, positive bool) App {
	if positive {
		return App(c + 1)
	}
	return App(-(c + 1))
}

// Clause returns the 0-indexed clause this occurrence refers to.
func (a App) Clause() int {
	if a < 0 {
		return int(-a) - 1
	}
	return int(a) - 1
}

// Positive reports whether the variable occurs positively in the clause.
func (a App) Positive() bool {
	return a > 0
}

// Clause is an ordered sequence of literals over (not necessarily distinct)
// variables, exactly as read from the input — no de-duplication or
// tautology removal is performed by the store.
type Clause struct {
	Lits []lit.Lit
}

// Len returns the clause's size.
func (c Clause) Len() int {
	return len(c.Lits)
}

// Formula is the immutable store described in spec §4.1: V variables, C
// clauses, and each variable's occurrence list.
type Formula struct {
	V int
	C int

	Clauses     []Clause
	Appearances [][]App
}

// NVars returns the number of variables.
func (f *Formula) NVars() int {
	return f.V
}

// NClauses returns the number of clauses.
func (f *Formula) NClauses() int {
	return f.C
}
