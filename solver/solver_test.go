package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTriviallySAT(t *testing.T) {
	f := mustParse("p cnf 1 1\n1 0\n")
	r := &captureReporter{}

	require.True(t, New(f, nil).Solve(r))
	require.True(t, r.sat)
	require.Equal(t, []bool{true}, r.assignment)
}

func TestTriviallyUNSAT(t *testing.T) {
	f := mustParse("p cnf 1 2\n1 0\n-1 0\n")
	r := &captureReporter{}

	require.False(t, New(f, nil).Solve(r))
	require.True(t, r.unsat)
}

func TestUnitPropagationChain(t *testing.T) {
	f := mustParse("p cnf 3 3\n1 0\n-1 2 0\n-2 3 0\n")
	r := &captureReporter{}

	require.True(t, New(f, nil).Solve(r))
	require.Equal(t, []bool{true, true, true}, r.assignment)
}

func TestPigeonholeTwoIntoOneUNSAT(t *testing.T) {
	f := mustParse("p cnf 2 3\n1 0\n2 0\n-1 -2 0\n")
	r := &captureReporter{}

	require.False(t, New(f, nil).Solve(r))
	require.True(t, r.unsat)
}

func TestRoundTripAgainstClauseEvaluator(t *testing.T) {
	clauses := [][]int{
		{1, -2, 3},
		{-1, 2},
		{2, 3, -4},
		{-3, 4},
		{1, 4, -5},
		{-2, 5},
	}
	f := mustParse("p cnf 5 6\n" +
		"1 -2 3 0\n-1 2 0\n2 3 -4 0\n-3 4 0\n1 4 -5 0\n-2 5 0\n")
	r := &captureReporter{}

	ok := New(f, nil).Solve(r)
	require.True(t, ok)
	require.Len(t, r.assignment, 5)

	for _, cl := range clauses {
		require.True(t, evalClause(cl, r.assignment), "clause %v not satisfied by %v", cl, r.assignment)
	}
}

func TestBackjumpSkipsSecondBranchWhenIrrelevant(t *testing.T) {
	// Variable 2 (0-indexed var 1) has the highest tally (score 3: two
	// positive occurrences, one negative) and branches first, trying true.
	// That immediately contradicts the unit clause "-2 0" on its own, with
	// no other variable named in the failing clause, so in_conflict[1]
	// stays empty and the false branch must never be attempted.
	f := mustParse("p cnf 3 4\n" +
		"1 2 0\n" +
		"2 3 0\n" +
		"-2 0\n" +
		"-3 0\n")

	s := New(f, nil)
	type call struct {
		v     int
		value bool
	}
	var calls []call
	s.onTryValue = func(v int, value bool) {
		calls = append(calls, call{v, value})
	}
	r := &captureReporter{}
	s.Solve(r)

	require.True(t, r.unsat)
	require.Len(t, calls, 1, "the top decision's self-contained conflict must not trigger a same-level retry")
	require.Equal(t, 1, calls[0].v, "variable 2 (index 1) has the highest tally and should decide first")
	require.True(t, calls[0].value, "majority sign for variable 2 is true (2 positive vs 1 negative occurrence)")
}

func TestNVarsAndNClauses(t *testing.T) {
	f := mustParse("p cnf 3 2\n1 2 0\n-1 3 0\n")
	s := New(f, nil)

	require.Equal(t, 3, s.NVars())
	require.Equal(t, 2, s.NClauses())
}

func TestStatsAccumulate(t *testing.T) {
	f := mustParse("p cnf 3 3\n1 0\n-1 2 0\n-2 3 0\n")
	s := New(f, nil)
	r := &captureReporter{}

	s.Solve(r)

	require.GreaterOrEqual(t, s.NPropagations(), 2)
	require.GreaterOrEqual(t, s.NDecisions(), 0)
}
