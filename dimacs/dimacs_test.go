package dimacs

import (
	"strings"
	"testing"

	"github.com/satkit/dpllsat/formula"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleFormula(t *testing.T) {
	in := "p cnf 3 2\n1 -2 0\n2 3 0\n"

	f, err := Parse(strings.NewReader(in), formula.NewBuilder())
	require.NoError(t, err)
	require.Equal(t, 3, f.V)
	require.Equal(t, 2, f.C)
}

func TestParseToleratesComments(t *testing.T) {
	in := "c a comment\np cnf 1 1\nc another comment\n1 0\n"

	f, err := Parse(strings.NewReader(in), formula.NewBuilder())
	require.NoError(t, err)
	require.Equal(t, 1, f.V)
	require.Equal(t, 1, f.C)
}

func TestParseClauseSpanningLines(t *testing.T) {
	in := "p cnf 3 1\n1 -2\n3 0\n"

	f, err := Parse(strings.NewReader(in), formula.NewBuilder())
	require.NoError(t, err)
	require.Equal(t, 1, f.C)
	require.Equal(t, 3, f.Clauses[0].Len())
}

func TestParseMissingHeader(t *testing.T) {
	in := "1 -2 0\n"

	_, err := Parse(strings.NewReader(in), formula.NewBuilder())
	require.ErrorIs(t, err, ErrMissingHeader)
}

func TestParseMalformedLiteral(t *testing.T) {
	in := "p cnf 2 1\n1 notanumber 0\n"

	_, err := Parse(strings.NewReader(in), formula.NewBuilder())
	require.ErrorIs(t, err, ErrMalformedLiteral)
}

func TestParseMalformedHeader(t *testing.T) {
	in := "p cnf oops 1\n1 0\n"

	_, err := Parse(strings.NewReader(in), formula.NewBuilder())
	require.ErrorIs(t, err, ErrMalformedHeader)
}
