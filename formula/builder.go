package formula

import (
	"errors"

	"github.com/satkit/dpllsat/lit"
)

// errBuiltBuilder is returned by AddClause once Build has already run.
var errBuiltBuilder = errors.New("formula: AddClause called after Build")

// Builder is the one channel by which an external loader delivers a problem
// into the core. Nothing downstream of Build ever re-reads the original
// input: the Formula it returns is the complete, immutable contract between
// "how the text was structured" and "what the search engine operates on".
//
// A caller drives a Builder as:
//
//	b := NewBuilder()
//	b.SetSize(v, c)
//	for each clause { b.AddClause(lits) }
//	f, err := b.Build()
type Builder interface {
	// SetSize declares the number of variables and clauses up front, so the
	// builder can size its occurrence lists exactly rather than growing them.
	SetSize(numVars, numClauses int)
	// AddClause appends one clause, given as signed, nonzero, 1-indexed
	// literals exactly as they appear in DIMACS text.
	AddClause(lits []int) error
	// Build finalizes the formula. It is an error to call AddClause after
	// Build.
	Build() (*Formula, error)
}

// DefaultBuilder is the reference Builder implementation: a two-pass
// count-then-fill accumulator that allocates each variable's occurrence list
// to its exact final length, mirroring the original count-into-napps /
// allocate / fill approach.
type DefaultBuilder struct {
	v, c    int
	counts  []int
	clauses []Clause
	built   bool
}

// NewBuilder returns a new, empty DefaultBuilder.
func NewBuilder() *DefaultBuilder {
	return &DefaultBuilder{}
}

// SetSize implements Builder.
func (b *DefaultBuilder) SetSize(numVars, numClauses int) {
	b.v = numVars
	b.c = numClauses
	b.counts = make([]int, numVars)
	b.clauses = make([]Clause, 0, numClauses)
}

// AddClause implements Builder. It grows the variable count on the fly if a
// clause references a variable beyond the declared size, so a malformed or
// absent header doesn't crash the builder — validation of that is the
// loader's job (see the dimacs package), not the formula store's.
func (b *DefaultBuilder) AddClause(ps []int) error {
	if b.built {
		return errBuiltBuilder
	}
	lits := make([]lit.Lit, 0, len(ps))

	for _, p := range ps {
		l := lit.NewFromInt(p)
		if l.Index() >= b.v {
			b.growTo(l.Index() + 1)
		}
		lits = append(lits, l)
		b.counts[l.Index()]++
	}
	b.clauses = append(b.clauses, Clause{Lits: lits})

	return nil
}

func (b *DefaultBuilder) growTo(v int) {
	for len(b.counts) < v {
		b.counts = append(b.counts, 0)
	}
	b.v = len(b.counts)
}

// Build implements Builder: it allocates each appearances[v] to its final
// length (from the counts gathered during AddClause) and then fills it in a
// second pass, so no slice is ever grown by append during fill.
func (b *DefaultBuilder) Build() (*Formula, error) {
	appearances := make([][]App, b.v)
	fill := make([]int, b.v)

	for v, n := range b.counts {
		appearances[v] = make([]App, n)
	}
	for ci, cl := range b.clauses {
		for _, l := range cl.Lits {
			v := l.Index()
			appearances[v][fill[v]] = NewApp(ci, !l.Sign())
			fill[v]++
		}
	}
	b.built = true

	return &Formula{
		V:           b.v,
		C:           len(b.clauses),
		Clauses:     b.clauses,
		Appearances: appearances,
	}, nil
}
