package solver

import (
	"strings"

	"github.com/satkit/dpllsat/dimacs"
	"github.com/satkit/dpllsat/formula"
)

// captureReporter is the Reporter used across this package's tests: it just
// remembers what it was told.
type captureReporter struct {
	sat        bool
	unsat      bool
	assignment []bool
}

func (c *captureReporter) SAT(assignment []bool) {
	c.sat = true
	c.assignment = assignment
}

func (c *captureReporter) UNSAT() {
	c.unsat = true
}

func mustParse(dimacsText string) *formula.Formula {
	f, err := dimacs.Parse(strings.NewReader(dimacsText), formula.NewBuilder())
	if err != nil {
		panic(err)
	}
	return f
}

// evalClause reports whether the clause is satisfied by assignment (1-based
// variable indexing, assignment[v-1] is v's boolean value).
func evalClause(lits []int, assignment []bool) bool {
	for _, l := range lits {
		v := l
		neg := false
		if v < 0 {
			v = -v
			neg = true
		}
		val := assignment[v-1]
		if neg {
			val = !val
		}
		if val {
			return true
		}
	}
	return false
}
