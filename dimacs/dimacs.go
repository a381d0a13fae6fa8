// Package dimacs is the external collaborator spec.md calls out explicitly:
// everything about DIMACS text beyond what the solver core needs — the
// "p cnf V C" header, whitespace tokenizing, comment lines, clause
// terminators that may span lines — lives here, never in formula or solver.
// It talks to the core through exactly one interface, formula.Builder.
package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/satkit/dpllsat/formula"
)

// ErrMissingHeader is returned when the input never contains a "p cnf V C"
// line before EOF, or when a clause line appears before that header.
var ErrMissingHeader = errors.New("dimacs: missing \"p cnf\" header")

// ErrMalformedLiteral is returned when a clause token isn't a parseable,
// nonzero integer.
var ErrMalformedLiteral = errors.New("dimacs: malformed literal")

// ErrMalformedHeader is returned when the "p cnf" line doesn't have exactly
// the expected shape.
var ErrMalformedHeader = errors.New("dimacs: malformed \"p cnf\" header")

// Parse reads DIMACS CNF text from r and builds a formula.Formula via b. The
// caller may strip "c" comment lines beforehand (spec.md's Non-goals say the
// core need not see them), but Parse tolerates them appearing anywhere as a
// convenience, matching every DIMACS loader in the retrieval pack.
func Parse(r io.Reader, b formula.Builder) (*formula.Formula, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	headerSeen := false
	var numVars, numClauses int
	var pending []int

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "c":
			continue
		case "p":
			if headerSeen {
				return nil, fmt.Errorf("%w: duplicate header line", ErrMalformedHeader)
			}
			v, c, err := parseHeader(fields)
			if err != nil {
				return nil, err
			}
			numVars, numClauses = v, c
			headerSeen = true
			b.SetSize(numVars, numClauses)
			continue
		}
		if !headerSeen {
			return nil, ErrMissingHeader
		}
		for _, tok := range fields {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrMalformedLiteral, tok, err)
			}
			if n == 0 {
				if err := b.AddClause(pending); err != nil {
					return nil, err
				}
				pending = nil
				continue
			}
			pending = append(pending, n)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !headerSeen {
		return nil, ErrMissingHeader
	}
	if len(pending) > 0 {
		// A clause terminator "0" was never seen for the trailing clause;
		// accept it anyway the way a forgiving line-oriented reader would,
		// since spec.md trusts the input and performs no validation beyond
		// recognizing malformed headers.
		if err := b.AddClause(pending); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

func parseHeader(fields []string) (numVars, numClauses int, err error) {
	if len(fields) != 4 || fields[1] != "cnf" {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, strings.Join(fields, " "))
	}
	numVars, err = strconv.Atoi(fields[2])
	if err != nil || numVars < 0 {
		return 0, 0, fmt.Errorf("%w: invalid variable count %q", ErrMalformedHeader, fields[2])
	}
	numClauses, err = strconv.Atoi(fields[3])
	if err != nil || numClauses < 0 {
		return 0, 0, fmt.Errorf("%w: invalid clause count %q", ErrMalformedHeader, fields[3])
	}
	return numVars, numClauses, nil
}
