package main

import (
	"fmt"
	"os"
	"time"

	"github.com/satkit/dpllsat/config"
	"github.com/satkit/dpllsat/dimacs"
	"github.com/satkit/dpllsat/formula"
	"github.com/satkit/dpllsat/solver"
	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dpllsat input.cnf",
	Short: "Solve a DIMACS CNF instance with a DPLL backtracking search",
	Long: `dpllsat reads a DIMACS CNF file, runs a depth-first backtracking
search with unit propagation and conflict-directed backjumping, and reports
either a satisfying assignment or UNSAT.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each assignment at debug level")
}

func run(cmd *cobra.Command, args []string) error {
	conf := config.New()
	conf.SetVerbose(verbose)

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}
	defer f.Close()

	cnf, err := dimacs.Parse(f, formula.NewBuilder())
	if err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}

	conf.Logger.Infof("loaded %d variables, %d clauses from %s", cnf.NVars(), cnf.NClauses(), args[0])

	s := solver.New(cnf, conf)

	tStart := time.Now()
	r := &stdoutReporter{}
	s.Solve(r)
	elapsed := time.Since(tStart)

	displayStats(s, elapsed, conf)

	return nil
}

// stdoutReporter implements solver.Reporter by writing the exact text
// format named in the external interface section: one "i b" line per
// variable on SAT, the single line UNSAT otherwise.
type stdoutReporter struct{}

func (r *stdoutReporter) SAT(assignment []bool) {
	for i, v := range assignment {
		b := 0
		if v {
			b = 1
		}
		fmt.Fprintf(os.Stdout, "%d %d\n", i+1, b)
	}
}

func (r *stdoutReporter) UNSAT() {
	fmt.Fprintln(os.Stdout, "UNSAT")
}

func displayStats(s *solver.Solver, t time.Duration, conf *config.Config) {
	conf.Logger.Debugf("time taken:   %fs", t.Seconds())
	conf.Logger.Debugf("variables:    %d", s.NVars())
	conf.Logger.Debugf("clauses:      %d", s.NClauses())
	conf.Logger.Debugf("decisions:    %d", s.NDecisions())
	conf.Logger.Debugf("propagations: %d", s.NPropagations())
	conf.Logger.Debugf("conflicts:    %d", s.NConflicts())
}
