package sat

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const (
	inputPlaceholder  = "%I"
	outputPlaceholder = "%O"
)

// CommandSolver answers the Solver contract by shelling out to an external
// solver: it writes cnf to a temporary DIMACS file, substitutes that file's
// path for %I and a second temporary file's path for %O in the configured
// command template, runs the template through a shell, and parses the %O
// file back as a DIMACS solution. No file present in the retrieved corpus
// shows this placeholder-substitution-then-subprocess pattern (the closest
// os/exec usage found spawns fixed argument vectors, never a templated
// command line), so this file leans on the standard library; see
// DESIGN.md's sat entry for the justification.
type CommandSolver struct {
	template string
}

// NewCommandSolver validates template and returns a CommandSolver bound to
// it. Per spec.md §6, a template missing either placeholder is rejected at
// configuration time rather than deferred to the first Solve call.
func NewCommandSolver(template string) (*CommandSolver, error) {
	if !strings.Contains(template, inputPlaceholder) || !strings.Contains(template, outputPlaceholder) {
		return nil, ErrMissingPlaceholder
	}
	stripped := strings.NewReplacer(inputPlaceholder, "", outputPlaceholder, "").Replace(template)
	if strings.TrimSpace(stripped) == "" {
		return nil, ErrEmptyTemplate
	}

	return &CommandSolver{template: template}, nil
}

// Solve implements Solver.
func (c *CommandSolver) Solve(cnf CNF) (Model, bool, error) {
	in, err := os.CreateTemp("", "sat-in-*.cnf")
	if err != nil {
		return nil, false, fmt.Errorf("sat: %w: %w", err, ErrSolverFailed)
	}
	defer os.Remove(in.Name())
	defer in.Close()

	if err := WriteDIMACS(in, cnf); err != nil {
		return nil, false, fmt.Errorf("sat: writing input: %w: %w", err, ErrSolverFailed)
	}
	if err := in.Close(); err != nil {
		return nil, false, fmt.Errorf("sat: %w: %w", err, ErrSolverFailed)
	}

	out, err := os.CreateTemp("", "sat-out-*.mod")
	if err != nil {
		return nil, false, fmt.Errorf("sat: %w: %w", err, ErrSolverFailed)
	}
	outName := out.Name()
	out.Close()
	defer os.Remove(outName)

	cmdline := strings.NewReplacer(inputPlaceholder, in.Name(), outputPlaceholder, outName).Replace(c.template)

	cmd := exec.Command("sh", "-c", cmdline)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, false, fmt.Errorf("sat: running %q: %w: %s: %w", cmdline, err, stderr.String(), ErrSolverFailed)
	}

	f, err := os.Open(outName)
	if err != nil {
		return nil, false, fmt.Errorf("sat: opening solver output: %w: %w", err, ErrSolverFailed)
	}
	defer f.Close()

	return ReadDIMACSModel(f)
}
