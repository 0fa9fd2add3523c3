package sat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteDIMACS serializes cnf in the standard DIMACS CNF text format: a
// leading "p cnf <vars> <clauses>" header, then one line per clause, each
// ending in a terminating 0.
func WriteDIMACS(w io.Writer, cnf CNF) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", cnf.NumVars, len(cnf.Clauses)); err != nil {
		return err
	}
	for _, cl := range cnf.Clauses {
		for _, lit := range cl {
			if _, err := fmt.Fprintf(bw, "%d ", lit); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("0\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadDIMACSModel parses an external solver's DIMACS-style solution
// stream: a "s SATISFIABLE"/"s UNSATISFIABLE" status line, optionally
// followed by one or more "v ..." lines listing the signed literals of the
// model, terminated by a literal 0. Lines beginning with "c" are comments
// and are skipped. Returns (nil, false, nil) on an unsatisfiable result.
func ReadDIMACSModel(r io.Reader) (Model, bool, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	sat := false
	decided := false
	var model Model
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		switch {
		case strings.HasPrefix(line, "s "):
			status := strings.TrimSpace(strings.TrimPrefix(line, "s "))
			switch {
			case strings.Contains(status, "UNSATISFIABLE"):
				sat, decided = false, true
			case strings.Contains(status, "SATISFIABLE"):
				sat, decided = true, true
			default:
				return nil, false, fmt.Errorf("sat: ReadDIMACSModel: status %q: %w", status, ErrMalformedModel)
			}
		case strings.HasPrefix(line, "v "):
			fields := strings.Fields(strings.TrimPrefix(line, "v "))
			for _, f := range fields {
				lit, err := strconv.Atoi(f)
				if err != nil {
					return nil, false, fmt.Errorf("sat: ReadDIMACSModel: %w: %w", err, ErrMalformedModel)
				}
				if lit == 0 {
					continue
				}
				model = append(model, lit)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, false, err
	}
	if !decided {
		return nil, false, fmt.Errorf("sat: ReadDIMACSModel: no status line: %w", ErrMalformedModel)
	}
	if !sat {
		return nil, false, nil
	}

	return model, true, nil
}
