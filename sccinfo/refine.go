package sccinfo

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/wautomata/omega/acceptance"
	"github.com/wautomata/omega/internal/emptiness"
	"github.com/wautomata/omega/twagraph"
)

// RefineUnknown resolves every component left ambiguous (Accepting and
// Rejecting both false, which only the Fin/Inf-mixing case in spec.md
// §4.F's provisional pass can produce) by restricting the automaton to the
// component's states and running the brute-force emptiness oracle: a
// nonempty restriction means the component is accepting, an empty one
// means it is rejecting. Every ambiguous component is attempted even if one
// fails, and every failure is aggregated via go-multierror rather than
// aborting at the first.
//
// Plain Büchi acceptance (a single Inf set, no Fin) never leaves a
// component ambiguous: Accepting and Rejecting are exact complements of
// each other already in the provisional pass (one_acc_set() in the
// original), so this skips calling the emptiness oracle entirely for such
// formulas rather than running it only to confirm what Build already knew.
func RefineUnknown(info *Info, g *twagraph.Graph, formula *acceptance.Formula) error {
	if formula.IsBuchi() {
		return nil
	}

	var result *multierror.Error
	for i := range info.nodes {
		node := &info.nodes[i]
		if node.Accepting || node.Rejecting {
			continue
		}

		ok, err := emptiness.Reachable(g, node.States, formula)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("sccinfo: RefineUnknown: component %d: %w", i, err))

			continue
		}
		node.Accepting = ok
		node.Rejecting = !ok
	}

	return result.ErrorOrNil()
}

// DetermineUsefulness runs the reverse-topological sweep marking a
// component useful iff it is non-rejecting or has a useful successor.
// Because Build numbers components so that every successor has a strictly
// smaller index than its predecessors, a single ascending pass over
// info.nodes already visits every component after all of its successors.
func DetermineUsefulness(info *Info) {
	for i := range info.nodes {
		node := &info.nodes[i]
		if !node.Rejecting {
			node.Useful = true

			continue
		}
		for _, s := range node.Succ {
			if info.nodes[s].Useful {
				node.Useful = true

				break
			}
		}
	}
}
