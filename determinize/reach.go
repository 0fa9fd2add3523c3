package determinize

import "github.com/wautomata/omega/sccinfo"

// sccReachability computes full pairwise reachability over info's
// components in a single ascending pass: sccinfo.Build numbers components
// in reverse topological order, so every entry in a component's Succ list
// already refers to a strictly smaller, already-finished index by the time
// that component itself is processed.
func sccReachability(info *sccinfo.Info) [][]bool {
	n := info.NumSCCs()
	reach := make([][]bool, n)
	for i := 0; i < n; i++ {
		reach[i] = make([]bool, n)
		reach[i][i] = true
		for _, j := range info.Node(i).Succ {
			reach[i][j] = true
			for k := 0; k < n; k++ {
				if reach[j][k] {
					reach[i][k] = true
				}
			}
		}
	}

	return reach
}
