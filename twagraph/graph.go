package twagraph

import (
	"sync"

	"github.com/wautomata/omega/bddlabel"
	"github.com/wautomata/omega/mark"
)

// Edge is (src, dst, label, marks). dst is meaningful only when univ < 0
// ("existential"); otherwise the edge's destinations are univDests[univ]
// ("universal/alternating"), a shared record of ≥ 2 states the edge reaches
// simultaneously. next chains this edge to the following one appended out
// of the same src, forming the intrusive per-state successor list.
type Edge struct {
	ID    int
	Src   int
	dst   int
	univ  int
	Label bddlabel.Label
	Marks mark.Mark
	next  int
}

// Dead reports whether the edge's label denotes the empty Boolean function;
// dead edges are filtered out by every iterator.
func (e Edge) Dead() bool { return e.Label.IsFalse() }

// Graph is the append-only-then-mutated labelled digraph of component D.
// Safe for concurrent use.
type Graph struct {
	mu sync.RWMutex

	outHead []int
	outTail []int
	edges   []Edge

	univDests [][]int
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{}
}

// NumStates returns the number of states created so far.
func (g *Graph) NumStates() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.outHead)
}

// NewState appends one fresh state and returns its id.
func (g *Graph) NewState() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.newStateLocked()
}

func (g *Graph) newStateLocked() int {
	id := len(g.outHead)
	g.outHead = append(g.outHead, -1)
	g.outTail = append(g.outTail, -1)

	return id
}

// NewStates appends n fresh, contiguously-numbered states and returns the
// id of the first.
func (g *Graph) NewStates(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	first := len(g.outHead)
	for i := 0; i < n; i++ {
		g.newStateLocked()
	}

	return first
}

// NewEdge appends an existential edge src -> dst to src's out-list and
// returns its id.
func (g *Graph) NewEdge(src, dst int, label bddlabel.Label, marks mark.Mark) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.newEdgeLocked(src, dst, -1, label, marks)
}

// NewUnivEdge appends an edge whose destinations are dsts: behaves exactly
// like NewEdge when len(dsts) == 1, otherwise allocates a shared
// universal-destination record.
func (g *Graph) NewUnivEdge(src int, dsts []int, label bddlabel.Label, marks mark.Mark) (int, error) {
	if len(dsts) == 0 {
		return 0, ErrEmptyUnivDests
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(dsts) == 1 {
		return g.newEdgeLocked(src, dsts[0], -1, label, marks)
	}
	for _, d := range dsts {
		if d < 0 || d >= len(g.outHead) {
			return 0, ErrStateOutOfRange
		}
	}
	cp := make([]int, len(dsts))
	copy(cp, dsts)
	univID := len(g.univDests)
	g.univDests = append(g.univDests, cp)

	return g.newEdgeLocked(src, -1, univID, label, marks)
}

func (g *Graph) newEdgeLocked(src, dst, univ int, label bddlabel.Label, marks mark.Mark) (int, error) {
	if src < 0 || src >= len(g.outHead) {
		return 0, ErrStateOutOfRange
	}
	if univ < 0 && (dst < 0 || dst >= len(g.outHead)) {
		return 0, ErrStateOutOfRange
	}

	id := len(g.edges)
	g.edges = append(g.edges, Edge{ID: id, Src: src, dst: dst, univ: univ, Label: label, Marks: marks, next: -1})
	if g.outHead[src] == -1 {
		g.outHead[src] = id
	} else {
		g.edges[g.outTail[src]].next = id
	}
	g.outTail[src] = id

	return id, nil
}

// Out returns src's outgoing edges in insertion order. Dead edges are
// skipped.
func (g *Graph) Out(src int) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for i := g.outHead[src]; i != -1; i = g.edges[i].next {
		e := g.edges[i]
		if e.Dead() {
			continue
		}
		out = append(out, e)
	}

	return out
}

// Edges returns every live edge in the graph, in id order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		if !e.Dead() {
			out = append(out, e)
		}
	}

	return out
}

// UnivDests returns e's destination states: a singleton for an existential
// edge, or the shared record's members for a universal one.
func (g *Graph) UnivDests(e Edge) []int {
	if e.univ < 0 {
		return []int{e.dst}
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.univDests[e.univ]
}

// IsUniversal reports whether e is a universal/alternating edge.
func (e Edge) IsUniversal() bool { return e.univ >= 0 }

// Dst returns e's single destination state; only meaningful when
// !e.IsUniversal().
func (e Edge) Dst() int { return e.dst }
