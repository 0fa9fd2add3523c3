package twagraph

import (
	"sort"
	"strconv"
	"strings"

	"github.com/wautomata/omega/bddlabel"
)

// destSignature returns a canonical, comparable key for an edge's
// destination set: the state index itself for an existential edge, or the
// sorted member list for a universal one.
func destSignature(g *Graph, e Edge) string {
	if !e.IsUniversal() {
		return "e" + strconv.Itoa(e.dst)
	}
	members := append([]int(nil), g.univDests[e.univ]...)
	sort.Ints(members)
	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = strconv.Itoa(m)
	}

	return "u" + strings.Join(parts, ",")
}

type mergeGroup1 struct {
	src      int
	destSig  string
	marksRaw uint64
}

type mergeGroup2 struct {
	src     int
	destSig string
	label   bddlabel.Label
}

// MergeEdges implements spec.md §4.D's merge_edges: first collapse edges
// sharing (src, dst, marks) into one whose label is their disjunction, then
// — only when noFin is true (the acceptance formula uses no Fin operator,
// so a mark union cannot change cycle acceptance) — collapse edges sharing
// (src, dst, label) into one whose marks are the union. Successor chains
// and the universal-destination table are rebuilt from scratch.
func (g *Graph) MergeEdges(noFin bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	type pass1Entry struct {
		key   mergeGroup1
		src   int
		dst   int
		univ  int
		label bddlabel.Label
		marks Edge // reuse Edge.Marks field via a template edge
	}

	order1 := make([]mergeGroup1, 0, len(g.edges))
	byKey1 := make(map[mergeGroup1]*pass1Entry, len(g.edges))
	for _, e := range g.edges {
		if e.Dead() {
			continue
		}
		k := mergeGroup1{src: e.Src, destSig: destSignature(g, e), marksRaw: e.Marks.Raw()}
		if ent, ok := byKey1[k]; ok {
			merged, err := ent.label.Or(e.Label)
			if err != nil {
				return err
			}
			ent.label = merged

			continue
		}
		order1 = append(order1, k)
		byKey1[k] = &pass1Entry{key: k, src: e.Src, dst: e.dst, univ: e.univ, label: e.Label, marks: e}
	}

	stage1 := make([]pass1Entry, 0, len(order1))
	for _, k := range order1 {
		stage1 = append(stage1, *byKey1[k])
	}

	var stage2 []pass1Entry
	if noFin {
		type pass2Entry struct {
			key   mergeGroup2
			entry pass1Entry
		}
		order2 := make([]mergeGroup2, 0, len(stage1))
		byKey2 := make(map[mergeGroup2]*pass2Entry, len(stage1))
		for _, ent := range stage1 {
			k := mergeGroup2{src: ent.src, destSig: destSignature(g, Edge{Src: ent.src, dst: ent.dst, univ: ent.univ}), label: ent.label}
			if existing, ok := byKey2[k]; ok {
				existing.entry.marks.Marks = existing.entry.marks.Marks.Union(ent.marks.Marks)

				continue
			}
			order2 = append(order2, k)
			byKey2[k] = &pass2Entry{key: k, entry: ent}
		}
		for _, k := range order2 {
			stage2 = append(stage2, byKey2[k].entry)
		}
	} else {
		stage2 = stage1
	}

	sort.Slice(stage2, func(i, j int) bool {
		a, b := stage2[i], stage2[j]
		if a.src != b.src {
			return a.src < b.src
		}
		da := destSignature(g, Edge{Src: a.src, dst: a.dst, univ: a.univ})
		db := destSignature(g, Edge{Src: b.src, dst: b.dst, univ: b.univ})
		if da != db {
			return da < db
		}
		ma, mb := a.marks.Marks.Raw(), b.marks.Marks.Raw()
		if ma != mb {
			return ma < mb
		}

		return a.label.Handle() < b.label.Handle()
	})

	newUnivDests := make([][]int, 0, len(g.univDests))
	univRemap := make(map[string]int, len(g.univDests))

	newEdges := make([]Edge, 0, len(stage2))
	newHead := make([]int, len(g.outHead))
	newTail := make([]int, len(g.outHead))
	for i := range newHead {
		newHead[i] = -1
		newTail[i] = -1
	}
	for _, ent := range stage2 {
		univ := -1
		dst := ent.dst
		if ent.univ >= 0 {
			sig := destSignature(g, Edge{Src: ent.src, dst: ent.dst, univ: ent.univ})
			if idx, ok := univRemap[sig]; ok {
				univ = idx
			} else {
				univ = len(newUnivDests)
				members := append([]int(nil), g.univDests[ent.univ]...)
				sort.Ints(members)
				newUnivDests = append(newUnivDests, members)
				univRemap[sig] = univ
			}
			dst = -1
		}
		id := len(newEdges)
		newEdges = append(newEdges, Edge{ID: id, Src: ent.src, dst: dst, univ: univ, Label: ent.label, Marks: ent.marks.Marks, next: -1})
		if newHead[ent.src] == -1 {
			newHead[ent.src] = id
		} else {
			newEdges[newTail[ent.src]].next = id
		}
		newTail[ent.src] = id
	}

	g.edges = newEdges
	g.outHead = newHead
	g.outTail = newTail
	g.univDests = newUnivDests

	return nil
}

// PurgeUnreachableStates runs a BFS from initial over outgoing edges
// (following every universal destination), drops states never reached, and
// renumbers the survivors densely in BFS-discovery order. It returns the
// old->new permutation (-1 for dropped states) and the surviving count, for
// the caller to permute side tables indexed by state (e.g. the automaton's
// initial-state index, named properties, or the AP-registration cache).
func (g *Graph) PurgeUnreachableStates(initial int) ([]int, int) {
	g.mu.RLock()
	n := len(g.outHead)
	reachable := make([]bool, n)
	order := make([]int, 0, n)
	queue := []int{initial}
	reachable[initial] = true
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		order = append(order, s)
		for i := g.outHead[s]; i != -1; i = g.edges[i].next {
			e := g.edges[i]
			if e.Dead() {
				continue
			}
			dests := []int{e.dst}
			if e.IsUniversal() {
				dests = g.univDests[e.univ]
			}
			for _, d := range dests {
				if !reachable[d] {
					reachable[d] = true
					queue = append(queue, d)
				}
			}
		}
	}
	g.mu.RUnlock()

	perm := make([]int, n)
	for i := range perm {
		perm[i] = -1
	}
	for newID, old := range order {
		perm[old] = newID
	}
	g.Defrag(perm, len(order))

	return perm, len(order)
}

// PurgeDeadStates removes states with no outgoing path to any non-trivial
// cycle: every state lying on a non-trivial cycle is seeded live, then the
// rule "a state is live if it has an edge to a live state" is applied in
// state-index order until nothing changes, with the initial state
// force-kept regardless. It returns the old->new
// permutation and surviving count, like PurgeUnreachableStates.
func (g *Graph) PurgeDeadStates(initial int) ([]int, int) {
	g.mu.RLock()
	n := len(g.outHead)
	live := make([]bool, n)
	live[initial] = true

	// A state sitting on a non-trivial cycle (reaches itself in ≥ 1 edge)
	// trivially has a path to a non-trivial cycle: itself. Seed those
	// before propagating "has an edge to a live state" to a fixpoint.
	for s := 0; s < n; s++ {
		if g.reachesSelfLocked(s) {
			live[s] = true
		}
	}

	changed := true
	for changed {
		changed = false
		for s := 0; s < n; s++ {
			if live[s] {
				continue
			}
			for i := g.outHead[s]; i != -1; i = g.edges[i].next {
				e := g.edges[i]
				if e.Dead() {
					continue
				}
				dests := []int{e.dst}
				if e.IsUniversal() {
					dests = g.univDests[e.univ]
				}
				reachesLive := false
				for _, d := range dests {
					if live[d] {
						reachesLive = true

						break
					}
				}
				if reachesLive {
					live[s] = true
					changed = true

					break
				}
			}
		}
	}
	g.mu.RUnlock()

	perm := make([]int, n)
	newID := 0
	for old := 0; old < n; old++ {
		if live[old] {
			perm[old] = newID
			newID++
		} else {
			perm[old] = -1
		}
	}
	g.Defrag(perm, newID)

	return perm, newID
}

// reachesSelfLocked reports whether s can reach itself via one or more live
// edges — i.e. s lies on some non-trivial cycle. Callers must hold at least
// a read lock.
func (g *Graph) reachesSelfLocked(s int) bool {
	visited := make([]bool, len(g.outHead))
	var queue []int
	for i := g.outHead[s]; i != -1; i = g.edges[i].next {
		e := g.edges[i]
		if e.Dead() {
			continue
		}
		dests := []int{e.dst}
		if e.IsUniversal() {
			dests = g.univDests[e.univ]
		}
		for _, d := range dests {
			if d == s {
				return true
			}
			if !visited[d] {
				visited[d] = true
				queue = append(queue, d)
			}
		}
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for i := g.outHead[cur]; i != -1; i = g.edges[i].next {
			e := g.edges[i]
			if e.Dead() {
				continue
			}
			dests := []int{e.dst}
			if e.IsUniversal() {
				dests = g.univDests[e.univ]
			}
			for _, d := range dests {
				if d == s {
					return true
				}
				if !visited[d] {
					visited[d] = true
					queue = append(queue, d)
				}
			}
		}
	}

	return false
}

// Defrag is the primitive underlying both purges: given an old->new state
// permutation (-1 meaning "drop this state") and the surviving count,
// rewrite the edge array, successor chains, and universal-destination
// table in place.
func (g *Graph) Defrag(perm []int, survivingCount int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	newHead := make([]int, survivingCount)
	newTail := make([]int, survivingCount)
	for i := range newHead {
		newHead[i] = -1
		newTail[i] = -1
	}

	var newEdges []Edge
	var newUnivDests [][]int
	univRemap := make(map[int]int)

	for old := 0; old < len(g.outHead); old++ {
		ns := perm[old]
		if ns == -1 {
			continue
		}
		for i := g.outHead[old]; i != -1; i = g.edges[i].next {
			e := g.edges[i]
			if e.Dead() {
				continue
			}
			if e.IsUniversal() {
				members := g.univDests[e.univ]
				remapped := make([]int, 0, len(members))
				allLive := true
				for _, m := range members {
					if perm[m] == -1 {
						allLive = false

						break
					}
					remapped = append(remapped, perm[m])
				}
				if !allLive {
					continue
				}
				univID, ok := univRemap[e.univ]
				if !ok {
					univID = len(newUnivDests)
					newUnivDests = append(newUnivDests, remapped)
					univRemap[e.univ] = univID
				}
				id := len(newEdges)
				newEdges = append(newEdges, Edge{ID: id, Src: ns, dst: -1, univ: univID, Label: e.Label, Marks: e.Marks, next: -1})
				appendChain(newHead, newTail, ns, id, newEdges)

				continue
			}
			if perm[e.dst] == -1 {
				continue
			}
			id := len(newEdges)
			newEdges = append(newEdges, Edge{ID: id, Src: ns, dst: perm[e.dst], univ: -1, Label: e.Label, Marks: e.Marks, next: -1})
			appendChain(newHead, newTail, ns, id, newEdges)
		}
	}

	g.outHead = newHead
	g.outTail = newTail
	g.edges = newEdges
	g.univDests = newUnivDests
}

func appendChain(head, tail []int, src, id int, edges []Edge) {
	if head[src] == -1 {
		head[src] = id
	} else {
		edges[tail[src]].next = id
	}
	tail[src] = id
}
