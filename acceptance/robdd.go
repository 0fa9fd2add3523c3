package acceptance

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// robddNode is a reduced-ordered-BDD node: test variable v, low (v=false)
// and high (v=true) children. Variables are ordered by descending v: applyOp
// splits on the larger top variable, so higher indices sit nearer the root.
type robddNode struct {
	v      int
	lo, hi int32
}

// robdd is a small, per-call BDD allocator used only by the acceptance
// package's DNF/CNF/unsat-mark/missing operations. It structurally hashes
// nodes (a strash table), mirroring the node/strash design of go-air/gini's
// logic.C circuit builder, and memoizes binary operations in a bounded LRU
// cache rather than an unbounded map, since formulas here are small but the
// allocator is rebuilt on every call.
type robdd struct {
	nodes  []robddNode
	unique map[robddNode]int32
	cache  *lru.Cache[applyKey, int32]
}

const (
	robddFalse int32 = 0
	robddTrue  int32 = 1
)

type applyKey struct {
	op   byte
	a, b int32
}

func newROBDD() *robdd {
	c, _ := lru.New[applyKey, int32](2048)

	return &robdd{
		nodes:  []robddNode{{v: -1}, {v: -1}}, // 0=false terminal, 1=true terminal (dummy payload)
		unique: make(map[robddNode]int32, 64),
		cache:  c,
	}
}

func (b *robdd) mk(v int, lo, hi int32) int32 {
	if lo == hi {
		return lo
	}
	key := robddNode{v: v, lo: lo, hi: hi}
	if id, ok := b.unique[key]; ok {
		return id
	}
	id := int32(len(b.nodes))
	b.nodes = append(b.nodes, key)
	b.unique[key] = id

	return id
}

// varNode returns the BDD representing a single positive literal for
// variable v.
func (b *robdd) varNode(v int) int32 {
	return b.mk(v, robddFalse, robddTrue)
}

func (b *robdd) topVar(a int32) int {
	if a == robddFalse || a == robddTrue {
		return -1
	}

	return b.nodes[a].v
}

func (b *robdd) child(a int32, hi bool) int32 {
	if a == robddFalse || a == robddTrue {
		return a
	}
	if hi {
		return b.nodes[a].hi
	}

	return b.nodes[a].lo
}

// not computes ¬a.
func (b *robdd) not(a int32) int32 {
	return b.applyOp('!', a, robddFalse)
}

// and computes a ∧ b.
func (b *robdd) and(a, ob int32) int32 { return b.applyOp('&', a, ob) }

// or computes a ∨ b.
func (b *robdd) or(a, ob int32) int32 { return b.applyOp('|', a, ob) }

func (b *robdd) applyOp(op byte, a, ob int32) int32 {
	// Terminal shortcuts.
	switch op {
	case '!':
		if a == robddFalse {
			return robddTrue
		}
		if a == robddTrue {
			return robddFalse
		}
	case '&':
		if a == robddFalse || ob == robddFalse {
			return robddFalse
		}
		if a == robddTrue {
			return ob
		}
		if ob == robddTrue || a == ob {
			return a
		}
	case '|':
		if a == robddTrue || ob == robddTrue {
			return robddTrue
		}
		if a == robddFalse {
			return ob
		}
		if ob == robddFalse || a == ob {
			return a
		}
	}

	key := applyKey{op: op, a: a, b: ob}
	if v, ok := b.cache.Get(key); ok {
		return v
	}

	var top int
	if op == '!' {
		top = b.topVar(a)
	} else {
		ta, tb := b.topVar(a), b.topVar(ob)
		top = ta
		if tb > top {
			top = tb
		}
	}

	var lo, hi int32
	if op == '!' {
		lo = b.applyOp(op, b.child(a, false), robddFalse)
		hi = b.applyOp(op, b.child(a, true), robddFalse)
	} else {
		aLo, aHi := a, a
		bLo, bHi := ob, ob
		if b.topVar(a) == top {
			aLo, aHi = b.child(a, false), b.child(a, true)
		}
		if b.topVar(ob) == top {
			bLo, bHi = b.child(ob, false), b.child(ob, true)
		}
		lo = b.applyOp(op, aLo, bLo)
		hi = b.applyOp(op, aHi, bHi)
	}

	res := b.mk(top, lo, hi)
	b.cache.Add(key, res)

	return res
}

// restrict fixes the variables present in lits to the given boolean value
// and returns the resulting (possibly still symbolic) BDD.
func (b *robdd) restrict(a int32, lits map[int]bool) int32 {
	if a == robddFalse || a == robddTrue {
		return a
	}
	if val, ok := lits[b.nodes[a].v]; ok {
		if val {
			return b.restrict(b.nodes[a].hi, lits)
		}

		return b.restrict(b.nodes[a].lo, lits)
	}
	lo := b.restrict(b.nodes[a].lo, lits)
	hi := b.restrict(b.nodes[a].hi, lits)

	return b.mk(b.nodes[a].v, lo, hi)
}

// cube is a partial Boolean assignment: var -> forced value. Variables
// absent from the map were skipped along the path (don't-care for that cube).
type cube map[int]bool

// cubesToTrue enumerates one cube per distinct root-to-true-terminal path,
// which (because this is a reduced BDD) yields a cover of prime-ish
// implicants analogous to the minato_isop detour used by the original
// implementation; see DESIGN.md for why this simplified path enumeration
// is used instead of a full irredundant-sum-of-products search.
func (b *robdd) cubesToTrue(a int32) []cube {
	var out []cube
	acc := cube{}
	var walk func(int32)
	walk = func(n int32) {
		if n == robddFalse {
			return
		}
		if n == robddTrue {
			clone := make(cube, len(acc))
			for k, v := range acc {
				clone[k] = v
			}
			out = append(out, clone)

			return
		}
		node := b.nodes[n]
		acc[node.v] = false
		walk(node.lo)
		acc[node.v] = true
		walk(node.hi)
		delete(acc, node.v)
	}
	walk(a)

	return out
}

// pickOneCube returns a single satisfying cube of a, or (nil, false) if a is
// unsatisfiable.
func (b *robdd) pickOneCube(a int32) (cube, bool) {
	if a == robddFalse {
		return nil, false
	}
	c := cube{}
	n := a
	for n != robddTrue {
		if n == robddFalse {
			return nil, false
		}
		node := b.nodes[n]
		if node.hi != robddFalse {
			c[node.v] = true
			n = node.hi
		} else {
			c[node.v] = false
			n = node.lo
		}
	}

	return c, true
}
