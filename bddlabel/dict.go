package bddlabel

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	bddFalse int32 = 0
	bddTrue  int32 = 1
)

type bddNode struct {
	v      int32
	lo, hi int32
	ref    int32
}

type bddKey struct {
	v      int32
	lo, hi int32
}

type applyOp byte

const (
	opAnd applyOp = '&'
	opOr  applyOp = '|'
	opXor applyOp = '^'
)

type applyKey struct {
	op   applyOp
	a, b int32
}

// Dict is the shared pool backing every Label it produces: the atomic
// proposition registry and the structurally-hashed, reference-counted BDD
// node table. Safe for concurrent use.
type Dict struct {
	mu sync.Mutex

	apNames []string
	apIndex map[string]int

	nodes  []bddNode
	unique map[bddKey]int32
	free   []int32
	cache  *lru.Cache[applyKey, int32]
}

// NewDict creates an empty Dict with no registered atomic propositions.
func NewDict() *Dict {
	d := &Dict{
		apIndex: make(map[string]int),
		nodes:   []bddNode{{v: -1}, {v: -1}}, // 0=false, 1=true terminals
		unique:  make(map[bddKey]int32, 64),
	}
	c, _ := lru.NewWithEvict[applyKey, int32](4096, func(_ applyKey, v int32) {
		d.unref(v)
	})
	d.cache = c

	return d
}

// RegisterAP returns the variable index for name, registering it if this is
// the first time name is seen. Registration is idempotent.
func (d *Dict) RegisterAP(name string) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if idx, ok := d.apIndex[name]; ok {
		return idx, nil
	}
	if len(d.apNames) >= maxAPs {
		return 0, ErrCapacityExceeded
	}
	idx := len(d.apNames)
	d.apNames = append(d.apNames, name)
	d.apIndex[name] = idx

	return idx, nil
}

// APName returns the name registered at idx.
func (d *Dict) APName(idx int) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if idx < 0 || idx >= len(d.apNames) {
		return "", ErrUnknownAP
	}

	return d.apNames[idx], nil
}

// NumAPs returns the number of registered atomic propositions.
func (d *Dict) NumAPs() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.apNames)
}

// mkRef looks up or creates the node (v, lo, hi), returning an id that
// carries one fresh owned reference for the caller. When lo == hi the
// reduction rule applies and lo itself is returned, ref-bumped.
func (d *Dict) mkRef(v int32, lo, hi int32) int32 {
	if lo == hi {
		d.ref(lo)

		return lo
	}
	key := bddKey{v: v, lo: lo, hi: hi}
	if id, ok := d.unique[key]; ok {
		d.ref(id)

		return id
	}

	var id int32
	if n := len(d.free); n > 0 {
		id = d.free[n-1]
		d.free = d.free[:n-1]
		d.nodes[id] = bddNode{v: v, lo: lo, hi: hi}
	} else {
		id = int32(len(d.nodes))
		d.nodes = append(d.nodes, bddNode{v: v, lo: lo, hi: hi})
	}
	d.unique[key] = id
	d.ref(lo)
	d.ref(hi)
	d.ref(id)

	return id
}

func (d *Dict) ref(id int32) {
	if id == bddFalse || id == bddTrue {
		return
	}
	d.nodes[id].ref++
}

func (d *Dict) unref(id int32) {
	if id == bddFalse || id == bddTrue {
		return
	}
	n := &d.nodes[id]
	n.ref--
	if n.ref > 0 {
		return
	}
	key := bddKey{v: n.v, lo: n.lo, hi: n.hi}
	delete(d.unique, key)
	lo, hi := n.lo, n.hi
	d.free = append(d.free, id)
	d.unref(lo)
	d.unref(hi)
}

func (d *Dict) varOf(id int32) int32 {
	if id == bddFalse || id == bddTrue {
		return -1
	}

	return d.nodes[id].v
}

func (d *Dict) childOf(id int32, hi bool) int32 {
	if id == bddFalse || id == bddTrue {
		return id
	}
	if hi {
		return d.nodes[id].hi
	}

	return d.nodes[id].lo
}

func (d *Dict) varNode(v int32) int32 {
	return d.mkRef(v, bddFalse, bddTrue)
}

func (d *Dict) not(a int32) int32 {
	if a == bddFalse {
		return bddTrue
	}
	if a == bddTrue {
		return bddFalse
	}
	lo := d.not(d.childOf(a, false))
	hi := d.not(d.childOf(a, true))
	res := d.mkRef(d.varOf(a), lo, hi)
	d.unref(lo)
	d.unref(hi)

	return res
}

func (d *Dict) and(a, b int32) int32 { return d.apply(opAnd, a, b) }
func (d *Dict) or(a, b int32) int32  { return d.apply(opOr, a, b) }
func (d *Dict) xor(a, b int32) int32 { return d.apply(opXor, a, b) }

func (d *Dict) apply(op applyOp, a, b int32) int32 {
	switch op {
	case opAnd:
		if a == bddFalse || b == bddFalse {
			return bddFalse
		}
		if a == bddTrue {
			d.ref(b)

			return b
		}
		if b == bddTrue || a == b {
			d.ref(a)

			return a
		}
	case opOr:
		if a == bddTrue || b == bddTrue {
			return bddTrue
		}
		if a == bddFalse {
			d.ref(b)

			return b
		}
		if b == bddFalse || a == b {
			d.ref(a)

			return a
		}
	case opXor:
		if a == b {
			return bddFalse
		}
		if a == bddFalse {
			d.ref(b)

			return b
		}
		if b == bddFalse {
			d.ref(a)

			return a
		}
		if a == bddTrue {
			return d.not(b)
		}
		if b == bddTrue {
			return d.not(a)
		}
	}

	key := applyKey{op: op, a: a, b: b}
	if v, ok := d.cache.Get(key); ok {
		d.ref(v)

		return v
	}

	va, vb := d.varOf(a), d.varOf(b)
	top := va
	if vb > top {
		top = vb
	}
	aLo, aHi := a, a
	bLo, bHi := b, b
	if va == top {
		aLo, aHi = d.childOf(a, false), d.childOf(a, true)
	}
	if vb == top {
		bLo, bHi = d.childOf(b, false), d.childOf(b, true)
	}
	lo := d.apply(op, aLo, bLo)
	hi := d.apply(op, aHi, bHi)
	res := d.mkRef(top, lo, hi)
	d.unref(lo)
	d.unref(hi)

	d.ref(res) // one extra reference owned by the cache entry
	d.cache.Add(key, res)

	return res
}

// restrict substitutes the variables present in lits with the given
// constant and returns the resulting (possibly still symbolic) BDD,
// returning an owned reference.
func (d *Dict) restrict(a int32, lits map[int32]bool) int32 {
	if a == bddFalse || a == bddTrue {
		d.ref(a)

		return a
	}
	v := d.varOf(a)
	if val, ok := lits[v]; ok {
		child := d.childOf(a, val)

		return d.restrict(child, lits)
	}
	lo := d.restrict(d.childOf(a, false), lits)
	hi := d.restrict(d.childOf(a, true), lits)
	res := d.mkRef(v, lo, hi)
	d.unref(lo)
	d.unref(hi)

	return res
}

// quantify implements existential (isExists=true) or universal
// quantification over the variables in vars; deliberately unmemoized, since
// edge-label formulas in this domain are small (see DESIGN.md).
func (d *Dict) quantify(a int32, vars map[int32]bool, isExists bool) int32 {
	if a == bddFalse || a == bddTrue {
		d.ref(a)

		return a
	}
	v := d.varOf(a)
	lo := d.quantify(d.childOf(a, false), vars, isExists)
	hi := d.quantify(d.childOf(a, true), vars, isExists)
	if vars[v] {
		var res int32
		if isExists {
			res = d.or(lo, hi)
		} else {
			res = d.and(lo, hi)
		}
		d.unref(lo)
		d.unref(hi)

		return res
	}
	res := d.mkRef(v, lo, hi)
	d.unref(lo)
	d.unref(hi)

	return res
}

func (d *Dict) support(a int32, seen map[int32]bool, out *[]int) {
	if a == bddFalse || a == bddTrue {
		return
	}
	v := d.varOf(a)
	if !seen[v] {
		seen[v] = true
		*out = append(*out, int(v))
	}
	d.support(d.childOf(a, false), seen, out)
	d.support(d.childOf(a, true), seen, out)
}

func (d *Dict) pickOneCube(a int32, restrictTo map[int32]bool) (map[int]bool, bool) {
	if a == bddFalse {
		return nil, false
	}
	out := make(map[int]bool)
	n := a
	for n != bddTrue {
		v := d.varOf(n)
		hi := d.childOf(n, true)
		var goHi bool
		if hi != bddFalse {
			goHi = true
		}
		if restrictTo == nil || restrictTo[v] {
			out[int(v)] = goHi
		}
		if goHi {
			n = hi
		} else {
			n = d.childOf(n, false)
		}
	}

	return out, true
}

func (d *Dict) String() string {
	return fmt.Sprintf("Dict{aps=%d, nodes=%d}", len(d.apNames), len(d.nodes)-len(d.free)-2)
}
