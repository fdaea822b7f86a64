package Trees

import (
	"cmp"
	"golang.org/x/exp/constraints"
	"math/bits"
	"math/rand"
	"time"
)

// RBSTree is the index arena variant of the randomized binary search tree.
// Nodes live at indexes of an info array instead of behind pointers;
// vs[i] corresponds to ifs[i+1] and never moves once appended, so a
// rebuild only relinks indexes and allocates nothing. Repeated values are
// allowed and are placed after the ones already present. Every insertion
// holds the same size weighted lottery as the pointer variant: with
// probability 1/(size+1) the new value becomes the root of the subtree it
// is passing, which is then flattened into an index sequence and built
// back with uniformly random pivots.
type RBSTree[T cmp.Ordered, S constraints.Unsigned] struct {
	base[S]
	vs  []T //vs[i] corresponds to ifs[i+1]. len(vs)=size
	rng *rand.Rand
}

// New returns an empty RBSTree with capacity hint for the underlying
// arrays. src drives every random decision the tree will ever make; a nil
// src is seeded from the wall clock.
func New[T cmp.Ordered, S constraints.Unsigned](hint S, src rand.Source) *RBSTree[T, S] {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &RBSTree[T, S]{base[S]{ifs: make([]info[S], 1, hint+1)}, make([]T, 0, hint), rand.New(src)}
}

// From a given ascending value array, directly build a tree drawing a
// uniformly random pivot for every subtree, so the shape is distributed
// exactly like one grown by inserting the values in random order. The
// array is handed to the tree and mustn't be modified by the caller later;
// no value is ever moved, only the info array is written.
// src follows the New convention.
// Time: O(n).
func From[T cmp.Ordered, S constraints.Unsigned](vs []T, src rand.Source) *RBSTree[T, S] {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	rng := rand.New(src)
	root, ifs := buildIfs(S(len(vs)), rng, make([][3]S, 0, bits.Len(uint(len(vs)))))
	return &RBSTree[T, S]{base[S]{root: root, ifs: ifs}, vs, rng}
}

// buildIfs array of size vsLen+1 linking the indexes into a randomized
// tree: every range [first,last] roots at a pivot drawn uniformly from it.
// st is the range stack to work on, [left,right,pivot].
func buildIfs[S constraints.Unsigned](vsLen S, rng *rand.Rand, st [][3]S) (root S, ifs []info[S]) {
	ifs = make([]info[S], vsLen+1)
	if vsLen == 0 {
		return
	}
	root = 1 + S(rng.Intn(int(vsLen)))
	st = append(st, [3]S{1, vsLen, root})
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		ifs[top[2]].sz = top[1] - top[0] + 1
		if top[0] < top[2] {
			l := top[0] + S(rng.Intn(int(top[2]-top[0])))
			ifs[top[2]].l = l
			st = append(st, [3]S{top[0], top[2] - 1, l})
		}
		if top[2] < top[1] {
			r := top[2] + 1 + S(rng.Intn(int(top[1]-top[2])))
			ifs[top[2]].r = r
			st = append(st, [3]S{top[2] + 1, top[1], r})
		}
	}
	return
}

// newNode appends a leaf holding v. Slots are never reused or compacted;
// a rebuild keeps every index where it is.
func (u *RBSTree[T, S]) newNode(v T) S {
	u.ifs = append(u.ifs, info[S]{0, 0, 1})
	u.vs = append(u.vs, v)
	return S(len(u.vs))
}

// insert the node ni holding v into the subtree rooting at curI
// recursively, adding every node it passes to *visited, and returns the
// index of the possibly rebuilt subtree root. buf is handed through to
// rebuild; the possibly grown buffer is returned for reuse.
func (u *RBSTree[T, S]) insert(curI, ni S, v T, visited *uint, buf []S) (S, []S) {
	if curI == 0 {
		return ni, buf
	}
	*visited++
	if u.rng.Float64() < 1/(float64(u.ifs[curI].sz)+1) {
		return u.rebuild(curI, ni, v, visited, buf)
	}
	if u.ifs[curI].sz++; v < u.vs[curI-1] {
		var l S
		l, buf = u.insert(u.ifs[curI].l, ni, v, visited, buf)
		u.ifs[curI].l = l
	} else {
		var r S
		r, buf = u.insert(u.ifs[curI].r, ni, v, visited, buf)
		u.ifs[curI].r = r
	}
	return curI, buf
}

// flatten the subtree rooting at curI into idx as the ascending sequence
// of its indexes, weaving ni in right before the first value v is less
// than, or last when there is none. Returns the extended idx and the
// position ni landed at. Every old node is counted in *visited; none is
// released, build takes them back by index.
// Time: O(sz); Space: O(sz)
func (u *RBSTree[T, S]) flatten(curI, ni S, v T, idx []S, visited *uint) ([]S, int) {
	at := -1
	var walk func(S)
	walk = func(c S) {
		if c == 0 {
			return
		}
		walk(u.ifs[c].l)
		if at < 0 && v < u.vs[c-1] {
			at = len(idx)
			idx = append(idx, ni)
		}
		*visited++
		idx = append(idx, c)
		walk(u.ifs[c].r)
	}
	walk(curI)
	if at < 0 {
		at = len(idx)
		idx = append(idx, ni)
	}
	return idx, at
}

// build a subtree from idx[first:last+1] recursively by relinking the
// indexes, counting every linked node in *visited. The root of the range
// is idx[at] when at lies inside the range, otherwise a uniformly drawn
// pivot. Subtree sizes are rewritten from the children on the way out.
// Time: O(last-first+1)
func (u *RBSTree[T, S]) build(idx []S, first, last, at int, visited *uint) S {
	if last < first {
		return 0
	}
	*visited++
	p := at
	if p < first || last < p {
		p = first + u.rng.Intn(last-first+1)
	}
	n := idx[p]
	l := u.build(idx, first, p-1, -1, visited)
	r := u.build(idx, p+1, last, -1, visited)
	u.ifs[n] = info[S]{l, r, u.ifs[l].sz + u.ifs[r].sz + 1}
	return n
}

// rebuild the subtree rooting at curI around the winning node ni: flatten
// it together with ni, then build the range back with ni as the designated
// root.
// Time: O(sz); Space: O(sz)
func (u *RBSTree[T, S]) rebuild(curI, ni S, v T, visited *uint, buf []S) (S, []S) {
	idx, at := u.flatten(curI, ni, v, buf[:0], visited)
	return u.build(idx, 0, len(idx)-1, at, visited), idx
}

// Insert v to the tree and return the number of nodes visited while doing
// so. The created node counts as visited, so the result is >=1; a won
// lottery additionally counts every node of the rebuilt subtree twice.
// It is a wrapper for BufferedInsert.
// Time: expected O(log n) amortized, O(n) when the root lottery is won.
func (u *RBSTree[T, S]) Insert(v T) uint {
	c, _ := u.BufferedInsert(v, nil)
	return c
}

// BufferedInsert is Insert taking a scratch buffer for the index sequence
// of a won lottery; the possibly grown buffer is returned so a caller
// inserting repeatedly can keep rebuilds allocation free beyond the one
// appended node. A nil buf works and simply grows.
func (u *RBSTree[T, S]) BufferedInsert(v T, buf []S) (uint, []S) {
	visited := uint(1) //the created node
	ni := u.newNode(v)
	u.root, buf = u.insert(u.root, ni, v, &visited, buf)
	return visited, buf
}

func (u *RBSTree[T, S]) height(curI S) uint {
	if curI == 0 {
		return 0
	}
	return max(u.height(u.ifs[curI].l), u.height(u.ifs[curI].r)) + 1
}

// Height is the number of nodes on the longest root to leaf path, 0 for an
// empty tree. Recursive.
// Time: O(n); Space: O(D)
func (u *RBSTree[T, S]) Height() uint {
	return u.height(u.root)
}

// InOrder traversal of the tree calling f with a pointer to every value
// until f returns false. When st==nil, uses morris traversal; otherwise,
// uses normal stack based iterative traversal on st and returns it for
// reuse. The tree must not be modified during the traversal.
func (u *RBSTree[T, S]) InOrder(f func(*T) bool, st []S) []S {
	return u.inOrder(func(i S) bool {
		return f(&u.vs[i-1])
	}, st)
}

// Clear the tree, also resetting the memory of the value array if reset is
// true. O(1) if reset==false, O(size) if reset==true. Doesn't allocate new
// arrays, the capacities stay for later insertions.
func (u *RBSTree[T, S]) Clear(reset bool) {
	if reset {
		for i := range u.vs {
			u.vs[i] = *new(T)
		}
	}
	u.clrIfs()
	u.vs = u.vs[:0]
}
