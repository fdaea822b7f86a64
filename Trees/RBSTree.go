package Trees

import (
	"golang.org/x/exp/constraints"
	"math/rand"
	"time"
)

// RBSTree is a randomized binary search tree. It maintains no structural
// invariant at all; instead, every insertion holds a size weighted lottery
// at each node it passes: with probability 1/(size+1) the new value wins,
// the whole subtree below that node is flattened into sorted order and
// rebuilt with the new value as its root and uniformly random pivots
// everywhere below. A tree grown this way is distributed exactly as if its
// values had arrived in uniformly random order, so the height D is O(log n)
// in expectation regardless of the insertion order; there is no worst case
// bound, only vanishing probability of degenerate shapes.
// T is the type of values it will hold, S is the type of the variables
// used for storing the sizes of different subtrees.
// This struct holds a root pointer and a corresponding nilPtr used
// as nil described in nodePtr, the random generator driving the lottery
// and the pivot draws, and a free list of nodes released by rebuilds;
// node.l is the next link while a node sits on the free list.
// Repeated values are allowed. An equal value is placed after the ones
// already present, so in-order traversal gives a non-decreasing sequence.
// This tree needs to keep track of the sizes of each subtree, so the additional
// memory cost is size(S)*n.
// Note that due to the way uint works in Go, and that the Tree interface
// defines the return value of some functions to be uint. S shouldn't be
// any type that will cause overflow when converted to uint. For example,
// uint on 32 bit machine is uint32, if S=uint64, then calling Size() can
// potentially result in undefined values as uint64 would cause overflow
// if converted to uint32. Generally, you should let S be a wide upperbound
// for the size of the tree.
type RBSTree[T constraints.Ordered, S constraints.Unsigned] struct {
	root   nodePtr[T, S] //the root of the tree. It should be nilPtr initially.
	nilPtr nodePtr[T, S] //nilPtr is the pointer used instead of nil here, it follows the description in nodePtr
	free   nodePtr[T, S] //head of the free list, nilPtr when empty.
	rng    *rand.Rand
}

// MakeRBSTree returns a RBSTree satisfying the above definitions for nilPtr,
// root, and types. src drives every random decision the tree will ever make:
// passing the same source and the same insertions reproduces the same shape.
// A nil src is seeded from the wall clock.
// RBSTree shouldn't be created directly using struct literal.
func MakeRBSTree[T constraints.Ordered, S constraints.Unsigned](src rand.Source) *RBSTree[T, S] {
	z := new(node[T, S])
	z.l, z.r = z, z
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &RBSTree[T, S]{z, z, z, rand.New(src)}
}

// BuildRBSTree builds a RBSTree from the given sorted slice. This is faster than
// repeatedly calling Insert and draws one pivot per element instead of one
// lottery per visited node; the resulting shape has the same distribution.
// The given slice must be sorted in ascending order; repeated elements are
// allowed and keep their positions.
// If safe==true, this function will check if the conditions are met and panic
// with InvalidSliceError if the conditions are broken. Otherwise, this function
// won't perform the check, and it is up to the user to ensure the conditions
// are met(otherwise the tree will be corrupt). It's suggested to set safe to
// false if the conditions are met as this can reduce some redundant checks.
// src follows the MakeRBSTree convention.
// Time: O(n).
func BuildRBSTree[T constraints.Ordered, S constraints.Unsigned](sli []T, src rand.Source, safe bool) *RBSTree[T, S] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if sli[i] < sli[i-1] {
				panic(InvalidSliceError{sli[i-1], sli[i], i})
			}
		}
	}
	u := MakeRBSTree[T, S](src)
	var vis uint
	u.root = u.build(sli, 0, len(sli)-1, -1, &vis)
	return u
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *RBSTree[T, S]) Size() uint {
	return uint(u.root.sz)
}

// newNode pops the free list, or allocates when the list is empty, and
// initializes the node as a leaf holding v.
func (u *RBSTree[T, S]) newNode(v T) nodePtr[T, S] {
	n := u.free
	if n == u.nilPtr {
		n = new(node[T, S])
	} else {
		u.free = n.l
	}
	n.v, n.l, n.r, n.sz = v, u.nilPtr, u.nilPtr, 1
	return n
}

// addFree pushes a node released by a rebuild. Safe to call once both
// subtrees of the node were already walked; only l is overwritten.
func (u *RBSTree[T, S]) addFree(n nodePtr[T, S]) {
	n.l = u.free
	u.free = n
}

// insert the value v to the subtree rooting at cur recursively, adding every
// node it passes to *visited. cur is passed by reference because v winning
// the lottery at cur replaces the whole subtree. buf is handed through to
// rebuild; the possibly grown buffer is returned for reuse.
func (u *RBSTree[T, S]) insert(curPtr *nodePtr[T, S], v T, visited *uint, buf []T) []T {
	if cur := *curPtr; cur == u.nilPtr {
		*curPtr = u.newNode(v)
		return buf
	} else {
		*visited++
		if u.rng.Float64() < 1/(float64(cur.sz)+1) {
			*curPtr, buf = u.rebuild(cur, v, visited, buf)
			return buf
		} else if cur.sz++; v < cur.v {
			return u.insert(&cur.l, v, visited, buf)
		} else {
			return u.insert(&cur.r, v, visited, buf)
		}
	}

}

// flatten the subtree rooting at cur into arr in ascending order, weaving v
// into its position: v is emitted right before the first value it is less
// than, or last when there is none, so an equal value lands after the ones
// already present. Returns the extended arr and the index v landed at.
// Every old node is counted in *visited and released to the free list
// post-order, after both its subtrees and its value were consumed.
// Time: O(cur.sz); Space: O(cur.sz)
func (u *RBSTree[T, S]) flatten(cur nodePtr[T, S], v T, arr []T, visited *uint) ([]T, int) {
	at := -1
	var walk func(nodePtr[T, S])
	walk = func(c nodePtr[T, S]) {
		if c == u.nilPtr {
			return
		}
		walk(c.l)
		if at < 0 && v < c.v {
			at = len(arr)
			arr = append(arr, v)
		}
		*visited++
		arr = append(arr, c.v)
		walk(c.r)
		u.addFree(c)
	}
	walk(cur)
	if at < 0 {
		at = len(arr)
		arr = append(arr, v)
	}
	return arr, at
}

// build a subtree from the ascending arr[first:last+1] recursively, counting
// every created node in *visited. The root of the range is arr[at] when at
// lies inside the range, otherwise a uniformly drawn pivot; recursive calls
// always draw, which is what makes the rebuilt shape fully random again.
// Subtree sizes are recomputed from the children on the way out.
// Time: O(last-first+1)
func (u *RBSTree[T, S]) build(arr []T, first, last, at int, visited *uint) nodePtr[T, S] {
	if last < first {
		return u.nilPtr
	}
	*visited++
	p := at
	if p < first || last < p {
		p = first + u.rng.Intn(last-first+1)
	}
	n := u.newNode(arr[p])
	n.l = u.build(arr, first, p-1, -1, visited)
	n.r = u.build(arr, p+1, last, -1, visited)
	n.sz = n.l.sz + n.r.sz + 1
	return n
}

// rebuild the subtree rooting at cur around the winning value v: flatten it
// together with v, then build the range back with v as the designated root.
// The old nodes all pass through the free list before build takes them back,
// so a rebuild allocates at most one node.
// Time: O(cur.sz); Space: O(cur.sz)
func (u *RBSTree[T, S]) rebuild(cur nodePtr[T, S], v T, visited *uint, buf []T) (nodePtr[T, S], []T) {
	arr, at := u.flatten(cur, v, buf[:0], visited)
	return u.build(arr, 0, len(arr)-1, at, visited), arr
}

// Insert [Tree.Insert]. Recursive.
// The returned count is 1 for the created node plus 1 for every node passed
// on the way down; when a lottery is won it additionally includes every node
// of the rebuilt subtree twice, once flattened and once built back.
// It is a wrapper for BufferedInsert.
// Time: expected O(log n) amortized, O(n) when the root lottery is won.
func (u *RBSTree[T, S]) Insert(v T) uint {
	c, _ := u.BufferedInsert(v, nil)
	return c
}

// BufferedInsert is Insert taking a scratch buffer. A won lottery flattens
// the losing subtree into a slice backed by buf before building it back;
// the possibly grown buffer is returned so a caller inserting repeatedly
// can keep rebuilds allocation free. A nil buf works and simply grows.
func (u *RBSTree[T, S]) BufferedInsert(v T, buf []T) (uint, []T) {
	visited := uint(1) //the created node
	buf = u.insert(&u.root, v, &visited, buf)
	return visited, buf

}

// height of the subtree rooting at c recursively. 0 for the sentinel.
func (u *RBSTree[T, S]) height(c nodePtr[T, S]) uint {
	if c == u.nilPtr {
		return 0
	}
	return max(u.height(c.l), u.height(c.r)) + 1
}

// Height [Tree.Height]. Recursive.
// For this tree the value is a diagnostic of how well the randomization is
// doing: it concentrates around c*log2(n) with c a little below 3.
// Time: O(n); Space: O(D)
func (u *RBSTree[T, S]) Height() uint {
	return u.height(u.root)
}

// clear the subtree rooting at c recursively in post-order, detaching every
// node and returning how many there were.
func (u *RBSTree[T, S]) clear(c nodePtr[T, S]) uint {
	if c == u.nilPtr {
		return 0
	}
	n := u.clear(c.l) + u.clear(c.r) + 1
	c.l, c.r = nil, nil
	return n
}

// Clear [Tree.Clear]. Recursive.
// The free list is dropped as well, so the memory of a cleared tree is
// actually released rather than recycled. The returned count covers only
// the nodes that were still part of the tree.
// Time: O(n); Space: O(D)
func (u *RBSTree[T, S]) Clear() uint {
	n := u.clear(u.root)
	u.root, u.free = u.nilPtr, u.nilPtr
	return n
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u RBSTree[T, S]) InOrder() func() (T, bool) {
	cur := u.root
	return func() (r T, has bool) {
		if cur == u.nilPtr {
			return
		} else {
			has = true
			for cur != u.nilPtr {
				if cur.l == u.nilPtr {
					r = cur.v
					cur = cur.r
					break
				} else {
					p := cur.l
					for p.r != u.nilPtr && p.r != cur {
						p = p.r
					}
					if p.r != cur {
						p.r = cur
						cur = cur.l
					} else {
						p.r = u.nilPtr
						r = cur.v
						cur = cur.r
						break
					}
				}
			}
			return
		}

	}
}

// corrupt reports whether the subtree rooting at c breaks the size bookkeeping
// or the ordering. prev carries the last in-order value seen so far.
func (u *RBSTree[T, S]) corrupt(c nodePtr[T, S], prev *T, seen *bool) bool {
	if c == u.nilPtr {
		return false
	}
	if c.sz != c.l.sz+c.r.sz+1 {
		return true
	}
	if u.corrupt(c.l, prev, seen) {
		return true
	}
	if *seen && c.v < *prev {
		return true
	}
	*prev, *seen = c.v, true
	return u.corrupt(c.r, prev, seen)
}

// Corrupt [Tree.Corrupt]. Recursive.
// A RBSTree is corrupt when a subtree size disagrees with its children or
// when an in-order pass of the values isn't non-decreasing. Shape is not
// checked; any shape is reachable by some sequence of draws.
// Time: O(n); Space: O(D)
func (u *RBSTree[T, S]) Corrupt() bool {
	var prev T
	var seen bool
	return u.corrupt(u.root, &prev, &seen)
}
