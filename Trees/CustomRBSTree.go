package Trees

import (
	"golang.org/x/exp/constraints"
	"math/rand"
	"time"
)

// CRBSTree is the version of RBSTree for user-defined struct satisfying
// Ordered interface. All methods are implemented exactly as RBSTree except
// for using Ordered.LessThan for comparisons. Argument passed to
// Ordered.LessThan will always be type T so no type checks are needed.
type CRBSTree[T Ordered, S constraints.Unsigned] struct {
	root   nodePtr[T, S]
	nilPtr nodePtr[T, S]
	free   nodePtr[T, S]
	rng    *rand.Rand
}

// MakeCRBSTree is the CRBSTree equivalence of MakeRBSTree
func MakeCRBSTree[T Ordered, S constraints.Unsigned](src rand.Source) *CRBSTree[T, S] {
	z := new(node[T, S])
	z.l, z.r = z, z
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &CRBSTree[T, S]{z, z, z, rand.New(src)}
}

// BuildCRBSTree is the CRBSTree equivalence of BuildRBSTree
func BuildCRBSTree[T Ordered, S constraints.Unsigned](sli []T, src rand.Source, safe bool) *CRBSTree[T, S] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if sli[i].LessThan(sli[i-1]) {
				panic(InvalidSliceError{sli[i-1], sli[i], i})
			}
		}
	}
	u := MakeCRBSTree[T, S](src)
	var vis uint
	u.root = u.build(sli, 0, len(sli)-1, -1, &vis)
	return u
}

func (u *CRBSTree[T, S]) Size() uint {
	return uint(u.root.sz)
}

func (u *CRBSTree[T, S]) newNode(v T) nodePtr[T, S] {
	n := u.free
	if n == u.nilPtr {
		n = new(node[T, S])
	} else {
		u.free = n.l
	}
	n.v, n.l, n.r, n.sz = v, u.nilPtr, u.nilPtr, 1
	return n
}

func (u *CRBSTree[T, S]) addFree(n nodePtr[T, S]) {
	n.l = u.free
	u.free = n
}

func (u *CRBSTree[T, S]) insert(curPtr *nodePtr[T, S], v T, visited *uint, buf []T) []T {
	if cur := *curPtr; cur == u.nilPtr {
		*curPtr = u.newNode(v)
		return buf
	} else {
		*visited++
		if u.rng.Float64() < 1/(float64(cur.sz)+1) {
			*curPtr, buf = u.rebuild(cur, v, visited, buf)
			return buf
		} else if cur.sz++; v.LessThan(cur.v) {
			return u.insert(&cur.l, v, visited, buf)
		} else {
			return u.insert(&cur.r, v, visited, buf)
		}
	}

}

func (u *CRBSTree[T, S]) flatten(cur nodePtr[T, S], v T, arr []T, visited *uint) ([]T, int) {
	at := -1
	var walk func(nodePtr[T, S])
	walk = func(c nodePtr[T, S]) {
		if c == u.nilPtr {
			return
		}
		walk(c.l)
		if at < 0 && v.LessThan(c.v) {
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

func (u *CRBSTree[T, S]) build(arr []T, first, last, at int, visited *uint) nodePtr[T, S] {
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

func (u *CRBSTree[T, S]) rebuild(cur nodePtr[T, S], v T, visited *uint, buf []T) (nodePtr[T, S], []T) {
	arr, at := u.flatten(cur, v, buf[:0], visited)
	return u.build(arr, 0, len(arr)-1, at, visited), arr
}

func (u *CRBSTree[T, S]) Insert(v T) uint {
	c, _ := u.BufferedInsert(v, nil)
	return c
}

func (u *CRBSTree[T, S]) BufferedInsert(v T, buf []T) (uint, []T) {
	visited := uint(1)
	buf = u.insert(&u.root, v, &visited, buf)
	return visited, buf
}

func (u *CRBSTree[T, S]) height(c nodePtr[T, S]) uint {
	if c == u.nilPtr {
		return 0
	}
	return max(u.height(c.l), u.height(c.r)) + 1
}

func (u *CRBSTree[T, S]) Height() uint {
	return u.height(u.root)
}

func (u *CRBSTree[T, S]) clear(c nodePtr[T, S]) uint {
	if c == u.nilPtr {
		return 0
	}
	n := u.clear(c.l) + u.clear(c.r) + 1
	c.l, c.r = nil, nil
	return n
}

func (u *CRBSTree[T, S]) Clear() uint {
	n := u.clear(u.root)
	u.root, u.free = u.nilPtr, u.nilPtr
	return n
}

func (u CRBSTree[T, S]) InOrder() func() (T, bool) {
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

func (u *CRBSTree[T, S]) corrupt(c nodePtr[T, S], prev *T, seen *bool) bool {
	if c == u.nilPtr {
		return false
	}
	if c.sz != c.l.sz+c.r.sz+1 {
		return true
	}
	if u.corrupt(c.l, prev, seen) {
		return true
	}
	if *seen && c.v.LessThan(*prev) {
		return true
	}
	*prev, *seen = c.v, true
	return u.corrupt(c.r, prev, seen)
}

func (u *CRBSTree[T, S]) Corrupt() bool {
	var prev T
	var seen bool
	return u.corrupt(u.root, &prev, &seen)
}
