package Trees

import (
	"golang.org/x/exp/constraints"
)

// A node in the RBSTree
// The zero value is meaningful: index 0 is the loopback nil, a 0 size
// node whose children are itself.
type info[S constraints.Unsigned] struct {
	l, r, sz S
}

type base[S constraints.Unsigned] struct {
	root S
	ifs  []info[S] //ifs[0] is the loopback nil. all indexes are based on ifs. len(ifs)=size+1
}

// inOrder traversal of the tree calling f with the index of every node until
// f returns false. When st==nil, uses morris traversal, which threads and
// restores the r links as it goes; otherwise, uses normal stack based
// iterative traversal on st and returns it for reuse.
func (u *base[S]) inOrder(f func(S) bool, st []S) []S {
	if curI := u.root; st == nil { //use morris traversal
	iter1:
		for curI != 0 {
			if u.ifs[curI].l == 0 {
				if !f(curI) {
					break
				}
				curI = u.ifs[curI].r
			} else {
				for next := &u.ifs[u.ifs[curI].l]; ; next = &u.ifs[next.r] {
					if next.r == 0 {
						next.r = curI
						curI = u.ifs[curI].l
						break
					} else if next.r == curI {
						next.r = 0
						if !f(curI) {
							break iter1
						}
						curI = u.ifs[curI].r
						break
					}
				}

			}
		}
		for curI != 0 { //deplete the remaining traversal.
			if u.ifs[curI].l == 0 {
				curI = u.ifs[curI].r
			} else {
				for next := &u.ifs[u.ifs[curI].l]; ; next = &u.ifs[next.r] {
					if next.r == 0 {
						next.r = curI
						curI = u.ifs[curI].l
						break
					} else if next.r == curI {
						next.r = 0
						curI = u.ifs[curI].r
						break
					}
				}
			}
		}
	} else { //use normal traversal
		for st = st[:0]; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
		for len(st) > 0 {
			curI, st = st[len(st)-1], st[:len(st)-1]
			if !f(curI) {
				break
			}
			for curI = u.ifs[curI].r; curI != 0; curI = u.ifs[curI].l {
				st = append(st, curI)
			}
		}
	}
	return st
}

func (u *base[S]) Size() S {
	return u.ifs[u.root].sz
}

func (u *base[S]) clrIfs() {
	u.ifs = u.ifs[:1]
	u.root = 0
}
