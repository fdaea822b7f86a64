package Trees

import "golang.org/x/exp/constraints"

// A node in the RBSTree
// The zero value is meaningless. There are no rotation helpers on nodes:
// the trees in this package restore their shape by rebuilding whole
// subtrees, never by rotating.
type node[T any, S constraints.Unsigned] struct {
	v    T
	l, r nodePtr[T, S]
	sz   S
}

// Pointer to a node
// nil Pointer is meaningless. A nodePtr is considered to be nil if the
// pointer is equal to the nilPtr in RBSTree. The value of this node has
// both node.l, node.r = itself, and sz=0. v is the zero value of T
type nodePtr[T any, S constraints.Unsigned] *node[T, S]
