package Trees

import "fmt"

// Tree represents A tree like structure implemented using nodes. Unlike
// balanced trees that repair themselves with rotations, implementations
// here keep their expected shape through randomness, so operations report
// the number of nodes they visited instead of A success flag; the counts
// are what callers use to observe the cost of the probabilistic
// maintenance. No receiver is safe for concurrent use.
// If an implementation didn't specify anything special, then the implemented
// receivers follows the behaviors defined here. Methods implemented recursively
// should be noted, otherwise functions are implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree and return the number of nodes visited while
	//doing so. The created node counts as visited, so the result is >=1.
	//Exact behavior depend on implementation.
	Insert(v T) uint
	//Size of the tree.
	Size() uint
	//Height is the number of nodes on the longest root to leaf path.
	//0 for an empty tree, 1 for A tree of one node.
	Height() uint
	//Clear detaches all nodes from the tree and returns the number of
	//nodes visited while doing so, which equals the size before the
	//call. The tree remains usable afterwards.
	Clear() uint
	//InOrder returns A closure function f acting like an iterator. f
	//gives nodes in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f, otherwise
	//it could corrupt the tree. There will be no panic if such cases
	//happens so design the algorithm with this in mind.
	InOrder() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//or the subtree size at some node violates the properties of that
	//specific implementation. This is to be distinguished from whether the
	//tree is balanced or not; an unlucky shape is legal here.
	Corrupt() bool
}

// Ordered is implemented by element types of the trees whose names begin
// with C. The argument passed to LessThan by those trees is always the
// implementing type itself, so implementations may type assert it without
// checking.
type Ordered interface {
	LessThan(other any) bool
}

// InvalidSliceError is the panic value of Build functions called with
// safe==true on A slice that isn't in ascending order. Prev and Cur are
// the offending neighbors; At is the index of Cur in the given slice.
type InvalidSliceError struct {
	Prev, Cur any
	At        int
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("slice not ascending: %v followed by %v at index %d", e.Prev, e.Cur, e.At)
}
