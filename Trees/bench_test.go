package Trees

import (
	"math/rand"
	"testing"
)

const bAddN = 1 << 15

func BenchmarkRBSTree_Insert(b *testing.B) {
	var tree *RBSTree[int, uint32]
	for range b.N {
		tree = MakeRBSTree[int, uint32](rand.NewSource(0))
		for _, v := range rand.Perm(bAddN) {
			tree.Insert(v)
		}
	}
	b.Log(tree.Height())
}

func BenchmarkRBSTree_BufferedInsert(b *testing.B) {
	var tree *RBSTree[int, uint32]
	for range b.N {
		tree = MakeRBSTree[int, uint32](rand.NewSource(0))
		buf := make([]int, 0, bAddN)
		for _, v := range rand.Perm(bAddN) {
			_, buf = tree.BufferedInsert(v, buf)
		}
	}
	b.Log(tree.Height())
}

func BenchmarkRBSTree_InsertAscending(b *testing.B) {
	var tree *RBSTree[int, uint32]
	for range b.N {
		tree = MakeRBSTree[int, uint32](rand.NewSource(0))
		buf := make([]int, 0, bAddN)
		for v := range bAddN {
			_, buf = tree.BufferedInsert(v, buf)
		}
	}
	b.Log(tree.Height())
}

func BenchmarkBuildRBSTree(b *testing.B) {
	all := make([]int, bAddN)
	for i := range all {
		all[i] = i
	}
	b.ResetTimer()
	var tree *RBSTree[int, uint32]
	for range b.N {
		tree = BuildRBSTree[int, uint32](all, rand.NewSource(0), false)
	}
	b.Log(tree.Height())
}

var sideEff int

func BenchmarkRBSTree_InOrder(b *testing.B) {
	all := make([]int, bAddN)
	for i := range all {
		all[i] = i
	}
	tree := BuildRBSTree[int, uint32](all, rand.NewSource(0), false)
	b.ResetTimer()
	for range b.N {
		for f, ok := tree.InOrder(), true; ok; {
			sideEff, ok = f()
		}
	}
}
