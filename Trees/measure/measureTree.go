package main

import (
	"fmt"
	"github.com/Kene-M/Randomized-Binary-Search-Tree/Trees"
	"math"
	"math/bits"
	"math/rand"
	"testing"
)

var bAddN uint32 = 1000000

const bNumSteps uint32 = 8

var _R = *rand.New(rand.NewSource(0))

var (
	visited uint
	height  uint
)

// BenchmarkLifecycle runs one full life of a tree: insert bAddN random keys,
// read the height, tear everything down. visited accumulates the node visits
// of insertions and of the teardown, height keeps the grown tree's height.
// The tree itself is seeded from the wall clock, so every run measures a
// different shape.
func BenchmarkLifecycle(b *testing.B) {
	for range b.N {
		tree := Trees.MakeRBSTree[int, uint32](nil)
		visited = 0
		buf := make([]int, 0, 1024)
		var c uint
		for range bAddN {
			c, buf = tree.BufferedInsert(_R.Int(), buf)
			visited += c
		}
		height = tree.Height()
		visited += tree.Clear()
	}
}

func main() {
	testing.Init()
	fmt.Printf("Inserting %d elements in a BST...\n", bAddN)
	testing.Benchmark(BenchmarkLifecycle)
	fmt.Printf("Height: %d\n", height)
	fmt.Printf("Nodes visited: %d\n", visited)

	full := bAddN
	var cs []float64
	for i := uint32(1); i <= bNumSteps; i++ {
		bAddN = full / bNumSteps * i
		testing.Benchmark(BenchmarkLifecycle)
		cs = append(cs, float64(visited)/float64(bAddN))
		fmt.Printf("n=%d: height %d (log2 %d), %.2f visits/insertion\n",
			bAddN, height, bits.Len32(bAddN), cs[len(cs)-1])
	}
	var sum float64 = 0
	for _, v := range cs {
		sum += v
	}
	avg := sum / float64(len(cs))
	fmt.Printf("average: %f visits/insertion\n", avg)
	sum = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}
	fmt.Printf("stddev: %f visits/insertion\n", math.Sqrt(sum/float64(len(cs))))
}
