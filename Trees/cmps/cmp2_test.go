package cmps

import (
	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"math/rand"
	"testing"
)

// compares with https://github.com/cornelk/hashmap and
// https://github.com/alphadose/haxmap using the same keys as cmp1_test.go.
// Hash maps keep no order at all, so these numbers are the floor cost of
// holding the keys when no ordering has to be maintained.
func setupHashMap(b *testing.B) *hashmap.Map[int, int] {
	b.Helper()
	m := hashmap.New[int, int]()
	for i := 0; i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func setupHaxMap(b *testing.B) *haxmap.Map[int, int] {
	b.Helper()
	m := haxmap.New[int, int]()
	for i := 0; i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func Benchmark1WriteHashMap(b *testing.B) {
	for n := 0; n < b.N; n++ {
		m := hashmap.New[int, int]()
		for i := 0; i < benchmarkItemCount; i++ {
			m.Set(i, i)
		}
	}
}

func Benchmark1WriteHaxMap(b *testing.B) {
	for n := 0; n < b.N; n++ {
		m := haxmap.New[int, int]()
		for i := 0; i < benchmarkItemCount; i++ {
			m.Set(i, i)
		}
	}
}

func Benchmark2WriteRndHashMap(b *testing.B) {
	keys := rand.Perm(benchmarkItemCount)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m := hashmap.New[int, int]()
		for _, v := range keys {
			m.Set(v, v)
		}
	}
}

func Benchmark2WriteRndHaxMap(b *testing.B) {
	keys := rand.Perm(benchmarkItemCount)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		m := haxmap.New[int, int]()
		for _, v := range keys {
			m.Set(v, v)
		}
	}
}

func Benchmark3ReadHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			j, _ := m.Get(i)
			if j != i {
				b.Fail()
			}
		}
	}
}

func Benchmark3ReadHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := 0; i < benchmarkItemCount; i++ {
			j, _ := m.Get(i)
			if j != i {
				b.Fail()
			}
		}
	}
}
