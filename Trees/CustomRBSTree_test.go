package Trees

import (
	"math/rand"
	"testing"
)

// event is ordered by ts alone, so repeated timestamps are the interesting
// case: tag records the insertion order for checking them.
type event struct {
	ts  int
	tag int
}

func (a event) LessThan(b any) bool { return a.ts < b.(event).ts }

func TestCRBSTree_Insert(t *testing.T) {
	tree := MakeCRBSTree[event, uint32](rand.NewSource(1))
	n := tAddN / 4
	for i := range n {
		if c := tree.Insert(event{rg.Intn(64), i}); c < 1 {
			t.Errorf("visited %d inserting event %d", c, i)
		}
	}
	if int(tree.Size()) != n {
		t.Errorf("tree size is %d, want %d", tree.Size(), n)
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt")
	}
	s := drain(tree.InOrder())
	if len(s) != n {
		t.Fatalf("traversal gave %d values, want %d", len(s), n)
	}
	for i := 1; i < len(s); i++ {
		if s[i].ts < s[i-1].ts {
			t.Fatalf("wrong order at index %d: %v before %v", i, s[i-1], s[i])
		}
		if s[i].ts == s[i-1].ts && s[i].tag < s[i-1].tag {
			t.Fatalf("repeated ts %d lost arrival order at index %d", s[i].ts, i)
		}
	}
	t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Size())
}

func TestCRBSTree_Rebuild(t *testing.T) {
	tree := MakeCRBSTree[event, uint32](alwaysWin{})
	for i, ts := range []int{5, 2, 8} {
		tree.Insert(event{ts, i})
	}
	tree.Insert(event{4, 3})
	if tree.root.v.ts != 4 {
		t.Errorf("root ts is %d after winning the root lottery, want 4", tree.root.v.ts)
	}
	if tree.root.l.sz != 1 || tree.root.r.sz != 2 {
		t.Errorf("subtree sizes are %d and %d, want 1 and 2", tree.root.l.sz, tree.root.r.sz)
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt")
	}
	s := drain(tree.InOrder())
	for i, ts := range []int{2, 4, 5, 8} {
		if s[i].ts != ts {
			t.Errorf("wrong ts %d at index %d, want %d", s[i].ts, i, ts)
		}
	}
}

func TestCRBSTree_Clear(t *testing.T) {
	tree := MakeCRBSTree[event, uint32](rand.NewSource(2))
	for i := range 1000 {
		tree.Insert(event{rg.Intn(64), i})
	}
	if n := tree.Clear(); n != 1000 {
		t.Errorf("clear visited %d nodes, want 1000", n)
	}
	if tree.Size() != 0 || tree.Height() != 0 {
		t.Errorf("size %d height %d after clear", tree.Size(), tree.Height())
	}
	tree.Insert(event{1, 0})
	if tree.Size() != 1 || tree.Corrupt() {
		t.Errorf("tree unusable after clear: size %d", tree.Size())
	}
}

func TestBuildCRBSTree(t *testing.T) {
	content := make([]event, tAddN/4)
	for i := range content {
		content[i] = event{i >> 2, i}
	}
	tree := BuildCRBSTree[event, uint32](content, rand.NewSource(3), true)
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt")
	}
	s := drain(tree.InOrder())
	for i := range s {
		if s[i] != content[i] {
			t.Fatalf("wrong value %v at index %d, want %v", s[i], i, content[i])
		}
	}
}

func TestBuildCRBSTree_Invalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("no panic for an unsorted slice")
		} else if _, ok := r.(InvalidSliceError); !ok {
			t.Fatalf("wrong panic %v", r)
		}
	}()
	BuildCRBSTree[event, uint32]([]event{{2, 0}, {1, 1}}, neverWin{}, true)
}
