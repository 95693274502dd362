package trieutils

import (
	"reflect"
	"testing"
)

func TestComputeCountsTalliesDuplicates(t *testing.T) {
	seqs := [][]byte{[]byte("a"), []byte("a"), []byte("b")}
	tr, nodeOf := BuildTrieFromBytes(seqs)
	info := ComputeCounts(tr.NumNodes(), nodeOf)
	if info.Counts[nodeOf[0]] != 2 {
		t.Errorf("count at %q's node = %d, want 2", "a", info.Counts[nodeOf[0]])
	}
	if info.Counts[nodeOf[2]] != 1 {
		t.Errorf("count at %q's node = %d, want 1", "b", info.Counts[nodeOf[2]])
	}
}

func TestSortBytesOrdersBySymbolAscendingDFS(t *testing.T) {
	seqs := [][]byte{[]byte("banana"), []byte("apple"), []byte("ant"), []byte("bat")}
	tr, nodeOf := BuildTrieFromBytes(seqs)
	result := SortBytes(tr, nodeOf)

	if len(result.Order) != len(seqs) {
		t.Fatalf("Order = %v, want %d entries", result.Order, len(seqs))
	}
	var sorted []string
	for _, idx := range result.Order {
		sorted = append(sorted, string(seqs[idx]))
	}
	want := []string{"ant", "apple", "banana", "bat"}
	if !reflect.DeepEqual(sorted, want) {
		t.Errorf("sorted = %v, want %v", sorted, want)
	}
}

func TestSortBytesPreservesDuplicateOrder(t *testing.T) {
	seqs := [][]byte{[]byte("a"), []byte("a"), []byte("a")}
	tr, nodeOf := BuildTrieFromBytes(seqs)
	result := SortBytes(tr, nodeOf)
	want := []int32{0, 1, 2}
	if !reflect.DeepEqual(result.Order, want) {
		t.Errorf("Order = %v, want %v", result.Order, want)
	}
}

func TestSortCharsOrdersBySymbolAscendingDFS(t *testing.T) {
	seqs := []string{"本", "日", "語"}
	tr, nodeOf := BuildTrieFromChars(seqs)
	result := SortChars(tr, nodeOf)
	var sorted []string
	for _, idx := range result.Order {
		sorted = append(sorted, seqs[idx])
	}
	want := []string{"日", "本", "語"}
	if !reflect.DeepEqual(sorted, want) {
		t.Errorf("sorted = %v, want %v", sorted, want)
	}
}

func TestTopKCountsRanksDescendingByCount(t *testing.T) {
	seqs := [][]byte{
		[]byte("a"), []byte("a"), []byte("a"),
		[]byte("b"), []byte("b"),
		[]byte("c"),
	}
	tr, nodeOf := BuildTrieFromBytes(seqs)
	info := ComputeCounts(tr.NumNodes(), nodeOf)

	top := TopKCounts(info, 2)
	if len(top) != 2 {
		t.Fatalf("TopKCounts returned %d entries, want 2", len(top))
	}
	if top[0].Node != nodeOf[0] || top[0].Count != 3 {
		t.Errorf("top[0] = %+v, want node %d count 3", top[0], nodeOf[0])
	}
	if top[1].Node != nodeOf[3] || top[1].Count != 2 {
		t.Errorf("top[1] = %+v, want node %d count 2", top[1], nodeOf[3])
	}
}

func TestTopKCountsZeroOrNegativeK(t *testing.T) {
	tr, nodeOf := BuildTrieFromBytes([][]byte{[]byte("a")})
	info := ComputeCounts(tr.NumNodes(), nodeOf)
	if got := TopKCounts(info, 0); got != nil {
		t.Errorf("TopKCounts(_, 0) = %v, want nil", got)
	}
	if got := TopKCounts(info, -1); got != nil {
		t.Errorf("TopKCounts(_, -1) = %v, want nil", got)
	}
}

func TestTopKCountsExcludesZeroCounts(t *testing.T) {
	tr, nodeOf := BuildTrieFromBytes([][]byte{[]byte("a")})
	info := ComputeCounts(tr.NumNodes(), nodeOf)
	top := TopKCounts(info, 10)
	if len(top) != 1 {
		t.Errorf("TopKCounts = %+v, want exactly the one nonzero-count node", top)
	}
}
