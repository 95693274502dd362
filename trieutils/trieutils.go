/*
Package trieutils provides counting and sorting utilities for a trie
built from a list of sequences: reporting how many of those input
sequences terminate at each node, and producing a permutation that sorts
the input list by a canonical, symbol-ascending DFS of the trie,
duplicates preserved.

It also adds TopKCounts, which ranks the most-frequently-inserted
entries without a full sort.
*/
package trieutils

import (
	"github.com/Zubayear/generalsam/alphabet"
	"github.com/Zubayear/generalsam/priorityqueue"
	"github.com/Zubayear/generalsam/stack"
	"github.com/Zubayear/generalsam/trie"
)

// CountInfo holds, per trie node, how many entries of the original input
// list terminated there. A node can have a count greater than one only
// when the input list contains duplicate sequences.
type CountInfo struct {
	Counts []int32
}

// SortResult is a permutation of the original input list's indices,
// ordered by a canonical symbol-ascending DFS of the trie built from it.
// Entries that compare equal (duplicates) keep their original relative
// order.
type SortResult struct {
	Order []int32
}

// BuildTrieFromBytes inserts every seq into a fresh byte-alphabet trie
// and returns it alongside, for each input index, the trie-node id its
// sequence terminates at.
func BuildTrieFromBytes(seqs [][]byte) (*trie.Trie[byte], []int32) {
	t := trie.NewBytes()
	nodeOf := make([]int32, len(seqs))
	for i, s := range seqs {
		nodeOf[i] = t.Insert(s)
	}
	return t, nodeOf
}

// BuildTrieFromChars inserts every s into a fresh rune-alphabet trie and
// returns it alongside, for each input index, the trie-node id its
// string terminates at.
func BuildTrieFromChars(seqs []string) (*trie.Trie[rune], []int32) {
	t := trie.NewChars()
	nodeOf := make([]int32, len(seqs))
	for i, s := range seqs {
		nodeOf[i] = t.Insert([]rune(s))
	}
	return t, nodeOf
}

// ComputeCounts tallies, for a trie with numNodes nodes, how many
// entries of nodeOf (as returned by BuildTrieFrom{Bytes,Chars}) land on
// each node.
func ComputeCounts(numNodes int32, nodeOf []int32) CountInfo {
	counts := make([]int32, numNodes)
	for _, node := range nodeOf {
		counts[node]++
	}
	return CountInfo{Counts: counts}
}

// SortSeqViaTrie sorts the indices of nodeOf by a canonical,
// symbol-ascending DFS of t: the order entries would be visited in if t
// were walked depth-first, always descending into children in symbol
// order. Entries sharing a node (duplicates) are emitted in their
// original relative order.
//
// The DFS is run iteratively with a stack (rather than recursively) so
// that sorting a trie built from a large, deep vocabulary cannot blow
// the call stack.
func SortSeqViaTrie[S alphabet.Symbol](t *trie.Trie[S], nodeOf []int32) SortResult {
	byNode := make(map[int32][]int32, len(nodeOf))
	for i, node := range nodeOf {
		byNode[node] = append(byNode[node], int32(i))
	}

	var order []int32
	st := stack.NewStack[int32]()
	_, _ = st.Push(0)
	for !st.IsEmpty() {
		node, _ := st.Pop()
		order = append(order, byNode[node]...)

		children, err := t.IterChildren(node)
		if err != nil {
			continue
		}
		for i := len(children) - 1; i >= 0; i-- {
			_, _ = st.Push(children[i].Child)
		}
	}
	return SortResult{Order: order}
}

// SortBytes is SortSeqViaTrie specialized to the byte alphabet.
func SortBytes(t *trie.Trie[byte], nodeOf []int32) SortResult {
	return SortSeqViaTrie[byte](t, nodeOf)
}

// SortChars is SortSeqViaTrie specialized to the Unicode scalar
// alphabet.
func SortChars(t *trie.Trie[rune], nodeOf []int32) SortResult {
	return SortSeqViaTrie[rune](t, nodeOf)
}

// CountEntry is one ranked result from TopKCounts.
type CountEntry struct {
	Node  int32
	Count int32
}

// TopKCounts returns the k nodes with the highest count in info,
// descending, breaking ties by node id ascending. Nodes with a zero
// count are never included.
//
// Implemented with a bounded min-heap rather than a full sort of the
// count table, since only the top k entries are wanted and k is
// typically far smaller than the number of nodes in a large vocabulary.
func TopKCounts(info CountInfo, k int) []CountEntry {
	if k <= 0 {
		return nil
	}
	heap := priorityqueue.NewBinaryHeapWithComparator(func(a, b CountEntry) bool {
		if a.Count != b.Count {
			return a.Count < b.Count
		}
		return a.Node > b.Node
	})
	for node, count := range info.Counts {
		if count == 0 {
			continue
		}
		heap.Add(CountEntry{Node: int32(node), Count: count})
		if heap.Size() > k {
			_, _ = heap.Poll()
		}
	}

	out := make([]CountEntry, heap.Size())
	for i := len(out) - 1; i >= 0; i-- {
		v, _ := heap.Poll()
		out[i] = v
	}
	return out
}
