/*
Package vocabprefix implements the vocabulary-prefix automaton: given a
fixed vocabulary, it answers, for the input fed so far, which
vocabulary entries have that input as a prefix and which have it as an
infix (a substring occurring anywhere).

Like tokenizer.GreedyTokenizer, VocabPrefixAutomaton is an
alphabet-tagged facade rather than a generic type, for the same reason:
it answers both prefix and infix queries on one object, for whichever
alphabet it was built over.

Prefix membership is answered by walking the trie directly: input is a
prefix of every vocabulary entry in the subtree below wherever that walk
lands. Infix membership needs more than the trie alone, since a
substring can start anywhere inside an entry, not just at its root; it
is answered by walking the GSAM built from the same trie, using a
per-node occurrence index computed once at construction (see
buildOccurrenceIndex) that records, for every GSAM node, which original
vocabulary entries contain that node's represented string.
*/
package vocabprefix

import (
	"github.com/Zubayear/generalsam/alphabet"
	"github.com/Zubayear/generalsam/gsam"
	"github.com/Zubayear/generalsam/queue"
	"github.com/Zubayear/generalsam/trie"
)

// VocabPrefixAutomaton answers prefix/infix queries against a fixed
// vocabulary, bound to exactly one alphabet for its lifetime.
type VocabPrefixAutomaton struct {
	kind alphabet.Kind

	bytesTrie *trie.Trie[byte]
	bytesSAM  *gsam.GSAM[byte]
	bytesOcc  [][]int32

	charsTrie *trie.Trie[rune]
	charsSAM  *gsam.GSAM[rune]
	charsOcc  [][]int32
}

// NewBytes builds a vocabulary-prefix automaton over the byte alphabet
// from vocab.
func NewBytes(vocab [][]byte) (*VocabPrefixAutomaton, error) {
	t := trie.NewBytes()
	leafOf := make([]int32, len(vocab))
	for i, entry := range vocab {
		leafOf[i] = t.Insert(entry)
	}
	sam, err := gsam.FromTrie[byte](t)
	if err != nil {
		return nil, err
	}
	return &VocabPrefixAutomaton{
		kind:      alphabet.KindBytes,
		bytesTrie: t,
		bytesSAM:  sam,
		bytesOcc:  buildOccurrenceIndex[byte](sam, vocab, leafOf),
	}, nil
}

// NewChars builds a vocabulary-prefix automaton over the Unicode scalar
// alphabet from vocab.
func NewChars(vocab []string) (*VocabPrefixAutomaton, error) {
	t := trie.NewChars()
	paths := make([][]rune, len(vocab))
	leafOf := make([]int32, len(vocab))
	for i, entry := range vocab {
		paths[i] = []rune(entry)
		leafOf[i] = t.Insert(paths[i])
	}
	sam, err := gsam.FromTrie[rune](t)
	if err != nil {
		return nil, err
	}
	return &VocabPrefixAutomaton{
		kind:      alphabet.KindChars,
		charsTrie: t,
		charsSAM:  sam,
		charsOcc:  buildOccurrenceIndex[rune](sam, paths, leafOf),
	}, nil
}

// Kind reports which alphabet this automaton is bound to.
func (v *VocabPrefixAutomaton) Kind() alphabet.Kind {
	return v.kind
}

// buildOccurrenceIndex records, for every GSAM node, the leaf (trie
// accepting-node) ids of every vocabulary entry whose string contains
// that node's represented substring. It replays each vocabulary entry
// through the already-built automaton once: at each position, the
// landed node and its entire suffix-link ancestor chain represent every
// suffix of the prefix read so far, i.e. every substring of the entry
// ending there, so marking that chain for this entry's leaf id covers
// every substring occurrence.
//
// A per-node "last entry marked" stamp stops each chain walk the moment
// it reaches a node already marked for the current entry, since
// everything above it was necessarily marked during an earlier,
// shorter-prefix step of the same entry. That keeps the whole pass
// linear in the total vocabulary length rather than quadratic in the
// length of any single entry.
func buildOccurrenceIndex[S alphabet.Symbol](sam *gsam.GSAM[S], paths [][]S, leafOf []int32) [][]int32 {
	n := sam.NumNodes()
	occ := make([][]int32, n)
	lastMarked := make([]int32, n)
	for i := range lastMarked {
		lastMarked[i] = alphabet.NilNode
	}

	for idx, path := range paths {
		leaf := leafOf[idx]
		w := sam.RootState()
		for _, c := range path {
			w.FeedOne(c)
			if w.IsNil() {
				break
			}
			node := w.CurrentNode()
			for node != alphabet.NilNode && lastMarked[node] != leaf {
				lastMarked[node] = leaf
				occ[node] = append(occ[node], leaf)
				link := sam.LinkAt(node)
				node = link
			}
		}
	}
	return occ
}

// collectAcceptDescendants gathers every accepting node in the subtree
// of the trie rooted at start, start included, via a BFS frontier.
func collectAcceptDescendants[S alphabet.Symbol](t *trie.Trie[S], start int32) []int32 {
	var out []int32
	frontier := queue.NewQueue[int32]()
	frontier.Enqueue(start)
	for !frontier.IsEmpty() {
		node, _ := frontier.Dequeue()
		if t.IsAccept(node) {
			out = append(out, node)
		}
		children, err := t.IterChildren(node)
		if err != nil {
			continue
		}
		for _, e := range children {
			frontier.Enqueue(e.Child)
		}
	}
	return out
}

func walkTrie[S alphabet.Symbol](t *trie.Trie[S], input []S) (int32, bool) {
	node := int32(0)
	for _, c := range input {
		child, ok := t.Child(node, c)
		if !ok {
			return alphabet.NilNode, false
		}
		node = child
	}
	return node, true
}

// PrefixMatches returns the trie-node ids of every vocabulary entry that
// has input as a prefix.
func (v *VocabPrefixAutomaton) PrefixMatches(input []byte) ([]int32, error) {
	if v.kind != alphabet.KindBytes {
		return nil, alphabet.ErrAlphabetMismatch
	}
	node, ok := walkTrie[byte](v.bytesTrie, input)
	if !ok {
		return nil, nil
	}
	return collectAcceptDescendants[byte](v.bytesTrie, node), nil
}

// PrefixMatchesChars returns the trie-node ids of every vocabulary entry
// that has input as a prefix.
func (v *VocabPrefixAutomaton) PrefixMatchesChars(input string) ([]int32, error) {
	if v.kind != alphabet.KindChars {
		return nil, alphabet.ErrAlphabetMismatch
	}
	node, ok := walkTrie[rune](v.charsTrie, []rune(input))
	if !ok {
		return nil, nil
	}
	return collectAcceptDescendants[rune](v.charsTrie, node), nil
}

// InfixMatches returns the trie-node ids of every vocabulary entry that
// contains input as an infix (substring).
func (v *VocabPrefixAutomaton) InfixMatches(input []byte) ([]int32, error) {
	if v.kind != alphabet.KindBytes {
		return nil, alphabet.ErrAlphabetMismatch
	}
	w := v.bytesSAM.RootState()
	w.Feed(input)
	if w.IsNil() {
		return nil, nil
	}
	return v.bytesOcc[w.CurrentNode()], nil
}

// InfixMatchesChars returns the trie-node ids of every vocabulary entry
// that contains input as an infix (substring).
func (v *VocabPrefixAutomaton) InfixMatchesChars(input string) ([]int32, error) {
	if v.kind != alphabet.KindChars {
		return nil, alphabet.ErrAlphabetMismatch
	}
	w := v.charsSAM.RootState()
	w.Feed([]rune(input))
	if w.IsNil() {
		return nil, nil
	}
	return v.charsOcc[w.CurrentNode()], nil
}
