/*
Package tokenizer implements the greedy longest-match tokenizer: given a
trie whose accepting nodes are a vocabulary and a GSAM built over that
trie, it segments an input into the longest known vocabulary entries,
left to right.

GreedyTokenizer is an alphabet-tagged facade, not a generic type: it
exposes both TokenizeBytes and TokenizeChars on one object, erroring if
the wrong one is called for the alphabet it was actually built over.
That shape does not fit a Go generic type (a GreedyTokenizer[byte]
cannot be handed a string), so a tagged-variance representation is used
instead: exactly one of the two internal (sam, trie, bestMatch) triples
is populated, selected by kind.
*/
package tokenizer

import (
	"github.com/Zubayear/generalsam/alphabet"
	"github.com/Zubayear/generalsam/gsam"
	"github.com/Zubayear/generalsam/priorityqueue"
	"github.com/Zubayear/generalsam/trie"
)

// Token is one emitted segment: the trie-node id of the matched
// vocabulary entry (alphabet.UnknownToken if nothing matched) and its
// length in symbols.
type Token struct {
	TrieNode int32
	Length   int64
}

type bestMatch struct {
	trieNode int32
	length   int64
}

// GreedyTokenizer bundles a trie and a GSAM built from that trie, plus
// the per-GSAM-node best_match bookkeeping, computed once at
// construction time.
type GreedyTokenizer struct {
	kind alphabet.Kind

	bytesSAM  *gsam.GSAM[byte]
	bytesTrie *trie.Trie[byte]
	bytesBest []bestMatch

	charsSAM  *gsam.GSAM[rune]
	charsTrie *trie.Trie[rune]
	charsBest []bestMatch
}

// FromSAMAndTrieBytes builds a tokenizer over a byte-alphabet trie and
// the GSAM built from it.
func FromSAMAndTrieBytes(sam *gsam.GSAM[byte], t *trie.Trie[byte]) *GreedyTokenizer {
	return &GreedyTokenizer{
		kind:      alphabet.KindBytes,
		bytesSAM:  sam,
		bytesTrie: t,
		bytesBest: computeBestMatch[byte](sam, t),
	}
}

// FromSAMAndTrieChars builds a tokenizer over a rune-alphabet trie and
// the GSAM built from it.
func FromSAMAndTrieChars(sam *gsam.GSAM[rune], t *trie.Trie[rune]) *GreedyTokenizer {
	return &GreedyTokenizer{
		kind:      alphabet.KindChars,
		charsSAM:  sam,
		charsTrie: t,
		charsBest: computeBestMatch[rune](sam, t),
	}
}

// Kind reports which alphabet this tokenizer is bound to.
func (tk *GreedyTokenizer) Kind() alphabet.Kind {
	return tk.kind
}

// TokenizeBytes segments b into the longest known vocabulary entries.
func (tk *GreedyTokenizer) TokenizeBytes(b []byte) ([]Token, error) {
	if tk.kind != alphabet.KindBytes {
		return nil, alphabet.ErrAlphabetMismatch
	}
	return tokenize(tk.bytesSAM, tk.bytesBest, b), nil
}

// TokenizeChars segments s into the longest known vocabulary entries.
func (tk *GreedyTokenizer) TokenizeChars(s string) ([]Token, error) {
	if tk.kind != alphabet.KindChars {
		return nil, alphabet.ErrAlphabetMismatch
	}
	return tokenize(tk.charsSAM, tk.charsBest, []rune(s)), nil
}

// computeBestMatch propagates, for every GSAM node v, the nearest
// ancestor in the suffix-link tree (possibly v itself) whose trie path
// is an accepting (vocabulary) entry. Nodes must be resolved in
// ascending len order, since a node's own best_match is either itself
// (if accepting) or its suffix link's already-resolved best_match, and
// len(link(v)) < len(v) always holds.
//
// A min-heap over node ids, keyed by len, gives that order without a
// separate sort pass or counting-sort bucket array.
func computeBestMatch[S alphabet.Symbol](g *gsam.GSAM[S], t *trie.Trie[S]) []bestMatch {
	n := g.NumNodes()
	best := make([]bestMatch, n)
	for i := range best {
		best[i] = bestMatch{trieNode: alphabet.NilNode, length: 0}
	}

	order := priorityqueue.NewBinaryHeapWithComparator(func(a, b int32) bool {
		return g.LenAt(a) < g.LenAt(b)
	})
	for id := int32(0); id < n; id++ {
		order.Add(id)
	}

	for !order.IsEmpty() {
		v, _ := order.Poll()
		if ref := g.TrieRefAt(v); g.IsAcceptAt(v) && ref != alphabet.NilNode && t.IsAccept(ref) {
			best[v] = bestMatch{trieNode: g.TrieRefAt(v), length: g.LenAt(v)}
			continue
		}
		if link := g.LinkAt(v); link != alphabet.NilNode {
			best[v] = best[link]
		}
	}
	return best
}

// tokenize runs the greedy scan: feed symbols one by one from the
// current position, remembering the longest match ever seen, until the
// input is exhausted or the walking state goes nil. Emit the remembered
// match and advance by its length, or, if none was ever seen, fold the
// unmatched symbol into a run of unknown symbols that gets emitted as a
// single token once a match (or the end of input) ends it.
//
// best[v] is the nearest suffix-link ancestor of v (possibly v itself)
// whose trie path is a vocabulary entry, recorded with that ancestor's
// own length — which can be shorter than the number of symbols actually
// fed so far, since v's equivalence class can be reached by a non-solid
// transition representing a longer window than the ancestor's class.
// Such a candidate names a vocabulary word ending at the current
// position but starting after pos, not a prefix starting at pos, so it
// is only a real match here when its length equals exactly the number
// of symbols fed since pos: bm.length == int64(i-pos).
func tokenize[S alphabet.Symbol](g *gsam.GSAM[S], best []bestMatch, input []S) []Token {
	var tokens []Token
	n := len(input)
	pos := 0
	unknownRun := 0

	flushUnknown := func() {
		if unknownRun > 0 {
			tokens = append(tokens, Token{TrieNode: alphabet.UnknownToken, Length: int64(unknownRun)})
			unknownRun = 0
		}
	}

	for pos < n {
		w := g.RootState()
		var bestLen int64
		bestTrie := alphabet.NilNode

		i := pos
		for i < n {
			w.FeedOne(input[i])
			i++
			if w.IsNil() {
				break
			}
			bm := best[w.CurrentNode()]
			if bm.trieNode != alphabet.NilNode && bm.length == int64(i-pos) {
				bestLen = bm.length
				bestTrie = bm.trieNode
			}
		}

		if bestTrie == alphabet.NilNode {
			unknownRun++
			pos++
			continue
		}
		flushUnknown()
		tokens = append(tokens, Token{TrieNode: bestTrie, Length: bestLen})
		pos += int(bestLen)
	}
	flushUnknown()
	return tokens
}
