/*
Package gsam implements the generalized suffix automaton (GSAM): a
minimal deterministic automaton recognizing every substring of every
sequence fed into it, built either from a single sequence or from a
trie of many (package trie), in time linear in the input size.

Construction follows the classical on-line suffix-automaton algorithm
(state-by-state extension, with cloning to preserve the len-monotonicity
invariant) run either directly over one sequence or, for a trie, in BFS
order so that every trie node's automaton image is finished before its
children are visited — see FromTrie.

A GSAM is built by one goroutine and is immutable afterwards; many
WalkingState values may read it concurrently without synchronization,
since every read is a pure function of the frozen arena and the walking
state's own current node id.
*/
package gsam

import (
	"github.com/Zubayear/generalsam/alphabet"
	"github.com/Zubayear/generalsam/queue"
	"github.com/Zubayear/generalsam/set"
	"github.com/Zubayear/generalsam/treemap"
	"github.com/Zubayear/generalsam/trie"
)

// Node is a single automaton state.
//
//   - trans is the symbol-ascending transition map out of this node.
//   - link is the suffix-link target, alphabet.NilNode for the root.
//   - length is the length of the longest string reaching this node from
//     root. Carried as int64 so the required >=2^32 overflow floor
//     (alphabet.MaxLen) is representable.
//   - accept marks a node as representing (a suffix of) at least one full
//     inserted sequence.
//   - trieRef is the trie-node id whose path-string reaches this node,
//     when the automaton was built via FromTrie and this node was created
//     as a direct ("solid") extension rather than a clone. alphabet.NilNode
//     otherwise.
type Node[S alphabet.Symbol] struct {
	trans   *treemap.TreeMap[S, int32]
	link    int32
	length  int64
	accept  bool
	trieRef int32
}

// GSAM is an append-only arena of Node, rooted at node 0.
type GSAM[S alphabet.Symbol] struct {
	kind  alphabet.Kind
	nodes []Node[S]
}

func newNode[S alphabet.Symbol](length int64) Node[S] {
	return Node[S]{
		trans:   treemap.NewTreeMap[S, int32](),
		link:    alphabet.NilNode,
		length:  length,
		trieRef: alphabet.NilNode,
	}
}

func newGSAM[S alphabet.Symbol](kind alphabet.Kind) *GSAM[S] {
	g := &GSAM[S]{kind: kind}
	g.nodes = append(g.nodes, newNode[S](0))
	return g
}

// Kind reports which alphabet this automaton is bound to.
func (g *GSAM[S]) Kind() alphabet.Kind {
	return g.kind
}

// NumNodes returns the number of nodes in the arena, including the root.
func (g *GSAM[S]) NumNodes() int32 {
	return int32(len(g.nodes))
}

func (g *GSAM[S]) valid(node int32) bool {
	return node >= 0 && int(node) < len(g.nodes)
}

// LenAt, LinkAt, IsAcceptAt and TrieRefAt expose a node's attributes by
// id, for callers (tokenizer, trieutils) that need to walk the arena
// directly rather than through a WalkingState.
func (g *GSAM[S]) LenAt(node int32) int64     { return g.nodes[node].length }
func (g *GSAM[S]) LinkAt(node int32) int32    { return g.nodes[node].link }
func (g *GSAM[S]) IsAcceptAt(node int32) bool { return g.nodes[node].accept }
func (g *GSAM[S]) TrieRefAt(node int32) int32 { return g.nodes[node].trieRef }

func copyTreemap[S alphabet.Symbol, V any](src *treemap.TreeMap[S, V]) *treemap.TreeMap[S, V] {
	dst := treemap.NewTreeMap[S, V]()
	for _, k := range src.Keys() {
		v, _ := src.Get(k)
		dst.Put(k, v)
	}
	return dst
}

// extend performs one step of the classical SAM construction: create a
// new node for the transition last--c-->cur (or, when building from a
// trie, reuse curTrieRef as that new node's trie reference), walk the
// suffix-link chain from last adding c-transitions until an existing one
// is found or the chain runs out, and resolve cur's own suffix link,
// cloning the target when the len-monotonicity invariant would break.
//
// Cloning order is load-bearing: the clone must inherit the target's
// transitions and suffix link before the target's own suffix link is
// overwritten, so the clone is staged as a local record and appended
// only once it is complete.
func (g *GSAM[S]) extend(last int32, c S, curTrieRef int32) (int32, error) {
	cur := int32(len(g.nodes))
	newLen := g.nodes[last].length + 1
	if newLen > alphabet.MaxLen {
		return alphabet.NilNode, alphabet.ErrConstructionOverflow
	}
	curNode := newNode[S](newLen)
	curNode.trieRef = curTrieRef
	g.nodes = append(g.nodes, curNode)

	p := last
	for p != alphabet.NilNode {
		if _, ok := g.nodes[p].trans.Get(c); ok {
			break
		}
		g.nodes[p].trans.Put(c, cur)
		p = g.nodes[p].link
	}

	if p == alphabet.NilNode {
		g.nodes[cur].link = 0
		return cur, nil
	}

	q, _ := g.nodes[p].trans.Get(c)
	if g.nodes[q].length == g.nodes[p].length+1 {
		g.nodes[cur].link = q
		return cur, nil
	}

	clone := int32(len(g.nodes))
	staged := Node[S]{
		trans:   copyTreemap(g.nodes[q].trans),
		link:    g.nodes[q].link,
		length:  g.nodes[p].length + 1,
		trieRef: alphabet.NilNode,
	}
	g.nodes = append(g.nodes, staged)

	for p != alphabet.NilNode {
		target, ok := g.nodes[p].trans.Get(c)
		if !ok || target != q {
			break
		}
		g.nodes[p].trans.Put(c, clone)
		p = g.nodes[p].link
	}
	g.nodes[q].link = clone
	g.nodes[cur].link = clone
	return cur, nil
}

func (g *GSAM[S]) markAcceptChain(node int32) {
	for node != alphabet.NilNode {
		g.nodes[node].accept = true
		node = g.nodes[node].link
	}
}

func buildFromSequence[S alphabet.Symbol](kind alphabet.Kind, seq []S) (*GSAM[S], error) {
	g := newGSAM[S](kind)
	last := int32(0)
	for _, c := range seq {
		next, err := g.extend(last, c, alphabet.NilNode)
		if err != nil {
			return nil, err
		}
		last = next
	}
	g.markAcceptChain(last)
	return g, nil
}

// FromBytes builds a GSAM recognizing every substring of seq, over the
// byte alphabet.
func FromBytes(seq []byte) (*GSAM[byte], error) {
	return buildFromSequence[byte](alphabet.KindBytes, seq)
}

// FromChars builds a GSAM recognizing every substring of s, over the
// Unicode scalar alphabet.
func FromChars(s string) (*GSAM[rune], error) {
	return buildFromSequence[rune](alphabet.KindChars, []rune(s))
}

// FromTrie builds a GSAM recognizing every substring of every sequence
// inserted into t, in BFS order over t so that a trie node's automaton
// image (its "last" pointer, in the classical construction's terms) is
// always resolved before its children are visited.
//
// Acceptance is then propagated: for every trie node marked accepting,
// its automaton image's suffix-link chain is walked and every node on it
// is marked accepting, using a visited set so each automaton node is
// marked at most once — keeping this pass linear in the number of nodes
// regardless of how many trie accepting nodes share suffix-link
// ancestors.
func FromTrie[S alphabet.Symbol](t *trie.Trie[S]) (*GSAM[S], error) {
	g := newGSAM[S](t.Kind())

	n := t.NumNodes()
	imageOf := make([]int32, n)
	imageOf[0] = 0

	frontier := queue.NewQueue[int32]()
	frontier.Enqueue(0)
	for !frontier.IsEmpty() {
		u, _ := frontier.Dequeue()
		children, err := t.IterChildren(u)
		if err != nil {
			return nil, err
		}
		for _, e := range children {
			cur, err := g.extend(imageOf[u], e.Symbol, e.Child)
			if err != nil {
				return nil, err
			}
			imageOf[e.Child] = cur
			frontier.Enqueue(e.Child)
		}
	}

	visited := set.NewUnorderedSet()
	for tn := int32(0); tn < n; tn++ {
		if !t.IsAccept(tn) {
			continue
		}
		node := imageOf[tn]
		for node != alphabet.NilNode && !visited.Contain(node) {
			visited.Insert(node)
			g.nodes[node].accept = true
			node = g.nodes[node].link
		}
	}

	return g, nil
}

// RootState returns a new walking state positioned at the root.
func (g *GSAM[S]) RootState() *WalkingState[S] {
	return &WalkingState[S]{automaton: g, current: 0}
}
