/*
Package trie provides an ordered, append-only trie (prefix tree) over
sequences of bytes or Unicode scalars.

Nodes are not heap-allocated and linked by pointer: they live in a
single growable arena (a slice), and every cross-reference — parent,
child, root — is a stable int32 index into that arena. This is the
representation the automaton built on top of a Trie (package gsam) needs:
a BFS construction over the trie must be able to name "the gsam node
reached at trie node u" by a plain array index, and a pointer-based node
cannot serve as that key.

A Trie is built by one goroutine and then read by many; there is no
concurrent-mutation support and no removal. Both are true of the
construction model the rest of this module assumes (see gsam's package
doc), and neither is needed: insertion is the only mutation, and it is
idempotent for identical sequences.

Each Trie is bound to exactly one alphabet (byte or rune) for its
lifetime via NewBytes or NewChars; nothing in this package ever mixes
the two.
*/
package trie

import (
	"github.com/Zubayear/generalsam/alphabet"
	"github.com/Zubayear/generalsam/stack"
	"github.com/Zubayear/generalsam/treemap"
)

// Node is a single trie node. children is a symbol-ascending ordered map
// (backed by a red-black tree) from the symbol on an outgoing edge to the
// child's node id, so iteration order is reproducible regardless of
// insertion order — trie-dfs traversals and the sort utilities built on
// them depend on that determinism.
type Node[S alphabet.Symbol] struct {
	parent   int32
	edge     S
	hasEdge  bool
	accept   bool
	children *treemap.TreeMap[S, int32]
}

// Trie is an append-only arena of Node. Node ids are stable indices; the
// root is always id 0 with a nil parent.
type Trie[S alphabet.Symbol] struct {
	kind  alphabet.Kind
	nodes []Node[S]
}

func newTrie[S alphabet.Symbol](kind alphabet.Kind) *Trie[S] {
	t := &Trie[S]{kind: kind}
	t.nodes = append(t.nodes, Node[S]{parent: alphabet.NilNode, children: treemap.NewTreeMap[S, int32]()})
	return t
}

// NewBytes returns an empty trie bound to the byte alphabet.
func NewBytes() *Trie[byte] {
	return newTrie[byte](alphabet.KindBytes)
}

// NewChars returns an empty trie bound to the Unicode scalar alphabet.
func NewChars() *Trie[rune] {
	return newTrie[rune](alphabet.KindChars)
}

// Kind reports which alphabet this trie is bound to.
func (t *Trie[S]) Kind() alphabet.Kind {
	return t.kind
}

// NumNodes returns the number of nodes in the arena, including the root.
func (t *Trie[S]) NumNodes() int32 {
	return int32(len(t.nodes))
}

func (t *Trie[S]) valid(node int32) bool {
	return node >= 0 && int(node) < len(t.nodes)
}

// Insert walks from the root, creating children as needed, marks the
// final node accept, and returns that node's id. Inserting the same
// sequence twice returns the same id both times; only the first call
// allocates any nodes.
func (t *Trie[S]) Insert(seq []S) int32 {
	cur := int32(0)
	for _, c := range seq {
		if child, ok := t.nodes[cur].children.Get(c); ok {
			cur = child
			continue
		}
		t.nodes = append(t.nodes, Node[S]{
			parent:   cur,
			edge:     c,
			hasEdge:  true,
			children: treemap.NewTreeMap[S, int32](),
		})
		child := int32(len(t.nodes) - 1)
		t.nodes[cur].children.Put(c, child)
		cur = child
	}
	t.nodes[cur].accept = true
	return cur
}

// IsAccept reports whether node terminates at least one inserted
// sequence.
func (t *Trie[S]) IsAccept(node int32) bool {
	return t.nodes[node].accept
}

// Parent returns node's parent id, or alphabet.NilNode for the root.
func (t *Trie[S]) Parent(node int32) int32 {
	return t.nodes[node].parent
}

// ChildEdge is one (symbol, child id) pair, as returned by IterChildren
// in symbol-ascending order.
type ChildEdge[S alphabet.Symbol] struct {
	Symbol S
	Child  int32
}

// IterChildren returns node's outgoing edges ordered by symbol.
func (t *Trie[S]) IterChildren(node int32) ([]ChildEdge[S], error) {
	if !t.valid(node) {
		return nil, alphabet.ErrInvalidNode
	}
	keys := t.nodes[node].children.Keys()
	out := make([]ChildEdge[S], 0, len(keys))
	for _, k := range keys {
		child, _ := t.nodes[node].children.Get(k)
		out = append(out, ChildEdge[S]{Symbol: k, Child: child})
	}
	return out, nil
}

// Child looks up the child reached from node via sym, if any.
func (t *Trie[S]) Child(node int32, sym S) (int32, bool) {
	return t.nodes[node].children.Get(sym)
}

// PathTo returns the sequence of symbols from root to node. Intended for
// debugging and tests; walks parent pointers onto a stack so the symbols
// come off in root-to-node order.
func (t *Trie[S]) PathTo(node int32) ([]S, error) {
	if !t.valid(node) {
		return nil, alphabet.ErrInvalidNode
	}
	st := stack.NewStack[S]()
	for cur := node; cur != 0; cur = t.nodes[cur].parent {
		_, _ = st.Push(t.nodes[cur].edge)
	}
	out := make([]S, 0, st.Size())
	for !st.IsEmpty() {
		sym, _ := st.Pop()
		out = append(out, sym)
	}
	return out, nil
}
