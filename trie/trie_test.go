package trie

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Zubayear/generalsam/alphabet"
)

func TestTrieInsertIdempotent(t *testing.T) {
	tr := NewChars()
	first := tr.Insert([]rune("hello"))
	second := tr.Insert([]rune("hello"))

	if first != second {
		t.Errorf("Insert(%q) twice = %d, %d; want equal ids", "hello", first, second)
	}
	if !tr.IsAccept(first) {
		t.Errorf("expected %q to be an accepting node", "hello")
	}
}

func TestTrieSharedPrefixes(t *testing.T) {
	tr := NewChars()
	words := []string{"hello", "helium", "he", "hero"}
	ids := make(map[string]int32, len(words))
	for _, w := range words {
		ids[w] = tr.Insert([]rune(w))
	}

	for _, w := range words {
		if !tr.IsAccept(ids[w]) {
			t.Errorf("expected %q node to be accepting", w)
		}
	}

	// "he" is a shared prefix of every word above, so it must own a
	// strictly smaller node id than any of the words extending it.
	if ids["he"] >= ids["hello"] || ids["he"] >= ids["hero"] {
		t.Errorf("expected prefix node for %q to be created before its extensions", "he")
	}
}

func TestTrieIterChildrenOrdered(t *testing.T) {
	tr := NewBytes()
	tr.Insert([]byte("cat"))
	tr.Insert([]byte("bat"))
	tr.Insert([]byte("apple"))

	children, err := tr.IterChildren(0)
	if err != nil {
		t.Fatalf("IterChildren(root): %v", err)
	}
	var syms []byte
	for _, c := range children {
		syms = append(syms, c.Symbol)
	}
	want := []byte{'a', 'b', 'c'}
	if !reflect.DeepEqual(syms, want) {
		t.Errorf("IterChildren(root) symbols = %v; want %v", syms, want)
	}
}

func TestTrieChildLookup(t *testing.T) {
	tr := NewBytes()
	leaf := tr.Insert([]byte("go"))

	goNode, ok := tr.Child(0, 'g')
	if !ok {
		t.Fatalf("expected root to have a 'g' child")
	}
	oNode, ok := tr.Child(goNode, 'o')
	if !ok || oNode != leaf {
		t.Errorf("Child(goNode, 'o') = %d, %v; want %d, true", oNode, ok, leaf)
	}
	if _, ok := tr.Child(0, 'z'); ok {
		t.Errorf("expected no 'z' child at root")
	}
}

func TestTriePathTo(t *testing.T) {
	tr := NewChars()
	leaf := tr.Insert([]rune("abc"))

	path, err := tr.PathTo(leaf)
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	if string(path) != "abc" {
		t.Errorf("PathTo(leaf) = %q; want %q", string(path), "abc")
	}

	if _, err := tr.PathTo(tr.NumNodes()); !errors.Is(err, alphabet.ErrInvalidNode) {
		t.Errorf("PathTo(out of range) = %v; want ErrInvalidNode", err)
	}
}

func TestTrieNumNodes(t *testing.T) {
	tr := NewBytes()
	if tr.NumNodes() != 1 {
		t.Fatalf("fresh trie should have only the root node, got %d", tr.NumNodes())
	}
	tr.Insert([]byte("ab"))
	if tr.NumNodes() != 3 {
		t.Errorf("after inserting %q, NumNodes() = %d; want 3", "ab", tr.NumNodes())
	}
	tr.Insert([]byte("ab"))
	if tr.NumNodes() != 3 {
		t.Errorf("re-inserting %q should not grow the arena, NumNodes() = %d", "ab", tr.NumNodes())
	}
}
