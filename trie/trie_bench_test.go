package trie

import (
	"fmt"
	"testing"
)

func generateWords(n int) []string {
	words := make([]string, n)
	for i := 0; i < n; i++ {
		words[i] = fmt.Sprintf("word%d", i)
	}
	return words
}

func BenchmarkInsert(b *testing.B) {
	words := generateWords(1000)
	for i := 0; i < b.N; i++ {
		tr := NewChars()
		for _, w := range words {
			tr.Insert([]rune(w))
		}
	}
}

func BenchmarkInsertSharedPrefixes(b *testing.B) {
	vocab := []string{"apple", "app", "application", "apply", "banana", "band", "bandana"}
	for i := 0; i < b.N; i++ {
		tr := NewChars()
		for _, w := range vocab {
			tr.Insert([]rune(w))
		}
	}
}

func BenchmarkIterChildren(b *testing.B) {
	tr := NewBytes()
	words := generateWords(1000)
	for _, w := range words {
		tr.Insert([]byte(w))
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = tr.IterChildren(0)
	}
}

func BenchmarkPathTo(b *testing.B) {
	tr := NewBytes()
	var leaf int32
	words := generateWords(1000)
	for _, w := range words {
		leaf = tr.Insert([]byte(w))
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = tr.PathTo(leaf)
	}
}
