/*
Package alphabet provides the small shared vocabulary used by every other
package in this module: the two symbol alphabets an automaton can be bound
to (bytes or Unicode scalars), the constraint generic code uses to stay
agnostic between them, and the sentinel errors that every fallible
operation in trie/gsam/tokenizer/vocabprefix returns.

An automaton or trie is bound to exactly one alphabet for its lifetime.
Nothing in this package ever unifies bytes and runes at runtime; the tag
exists only so that the alphabet-tagged facades (tokenizer.GreedyTokenizer,
vocabprefix.VocabPrefixAutomaton) can detect a caller feeding the wrong
kind of input into an automaton built for the other kind.
*/
package alphabet

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Kind tags which alphabet an automaton or trie was built over.
type Kind uint8

const (
	// KindBytes marks an automaton built over the byte alphabet (0..=255).
	KindBytes Kind = iota
	// KindChars marks an automaton built over the Unicode scalar alphabet.
	KindChars
)

func (k Kind) String() string {
	switch k {
	case KindBytes:
		return "bytes"
	case KindChars:
		return "chars"
	default:
		return "unknown"
	}
}

// Symbol bounds every generic symbol/collection type parameter in this
// module. byte and rune (int32) are the only two alphabets the original
// spec names; constraints.Ordered is required so transition and child
// maps can be kept in symbol-ascending order.
type Symbol interface {
	constraints.Ordered
}

// NilNode is the sentinel used in place of a node id when there is no
// such node (a nil parent, a nil suffix link, an absent transition).
const NilNode int32 = -1

// UnknownToken is the sentinel trie-node id the greedy tokenizer emits
// for a symbol it cannot match against any vocabulary entry. This module
// is signed throughout so no unsigned-max translation is needed at any
// boundary.
const UnknownToken int32 = -1

var (
	// ErrAlphabetMismatch is returned when a caller feeds bytes into a
	// char-alphabet object, or chars into a byte-alphabet one.
	ErrAlphabetMismatch = errors.New("generalsam: alphabet mismatch")

	// ErrInvalidNode is returned when a node id does not belong to the
	// arena it is being used against.
	ErrInvalidNode = errors.New("generalsam: invalid node id")

	// ErrConstructionOverflow is returned when a node's len would exceed
	// the chosen integer width during construction.
	ErrConstructionOverflow = errors.New("generalsam: construction overflow")
)

// MaxLen is the implementation-defined bound on gsam.Node.Len, fixed at
// at least 2^32; an int32 length field would not clear that bar, so gsam
// carries Len as int64 and checks it against MaxLen at construction
// time, returning ErrConstructionOverflow if a sequence is long enough
// to exceed it.
const MaxLen int64 = 1 << 32
