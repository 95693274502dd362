package vocabprefix

import (
	"errors"
	"sort"
	"testing"

	"github.com/Zubayear/generalsam/alphabet"
)

func TestPrefixMatchesBytes(t *testing.T) {
	v, err := NewBytes([][]byte{[]byte("car"), []byte("cart"), []byte("card"), []byte("dog")})
	if err != nil {
		t.Fatalf("NewBytes: %v", err)
	}
	matches, err := v.PrefixMatches([]byte("car"))
	if err != nil {
		t.Fatalf("PrefixMatches: %v", err)
	}
	if len(matches) != 3 {
		t.Errorf("PrefixMatches(\"car\") = %v, want 3 matches (car, cart, card)", matches)
	}
}

func TestPrefixMatchesNoWalk(t *testing.T) {
	v, err := NewBytes([][]byte{[]byte("car")})
	if err != nil {
		t.Fatalf("NewBytes: %v", err)
	}
	matches, err := v.PrefixMatches([]byte("zzz"))
	if err != nil {
		t.Fatalf("PrefixMatches: %v", err)
	}
	if matches != nil {
		t.Errorf("PrefixMatches(unreachable prefix) = %v, want nil", matches)
	}
}

func TestInfixMatchesFindsSubstringAnywhere(t *testing.T) {
	v, err := NewBytes([][]byte{[]byte("banana"), []byte("ananas")})
	if err != nil {
		t.Fatalf("NewBytes: %v", err)
	}
	matches, err := v.InfixMatches([]byte("nan"))
	if err != nil {
		t.Fatalf("InfixMatches: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("InfixMatches(\"nan\") = %v, want matches from both entries", matches)
	}
}

func TestInfixMatchesDistinguishesEntries(t *testing.T) {
	v, err := NewBytes([][]byte{[]byte("banana"), []byte("orange")})
	if err != nil {
		t.Fatalf("NewBytes: %v", err)
	}
	matches, err := v.InfixMatches([]byte("ban"))
	if err != nil {
		t.Fatalf("InfixMatches: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("InfixMatches(\"ban\") = %v, want exactly one match from \"banana\"", matches)
	}
}

func TestInfixMatchesNoWalk(t *testing.T) {
	v, err := NewBytes([][]byte{[]byte("banana")})
	if err != nil {
		t.Fatalf("NewBytes: %v", err)
	}
	matches, err := v.InfixMatches([]byte("xyz"))
	if err != nil {
		t.Fatalf("InfixMatches: %v", err)
	}
	if matches != nil {
		t.Errorf("InfixMatches(no occurrence) = %v, want nil", matches)
	}
}

func TestInfixMatchesRepeatedOccurrenceCountsOnce(t *testing.T) {
	v, err := NewBytes([][]byte{[]byte("abcabc")})
	if err != nil {
		t.Fatalf("NewBytes: %v", err)
	}
	matches, err := v.InfixMatches([]byte("abc"))
	if err != nil {
		t.Fatalf("InfixMatches: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("InfixMatches(\"abc\") on \"abcabc\" = %v, want exactly one entry listed once", matches)
	}
}

func TestCharsKindMismatch(t *testing.T) {
	v, err := NewBytes([][]byte{[]byte("car")})
	if err != nil {
		t.Fatalf("NewBytes: %v", err)
	}
	if _, err := v.PrefixMatchesChars("car"); !errors.Is(err, alphabet.ErrAlphabetMismatch) {
		t.Errorf("PrefixMatchesChars on a bytes automaton: err = %v, want ErrAlphabetMismatch", err)
	}
	if _, err := v.InfixMatchesChars("car"); !errors.Is(err, alphabet.ErrAlphabetMismatch) {
		t.Errorf("InfixMatchesChars on a bytes automaton: err = %v, want ErrAlphabetMismatch", err)
	}
}

func TestPrefixMatchesChars(t *testing.T) {
	v, err := NewChars([]string{"日本", "日本語", "語"})
	if err != nil {
		t.Fatalf("NewChars: %v", err)
	}
	matches, err := v.PrefixMatchesChars("日本")
	if err != nil {
		t.Fatalf("PrefixMatchesChars: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("PrefixMatchesChars(\"日本\") = %v, want 2 matches", matches)
	}
}

func TestInfixMatchesChars(t *testing.T) {
	v, err := NewChars([]string{"日本語", "本語学校"})
	if err != nil {
		t.Fatalf("NewChars: %v", err)
	}
	matches, err := v.InfixMatchesChars("本語")
	if err != nil {
		t.Fatalf("InfixMatchesChars: %v", err)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i] < matches[j] })
	if len(matches) != 2 {
		t.Errorf("InfixMatchesChars(\"本語\") = %v, want matches from both entries", matches)
	}
}
