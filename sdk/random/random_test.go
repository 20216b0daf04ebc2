package random

import (
	"strings"
	"testing"
)

func TestString_LengthAndAlphabet(t *testing.T) {
	src := New(1, 2)
	for i := 0; i < 100; i++ {
		s := String(src, 8)
		if len(s) != 8 {
			t.Fatalf("len = %d, want 8", len(s))
		}
		for _, r := range s {
			if !strings.ContainsRune(Alphabet, r) {
				t.Fatalf("unexpected character %q in %q", r, s)
			}
		}
	}
}

func TestPick_StaysInRange(t *testing.T) {
	items := []string{"a", "b", "c"}
	src := New(3, 4)
	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		seen[Pick(src, items)] = true
	}
	for _, it := range items {
		if !seen[it] {
			t.Errorf("item %q never picked in 300 draws", it)
		}
	}
	if len(seen) != len(items) {
		t.Errorf("picked %d distinct items, want %d", len(seen), len(items))
	}
}

func TestSequence(t *testing.T) {
	seq := &Sequence{Values: []int{0, 1, 2}}
	got := String(seq, 4)
	if got != "abca" {
		t.Errorf("String(seq, 4) = %q, want %q", got, "abca")
	}

	empty := &Sequence{}
	if v := empty.IntN(5); v != 0 {
		t.Errorf("empty Sequence.IntN = %d, want 0", v)
	}
}
