package utils

import (
	"testing"

	"go-absorb/internal/defs"
)

func TestPRNGDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed produced different sequences")
		}
	}
}

func TestChooseWeighted(t *testing.T) {
	p := NewPRNGService(1)
	if got := p.ChooseWeighted(nil); got != "" {
		t.Errorf("empty table = %q, want empty", got)
	}
	entries := []defs.LootEntry{{ID: "never", Weight: 0}, {ID: "always", Weight: 5}}
	for i := 0; i < 50; i++ {
		if got := p.ChooseWeighted(entries); got != "always" {
			t.Fatalf("ChooseWeighted = %q, want always", got)
		}
	}
	zero := []defs.LootEntry{{ID: "first", Weight: 0}, {ID: "second", Weight: 0}}
	if got := p.ChooseWeighted(zero); got != "first" {
		t.Errorf("zero weights = %q, want first", got)
	}
}

func TestSymmetricRange(t *testing.T) {
	p := NewPRNGService(7)
	for i := 0; i < 100; i++ {
		if v := p.Symmetric(0.5); v < -0.5 || v >= 0.5 {
			t.Fatalf("Symmetric(0.5) = %v", v)
		}
	}
}
