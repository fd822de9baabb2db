package main

import "testing"

func TestGameRNG(t *testing.T) {
	t.Run("seeded runs replay", func(t *testing.T) {
		a := gameRNG(42, 3)
		b := gameRNG(42, 3)
		for i := 0; i < 10; i++ {
			if got, want := a.Uint64(), b.Uint64(); got != want {
				t.Fatalf("draw %d: got %d, want %d", i, got, want)
			}
		}
	})

	t.Run("loop counter varies the hand", func(t *testing.T) {
		a := gameRNG(42, 1)
		b := gameRNG(42, 2)
		same := true
		for i := 0; i < 10; i++ {
			if a.Uint64() != b.Uint64() {
				same = false
				break
			}
		}
		if same {
			t.Fatal("consecutive hands produced identical sequences")
		}
	})

	t.Run("unseeded still yields a source", func(t *testing.T) {
		if gameRNG(0, 1) == nil {
			t.Fatal("expected a usable source")
		}
	})
}
