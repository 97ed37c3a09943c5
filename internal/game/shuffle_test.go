package game

import (
	"testing"
)

func TestSeededShuffleDeterministic(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	a := SeededShuffle(items, 42)
	b := SeededShuffle(items, 42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different orders: %v vs %v", a, b)
		}
	}

	// Known permutation for seed 42.
	want := []int{5, 3, 7, 6, 8, 9, 1, 4, 0, 2}
	for i := range want {
		if a[i] != want[i] {
			t.Fatalf("SeededShuffle(0..9, 42) = %v, want %v", a, want)
		}
	}
}

func TestSeededShuffleIsPermutation(t *testing.T) {
	items := make([]int, 50)
	for i := range items {
		items[i] = i
	}

	shuffled := SeededShuffle(items, 7)
	if len(shuffled) != len(items) {
		t.Fatalf("shuffled length %d, want %d", len(shuffled), len(items))
	}

	seen := make(map[int]bool, len(shuffled))
	for _, v := range shuffled {
		if seen[v] {
			t.Fatalf("duplicate element %d in shuffle output", v)
		}
		seen[v] = true
	}
}

func TestSeededShuffleDoesNotMutateInput(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	SeededShuffle(items, 99)
	for i, v := range []int{1, 2, 3, 4, 5} {
		if items[i] != v {
			t.Fatalf("input mutated: %v", items)
		}
	}
}

func TestSeededShuffleShortInputs(t *testing.T) {
	if got := SeededShuffle([]int{}, 1); len(got) != 0 {
		t.Errorf("empty input: got %v", got)
	}
	if got := SeededShuffle([]int{7}, 1); len(got) != 1 || got[0] != 7 {
		t.Errorf("single input: got %v", got)
	}
}

func TestDateSeed(t *testing.T) {
	tests := []struct {
		date string
		want uint32
	}{
		{"2024-01-15", 613341597},
		{"2024-01-16", 613341596},
		{"2025-06-30", 274311096},
	}

	for _, tt := range tests {
		if got := DateSeed(tt.date); got != tt.want {
			t.Errorf("DateSeed(%q) = %d, want %d", tt.date, got, tt.want)
		}
	}

	// Same day, same seed, regardless of call count.
	if DateSeed("2024-01-15") != DateSeed("2024-01-15") {
		t.Error("DateSeed is not deterministic")
	}
}
