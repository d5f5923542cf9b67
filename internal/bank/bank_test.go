package bank

import (
	"fmt"
	"testing"

	"emojitrivia/internal/model"
)

func testItems(n int) []model.TriviaItem {
	items := make([]model.TriviaItem, n)
	for i := range items {
		items[i] = model.TriviaItem{
			Title:  fmt.Sprintf("Title %d", i),
			Emojis: "🎬",
			Type:   "movie",
		}
	}
	return items
}

func TestNewRejectsEmptyBank(t *testing.T) {
	if _, err := New(nil); err != ErrEmpty {
		t.Fatalf("New(nil) error = %v, want ErrEmpty", err)
	}
}

func TestNextCoversBankBeforeRepeating(t *testing.T) {
	const size = 10
	b, err := New(testItems(size))
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[int]bool)
	for i := 0; i < size; i++ {
		_, idx := b.Next()
		if seen[idx] {
			t.Fatalf("index %d repeated before the bank was exhausted", idx)
		}
		seen[idx] = true
	}
	if len(seen) != size {
		t.Fatalf("served %d distinct indices, want %d", len(seen), size)
	}

	// The next pass starts over; any index is fair game again.
	item, idx := b.Next()
	if idx < 0 || idx >= size {
		t.Fatalf("index %d out of range after reset", idx)
	}
	if item.Title == "" {
		t.Fatal("empty item after reset")
	}
}

func TestNextClearsExhaustedUsedSet(t *testing.T) {
	b, err := New(testItems(3))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		b.used[i] = struct{}{}
	}

	_, idx := b.Next()
	if idx < 0 || idx > 2 {
		t.Fatalf("index %d out of range", idx)
	}
	if len(b.used) != 1 {
		t.Fatalf("used set has %d entries after forced clear, want 1", len(b.used))
	}
}

func TestResetStartsFreshPass(t *testing.T) {
	b, err := New(testItems(4))
	if err != nil {
		t.Fatal(err)
	}
	b.Next()
	b.Next()
	b.Reset()
	if len(b.used) != 0 {
		t.Fatalf("used set has %d entries after Reset, want 0", len(b.used))
	}
}

func TestSize(t *testing.T) {
	b, err := New(testItems(7))
	if err != nil {
		t.Fatal(err)
	}
	if b.Size() != 7 {
		t.Fatalf("Size() = %d, want 7", b.Size())
	}
}
