// Package bank holds the immutable trivia set and picks each round's
// question, avoiding repeats until a full pass over the bank completes.
package bank

import (
	"errors"
	"math/rand"
	"time"

	"emojitrivia/internal/model"
)

// ErrEmpty is returned by New when no trivia items were loaded. An empty
// bank is a configuration error and aborts startup.
var ErrEmpty = errors.New("bank: no trivia items loaded")

// maxDrawAttempts bounds the random-draw retry loop in Next.
const maxDrawAttempts = 256

// Bank serves trivia items in random order without repeats within one pass.
// It is not safe for concurrent use; the game session is its only caller.
type Bank struct {
	items []model.TriviaItem
	used  map[int]struct{}
	rng   *rand.Rand
}

// New builds a Bank over items. It fails fast on an empty set so selection
// never has to handle one.
func New(items []model.TriviaItem) (*Bank, error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	return &Bank{
		items: items,
		used:  make(map[int]struct{}),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Size reports the number of items in the bank.
func (b *Bank) Size() int {
	return len(b.items)
}

// Next returns a not-yet-served item and its index. Once every index has
// been served the used-set clears and repeats become possible again.
func (b *Bank) Next() (model.TriviaItem, int) {
	if len(b.used) >= len(b.items) {
		b.used = make(map[int]struct{})
	}

	idx := -1
	// Random draws can keep landing on served indices; bound the retries and
	// fall back to a forced reset rather than looping unboundedly.
	for i := 0; i < maxDrawAttempts; i++ {
		n := b.rng.Intn(len(b.items))
		if _, seen := b.used[n]; !seen {
			idx = n
			break
		}
	}
	if idx < 0 {
		b.used = make(map[int]struct{})
		idx = b.rng.Intn(len(b.items))
	}

	b.used[idx] = struct{}{}
	return b.items[idx], idx
}

// Reset clears the used-set so the next cohort starts a fresh pass.
func (b *Bank) Reset() {
	b.used = make(map[int]struct{})
}
