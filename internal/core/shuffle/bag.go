// Package shuffle deals items from a fixed list without replacement.
package shuffle

import (
	"math/rand"
	"sync"
	"time"
)

// Bag hands out items in random order. No item is dealt twice until every
// item has been dealt once, after which the bag reshuffles.
type Bag[T any] struct {
	mu    sync.Mutex
	items []T
	order []int
	next  int
	rng   *rand.Rand
}

// New creates a bag over a copy of items. A nil rng is seeded from the clock.
func New[T any](items []T, rng *rand.Rand) *Bag[T] {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	bag := &Bag[T]{
		items: append([]T(nil), items...),
		order: make([]int, len(items)),
		rng:   rng,
	}
	for i := range bag.order {
		bag.order[i] = i
	}
	bag.shuffleLocked()
	return bag
}

// Len returns the number of items in a full cycle.
func (bag *Bag[T]) Len() int {
	return len(bag.items)
}

// remaining returns how many items are left before the next reshuffle.
func (bag *Bag[T]) remaining() int {
	bag.mu.Lock()
	defer bag.mu.Unlock()
	return len(bag.order) - bag.next
}

// Next deals the next item. It returns false only for an empty bag.
func (bag *Bag[T]) Next() (T, bool) {
	bag.mu.Lock()
	defer bag.mu.Unlock()

	var zero T
	if len(bag.items) == 0 {
		return zero, false
	}
	if bag.next >= len(bag.order) {
		bag.shuffleLocked()
	}
	item := bag.items[bag.order[bag.next]]
	bag.next++
	return item, true
}

func (bag *Bag[T]) shuffleLocked() {
	bag.rng.Shuffle(len(bag.order), func(i, j int) {
		bag.order[i], bag.order[j] = bag.order[j], bag.order[i]
	})
	bag.next = 0
}
