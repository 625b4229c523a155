package nal

// BagItem is the contract the priority bag requires of anything it holds:
// a stable key for merge-on-insert, and a budget for level placement. Task,
// TaskLink, TermLink, and Concept all satisfy it.
type BagItem interface {
	Key() string
	GetBudget() Budget
	SetBudget(Budget)
}

// Bag is a bounded, probabilistic priority queue: O(1) expected put/take,
// weighted by priority. It is the one concrete implementation of the bag
// contract that the rest of the core treats as swappable (only the
// contract — PutIn/TakeOut/PickOut/PutBack — is relied on elsewhere), but a
// concrete implementation still has to exist for the concepts bag,
// novel-tasks bag, and each concept's link bags to use.
//
// Items are distributed into L priority levels (bucket index proportional
// to the item's budget Summary). TakeOut favors high levels overwhelmingly
// but never starves low ones — "high levels overwhelmingly preferred"
// without going fully greedy.
type Bag[T BagItem] struct {
	capacity int
	levels   int
	buckets  [][]T
	index    map[string]bagLocation
	size     int
}

type bagLocation struct {
	level int
	pos   int
}

// NewBag constructs an empty bag with the given capacity and level count.
func NewBag[T BagItem](capacity, levels int) *Bag[T] {
	if levels < 1 {
		levels = 1
	}
	return &Bag[T]{
		capacity: capacity,
		levels:   levels,
		buckets:  make([][]T, levels),
		index:    make(map[string]bagLocation),
	}
}

// Len returns the number of items currently held.
func (b *Bag[T]) Len() int { return b.size }

func (b *Bag[T]) levelOf(item T) int {
	lv := int(item.GetBudget().Summary() * float64(b.levels))
	if lv >= b.levels {
		lv = b.levels - 1
	}
	if lv < 0 {
		lv = 0
	}
	return lv
}

// insert places item at the level its current budget indicates, recording
// its location in the index.
func (b *Bag[T]) insert(item T) {
	lv := b.levelOf(item)
	pos := len(b.buckets[lv])
	b.buckets[lv] = append(b.buckets[lv], item)
	b.index[item.Key()] = bagLocation{level: lv, pos: pos}
	b.size++
}

// removeAt deletes the item at loc via swap-with-last, fixing up the
// swapped item's recorded position.
func (b *Bag[T]) removeAt(loc bagLocation) T {
	bucket := b.buckets[loc.level]
	item := bucket[loc.pos]
	last := len(bucket) - 1
	if loc.pos != last {
		bucket[loc.pos] = bucket[last]
		b.index[bucket[loc.pos].Key()] = bagLocation{level: loc.level, pos: loc.pos}
	}
	b.buckets[loc.level] = bucket[:last]
	delete(b.index, item.Key())
	b.size--
	return item
}

// lowestNonEmpty returns the lowest level index with at least one item, or
// -1 if the bag is empty.
func (b *Bag[T]) lowestNonEmpty() int {
	for lv := 0; lv < b.levels; lv++ {
		if len(b.buckets[lv]) > 0 {
			return lv
		}
	}
	return -1
}

func (b *Bag[T]) highestNonEmpty() int {
	for lv := b.levels - 1; lv >= 0; lv-- {
		if len(b.buckets[lv]) > 0 {
			return lv
		}
	}
	return -1
}

// PutIn inserts item. If an item with the same key already exists, the two
// are merged (budgets combined by mergeBudget) and the merged item is
// re-seated at its new level. If the bag is at capacity and this is not a
// merge, the lowest-priority item is evicted and returned.
func (b *Bag[T]) PutIn(item T) (evicted T, hadEviction bool) {
	if loc, ok := b.index[item.Key()]; ok {
		existing := b.removeAt(loc)
		existing.SetBudget(mergeBudget(existing.GetBudget(), item.GetBudget()))
		b.insert(existing)
		return evicted, false
	}

	if b.capacity > 0 && b.size >= b.capacity {
		lv := b.lowestNonEmpty()
		if lv >= 0 {
			evicted = b.removeAt(bagLocation{level: lv, pos: 0})
			hadEviction = true
		}
	}
	b.insert(item)
	return evicted, hadEviction
}

// TakeOut removes and returns an item with probability proportional to its
// level index: levels are tried from highest to lowest, and at each
// non-empty level the RNG decides (with probability proportional to the
// level's own index among remaining candidates) whether to take from here
// or keep falling through, guaranteeing O(1) expected levels visited while
// never fully starving low-priority items.
func (b *Bag[T]) TakeOut(rng *RNG) (T, bool) {
	var zero T
	if b.size == 0 {
		return zero, false
	}
	top := b.highestNonEmpty()
	for lv := top; lv >= 0; lv-- {
		bucket := b.buckets[lv]
		if len(bucket) == 0 {
			continue
		}
		// Probability of stopping at this level scales with its own index
		// relative to the top level, so the highest level is always taken
		// immediately and lower levels are taken progressively less often.
		if lv == 0 || rng.Intn(top+1) <= lv {
			pos := rng.Intn(len(bucket))
			return b.removeAt(bagLocation{level: lv, pos: pos}), true
		}
	}
	// Fallback: every level declined probabilistically (can happen only
	// when top==0 is skipped above, which it isn't) — take from the
	// highest non-empty level directly.
	pos := rng.Intn(len(b.buckets[top]))
	return b.removeAt(bagLocation{level: top, pos: pos}), true
}

// PickOut removes and returns the item with the given key, if present.
func (b *Bag[T]) PickOut(key string) (T, bool) {
	var zero T
	loc, ok := b.index[key]
	if !ok {
		return zero, false
	}
	return b.removeAt(loc), true
}

// Peek returns the item with the given key without removing it.
func (b *Bag[T]) Peek(key string) (T, bool) {
	var zero T
	loc, ok := b.index[key]
	if !ok {
		return zero, false
	}
	return b.buckets[loc.level][loc.pos], true
}

// PutBack scales the item's priority by forgettingRate and re-inserts it.
func (b *Bag[T]) PutBack(item T, forgettingRate float64) {
	budget := item.GetBudget()
	item.SetBudget(budget.decay(forgettingRate))
	b.insert(item)
}

// Items returns every item currently in the bag; iteration order is
// unspecified 
func (b *Bag[T]) Items() []T {
	out := make([]T, 0, b.size)
	for _, bucket := range b.buckets {
		out = append(out, bucket...)
	}
	return out
}
