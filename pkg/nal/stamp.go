package nal

// Eternal marks a Stamp's occurrence time as timeless rather than bound to
// a specific moment.
const Eternal int64 = -1 << 62

// Stamp is the evidential base plus derivation chain plus times attached to
// every sentence. The evidential base and derivation chain are both
// bounded; construction enforces the bounds so nothing downstream needs to
// re-check them.
type Stamp struct {
	evidentialBase []int64
	chain          []*Term
	creationTime   int64
	occurrenceTime int64 // Eternal if timeless
}

// EvidentialBase returns the stamp's evidence ids. Callers must not mutate
// the returned slice.
func (s *Stamp) EvidentialBase() []int64 { return s.evidentialBase }

// Chain returns the derivation chain. Callers must not mutate the returned
// slice.
func (s *Stamp) Chain() []*Term { return s.chain }

func (s *Stamp) CreationTime() int64   { return s.creationTime }
func (s *Stamp) OccurrenceTime() int64 { return s.occurrenceTime }

// NewInputStamp creates the stamp for an externally supplied task: a
// single-element evidential base (its own serial), an empty chain, and the
// given times.
func NewInputStamp(serial int64, now, occurrence int64) *Stamp {
	return &Stamp{
		evidentialBase: []int64{serial},
		chain:          nil,
		creationTime:   now,
		occurrenceTime: occurrence,
	}
}

// DeriveSinglePremise copies a parent stamp for a single-premise
// derivation, bumping the creation time. The evidential base and chain are
// copied (not shared) so the child can extend its own chain independently.
func (s *Stamp) DeriveSinglePremise(now int64) *Stamp {
	return &Stamp{
		evidentialBase: append([]int64(nil), s.evidentialBase...),
		chain:          append([]*Term(nil), s.chain...),
		creationTime:   now,
		occurrenceTime: s.occurrenceTime,
	}
}

// overlaps reports whether two evidential bases share any id.
func overlaps(a, b []int64) bool {
	seen := make(map[int64]bool, len(a))
	for _, id := range a {
		seen[id] = true
	}
	for _, id := range b {
		if seen[id] {
			return true
		}
	}
	return false
}

// MergeStamps merges two evidential bases by interleaving, truncating to
// maxBase, and returns nil (construction failure) if a and b overlap.
// The derivation chain of the
// result is the union (order-preserving, a's chain first) capped at
// maxChain; occurrence time is the later of the two eternal-aware times,
// and creation time is now.
func MergeStamps(a, b *Stamp, now int64, maxBase, maxChain int) *Stamp {
	if overlaps(a.evidentialBase, b.evidentialBase) {
		return nil
	}
	merged := interleave(a.evidentialBase, b.evidentialBase)
	if len(merged) > maxBase {
		merged = merged[:maxBase]
	}

	chain := append([]*Term(nil), a.chain...)
	seen := make(map[string]bool, len(chain))
	for _, t := range chain {
		seen[t.key] = true
	}
	for _, t := range b.chain {
		if !seen[t.key] {
			chain = append(chain, t)
			seen[t.key] = true
		}
	}
	if len(chain) > maxChain {
		chain = chain[len(chain)-maxChain:]
	}

	occurrence := a.occurrenceTime
	if a.occurrenceTime == Eternal {
		occurrence = b.occurrenceTime
	} else if b.occurrenceTime != Eternal && b.occurrenceTime > occurrence {
		occurrence = b.occurrenceTime
	}

	return &Stamp{
		evidentialBase: merged,
		chain:          chain,
		creationTime:   now,
		occurrenceTime: occurrence,
	}
}

// interleave merges two id sequences alternately; this is an implementation
// detail of the bag-like evidential-base combination, not semantically
// significant beyond determinism and commutativity (the result's multiset
// of ids is the same regardless of argument order, even though
// interleaving order can differ).
func interleave(a, b []int64) []int64 {
	out := make([]int64, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		if i < len(a) {
			out = append(out, a[i])
			i++
		}
		if j < len(b) {
			out = append(out, b[j])
			j++
		}
	}
	return out
}

// AddToChain appends t to the chain, first removing any existing
// occurrence of t ("moves-to-end" semantics), then caps the result at
// maxChain by dropping the oldest entries.
func (s *Stamp) AddToChain(t *Term, maxChain int) *Stamp {
	chain := make([]*Term, 0, len(s.chain)+1)
	for _, c := range s.chain {
		if !c.Equal(t) {
			chain = append(chain, c)
		}
	}
	chain = append(chain, t)
	if len(chain) > maxChain {
		chain = chain[len(chain)-maxChain:]
	}
	return &Stamp{
		evidentialBase: s.evidentialBase,
		chain:          chain,
		creationTime:   s.creationTime,
		occurrenceTime: s.occurrenceTime,
	}
}

// HasOverlap reports whether the stamp's own evidential base contains a
// duplicate id, the revision-only self-overlap check.
func (s *Stamp) HasOverlap() bool {
	seen := make(map[int64]bool, len(s.evidentialBase))
	for _, id := range s.evidentialBase {
		if seen[id] {
			return true
		}
		seen[id] = true
	}
	return false
}
