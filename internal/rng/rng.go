// Package rng provides the deterministic random source every simulation
// system draws from. All randomness flows through one seeded Source so a
// full season replays byte-for-byte from the same seed; no package in this
// module touches math/rand's global state.
package rng

import (
	"math/rand"
)

// Source is a seeded pseudo-random source. It is not safe for concurrent
// use; the simulation is single-threaded and threads one Source per run.
type Source struct {
	r *rand.Rand
}

// New creates a Source from a seed.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// NextInt returns a uniform integer in [min, max] inclusive. If max < min
// the bounds are swapped.
func (s *Source) NextInt(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + s.r.Intn(max-min+1)
}

// NextFloat returns a uniform float64 in [min, max).
func (s *Source) NextFloat(min, max float64) float64 {
	return min + s.r.Float64()*(max-min)
}

// Chance runs a Bernoulli trial at probability p. p ≤ 0 never succeeds,
// p ≥ 1 always succeeds. A draw is consumed either way so callers keep a
// stable draw sequence regardless of the probability value.
func (s *Source) Chance(p float64) bool {
	v := s.r.Float64()
	if p <= 0 {
		return false
	}
	return v < p
}

// Gaussian returns a normally distributed float64 with the given mean and
// standard deviation.
func (s *Source) Gaussian(mean, stddev float64) float64 {
	return mean + s.r.NormFloat64()*stddev
}

// Pick returns a uniformly chosen element of items. The zero value is
// returned for an empty slice.
func Pick[T any](s *Source, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[s.r.Intn(len(items))]
}

// Weighted pairs an item with a selection weight for PickWeighted.
type Weighted[T any] struct {
	Item   T
	Weight float64
}

// PickWeighted returns an element chosen with probability proportional to
// its weight. Non-positive weights are treated as zero; if all weights are
// zero the first item is returned.
func PickWeighted[T any](s *Source, items []Weighted[T]) T {
	var zero T
	if len(items) == 0 {
		return zero
	}

	var total float64
	for _, w := range items {
		if w.Weight > 0 {
			total += w.Weight
		}
	}
	if total <= 0 {
		return items[0].Item
	}

	target := s.r.Float64() * total
	for _, w := range items {
		if w.Weight <= 0 {
			continue
		}
		target -= w.Weight
		if target < 0 {
			return w.Item
		}
	}
	return items[len(items)-1].Item
}

// Shuffle permutes items in place using Fisher-Yates.
func Shuffle[T any](s *Source, items []T) {
	s.r.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
