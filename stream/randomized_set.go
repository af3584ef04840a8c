package stream

import (
	"math/rand"
	"slices"
)

// RandomizedSet is a set of ints supporting uniform random selection.
type RandomizedSet interface {
	// Insert adds val and reports whether it was absent.
	Insert(val int) bool
	// Remove deletes val and reports whether it was present.
	Remove(val int) bool
	// GetRandom returns a uniformly chosen member, or ErrEmptySet.
	GetRandom() (int, error)
	Len() int
}

type indexedSet struct {
	rng   *rand.Rand
	vals  []int
	index map[int]int
}

// NewRandomizedSet pairs a value slice with a value→index map; Remove swaps
// the victim with the last element. Every operation is O(1).
func NewRandomizedSet(seed int64) RandomizedSet {
	return &indexedSet{rng: rngFromSeed(seed), index: make(map[int]int)}
}

func (s *indexedSet) Insert(val int) bool {
	if _, ok := s.index[val]; ok {
		return false
	}
	s.index[val] = len(s.vals)
	s.vals = append(s.vals, val)
	return true
}

func (s *indexedSet) Remove(val int) bool {
	i, ok := s.index[val]
	if !ok {
		return false
	}
	last := len(s.vals) - 1
	s.vals[i] = s.vals[last]
	s.index[s.vals[i]] = i
	s.vals = s.vals[:last]
	delete(s.index, val)
	return true
}

func (s *indexedSet) GetRandom() (int, error) {
	if len(s.vals) == 0 {
		return 0, ErrEmptySet
	}
	return s.vals[s.rng.Intn(len(s.vals))], nil
}

func (s *indexedSet) Len() int { return len(s.vals) }

type mapSet struct {
	rng  *rand.Rand
	vals map[int]struct{}
}

// NewMapRandomizedSet keeps only a map and materialises its keys in sorted
// order on every GetRandom, which is therefore O(n log n).
func NewMapRandomizedSet(seed int64) RandomizedSet {
	return &mapSet{rng: rngFromSeed(seed), vals: make(map[int]struct{})}
}

func (s *mapSet) Insert(val int) bool {
	if _, ok := s.vals[val]; ok {
		return false
	}
	s.vals[val] = struct{}{}
	return true
}

func (s *mapSet) Remove(val int) bool {
	if _, ok := s.vals[val]; !ok {
		return false
	}
	delete(s.vals, val)
	return true
}

func (s *mapSet) GetRandom() (int, error) {
	if len(s.vals) == 0 {
		return 0, ErrEmptySet
	}
	keys := make([]int, 0, len(s.vals))
	for k := range s.vals {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys[s.rng.Intn(len(keys))], nil
}

func (s *mapSet) Len() int { return len(s.vals) }

type sliceSet struct {
	rng  *rand.Rand
	vals []int
}

// NewSliceRandomizedSet stores members in a plain slice. Insert and Remove
// scan linearly; GetRandom is O(1).
func NewSliceRandomizedSet(seed int64) RandomizedSet {
	return &sliceSet{rng: rngFromSeed(seed)}
}

func (s *sliceSet) Insert(val int) bool {
	if slices.Contains(s.vals, val) {
		return false
	}
	s.vals = append(s.vals, val)
	return true
}

func (s *sliceSet) Remove(val int) bool {
	i := slices.Index(s.vals, val)
	if i < 0 {
		return false
	}
	s.vals = slices.Delete(s.vals, i, i+1)
	return true
}

func (s *sliceSet) GetRandom() (int, error) {
	if len(s.vals) == 0 {
		return 0, ErrEmptySet
	}
	return s.vals[s.rng.Intn(len(s.vals))], nil
}

func (s *sliceSet) Len() int { return len(s.vals) }
