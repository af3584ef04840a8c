// Package stream implements online data structures that consume a stream
// one element at a time:
//
//   - KthLargest: the k-th largest value seen so far.
//   - StreamChecker: whether the stream currently ends with one of the words.
//   - SummaryRanges: the stream's values as sorted disjoint intervals.
//   - RandomizedSet: insert, remove and uniform random pick in O(1).
//
// Each structure is an interface with several constructors that trade time
// for simplicity. Constructors of one interface agree on every input they
// accept; NewBitmapSummaryRanges alone bounds its values.
//
// Determinism: RandomizedSet draws from a math/rand source seeded by the
// caller. Seed 0 selects a fixed default seed, so runs are reproducible
// unless the caller chooses otherwise.
//
// None of the structures are safe for concurrent use.
package stream
