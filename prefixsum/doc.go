// Package prefixsum solves running-sum exercises: highest altitude on a ride,
// the shortest subarray whose removal makes the total divisible by p, and the
// number of removals that leave a "fair" array.
//
// Every problem reduces to prefix sums; the variants differ in whether the
// prefix array is materialised and in how lookups are done.
//
// Errors:
//   - ErrInvalidModulus: MinSubarray called with p <= 0.
package prefixsum
