// Package lvlquest is a workbook of classic algorithm problems, each solved
// several ways so the variants can be read, timed and checked side by side.
//
// 🚀 What is inside?
//
//	One package per problem family, every solution exported by name:
//		• array      – two sum, plus one, first missing positive, Pascal
//		• prefixsum  – altitude, divisible subarray, fair indices
//		• sorting    – closest pairs, reduction steps, interval merging
//		• binsearch  – search, mountain peak, sum of squares, rotated search
//		• strs       – capitals, license keys, PII masking, repetition
//		• linkedlist – dedupe, odd/even, reverse, deep copy with random links
//		• stack      – RPN, exclusive time, prices, temperatures, histogram
//		• queue      – cafeteria, ticket line, queue built from stacks
//		• heaps      – stones, k smallest pairs, target construction
//		• cache      – LRU and LFU caches with metrics
//		• stream     – k-th largest, stream checker, ranges, randomized set
//
// ✨ Conventions
//
//   - The unsuffixed function is the recommended solution; suffixed ones
//     (TwoSumBrute, EvalRPNInfix, ...) solve the same problem another way.
//   - Inputs are never mutated; invalid input yields a package sentinel
//     error rather than a panic.
//   - Library packages never log.
//
// Tooling lives beside the library:
//
//	cmd/lvlquest       – list problems, run cases, poke at caches
//	internal/catalog   – problem registry and embedded YAML cases
//	internal/runner    – parallel case runner with go-cmp diffs
//	internal/config    – YAML config with environment overrides
//
// Quick start:
//
//	go run ./cmd/lvlquest run two-sum --variant brute
package lvlquest
