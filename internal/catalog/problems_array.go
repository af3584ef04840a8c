package catalog

import (
	"github.com/katalvlaran/lvlquest/array"
	"github.com/katalvlaran/lvlquest/binsearch"
	"github.com/katalvlaran/lvlquest/prefixsum"
	"github.com/katalvlaran/lvlquest/sorting"
)

type numsTarget struct {
	Nums   []int `yaml:"nums"`
	Target int   `yaml:"target"`
}

func withTarget[Out any](fn func([]int, int) Out, in numsTarget) (Out, error) {
	return fn(in.Nums, in.Target), nil
}

type numsModulus struct {
	Nums []int `yaml:"nums"`
	P    int   `yaml:"p"`
}

func arrayProblems() []*Problem {
	return []*Problem{
		define("array", "two-sum", withTarget[[]int],
			v("hash", array.TwoSum),
			v("brute", array.TwoSumBrute),
			v("two-pointers", array.TwoSumTwoPointers),
		),
		define("array", "plus-one", pure[[]int, []int],
			v("right-to-left", array.PlusOne),
			v("padded", array.PlusOnePadded),
			v("big", array.PlusOneBig),
			v("recursive", array.PlusOneRecursive),
			v("carry", array.PlusOneCarry),
			v("copy", array.PlusOneCopy),
		),
		define("array", "first-missing-positive", pure[[]int, int],
			v("cyclic", array.FirstMissingPositive),
			v("set", array.FirstMissingPositiveSet),
			v("mark", array.FirstMissingPositiveMark),
			v("sort", array.FirstMissingPositiveSort),
			v("two-pass", array.FirstMissingPositiveTwoPass),
		),
		define("array", "pascal-triangle", pure[int, [][]int],
			v("iterative", array.PascalTriangle),
			v("from-prev", array.PascalTriangleFromPrev),
			v("binomial", array.PascalTriangleBinomial),
			v("recursive", array.PascalTriangleRecursive),
			v("zip", array.PascalTriangleZip),
		),

		define("prefixsum", "largest-altitude", pure[[]int, int],
			v("running", prefixsum.LargestAltitude),
			v("prefix", prefixsum.LargestAltitudePrefix),
			v("scan", prefixsum.LargestAltitudeScan),
			v("recursive", prefixsum.LargestAltitudeRecursive),
		),
		define("prefixsum", "min-subarray",
			func(fn func([]int, int) (int, error), in numsModulus) (int, error) {
				return fn(in.Nums, in.P)
			},
			v("remainder-map", prefixsum.MinSubarray),
			v("brute", prefixsum.MinSubarrayBrute),
			v("prefix-array", prefixsum.MinSubarrayPrefixArray),
		),
		define("prefixsum", "ways-to-make-fair", pure[[]int, int],
			v("running", prefixsum.WaysToMakeFair),
			v("brute", prefixsum.WaysToMakeFairBrute),
			v("prefix-arrays", prefixsum.WaysToMakeFairPrefixArrays),
		),

		define("sorting", "minimum-abs-difference", pure[[]int, [][2]int],
			v("two-pass", sorting.MinimumAbsDifference),
			v("one-pass", sorting.MinimumAbsDifferenceOnePass),
			v("counting", sorting.MinimumAbsDifferenceCounting),
			v("pairs", sorting.MinimumAbsDifferencePairs),
		),
		define("sorting", "reduction-operations", pure[[]int, int],
			v("ascending", sorting.ReductionOperations),
			v("descending", sorting.ReductionOperationsDescending),
			v("counter", sorting.ReductionOperationsCounter),
			v("simulation", sorting.ReductionOperationsSimulation),
		),
		define("sorting", "merge-intervals", pure[[]sorting.Interval, []sorting.Interval],
			v("sweep-sorted", sorting.MergeIntervals),
			v("stack", sorting.MergeIntervalsStack),
			v("union-find", sorting.MergeIntervalsUnionFind),
			v("events", sorting.MergeIntervalsSweep),
			v("in-place", sorting.MergeIntervalsInPlace),
		),

		define("binsearch", "search", withTarget[int],
			v("iterative", binsearch.Search),
			v("recursive", binsearch.SearchRecursive),
			v("lower-bound", binsearch.SearchLowerBound),
			v("stdlib", binsearch.SearchStdlib),
			v("linear", binsearch.SearchLinear),
		),
		define("binsearch", "peak-index-in-mountain", fallible[[]int, int],
			v("slope", binsearch.PeakIndexInMountain),
			v("linear", binsearch.PeakIndexInMountainLinear),
			v("max", binsearch.PeakIndexInMountainMax),
			v("golden", binsearch.PeakIndexInMountainGolden),
			v("recursive", binsearch.PeakIndexInMountainRecursive),
		),
		define("binsearch", "judge-square-sum", pure[int, bool],
			v("two-pointers", binsearch.JudgeSquareSum),
			v("binary-search", binsearch.JudgeSquareSumBinarySearch),
			v("sqrt", binsearch.JudgeSquareSumSqrt),
			v("fermat", binsearch.JudgeSquareSumFermat),
		),
		define("binsearch", "search-rotated", withTarget[int],
			v("one-pass", binsearch.SearchRotated),
			v("pivot-first", binsearch.SearchRotatedPivotFirst),
			v("linear", binsearch.SearchRotatedLinear),
		),
	}
}
