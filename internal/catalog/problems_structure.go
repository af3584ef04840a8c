package catalog

import (
	"github.com/katalvlaran/lvlquest/cache"
	"github.com/katalvlaran/lvlquest/heaps"
	"github.com/katalvlaran/lvlquest/stream"
)

type pairsInput struct {
	A []int `yaml:"a"`
	B []int `yaml:"b"`
	K int   `yaml:"k"`
}

type (
	cacheCtor   = func(int, ...cache.Option[int, int]) (cache.Cache[int, int], error)
	kthCtor     = func(int, []int) (stream.KthLargest, error)
	checkerCtor = func([]string) stream.StreamChecker
	rangesCtor  = func() stream.SummaryRanges
	setCtor     = func(int64) stream.RandomizedSet
)

// cacheScript drives the int API: put k v, get k (-1 on a miss) and len.
func cacheScript(ctor cacheCtor, in script) (stepper, error) {
	c, err := ctor(in.Capacity)
	if err != nil {
		return nil, err
	}
	ic := cache.NewIntCache(c)

	return func(op string, args []any) (any, error) {
		switch op {
		case "put":
			k, err := intArg(args, 0)
			if err != nil {
				return nil, err
			}
			val, err := intArg(args, 1)
			if err != nil {
				return nil, err
			}
			ic.Put(k, val)
			return nil, nil
		case "get":
			k, err := intArg(args, 0)
			if err != nil {
				return nil, err
			}
			return ic.Get(k), nil
		case "len":
			return c.Len(), nil
		}
		return nil, unknownOp(op)
	}, nil
}

func kthScript(ctor kthCtor, in script) (stepper, error) {
	kl, err := ctor(in.K, in.Nums)
	if err != nil {
		return nil, err
	}

	return func(op string, args []any) (any, error) {
		if op != "add" {
			return nil, unknownOp(op)
		}
		x, err := intArg(args, 0)
		if err != nil {
			return nil, err
		}
		return kl.Add(x), nil
	}, nil
}

func checkerScript(ctor checkerCtor, in script) (stepper, error) {
	sc := ctor(in.Words)

	return func(op string, args []any) (any, error) {
		if op != "query" {
			return nil, unknownOp(op)
		}
		b, err := byteArg(args, 0)
		if err != nil {
			return nil, err
		}
		return sc.Query(b), nil
	}, nil
}

func rangesScript(ctor rangesCtor, _ script) (stepper, error) {
	sr := ctor()

	return func(op string, args []any) (any, error) {
		switch op {
		case "add":
			x, err := intArg(args, 0)
			if err != nil {
				return nil, err
			}
			sr.AddNum(x)
			return nil, nil
		case "intervals":
			return sr.Intervals(), nil
		}
		return nil, unknownOp(op)
	}, nil
}

// setScript supports insert, remove, random and len. random on an empty
// set yields the error message.
func setScript(ctor setCtor, in script) (stepper, error) {
	rs := ctor(in.Seed)

	return func(op string, args []any) (any, error) {
		switch op {
		case "insert", "remove":
			x, err := intArg(args, 0)
			if err != nil {
				return nil, err
			}
			if op == "insert" {
				return rs.Insert(x), nil
			}
			return rs.Remove(x), nil
		case "random":
			x, err := rs.GetRandom()
			if err != nil {
				return err.Error(), nil
			}
			return x, nil
		case "len":
			return rs.Len(), nil
		}
		return nil, unknownOp(op)
	}, nil
}

func structureProblems() []*Problem {
	return []*Problem{
		define("heaps", "last-stone-weight", pure[[]int, int],
			v("max-heap", heaps.LastStoneWeight),
			v("sort", heaps.LastStoneWeightSort),
			v("insort", heaps.LastStoneWeightInsort),
			v("simulation", heaps.LastStoneWeightSimulation),
		),
		define("heaps", "k-smallest-pairs",
			func(fn func([]int, []int, int) ([][2]int, error), in pairsInput) ([][2]int, error) {
				return fn(in.A, in.B, in.K)
			},
			v("frontier", heaps.KSmallestPairs),
			v("brute", heaps.KSmallestPairsBrute),
			v("max-heap", heaps.KSmallestPairsMaxHeap),
			v("lazy", heaps.KSmallestPairsLazy),
		),
		define("heaps", "is-possible", pure[[]int, bool],
			v("modulo", heaps.IsPossible),
			v("subtract", heaps.IsPossibleSubtract),
			v("gcd", heaps.IsPossibleGCD),
		),

		defineScript("cache", "lru", cacheScript,
			v[cacheCtor]("intrusive", cache.NewLRU[int, int]),
			v[cacheCtor]("container-list", cache.NewListLRU[int, int]),
			v[cacheCtor]("simplelru", cache.NewLibraryLRU[int, int]),
		),
		defineScript("cache", "lfu", cacheScript,
			v[cacheCtor]("frequency-lists", cache.NewLFU[int, int]),
			v[cacheCtor]("ordered-sets", cache.NewOrderedLFU[int, int]),
			v[cacheCtor]("scan", cache.NewScanLFU[int, int]),
		),

		defineScript("stream", "kth-largest", kthScript,
			v[kthCtor]("min-heap", stream.NewKthLargest),
			v[kthCtor]("sorted", stream.NewSortedKthLargest),
			v[kthCtor]("bisect", stream.NewBisectKthLargest),
			v[kthCtor]("top-k", stream.NewTopKKthLargest),
			v[kthCtor]("max-heap", stream.NewMaxHeapKthLargest),
		),
		defineScript("stream", "stream-checker", checkerScript,
			v[checkerCtor]("reversed-trie", stream.NewStreamChecker),
			v[checkerCtor]("set", stream.NewSetStreamChecker),
			v[checkerCtor]("forward", stream.NewForwardStreamChecker),
			v[checkerCtor]("aho-corasick", stream.NewAhoCorasickStreamChecker),
			v[checkerCtor]("radix", stream.NewRadixStreamChecker),
		),
		defineScript("stream", "summary-ranges", rangesScript,
			v[rangesCtor]("sorted", stream.NewSummaryRanges),
			v[rangesCtor]("set", stream.NewSetSummaryRanges),
			v[rangesCtor]("union-find", stream.NewUnionFindSummaryRanges),
			v[rangesCtor]("bitmap", stream.NewBitmapSummaryRanges),
		),
		defineScript("stream", "randomized-set", setScript,
			v[setCtor]("indexed", stream.NewRandomizedSet),
			v[setCtor]("map", stream.NewMapRandomizedSet),
			v[setCtor]("slice", stream.NewSliceRandomizedSet),
		),
	}
}
