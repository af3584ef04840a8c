package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlquest/cache"
)

type cacheFactory = func(int, ...cache.Option[int, int]) (cache.Cache[int, int], error)

var cacheKinds = map[string]cacheFactory{
	"lru":         cache.NewLRU[int, int],
	"list-lru":    cache.NewListLRU[int, int],
	"simplelru":   cache.NewLibraryLRU[int, int],
	"lfu":         cache.NewLFU[int, int],
	"ordered-lfu": cache.NewOrderedLFU[int, int],
	"scan-lfu":    cache.NewScanLFU[int, int],
}

func kindNames() string {
	names := make([]string, 0, len(cacheKinds))
	for k := range cacheKinds {
		names = append(names, k)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

func cacheCmd(a *app) *cobra.Command {
	var (
		kind     string
		capacity int
		ops      []string
	)

	c := &cobra.Command{
		Use:   "cache",
		Short: "Run put/get operations against an instrumented cache",
		Example: `  lvlquest cache --kind lfu --capacity 2 \
    --ops put:1:1,put:2:2,get:1,put:3:3,get:2,get:3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			newCache, ok := cacheKinds[kind]
			if !ok {
				return fmt.Errorf("unknown cache kind %q (want %s)", kind, kindNames())
			}
			reg := prometheus.NewRegistry()
			cc, err := newCache(capacity,
				cache.WithMetrics[int, int](reg, "lvlquest_cache"),
				cache.WithOnEvict(func(k, v int) {
					a.log.Debug("evicted", zap.Int("key", k), zap.Int("value", v))
				}),
			)
			if err != nil {
				return err
			}
			ic := cache.NewIntCache(cc)

			out := cmd.OutOrStdout()
			for _, op := range ops {
				if err := applyOp(out, ic, op); err != nil {
					return err
				}
			}
			st := cc.Stats()
			fmt.Fprintf(out, "# %s cap=%d len=%d hit_ratio=%.2f\n", kind, cc.Cap(), cc.Len(), st.HitRatio())

			return writeMetrics(out, reg)
		},
	}

	c.Flags().StringVar(&kind, "kind", "lru", "cache implementation: "+kindNames())
	c.Flags().IntVar(&capacity, "capacity", 2, "maximum number of entries")
	c.Flags().StringSliceVar(&ops, "ops", nil, "operations: put:KEY:VALUE or get:KEY")
	return c
}

// applyOp runs one "put:k:v" or "get:k" operation and prints get results.
func applyOp(w io.Writer, ic *cache.IntCache, op string) error {
	parts := strings.Split(op, ":")
	nums := make([]int, 0, 2)
	for _, p := range parts[1:] {
		n, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("op %q: %w", op, err)
		}
		nums = append(nums, n)
	}

	switch {
	case parts[0] == "put" && len(nums) == 2:
		ic.Put(nums[0], nums[1])
	case parts[0] == "get" && len(nums) == 1:
		fmt.Fprintf(w, "get %d = %d\n", nums[0], ic.Get(nums[0]))
	default:
		return fmt.Errorf("op %q: want put:KEY:VALUE or get:KEY", op)
	}

	return nil
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
