// Package runner executes catalog cases against solution variants in
// parallel and reports which ones disagree with the expected results.
package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlquest/internal/catalog"
)

var errFailFast = errors.New("runner: stopped after first failure")

// Selection chooses what to run. Empty Problems selects every problem,
// empty Variant selects every variant.
type Selection struct {
	Problems []string
	Variant  string
}

// Result is the verdict for one (problem, variant, case) job.
type Result struct {
	Problem  string
	Variant  string
	Case     string
	Passed   bool
	Diff     string
	Duration time.Duration
}

// Report collects the results of one run in job order.
type Report struct {
	RunID   string
	Results []Result
	Passed  int
	Failed  int
	// Skipped counts jobs not started because of fail-fast.
	Skipped int
}

// OK reports whether every job ran and passed.
func (r Report) OK() bool { return r.Failed == 0 && r.Skipped == 0 }

// Runner executes selections against a registry.
type Runner struct {
	reg      *catalog.Registry
	log      *zap.Logger
	parallel int
	failFast bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithParallelism bounds concurrent jobs; n <= 0 means one per CPU.
func WithParallelism(n int) Option {
	return func(r *Runner) { r.parallel = n }
}

// WithFailFast stops scheduling jobs after the first failure.
func WithFailFast(on bool) Option {
	return func(r *Runner) { r.failFast = on }
}

// New returns a Runner over reg.
func New(reg *catalog.Registry, opts ...Option) *Runner {
	r := &Runner{reg: reg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	if r.parallel <= 0 {
		r.parallel = runtime.NumCPU()
	}

	return r
}

type job struct {
	problem *catalog.Problem
	variant string
	c       *catalog.Case
}

// Run expands sel into jobs and executes them. It fails only for an invalid
// selection or a cancelled context; failing cases are reported in the
// Report.
func (r *Runner) Run(ctx context.Context, sel Selection) (Report, error) {
	jobs, err := r.expand(sel)
	if err != nil {
		return Report{}, err
	}

	report := Report{RunID: uuid.NewString()}
	log := r.log.With(zap.String("run_id", report.RunID))
	log.Info("run started", zap.Int("jobs", len(jobs)), zap.Int("parallel", r.parallel))
	start := time.Now()

	results := make([]Result, len(jobs))
	ran := make([]bool, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallel)
	for i, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		i, j := i, j
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			res := execute(j)
			results[i], ran[i] = res, true
			if res.Passed {
				log.Debug("case passed",
					zap.String("problem", res.Problem),
					zap.String("variant", res.Variant),
					zap.String("case", res.Case))
				return nil
			}
			log.Warn("case failed",
				zap.String("problem", res.Problem),
				zap.String("variant", res.Variant),
				zap.String("case", res.Case),
				zap.String("diff", res.Diff))
			if r.failFast {
				return errFailFast
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil && !errors.Is(err, errFailFast) {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	for i, res := range results {
		switch {
		case !ran[i]:
			report.Skipped++
			continue
		case res.Passed:
			report.Passed++
		default:
			report.Failed++
		}
		report.Results = append(report.Results, res)
	}
	log.Info("run finished",
		zap.Int("passed", report.Passed),
		zap.Int("failed", report.Failed),
		zap.Int("skipped", report.Skipped),
		zap.Duration("elapsed", time.Since(start)))

	return report, nil
}

// expand resolves the selection in the order given, dropping repeats.
func (r *Runner) expand(sel Selection) ([]job, error) {
	var problems []*catalog.Problem
	if len(sel.Problems) == 0 {
		problems = r.reg.Problems("")
	} else {
		seen := make(map[string]bool, len(sel.Problems))
		for _, key := range sel.Problems {
			p, err := r.reg.Problem(key)
			if err != nil {
				return nil, err
			}
			if !seen[p.Key()] {
				seen[p.Key()] = true
				problems = append(problems, p)
			}
		}
	}

	var jobs []job
	for _, p := range problems {
		variants := p.Variants()
		if sel.Variant != "" {
			if !slices.Contains(variants, sel.Variant) {
				return nil, fmt.Errorf("%w: %s has no %q", catalog.ErrUnknownVariant, p.Key(), sel.Variant)
			}
			variants = []string{sel.Variant}
		}
		cases := r.reg.Cases(p.Key())
		for _, v := range variants {
			for i := range cases {
				jobs = append(jobs, job{problem: p, variant: v, c: &cases[i]})
			}
		}
	}

	return jobs, nil
}

// execute runs one job, turning panics into failures.
func execute(j job) (res Result) {
	res = Result{Problem: j.problem.Key(), Variant: j.variant, Case: j.c.Name}
	start := time.Now()
	defer func() {
		res.Duration = time.Since(start)
		if p := recover(); p != nil {
			res.Passed = false
			res.Diff = fmt.Sprintf("panic: %v", p)
		}
	}()

	out, err := j.problem.Run(j.variant, j.c)
	if err != nil {
		res.Diff = err.Error()
		return res
	}
	res.Passed, res.Diff = compare(out)

	return res
}

// compare checks an outcome; the diff is empty when it passed.
func compare(o catalog.Outcome) (bool, string) {
	switch {
	case o.WantErr != "" && o.GotErr == "":
		return false, fmt.Sprintf("want error containing %q, got result %v", o.WantErr, o.Got)
	case o.WantErr != "":
		if !strings.Contains(o.GotErr, o.WantErr) {
			return false, fmt.Sprintf("error %q does not contain %q", o.GotErr, o.WantErr)
		}
		return true, ""
	case o.GotErr != "":
		return false, "unexpected error: " + o.GotErr
	}
	if diff := cmp.Diff(o.Want, o.Got, cmpopts.EquateEmpty()); diff != "" {
		return false, "(-want +got)\n" + diff
	}

	return true, ""
}
