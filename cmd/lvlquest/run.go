package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlquest/internal/runner"
)

func runCmd(a *app) *cobra.Command {
	var (
		variant  string
		cases    []string
		parallel int
		failFast bool
	)

	c := &cobra.Command{
		Use:   "run [problem...]",
		Short: "Run cases against solution variants",
		Long: `Runs every case of the selected problems against each variant and
reports disagreements. Problems are given as family/name or as a bare name
when unique. With no arguments every problem runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry(cases)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("parallel") {
				parallel = a.cfg.Parallelism
			}
			if !cmd.Flags().Changed("fail-fast") {
				failFast = a.cfg.FailFast
			}

			r := runner.New(reg,
				runner.WithLogger(a.log),
				runner.WithParallelism(parallel),
				runner.WithFailFast(failFast),
			)
			rep, err := r.Run(cmd.Context(), runner.Selection{Problems: args, Variant: variant})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, res := range rep.Results {
				if !res.Passed {
					fmt.Fprintf(out, "FAIL %s [%s] %s\n%s\n", res.Problem, res.Variant, res.Case, res.Diff)
				}
			}
			fmt.Fprintf(out, "run %s: %d passed, %d failed, %d skipped\n", rep.RunID, rep.Passed, rep.Failed, rep.Skipped)
			if !rep.OK() {
				return fmt.Errorf("%d case(s) failed", rep.Failed)
			}
			return nil
		},
	}

	c.Flags().StringVar(&variant, "variant", "", "run only this variant")
	c.Flags().StringSliceVar(&cases, "cases", nil, "extra YAML case files")
	c.Flags().IntVar(&parallel, "parallel", 0, "concurrent jobs (0 = one per CPU)")
	c.Flags().BoolVar(&failFast, "fail-fast", false, "stop at the first failure")
	return c
}
