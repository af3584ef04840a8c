package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [family]",
		Short: "List problems with their variants and case counts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry(nil)
			if err != nil {
				return err
			}
			family := ""
			if len(args) == 1 {
				family = args[0]
			}
			problems := reg.Problems(family)
			if len(problems) == 0 {
				return fmt.Errorf("unknown family %q (have %s)", family, strings.Join(reg.Families(), ", "))
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PROBLEM\tCASES\tVARIANTS")
			for _, p := range problems {
				fmt.Fprintf(w, "%s\t%d\t%s\n", p.Key(), len(reg.Cases(p.Key())), strings.Join(p.Variants(), ", "))
			}
			return w.Flush()
		},
	}
}
