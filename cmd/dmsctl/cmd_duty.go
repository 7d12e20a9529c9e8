package main

import (
	"fmt"

	"github.com/SscSPs/dealership_finance_app/internal/utils"
	"github.com/SscSPs/dealership_finance_app/internal/utils/regulatory"
	"github.com/spf13/cobra"
)

func newDutyCmd() *cobra.Command {
	var label string
	cmd := &cobra.Command{
		Use:   "duty",
		Short: "Show the import duty bracket for an engine displacement label",
		Example: `  dmsctl duty --label "1798 CC"
  dmsctl duty --label 2494cc`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := regulatory.CCFromLabel(label)
			rate := regulatory.DutyRateForCC(cc)
			out := cmd.OutOrStdout()
			if cc == 0 {
				fmt.Fprintf(out, "displacement: unknown (%q)\n", label)
			} else {
				fmt.Fprintf(out, "displacement: %d cc\n", cc)
			}
			fmt.Fprintf(out, "duty rate: %s%%\n", utils.FormatWithPrecision(rate.Shift(2), 0))
			return nil
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "engine displacement label, e.g. \"1498 CC\"")
	_ = cmd.MarkFlagRequired("label")
	return cmd
}
