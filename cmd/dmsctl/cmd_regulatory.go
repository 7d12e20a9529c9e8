package main

import (
	"fmt"
	"strings"

	"github.com/SscSPs/dealership_finance_app/internal/adapters/regulatorytable"
	"github.com/SscSPs/dealership_finance_app/internal/core/services"
	"github.com/SscSPs/dealership_finance_app/internal/utils"
	"github.com/spf13/cobra"
)

func newRegulatoryCmd() *cobra.Command {
	var tablePath string
	cmd := &cobra.Command{
		Use:   "regulatory [maker [model]]",
		Short: "Browse the Japan import duty table",
		Long: `Without arguments lists makers; with a maker lists its models; with a maker
and a model lists the grades together with their duty bracket.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc := services.NewRegulatoryService(regulatorytable.NewSource(tablePath))
			out := cmd.OutOrStdout()

			switch len(args) {
			case 0:
				makers, err := svc.ListMakers(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, strings.Join(makers, "\n"))
			case 1:
				models, err := svc.ListModels(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(out, strings.Join(models, "\n"))
			default:
				grades, err := svc.ListGrades(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				for _, grade := range grades {
					quote, err := svc.Lookup(ctx, args[0], args[1], grade)
					if err != nil {
						return err
					}
					cc := "unknown"
					if quote.DisplacementKnown {
						cc = fmt.Sprintf("%d cc", quote.CC)
					}
					fmt.Fprintf(out, "%s\t%s\t%s%%\n", grade, cc, utils.FormatWithPrecision(quote.DutyRate.Shift(2), 0))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&tablePath, "table", "", "JSON duty table; defaults to the built-in one")
	return cmd
}
