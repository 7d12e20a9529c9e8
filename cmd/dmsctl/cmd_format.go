package main

import (
	"fmt"

	"github.com/SscSPs/dealership_finance_app/internal/utils"
	"github.com/spf13/cobra"
)

func newFormatCmd() *cobra.Command {
	var amount, currency, locale string
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Format an amount for display",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), utils.FormatAmountString(amount, currency, locale))
			return nil
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "amount; blank or non-numeric prints a dash")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code or alias (TL)")
	cmd.Flags().StringVar(&locale, "locale", "", "display locale, e.g. de-DE")
	_ = cmd.MarkFlagRequired("currency")
	return cmd
}
