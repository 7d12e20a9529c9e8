package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	"github.com/SscSPs/dealership_finance_app/internal/utils"
	"github.com/SscSPs/dealership_finance_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type planOptions struct {
	total    string
	down     string
	count    int
	currency string
	start    string
	locale   string
}

func newPlanCmd() *cobra.Command {
	opts := planOptions{}
	cmd := &cobra.Command{
		Use:     "plan",
		Short:   "Lay out the monthly installments of a sale",
		Example: `  dmsctl plan --total 12000 --down 2000 --count 10 --currency USD --start 2024-01-15`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.total, "total", "", "total sale amount")
	f.StringVar(&opts.down, "down", "0", "down payment")
	f.IntVar(&opts.count, "count", 0, "number of installments")
	f.StringVar(&opts.currency, "currency", domain.CurrencyTRY, "currency code")
	f.StringVar(&opts.start, "start", "", "sale date (YYYY-MM-DD), defaults to today")
	f.StringVar(&opts.locale, "locale", "", "display locale")
	_ = cmd.MarkFlagRequired("total")
	_ = cmd.MarkFlagRequired("count")
	return cmd
}

func runPlan(cmd *cobra.Command, opts planOptions) error {
	total, err := decimal.NewFromString(opts.total)
	if err != nil {
		return fmt.Errorf("invalid --total %q: %w", opts.total, err)
	}
	down, err := decimal.NewFromString(opts.down)
	if err != nil {
		return fmt.Errorf("invalid --down %q: %w", opts.down, err)
	}
	if opts.count < 1 {
		return fmt.Errorf("--count must be at least 1")
	}
	if down.IsNegative() || down.GreaterThan(total) {
		return fmt.Errorf("--down must be between 0 and --total")
	}
	currency, ok := domain.LookupCurrency(opts.currency)
	if !ok {
		return fmt.Errorf("unsupported currency %q", opts.currency)
	}
	saleDate := time.Now().UTC().Truncate(24 * time.Hour)
	if opts.start != "" {
		saleDate, err = time.Parse("2006-01-02", opts.start)
		if err != nil {
			return fmt.Errorf("invalid --start %q: %w", opts.start, err)
		}
	}

	sale := domain.InstallmentSale{
		TotalAmount:      total,
		DownPayment:      down,
		InstallmentCount: opts.count,
		CurrencyCode:     currency.CurrencyCode,
		SaleDate:         saleDate,
	}
	format := func(d decimal.Decimal) string {
		return utils.FormatAmount(decimal.NewNullDecimal(d), currency.CurrencyCode, opts.locale)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "installment amount: %s\n", format(accounting.InstallmentAmount(total, down, opts.count)))
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tDUE\tAMOUNT")
	for _, s := range accounting.BuildSchedule(sale) {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Number, s.DueDate.Format("2006-01-02"), format(s.Amount))
	}
	return tw.Flush()
}
