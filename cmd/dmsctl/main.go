// Command dmsctl answers dealership finance questions offline: import duty
// brackets, installment plans and currency display, without a database or server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dmsctl",
		Short:         "Offline tools for dealership finance",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newDutyCmd(),
		newPlanCmd(),
		newFormatCmd(),
		newRegulatoryCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
