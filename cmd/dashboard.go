package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Income, spending and balance with totals by category",
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	cl, err := runOneShot(cmd, nil, nil)
	if cl == nil {
		return err
	}

	fmt.Println()
	fmt.Println(greetingLine(cl.ctrl))
	fmt.Println()
	printDashboard(cl.ctrl.Screen().Snapshot())
	return err
}
