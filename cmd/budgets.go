package cmd

import (
	"context"
	"fmt"

	"github.com/Tanishkag23/xpense/internal/controller"
	"github.com/Tanishkag23/xpense/internal/screen"

	"github.com/spf13/cobra"
)

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "Show and set monthly budgets",
	RunE:  runBudgetsList,
}

var budgetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show monthly budgets",
	RunE:  runBudgetsList,
}

var budgetsSetCmd = &cobra.Command{
	Use:   "set CATEGORY AMOUNT",
	Short: "Set the monthly budget for a category",
	Args:  cobra.ExactArgs(2),
	RunE:  runBudgetsSet,
}

var incomeCmd = &cobra.Command{
	Use:   "income",
	Short: "Manage monthly income",
}

var incomeSetCmd = &cobra.Command{
	Use:   "set AMOUNT",
	Short: "Set monthly income",
	Args:  cobra.ExactArgs(1),
	RunE:  runIncomeSet,
}

func init() {
	budgetsCmd.AddCommand(budgetsListCmd, budgetsSetCmd)
	incomeCmd.AddCommand(incomeSetCmd)
	rootCmd.AddCommand(budgetsCmd, incomeCmd)
}

func runBudgetsList(cmd *cobra.Command, _ []string) error {
	cl, err := runOneShot(cmd, nil, nil)
	if cl == nil {
		return err
	}
	fmt.Println()
	printBudgets(cl.ctrl.Screen().Snapshot())
	return err
}

func runBudgetsSet(cmd *cobra.Command, args []string) error {
	cl, err := runOneShot(cmd, func(c *controller.Controller) {
		c.Screen().SetInput(screen.BudCategory, args[0])
		c.Screen().SetInput(screen.BudAmount, args[1])
	}, func(ctx context.Context, c *controller.Controller) error {
		return c.SetBudget(ctx)
	})
	if cl == nil || err != nil {
		return err
	}
	fmt.Println()
	printBudgets(cl.ctrl.Screen().Snapshot())
	return nil
}

func runIncomeSet(cmd *cobra.Command, args []string) error {
	cl, err := runOneShot(cmd, func(c *controller.Controller) {
		c.Screen().SetInput(screen.IncomeAmount, args[0])
	}, func(ctx context.Context, c *controller.Controller) error {
		return c.SetIncome(ctx)
	})
	if cl == nil || err != nil {
		return err
	}
	fmt.Println()
	printDashboard(cl.ctrl.Screen().Snapshot())
	return nil
}
