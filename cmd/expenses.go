package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Tanishkag23/xpense/internal/controller"
	"github.com/Tanishkag23/xpense/internal/model"
	"github.com/Tanishkag23/xpense/internal/screen"

	"github.com/spf13/cobra"
)

var (
	flagCategory string
	flagDesc     string
	flagSort     string

	flagAmount string
	flagDate   string
)

var expensesCmd = &cobra.Command{
	Use:     "expenses",
	Aliases: []string{"exp"},
	Short:   "List, add and delete expenses",
	RunE:    runExpensesList,
}

var expensesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses, optionally filtered and sorted",
	RunE:  runExpensesList,
}

var expensesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an expense",
	RunE:  runExpensesAdd,
}

var expensesDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a transaction by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpensesDelete,
}

func init() {
	for _, c := range []*cobra.Command{expensesCmd, expensesListCmd} {
		c.Flags().StringVarP(&flagCategory, "category", "c", "", "Filter by category (substring)")
		c.Flags().StringVar(&flagDesc, "desc", "", "Filter by description (substring)")
		c.Flags().StringVarP(&flagSort, "sort", "s", "", "Sort rows by id, date, amount or category")
	}

	expensesAddCmd.Flags().StringVarP(&flagAmount, "amount", "a", "", "Amount")
	expensesAddCmd.Flags().StringVarP(&flagDate, "date", "D", time.Now().Format("2006-01-02"), "Date (YYYY-MM-DD)")
	expensesAddCmd.Flags().StringVarP(&flagCategory, "category", "c", "", "Category")
	expensesAddCmd.Flags().StringVar(&flagDesc, "desc", "", "Description")

	expensesCmd.AddCommand(expensesListCmd, expensesAddCmd, expensesDeleteCmd)
	rootCmd.AddCommand(expensesCmd)
}

func runExpensesList(cmd *cobra.Command, _ []string) error {
	sortKey, ok := model.ParseSortKey(flagSort)
	if !ok {
		return fmt.Errorf("unknown sort key %q (want id, date, amount or category)", flagSort)
	}

	cl, err := runOneShot(cmd, func(c *controller.Controller) {
		c.Screen().SetInput(screen.FilterCategory, flagCategory)
		c.Screen().SetInput(screen.FilterDesc, flagDesc)
		c.SetSortKey(sortKey)
	}, nil)
	if cl == nil {
		return err
	}

	fmt.Println()
	printExpenses(cl.ctrl.Screen().Snapshot())
	return err
}

func runExpensesAdd(cmd *cobra.Command, _ []string) error {
	cl, err := runOneShot(cmd, func(c *controller.Controller) {
		c.Screen().SetInput(screen.ExpAmount, flagAmount)
		c.Screen().SetInput(screen.ExpDate, flagDate)
		c.Screen().SetInput(screen.ExpCategory, flagCategory)
		c.Screen().SetInput(screen.ExpDesc, flagDesc)
	}, func(ctx context.Context, c *controller.Controller) error {
		return c.AddExpense(ctx)
	})
	if cl == nil || err != nil {
		return err
	}

	fmt.Println()
	printExpenses(cl.ctrl.Screen().Snapshot())
	return nil
}

func runExpensesDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", args[0], err)
	}

	cl, err := runOneShot(cmd, nil, func(ctx context.Context, c *controller.Controller) error {
		return c.DeleteTransaction(ctx, id)
	})
	if cl == nil || err != nil {
		return err
	}

	fmt.Println()
	printExpenses(cl.ctrl.Screen().Snapshot())
	return nil
}
