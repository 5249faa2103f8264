package cmd

import (
	"fmt"

	"github.com/Tanishkag23/xpense/internal/cli"
	"github.com/Tanishkag23/xpense/internal/controller"
	"github.com/Tanishkag23/xpense/internal/screen"
	"github.com/Tanishkag23/xpense/internal/session"
)

const barWidth = 20

func greetingLine(ctrl *controller.Controller) string {
	st := ctrl.State()
	p := session.Project(st)
	line := "  " + p.Greeting + cli.RenderMuted("  ("+st.Kind.String()+")")
	if p.PanelVisible {
		line += "\n" + cli.RenderMuted("  Run `xpense login` to sign in with your own account.")
	}
	return line
}

func cellsOf(rows []screen.Row) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = r.Cells
	}
	return out
}

// withBars appends a share bar column built from each row's weight.
func withBars(rows []screen.Row) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		cells := make([]string, 0, len(r.Cells)+1)
		cells = append(cells, r.Cells...)
		out[i] = append(cells, cli.RenderBar(r.Weight, barWidth))
	}
	return out
}

func printTotals(snap screen.Snapshot, income, expenses, balance screen.ElementID) {
	fmt.Print(cli.RenderKeyValues([][2]string{
		{"Income", orDash(snap.Text[income])},
		{"Expenses", orDash(snap.Text[expenses])},
		{"Balance", orDash(snap.Text[balance])},
	}))
	fmt.Println()
}

func printDashboard(snap screen.Snapshot) {
	fmt.Println(cli.RenderTitle("DASHBOARD"))
	fmt.Println()
	printTotals(snap, screen.IncomeBox, screen.ExpenseBox, screen.BalanceBox)
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "By Category",
		Headers: []string{"Category", "Total"},
		Rows:    cellsOf(snap.Tables[screen.ByCategoryBody]),
		Empty:   "No spending yet.",
	}))
}

func printExpenses(snap screen.Snapshot) {
	fmt.Print(cli.RenderTable(cli.Table{
		Title:      "Expenses",
		Headers:    []string{"ID", "Amount", "Date", "Category", "Description"},
		Rows:       cellsOf(snap.Tables[screen.ExpensesBody]),
		RightAlign: []bool{true, true, false, false, false},
		Empty:      "No expenses match.",
	}))
}

func printBudgets(snap screen.Snapshot) {
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Monthly Budgets",
		Headers: []string{"Category", "Budget"},
		Rows:    cellsOf(snap.Tables[screen.BudgetsBody]),
		Empty:   "No budgets set.",
	}))
}

func printReport(snap screen.Snapshot) {
	fmt.Println(cli.RenderTitle("REPORT"))
	fmt.Println()
	printTotals(snap, screen.RIncome, screen.RExpense, screen.RBalance)
	fmt.Print(cli.RenderTable(cli.Table{
		Title:      "Spending by Category",
		Headers:    []string{"Category", "Total", "Share"},
		Rows:       withBars(snap.Tables[screen.ReportBody]),
		RightAlign: []bool{false, true, false},
		Empty:      "No spending yet.",
	}))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
