package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Tanishkag23/xpense/internal/screen"

	"github.com/spf13/cobra"
)

var flagFormat string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Income, spending and balance report with spending by category",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&flagFormat, "format", "f", "table", "Output format: table, csv or json")
	rootCmd.AddCommand(reportCmd)
}

type reportCategory struct {
	Category string  `json:"category"`
	Total    string  `json:"total"`
	Share    float64 `json:"share"`
}

type report struct {
	Income     string           `json:"income"`
	Expenses   string           `json:"expenses"`
	Balance    string           `json:"balance"`
	ByCategory []reportCategory `json:"byCategory"`
}

// reportFrom reads the report regions. Amounts stay as rendered (two
// decimals); share is relative to the largest category.
func reportFrom(snap screen.Snapshot) report {
	r := report{
		Income:     snap.Text[screen.RIncome],
		Expenses:   snap.Text[screen.RExpense],
		Balance:    snap.Text[screen.RBalance],
		ByCategory: []reportCategory{},
	}
	for _, row := range snap.Tables[screen.ReportBody] {
		if len(row.Cells) < 2 {
			continue
		}
		r.ByCategory = append(r.ByCategory, reportCategory{
			Category: row.Cells[0],
			Total:    row.Cells[1],
			Share:    row.Weight,
		})
	}
	return r
}

func writeReportJSON(w io.Writer, r report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func writeReportCSV(w io.Writer, r report) error {
	cw := csv.NewWriter(w)
	records := [][]string{
		{"section", "name", "amount"},
		{"total", "income", r.Income},
		{"total", "expenses", r.Expenses},
		{"total", "balance", r.Balance},
	}
	for _, c := range r.ByCategory {
		records = append(records, []string{"category", c.Category, c.Total})
	}
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

func runReport(cmd *cobra.Command, _ []string) error {
	switch flagFormat {
	case "table", "csv", "json":
	default:
		return fmt.Errorf("unknown format %q (want table, csv or json)", flagFormat)
	}

	cl, err := runOneShot(cmd, nil, nil)
	if cl == nil {
		return err
	}
	snap := cl.ctrl.Screen().Snapshot()

	switch flagFormat {
	case "csv":
		if werr := writeReportCSV(os.Stdout, reportFrom(snap)); werr != nil {
			return werr
		}
	case "json":
		if werr := writeReportJSON(os.Stdout, reportFrom(snap)); werr != nil {
			return werr
		}
	default:
		fmt.Println()
		printReport(snap)
	}
	return err
}
