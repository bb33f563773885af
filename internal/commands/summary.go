package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/ingest"
	"github.com/ledgerlens/ledgerlens/internal/loader"
	"github.com/ledgerlens/ledgerlens/internal/model"
	"github.com/ledgerlens/ledgerlens/internal/summary"
)

func newSummaryCommand() *cobra.Command {
	var bookPath string
	var configPath string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Generate a P&L, balance sheet and cash flow from a book export",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(bookPath, configPath, jsonOut)
		},
	}

	cmd.Flags().StringVar(&bookPath, "book", "", "book/general-ledger CSV (required)")
	_ = cmd.MarkFlagRequired("book")
	cmd.Flags().StringVar(&configPath, "config", "", "path to ledgerlens.yaml")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the summary as JSON")

	return cmd
}

func runSummary(bookPath, configPath string, jsonOut bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	table, err := loader.ReadFile(bookPath)
	if err != nil {
		return err
	}

	res, err := ingest.ParseBookRows(table.Headers, table.Rows, nil, ingest.Options{
		DefaultDate: cfg.Defaults.DefaultDate,
		MaxRows:     cfg.Limits.MaxRows,
	})
	if err != nil {
		return describeInputError("book", err)
	}

	s := summary.Generate(res.Transactions)
	if jsonOut || cfg.Output.JSON {
		return writeJSON(s)
	}
	printSummary(s)
	return nil
}

func printSummary(s *model.FinancialSummary) {
	fmt.Println("Profit & Loss")
	fmt.Printf("  Revenue:            %s\n", s.ProfitAndLoss.Revenue.StringFixed(2))
	fmt.Printf("  Cost of goods sold: %s\n", s.ProfitAndLoss.CostOfGoodsSold.StringFixed(2))
	fmt.Printf("  Gross profit:       %s\n", s.ProfitAndLoss.GrossProfit.StringFixed(2))
	fmt.Printf("  Operating expense:  %s\n", s.ProfitAndLoss.OperatingExpense.StringFixed(2))
	fmt.Printf("  Other income:       %s\n", s.ProfitAndLoss.OtherIncome.StringFixed(2))
	fmt.Printf("  Other expense:      %s\n", s.ProfitAndLoss.OtherExpense.StringFixed(2))
	fmt.Printf("  Tax:                %s\n", s.ProfitAndLoss.Tax.StringFixed(2))
	fmt.Printf("  Net income:         %s\n", s.ProfitAndLoss.NetIncome.StringFixed(2))
	fmt.Println("Balance Sheet")
	fmt.Printf("  Total assets:       %s\n", s.BalanceSheet.TotalAssets.StringFixed(2))
	fmt.Printf("  Total liabilities:  %s\n", s.BalanceSheet.TotalLiabilities.StringFixed(2))
	fmt.Printf("  Equity:             %s\n", s.BalanceSheet.Equity.StringFixed(2))
	fmt.Printf("  Balanced:           %v\n", s.BalanceSheet.IsBalanced)
	fmt.Println("Cash Flow")
	fmt.Printf("  Operating:          %s\n", s.CashFlow.Operating.StringFixed(2))
	fmt.Printf("  Investing:          %s\n", s.CashFlow.Investing.StringFixed(2))
	fmt.Printf("  Financing:          %s\n", s.CashFlow.Financing.StringFixed(2))
	fmt.Printf("  Net:                %s\n", s.CashFlow.Net.StringFixed(2))
	for _, w := range s.Warnings {
		fmt.Printf("Warning: %s\n", w)
	}
}
