package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/config"
	"github.com/ledgerlens/ledgerlens/internal/ingest"
	"github.com/ledgerlens/ledgerlens/internal/loader"
	"github.com/ledgerlens/ledgerlens/internal/logger"
	"github.com/ledgerlens/ledgerlens/internal/model"
	"github.com/ledgerlens/ledgerlens/internal/recon"
)

type reconcileFlags struct {
	bankPath      string
	bookPath      string
	scope         string
	start         string
	end           string
	statementDate string
	defaultDate   string
	configPath    string
	jsonOut       bool
}

func newReconcileCommand() *cobra.Command {
	var flags reconcileFlags

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Reconcile a bank statement CSV against a book export CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcile(flags)
		},
	}

	cmd.Flags().StringVar(&flags.bankPath, "bank", "", "bank statement CSV (required)")
	cmd.Flags().StringVar(&flags.bookPath, "book", "", "book/general-ledger CSV (required)")
	_ = cmd.MarkFlagRequired("bank")
	_ = cmd.MarkFlagRequired("book")
	cmd.Flags().StringVar(&flags.scope, "scope", "", "book account scope (default: auto)")
	cmd.Flags().StringVar(&flags.start, "start", "", "statement start date YYYY-MM-DD")
	cmd.Flags().StringVar(&flags.end, "end", "", "statement end date YYYY-MM-DD")
	cmd.Flags().StringVar(&flags.statementDate, "statement-date", "", "statement date, used as window end")
	cmd.Flags().StringVar(&flags.defaultDate, "default-date", "", "fallback for unparseable row dates")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to ledgerlens.yaml")
	cmd.Flags().BoolVar(&flags.jsonOut, "json", false, "emit the full result as JSON")

	return cmd
}

func runReconcile(flags reconcileFlags) error {
	log := logger.New().With().Str("run_id", uuid.NewString()).Logger()
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}

	opts := ingest.Options{
		DefaultDate: firstNonEmpty(flags.defaultDate, cfg.Defaults.DefaultDate),
		MaxRows:     cfg.Limits.MaxRows,
	}

	bankTable, err := loader.ReadFile(flags.bankPath)
	if err != nil {
		return err
	}
	bookTable, err := loader.ReadFile(flags.bookPath)
	if err != nil {
		return err
	}

	bankRes, err := ingest.ParseBankRows(bankTable.Headers, bankTable.Rows, nil, opts)
	if err != nil {
		return describeInputError("bank", err)
	}
	logParse(log, "bank", bankRes.Warnings, bankRes.Stats)

	bookRes, err := ingest.ParseBookRows(bookTable.Headers, bookTable.Rows, nil, opts)
	if err != nil {
		return describeInputError("book", err)
	}
	logParse(log, "book", bookRes.Warnings, bookRes.Stats)

	result := recon.Reconcile(bankRes.Rows, bookRes.Transactions, recon.Options{
		BookAccountScope:   firstNonEmpty(flags.scope, cfg.Defaults.BookAccountScope),
		StatementStartDate: flags.start,
		StatementEndDate:   flags.end,
		StatementDate:      flags.statementDate,
	})

	log.Info().
		Int("matched", len(result.Matched)).
		Int("mismatched", len(result.AmountMismatched)).
		Int("bank_only", len(result.BankOnly)).
		Int("book_only", len(result.BookOnly)).
		Int("score", result.Quality.ReliabilityScore).
		Str("verdict", result.Quality.Verdict).
		Msg("reconciliation complete")

	if flags.jsonOut || cfg.Output.JSON {
		return writeJSON(result)
	}
	printReconciliation(result)
	return nil
}

// loadConfig resolves the project config. An explicitly requested path
// must load; the implicit ledgerlens.yaml lookup falls back to defaults
// only when the file does not exist.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.DefaultFileName
		if _, err := os.Stat(path); err != nil {
			return config.Default(""), nil
		}
	}
	return config.Load(path)
}

func logParse(log zerolog.Logger, side string, warnings []string, stats ingest.Stats) {
	log.Info().
		Str("side", side).
		Int("source_rows", stats.SourceRows).
		Int("parsed_rows", stats.ParsedRows).
		Int("dropped_rows", stats.DroppedRows).
		Float64("reference_coverage", stats.ReferenceCoverage).
		Msg("parsed input")
	for _, w := range warnings {
		log.Warn().Str("side", side).Msg(w)
	}
}

func describeInputError(side string, err error) error {
	var ierr *ingest.InputError
	if errors.As(err, &ierr) {
		return fmt.Errorf("%s input rejected (%s): %s", side, ierr.Code, ierr.Message)
	}
	return err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printReconciliation(r *model.ReconciliationResult) {
	fmt.Printf("Statement window: %s to %s\n", r.StatementStartDate, r.StatementEndDate)
	fmt.Printf("Bank closing balance:  %s\n", r.BankClosingBalance.StringFixed(2))
	fmt.Printf("Book closing balance:  %s\n", r.BookClosingBalance.StringFixed(2))
	fmt.Printf("Adjusted bank balance: %s\n", r.AdjustedBankBalance.StringFixed(2))
	fmt.Printf("Adjusted book balance: %s\n", r.AdjustedBookBalance.StringFixed(2))
	fmt.Printf("Difference:            %s\n", r.Difference.StringFixed(2))
	fmt.Printf("Reconciled:            %v\n", r.IsReconciled)
	fmt.Println()
	fmt.Printf("Matched:           %d (reference %d, amount+date %d)\n",
		len(r.Matched), r.Quality.ReferenceMatched, r.Quality.AmountDateMatched)
	fmt.Printf("Amount mismatches: %d\n", len(r.AmountMismatched))
	fmt.Printf("Bank only:         %d (charges %s, credits %s)\n",
		len(r.BankOnly), r.BankChargesTotal.StringFixed(2), r.BankCreditsTotal.StringFixed(2))
	fmt.Printf("Book only:         %d (in transit %s, outstanding %s)\n",
		len(r.BookOnly), r.DepositsInTransitTotal.StringFixed(2), r.OutstandingChequesTotal.StringFixed(2))
	fmt.Printf("Reliability:       %d/100 (%s)\n", r.Quality.ReliabilityScore, r.Quality.Verdict)
	for _, n := range r.Notes {
		fmt.Printf("Note: %s\n", n)
	}
}
