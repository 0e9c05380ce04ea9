package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"tributo/internal/csvexport"
	"tributo/internal/domain"
	"tributo/internal/logger"
	"tributo/internal/repository/postgres"
	"tributo/internal/service"
)

func newSettleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settle",
		Short: "Compute IVA settlements and print them as JSON lines",
		Long: `Compute the monthly IVA settlement for one company, or for every active
company of a tenant, and write them to stdout as JSON lines or CSV.

Nothing is persisted; the command reads the same tables as the API.`,
		Example: `  # Current month for a single company
  tributoctl settle --tenant 7b0c... --company 1f2e...

  # May 2024 for every active company of the tenant
  tributoctl settle --tenant 7b0c... --period 2024-05

  # All-time totals as a spreadsheet
  tributoctl settle --tenant 7b0c... --period all --format csv --bom > totals.csv`,
		RunE: runSettle,
	}

	cmd.Flags().String("tenant", "", "Tenant ID (required)")
	cmd.Flags().String("company", "", "Company ID; omit to settle every active company")
	cmd.Flags().String("period", "", "Period as YYYY-MM, or \"all\" (default: current month)")
	cmd.Flags().Int("batch-size", 100, "Companies fetched per page")
	cmd.Flags().String("format", "json", "Output format: json or csv")
	cmd.Flags().Bool("bom", false, "Prefix CSV output with a UTF-8 BOM for Excel")
	_ = cmd.MarkFlagRequired("tenant")
	return cmd
}

func runSettle(cmd *cobra.Command, args []string) error {
	l := logger.WithComponent("settle")

	tenantFlag, _ := cmd.Flags().GetString("tenant")
	companyFlag, _ := cmd.Flags().GetString("company")
	period, _ := cmd.Flags().GetString("period")
	batchSize, _ := cmd.Flags().GetInt("batch-size")
	format, _ := cmd.Flags().GetString("format")
	bom, _ := cmd.Flags().GetBool("bom")

	tenantID, err := uuid.Parse(tenantFlag)
	if err != nil {
		return fmt.Errorf("invalid --tenant: %w", err)
	}
	if batchSize <= 0 {
		return fmt.Errorf("batch size must be positive")
	}
	if format != "json" && format != "csv" {
		return fmt.Errorf("invalid --format %q", format)
	}

	loc, err := cfg.Settlement.Location()
	if err != nil {
		return err
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	companyRepo := postgres.NewCompanyRepo(db)
	settlements := service.NewSettlementService(companyRepo,
		postgres.NewDocumentRepo(db),
		postgres.NewDeclarationRepo(db),
		service.SettlementOptions{Location: loc, QueryTimeout: cfg.Settlement.QueryTimeout})

	emit, finish, err := summaryWriter(cmd.OutOrStdout(), format, bom)
	if err != nil {
		return err
	}
	defer func() { _ = finish() }()
	ctx := cmd.Context()

	if companyFlag != "" {
		companyID, err := uuid.Parse(companyFlag)
		if err != nil {
			return fmt.Errorf("invalid --company: %w", err)
		}
		summary, err := settlements.Summarize(ctx, tenantID, companyID, period)
		if err != nil {
			return err
		}
		if err := emit(summary); err != nil {
			return err
		}
		return finish()
	}

	l.Info().
		Str("tenant_id", tenantID.String()).
		Str("period", period).
		Int("batch_size", batchSize).
		Msg("settling tenant")

	result, err := service.NewTenantSettler(companyRepo, settlements, batchSize).
		SettleAll(ctx, tenantID, period, emit)
	if err != nil {
		return err
	}
	if err := finish(); err != nil {
		return err
	}
	if result.Failed > 0 {
		return fmt.Errorf("%d of %d companies failed to settle", result.Failed, result.Failed+result.Settled+result.Skipped)
	}
	return nil
}

// summaryWriter returns an emit function for the chosen format and a finish
// function that flushes buffered output. finish is safe to call twice.
func summaryWriter(out io.Writer, format string, bom bool) (emit func(*domain.TaxPeriodSummary) error, finish func() error, err error) {
	if format == "json" {
		enc := json.NewEncoder(out)
		emit = func(s *domain.TaxPeriodSummary) error { return enc.Encode(s) }
		return emit, func() error { return nil }, nil
	}

	if bom {
		if _, err := out.Write(csvexport.BOM); err != nil {
			return nil, nil, err
		}
	}
	w := csvexport.NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return nil, nil, err
	}
	finish = func() error {
		w.Flush()
		return w.Error()
	}
	return w.WriteSummary, finish, nil
}
