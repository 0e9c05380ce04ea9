package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"tributo/internal/domain"
	"tributo/internal/port"
)

const documentColumns = `id, company_id, side, document_type_code, folio, total_amount, tax_amount,
	net_amount, overdue_credit, accounting_date`

type documentRepo struct {
	db *sqlx.DB
}

// NewDocumentRepo creates a new PostgreSQL-backed DocumentStore over the
// tax_documents and fee_receipts tables.
func NewDocumentRepo(db *sqlx.DB) port.DocumentStore {
	return &documentRepo{db: db}
}

func (r *documentRepo) QueryDocuments(ctx context.Context, companyID uuid.UUID, side domain.DocumentSide, codes []string, window *domain.Window) ([]domain.TaxDocument, error) {
	docs := []domain.TaxDocument{}
	if len(codes) == 0 {
		return docs, nil
	}

	where, windowArgs := windowClause("accounting_date", window)
	query, args, err := sqlx.In(`SELECT `+documentColumns+` FROM tax_documents
		WHERE company_id = ? AND side = ? AND document_type_code IN (?)`+where+`
		ORDER BY accounting_date, folio`,
		append([]interface{}{companyID, side, codes}, windowArgs...)...)
	if err != nil {
		return nil, unavailable("documentRepo.QueryDocuments", err)
	}

	if err := r.db.SelectContext(ctx, &docs, r.db.Rebind(query), args...); err != nil {
		return nil, unavailable("documentRepo.QueryDocuments", err)
	}
	return docs, nil
}

func (r *documentRepo) QueryWithholdings(ctx context.Context, companyID uuid.UUID, direction domain.WithholdingDirection, window *domain.Window) ([]domain.WithholdingRecord, error) {
	where, windowArgs := windowClause("issue_date", window)
	query := r.db.Rebind(`SELECT id, company_id, direction, retention_amount, issue_date
		FROM fee_receipts WHERE company_id = ? AND direction = ?` + where + `
		ORDER BY issue_date`)

	records := []domain.WithholdingRecord{}
	args := append([]interface{}{companyID, direction}, windowArgs...)
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, unavailable("documentRepo.QueryWithholdings", err)
	}
	return records, nil
}

func (r *documentRepo) QueryReverseCharge(ctx context.Context, companyID uuid.UUID, window *domain.Window) ([]domain.TaxDocument, error) {
	where, windowArgs := windowClause("accounting_date", window)
	query := r.db.Rebind(`SELECT ` + documentColumns + ` FROM tax_documents
		WHERE company_id = ? AND side = ? AND document_type_code = ?` + where + `
		ORDER BY accounting_date, folio`)

	docs := []domain.TaxDocument{}
	args := append([]interface{}{companyID, domain.SidePurchase, domain.ReverseChargeTypeCode}, windowArgs...)
	if err := r.db.SelectContext(ctx, &docs, query, args...); err != nil {
		return nil, unavailable("documentRepo.QueryReverseCharge", err)
	}
	return docs, nil
}
