package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"tributo/internal/domain"
	"tributo/internal/port"
)

const declarationColumns = `id, company_id, period_year, period_month, revision, status, net_iva,
	created_at, updated_at`

type declarationRepo struct {
	db *sqlx.DB
}

// NewDeclarationRepo creates a new PostgreSQL-backed DeclarationStore over the
// f29_declarations and f29_filings tables.
func NewDeclarationRepo(db *sqlx.DB) port.DeclarationStore {
	return &declarationRepo{db: db}
}

func (r *declarationRepo) GetDraftDeclaration(ctx context.Context, companyID uuid.UUID, year, month int, statuses []domain.DeclarationStatus) (*domain.F29Declaration, error) {
	if len(statuses) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`SELECT `+declarationColumns+` FROM f29_declarations
		WHERE company_id = ? AND period_year = ? AND period_month = ? AND status IN (?)
		ORDER BY revision DESC, updated_at DESC
		LIMIT 1`, companyID, year, month, statuses)
	if err != nil {
		return nil, unavailable("declarationRepo.GetDraftDeclaration", err)
	}

	var decl domain.F29Declaration
	if err := r.db.GetContext(ctx, &decl, r.db.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, unavailable("declarationRepo.GetDraftDeclaration", err)
	}
	return &decl, nil
}

func (r *declarationRepo) GetFiledDeclaration(ctx context.Context, companyID uuid.UUID, year, month int, status string) (*domain.F29Filing, error) {
	query := r.db.Rebind(`SELECT id, company_id, period_year, period_month, folio, status, payload, filed_at, created_at
		FROM f29_filings
		WHERE company_id = ? AND period_year = ? AND period_month = ? AND status = ?
		ORDER BY COALESCE(filed_at, created_at) DESC
		LIMIT 1`)

	var filing domain.F29Filing
	if err := r.db.GetContext(ctx, &filing, query, companyID, year, month, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, unavailable("declarationRepo.GetFiledDeclaration", err)
	}
	return &filing, nil
}

func (r *declarationRepo) GetLatestGeneratedDeclaration(ctx context.Context, companyID uuid.UUID, year, month int) (*domain.F29Declaration, error) {
	query := r.db.Rebind(`SELECT ` + declarationColumns + ` FROM f29_declarations
		WHERE company_id = ? AND period_year = ? AND period_month = ? AND status <> ?
		ORDER BY revision DESC, created_at DESC
		LIMIT 1`)

	var decl domain.F29Declaration
	if err := r.db.GetContext(ctx, &decl, query, companyID, year, month, domain.DeclarationCancelled); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, unavailable("declarationRepo.GetLatestGeneratedDeclaration", err)
	}
	return &decl, nil
}
