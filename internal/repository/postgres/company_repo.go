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

type companyRepo struct {
	db *sqlx.DB
}

// NewCompanyRepo creates a new PostgreSQL-backed CompanyRepository.
func NewCompanyRepo(db *sqlx.DB) port.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) GetByID(ctx context.Context, tenantID, companyID uuid.UUID) (*domain.Company, error) {
	var company domain.Company
	query := r.db.Rebind(`SELECT id, tenant_id, rut, name, is_active, created_at, updated_at
		FROM companies WHERE id = ? AND tenant_id = ?`)
	err := r.db.GetContext(ctx, &company, query, companyID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, unavailable("companyRepo.GetByID", err)
	}
	return &company, nil
}

func (r *companyRepo) ListActive(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Company, error) {
	companies := []domain.Company{}
	query := r.db.Rebind(`SELECT id, tenant_id, rut, name, is_active, created_at, updated_at
		FROM companies WHERE tenant_id = ? AND is_active = ?
		ORDER BY rut LIMIT ? OFFSET ?`)
	if err := r.db.SelectContext(ctx, &companies, query, tenantID, true, limit, offset); err != nil {
		return nil, unavailable("companyRepo.ListActive", err)
	}
	return companies, nil
}
