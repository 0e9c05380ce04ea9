package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Company is a taxpayer owned by a tenant. Settlements are computed per company.
type Company struct {
	ID        uuid.UUID `db:"id" json:"id"`
	TenantID  uuid.UUID `db:"tenant_id" json:"tenant_id"`
	RUT       string    `db:"rut" json:"rut"`
	Name      string    `db:"name" json:"name"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// TaxDocument is one entry of the sales or purchase register (invoice,
// receipt, credit/debit note, import declaration). NetAmount is only
// meaningful on the sales side, so TotalAmount = NetAmount + TaxAmount does
// not hold for purchases.
type TaxDocument struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	CompanyID        uuid.UUID       `db:"company_id" json:"company_id"`
	Side             DocumentSide    `db:"side" json:"side"`
	DocumentTypeCode string          `db:"document_type_code" json:"document_type_code"`
	Folio            string          `db:"folio" json:"folio"`
	TotalAmount      decimal.Decimal `db:"total_amount" json:"total_amount"`
	TaxAmount        decimal.Decimal `db:"tax_amount" json:"tax_amount"`
	NetAmount        decimal.Decimal `db:"net_amount" json:"net_amount"`
	OverdueCredit    decimal.Decimal `db:"overdue_credit" json:"overdue_credit"`
	AccountingDate   time.Time       `db:"accounting_date" json:"accounting_date"`
}

// IsOverdue reports whether the document's IVA credit is time-barred.
func (d *TaxDocument) IsOverdue() bool {
	return d.OverdueCredit.IsPositive()
}

// WithholdingRecord is a fee receipt (boleta de honorarios) with the tax
// withheld on it.
type WithholdingRecord struct {
	ID              uuid.UUID            `db:"id" json:"id"`
	CompanyID       uuid.UUID            `db:"company_id" json:"company_id"`
	Direction       WithholdingDirection `db:"direction" json:"direction"`
	RetentionAmount decimal.Decimal      `db:"retention_amount" json:"retention_amount"`
	IssueDate       time.Time            `db:"issue_date" json:"issue_date"`
}

// F29Declaration is a locally generated monthly declaration. Drafts that
// were saved or paid carry the net IVA used as next month's credit.
type F29Declaration struct {
	ID        uuid.UUID         `db:"id" json:"id"`
	CompanyID uuid.UUID         `db:"company_id" json:"company_id"`
	Year      int               `db:"period_year" json:"year"`
	Month     int               `db:"period_month" json:"month"`
	Revision  int               `db:"revision" json:"revision"`
	Status    DeclarationStatus `db:"status" json:"status"`
	NetIVA    decimal.Decimal   `db:"net_iva" json:"net_iva"`
	CreatedAt time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt time.Time         `db:"updated_at" json:"updated_at"`
}

// F29Filing is a declaration downloaded from the tax authority.
type F29Filing struct {
	ID        uuid.UUID        `db:"id" json:"id"`
	CompanyID uuid.UUID        `db:"company_id" json:"company_id"`
	Year      int              `db:"period_year" json:"year"`
	Month     int              `db:"period_month" json:"month"`
	Folio     string           `db:"folio" json:"folio"`
	Status    string           `db:"status" json:"status"`
	Payload   StatutoryPayload `db:"payload" json:"payload"`
	FiledAt   *time.Time       `db:"filed_at" json:"filed_at,omitempty"`
	CreatedAt time.Time        `db:"created_at" json:"created_at"`
}

// TaxPeriodSummary is the settlement for one company and month. It is
// recomputed on every request and never stored.
type TaxPeriodSummary struct {
	ID                       string              `json:"id"`
	CompanyID                uuid.UUID           `json:"company_id"`
	PeriodStart              time.Time           `json:"period_start"`
	PeriodEnd                time.Time           `json:"period_end"`
	TotalRevenue             decimal.Decimal     `json:"total_revenue"`
	TotalExpenses            decimal.Decimal     `json:"total_expenses"`
	IVACollected             decimal.Decimal     `json:"iva_collected"`
	IVAPaid                  decimal.Decimal     `json:"iva_paid"`
	NetIVA                   decimal.Decimal     `json:"net_iva"`
	PreviousMonthCredit      decimal.NullDecimal `json:"previous_month_credit"`
	OverdueIVACredit         decimal.Decimal     `json:"overdue_iva_credit"`
	PPM                      decimal.NullDecimal `json:"ppm"`
	Retencion                decimal.NullDecimal `json:"retencion"`
	ReverseChargeWithholding decimal.NullDecimal `json:"reverse_charge_withholding"`
	MonthlyTax               decimal.Decimal     `json:"monthly_tax"`
	GeneratedDeclaration     *F29Declaration     `json:"generated_declaration"`
	FiledDeclaration         *F29Filing          `json:"filed_declaration"`
	CreatedAt                time.Time           `json:"created_at"`
	UpdatedAt                time.Time           `json:"updated_at"`
}
