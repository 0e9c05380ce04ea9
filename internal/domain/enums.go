package domain

// UserRole defines the role hierarchy within a tenant.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
	RoleViewer UserRole = "viewer"
)

// DocumentSide tells whether a tax document belongs to the sales or the
// purchase register.
type DocumentSide string

const (
	SideSale     DocumentSide = "sale"
	SidePurchase DocumentSide = "purchase"
)

// ReverseChargeTypeCode is the purchase document type (factura de compra)
// whose IVA the buyer withholds and pays.
const ReverseChargeTypeCode = "46"

// WithholdingDirection distinguishes fee receipts received by the company
// from the ones it issued.
type WithholdingDirection string

const (
	WithholdingReceived WithholdingDirection = "received"
	WithholdingIssued   WithholdingDirection = "issued"
)

// DeclarationStatus is the lifecycle of a locally generated F29.
type DeclarationStatus string

const (
	DeclarationDraft     DeclarationStatus = "draft"
	DeclarationSaved     DeclarationStatus = "saved"
	DeclarationPaid      DeclarationStatus = "paid"
	DeclarationCancelled DeclarationStatus = "cancelled"
)

// FilingStatusCurrent marks the authority-filed F29 that is in force for a
// period. Rectified forms carry other statuses and are ignored.
const FilingStatusCurrent = "Vigente"
