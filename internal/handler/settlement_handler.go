package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tributo/internal/service"
)

// SettlementHandler handles tax settlement endpoints.
type SettlementHandler struct {
	settlementService service.SettlementService
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(settlementService service.SettlementService) *SettlementHandler {
	return &SettlementHandler{settlementService: settlementService}
}

// GetTaxSummary handles GET /api/v1/companies/:company_id/tax-summary
// @Summary Get the monthly IVA settlement
// @Description Computes the F29 settlement for a company from its sales and purchase registers, fee receipts, reverse-charge purchases and the credit carried from the previous month. Nothing is stored; every call recomputes the summary.
// @Tags settlement
// @Produce json
// @Param company_id path string true "Company ID"
// @Param period query string false "Month as YYYY-MM, or all. Defaults to the current month."
// @Success 200 {object} Response{data=domain.TaxPeriodSummary} "Settlement"
// @Failure 400 {object} ErrorResponseBody "Invalid company id or period"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Company not found"
// @Failure 503 {object} ErrorResponseBody "Tax records unavailable"
// @Security BearerAuth
// @Router /companies/{company_id}/tax-summary [get]
func (h *SettlementHandler) GetTaxSummary(c *gin.Context) {
	tenantID, ok := extractTenantID(c)
	if !ok {
		return
	}

	companyID, err := uuid.Parse(c.Param("company_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid company ID")
		return
	}

	summary, err := h.settlementService.Summarize(c.Request.Context(), tenantID, companyID, c.Query("period"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, summary)
}
