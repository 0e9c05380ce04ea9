package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tributo/internal/domain"
	"tributo/internal/handler"
	"tributo/internal/middleware"
	"tributo/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setAuthContext(c *gin.Context, tenantID, userID uuid.UUID, role string) {
	c.Set(middleware.ContextKeyTenantID, tenantID)
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyRole, role)
	c.Set(middleware.ContextKeyEmail, "user@test.com")
}

func newSettlementHandler() (*handler.SettlementHandler, *mocks.MockSettlementService) {
	mockSvc := new(mocks.MockSettlementService)
	return handler.NewSettlementHandler(mockSvc), mockSvc
}

func taxSummaryRequest(c *gin.Context, companyID, query string) {
	url := "/api/v1/companies/" + companyID + "/tax-summary"
	if query != "" {
		url += "?" + query
	}
	c.Request, _ = http.NewRequest(http.MethodGet, url, http.NoBody)
	c.Params = gin.Params{{Key: "company_id", Value: companyID}}
}

func TestSettlementHandler_GetTaxSummary_Success(t *testing.T) {
	h, mockSvc := newSettlementHandler()
	tenantID := uuid.New()
	companyID := uuid.New()

	summary := &domain.TaxPeriodSummary{
		ID:         fmt.Sprintf("%s-2024-03", companyID),
		CompanyID:  companyID,
		MonthlyTax: decimal.NewFromInt(9625),
		PPM:        decimal.NewNullDecimal(decimal.NewFromInt(125)),
	}
	mockSvc.On("Summarize", mock.Anything, tenantID, companyID, "2024-03").Return(summary, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	taxSummaryRequest(c, companyID.String(), "period=2024-03")
	setAuthContext(c, tenantID, uuid.New(), "member")

	h.GetTaxSummary(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, summary.ID, resp.Data["id"])
	assert.Equal(t, "9625", resp.Data["monthly_tax"])
	assert.Equal(t, "125", resp.Data["ppm"])
	assert.Nil(t, resp.Data["previous_month_credit"])
	mockSvc.AssertExpectations(t)
}

func TestSettlementHandler_GetTaxSummary_DefaultPeriod(t *testing.T) {
	h, mockSvc := newSettlementHandler()
	tenantID := uuid.New()
	companyID := uuid.New()

	mockSvc.On("Summarize", mock.Anything, tenantID, companyID, "").Return(&domain.TaxPeriodSummary{CompanyID: companyID}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	taxSummaryRequest(c, companyID.String(), "")
	setAuthContext(c, tenantID, uuid.New(), "viewer")

	h.GetTaxSummary(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestSettlementHandler_GetTaxSummary_InvalidCompanyID(t *testing.T) {
	h, mockSvc := newSettlementHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	taxSummaryRequest(c, "not-a-uuid", "period=2024-03")
	setAuthContext(c, uuid.New(), uuid.New(), "member")

	h.GetTaxSummary(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSettlementHandler_GetTaxSummary_MissingAuth(t *testing.T) {
	h, mockSvc := newSettlementHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	taxSummaryRequest(c, uuid.New().String(), "")

	h.GetTaxSummary(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockSvc.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSettlementHandler_GetTaxSummary_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid period", fmt.Errorf("%w: month must be 01-12", domain.ErrInvalidPeriod), http.StatusBadRequest, "INVALID_PERIOD"},
		{"company not found", domain.ErrCompanyNotFound, http.StatusNotFound, "COMPANY_NOT_FOUND"},
		{"data unavailable", fmt.Errorf("settlement.Summarize: %w: connection reset", domain.ErrDataUnavailable), http.StatusServiceUnavailable, "DATA_UNAVAILABLE"},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mockSvc := newSettlementHandler()
			tenantID := uuid.New()
			companyID := uuid.New()
			mockSvc.On("Summarize", mock.Anything, tenantID, companyID, "2024-13").Return(nil, tt.err)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			taxSummaryRequest(c, companyID.String(), "period=2024-13")
			setAuthContext(c, tenantID, uuid.New(), "member")

			h.GetTaxSummary(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp handler.APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Nil(t, resp.Data)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}
