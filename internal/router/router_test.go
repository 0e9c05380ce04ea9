package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tributo/internal/domain"
	"tributo/internal/handler"
	"tributo/internal/router"
	"tributo/internal/service"
	"tributo/mocks"
)

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(authSvc service.AuthService, settlementSvc service.SettlementService) *gin.Engine {
	return router.Setup(
		authSvc,
		[]string{"http://localhost:3000"},
		handler.NewSettlementHandler(settlementSvc),
		handler.NewHealthHandler(okPinger{}),
	)
}

func TestRouter_TaxSummary(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	settlementSvc := new(mocks.MockSettlementService)
	tenantID := uuid.New()
	companyID := uuid.New()

	authSvc.On("ValidateToken", "good").Return(&service.Claims{
		TenantID: tenantID,
		UserID:   uuid.New(),
		Role:     domain.RoleMember,
	}, nil)
	settlementSvc.On("Summarize", mock.Anything, tenantID, companyID, "2024-03").
		Return(&domain.TaxPeriodSummary{CompanyID: companyID, MonthlyTax: decimal.NewFromInt(9625)}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/companies/"+companyID.String()+"/tax-summary?period=2024-03", http.NoBody)
	req.Header.Set("Authorization", "Bearer good")
	newEngine(authSvc, settlementSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Contains(t, w.Body.String(), `"monthly_tax":"9625"`)
	settlementSvc.AssertExpectations(t)
}

func TestRouter_TaxSummaryRequiresToken(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	settlementSvc := new(mocks.MockSettlementService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/companies/"+uuid.New().String()+"/tax-summary", http.NoBody)
	newEngine(authSvc, settlementSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	settlementSvc.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_Healthz(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	newEngine(new(mocks.MockAuthService), new(mocks.MockSettlementService)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
