package router

import (
	"github.com/gin-gonic/gin"

	"tributo/internal/domain"
	"tributo/internal/handler"
	"tributo/internal/middleware"
	"tributo/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	allowedOrigins []string,
	settlementH *handler.SettlementHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))
	protected.Use(middleware.RequireRole(domain.RoleAdmin, domain.RoleMember, domain.RoleViewer))

	companies := protected.Group("/companies")
	companies.GET("/:company_id/tax-summary", settlementH.GetTaxSummary)

	return r
}
