package handlers

import (
	"net/http"

	"github.com/SscSPs/bank_portal/cmd/docs"
	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
	"github.com/SscSPs/bank_portal/internal/middleware"
	"github.com/SscSPs/bank_portal/internal/platform/config"
	"github.com/SscSPs/bank_portal/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Setup API v1 routes with the session middleware
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (non-production only)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.SessionAuth(cfg.JWTSecret, service.Session))

	registerHomeRoutes(v1, service.Navigation, service.Dashboard)
	registerAccountRoutes(v1, service.Account, service.History)
	registerTransferRoutes(v1, service.Transfer)
	registerTransactionRoutes(v1, service.History, service.Approval)
	registerInterestRoutes(v1, service.Interest)
	registerDecoratorRoutes(v1, service.Decorator)
	registerGroupRoutes(v1, service.Group)
	registerUserRoutes(v1, service.User)
	registerNotificationRoutes(v1, service.Notification)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
