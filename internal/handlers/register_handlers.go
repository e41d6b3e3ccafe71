package handlers

import (
	"net/http"

	"github.com/SscSPs/personal_ledger_app/cmd/docs"
	portssvc "github.com/SscSPs/personal_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/personal_ledger_app/internal/middleware"
	"github.com/SscSPs/personal_ledger_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// loginGuard is applied to the authentication route only, typically a rate limiter.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	loginGuard gin.HandlerFunc,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if loginGuard == nil {
		loginGuard = func(c *gin.Context) { c.Next() }
	}
	userHandler := newUserHandler(services.User, services.LedgerEntry, services.TokenService)

	// Registration and authentication are public
	public := r.Group("/api/v1")
	registerUserAuthRoutes(public, userHandler, loginGuard)

	setupAPIV1Routes(r, cfg, services, userHandler)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated part of /api/v1
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	userHandler *userHandler,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, userHandler)
	registerLedgerEntryRoutes(v1, services.LedgerEntry)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
