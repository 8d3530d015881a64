package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ambunet/dispatch/internal/pkg/middleware"
	"github.com/ambunet/dispatch/internal/pkg/models"
	"github.com/ambunet/dispatch/services/account"
	httpHandler "github.com/ambunet/dispatch/services/account/handler/http"
)

// Handler combines all handlers for the account service
type Handler struct {
	accountHTTP *httpHandler.AccountHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(accountUC account.AccountUC, cfg *models.Config) *Handler {
	return &Handler{
		accountHTTP: httpHandler.NewAccountHandler(accountUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := e.Group("/api/auth")
	auth.POST("/register", h.accountHTTP.Register)
	auth.POST("/login", h.accountHTTP.Login)

	jwtAuth := middleware.JWTAuthMiddleware(h.cfg.JWT)
	orgs := e.Group("/api/organizations", jwtAuth, middleware.RequireRoles(models.RoleAdmin))
	orgs.GET("", h.accountHTTP.ListOrganizations)
	orgs.POST("", h.accountHTTP.AddOrganization)
}
