package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ambunet/dispatch/internal/pkg/logger"
	"github.com/ambunet/dispatch/internal/pkg/models"
	"github.com/ambunet/dispatch/internal/utils"
	"github.com/ambunet/dispatch/services/account"
)

// AccountHandler handles HTTP requests for the account service
type AccountHandler struct {
	accountUC account.AccountUC
}

// NewAccountHandler creates a new account HTTP handler
func NewAccountHandler(accountUC account.AccountUC) *AccountHandler {
	return &AccountHandler{
		accountUC: accountUC,
	}
}

// Register handles user registration
func (h *AccountHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	user, err := h.accountUC.Register(c.Request().Context(), req)
	if err != nil {
		logger.Error("Failed to register user",
			logger.String("email", req.Email),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", user)
}

// Login handles credential verification and token issuance
func (h *AccountHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	resp, err := h.accountUC.Login(c.Request().Context(), req)
	if err != nil {
		logger.Warn("Failed login attempt",
			logger.String("email", req.Email),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// AddOrganization handles corporate partner registration
func (h *AccountHandler) AddOrganization(c echo.Context) error {
	var req models.AddOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	org, err := h.accountUC.AddOrganization(c.Request().Context(), req)
	if err != nil {
		logger.Error("Failed to add organization",
			logger.String("email_domain", req.EmailDomain),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Organization added successfully", org)
}

// ListOrganizations handles the partner listing
func (h *AccountHandler) ListOrganizations(c echo.Context) error {
	orgs, err := h.accountUC.ListOrganizations(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list organizations", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Organizations retrieved successfully", orgs)
}
