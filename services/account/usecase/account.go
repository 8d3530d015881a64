package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ambunet/dispatch/internal/pkg/apperrors"
	jwtpkg "github.com/ambunet/dispatch/internal/pkg/jwt"
	"github.com/ambunet/dispatch/internal/pkg/logger"
	"github.com/ambunet/dispatch/internal/pkg/models"
	"github.com/ambunet/dispatch/services/account"
)

// accountUC implements the account.AccountUC interface
type accountUC struct {
	cfg  *models.Config
	repo account.AccountRepo
}

// NewAccountUC creates a new account use case
func NewAccountUC(cfg *models.Config, repo account.AccountRepo) (account.AccountUC, error) {
	return &accountUC{
		cfg:  cfg,
		repo: repo,
	}, nil
}

var validRoles = map[string]bool{
	models.RoleUser:     true,
	models.RoleDriver:   true,
	models.RoleProvider: true,
	models.RoleAdmin:    true,
}

// Register creates an account. The email domain is matched against
// the registered organizations to auto-assign the corporate discount
// tier; unmatched domains simply get no organization.
func (uc *accountUC) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		return nil, apperrors.InvalidInput("full_name, email and password are required")
	}
	if req.Role == "" {
		req.Role = models.RoleUser
	}
	if !validRoles[req.Role] {
		return nil, apperrors.InvalidInput("unknown role %s", req.Role)
	}
	if req.Role == models.RoleDriver && req.LicenseNo == "" {
		return nil, apperrors.InvalidInput("license_no is required for drivers")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return nil, apperrors.InvalidInput("invalid email %s", req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.StoreFailure("hash password", err)
	}

	user := &models.User{
		FullName:     req.FullName,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Role:         req.Role,
	}

	org, err := uc.repo.GetOrganizationByDomain(ctx, email[at+1:])
	switch {
	case err == nil:
		user.OrgID = &org.ID
	case apperrors.IsNotFound(err):
		// no corporate partner for this domain
	default:
		return nil, err
	}

	if err := uc.repo.CreateUser(ctx, user, req.LicenseNo); err != nil {
		return nil, err
	}

	logger.Info("Registered user",
		logger.String("user_id", user.ID.String()),
		logger.String("role", user.Role))

	return user, nil
}

// Login verifies credentials and issues a signed token carrying the
// user's identity and role.
func (uc *accountUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.InvalidInput("email and password are required")
	}

	user, err := uc.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.InvalidInput("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.InvalidInput("invalid credentials")
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, user.Role, uc.cfg)
	if err != nil {
		return nil, apperrors.StoreFailure("generate token", err)
	}

	discount, err := uc.repo.GetDiscountRate(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
		FullName:  user.FullName,
		Role:      user.Role,
		Discount:  discount,
	}, nil
}

// AddOrganization registers a corporate partner
func (uc *accountUC) AddOrganization(ctx context.Context, req models.AddOrganizationRequest) (*models.Organization, error) {
	if req.Name == "" || req.EmailDomain == "" {
		return nil, apperrors.InvalidInput("name and email_domain are required")
	}
	if req.DiscountRate < 0 || req.DiscountRate > uc.cfg.Booking.MaxDiscountRate {
		return nil, apperrors.InvalidInput("discount_rate must be between 0 and %f", uc.cfg.Booking.MaxDiscountRate)
	}

	org := &models.Organization{
		Name:         req.Name,
		EmailDomain:  req.EmailDomain,
		DiscountRate: req.DiscountRate,
	}

	if err := uc.repo.CreateOrganization(ctx, org); err != nil {
		return nil, err
	}

	return org, nil
}

// ListOrganizations returns all registered partners
func (uc *accountUC) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	return uc.repo.ListOrganizations(ctx)
}

// GetUser retrieves a user by ID
func (uc *accountUC) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return uc.repo.GetUser(ctx, userID)
}
