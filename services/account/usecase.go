package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/ambunet/dispatch/internal/pkg/models"
)

// AccountUC defines the account service business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ambunet/dispatch/services/account AccountUC
type AccountUC interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	AddOrganization(ctx context.Context, req models.AddOrganizationRequest) (*models.Organization, error)
	ListOrganizations(ctx context.Context) ([]models.Organization, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}
