package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/ambunet/dispatch/internal/pkg/models"
)

// AccountRepo defines data access for users and organizations. The
// repository also implements the discount lookup the booking
// coordinator consumes.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ambunet/dispatch/services/account AccountRepo
type AccountRepo interface {
	CreateUser(ctx context.Context, user *models.User, licenseNo string) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	GetDiscountRate(ctx context.Context, userID uuid.UUID) (float64, error)
	GetOrganizationByDomain(ctx context.Context, domain string) (*models.Organization, error)
	CreateOrganization(ctx context.Context, org *models.Organization) error
	ListOrganizations(ctx context.Context) ([]models.Organization, error)
}
