package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ambunet/dispatch/internal/pkg/apperrors"
	"github.com/ambunet/dispatch/internal/pkg/database"
	"github.com/ambunet/dispatch/internal/pkg/models"
)

// GetOrganizationByDomain retrieves an organization by email domain.
// Domains are stored lowercase.
func (r *AccountRepository) GetOrganizationByDomain(ctx context.Context, domain string) (*models.Organization, error) {
	var org models.Organization
	query := `SELECT id, name, email_domain, discount_rate, created_at FROM organizations WHERE email_domain = $1`
	if err := r.db.GetContext(ctx, &org, query, strings.ToLower(domain)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("organization %s", domain)
		}
		return nil, apperrors.StoreFailure("get organization by domain", err)
	}

	return &org, nil
}

// CreateOrganization inserts a corporate partner
func (r *AccountRepository) CreateOrganization(ctx context.Context, org *models.Organization) error {
	if org.ID == uuid.Nil {
		org.ID = uuid.New()
	}
	org.EmailDomain = strings.ToLower(org.EmailDomain)
	org.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO organizations (id, name, email_domain, discount_rate, created_at)
		VALUES (:id, :name, :email_domain, :discount_rate, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, org); err != nil {
		if database.IsUniqueViolation(err) {
			return apperrors.Conflict("domain %s already registered", org.EmailDomain)
		}
		return apperrors.StoreFailure("insert organization", err)
	}

	return nil
}

// ListOrganizations returns all organizations, newest first
func (r *AccountRepository) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	orgs := []models.Organization{}
	query := `SELECT id, name, email_domain, discount_rate, created_at FROM organizations ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &orgs, query); err != nil {
		return nil, apperrors.StoreFailure("list organizations", err)
	}

	return orgs, nil
}
