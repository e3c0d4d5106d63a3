package services

import (
	"context"

	"apotek-backend/internal/apperr"
	"apotek-backend/internal/models"
	"apotek-backend/internal/repositories"
)

type PermissionService struct {
	Repo *repositories.PermissionRepository
}

func NewPermissionService(repo *repositories.PermissionRepository) *PermissionService {
	return &PermissionService{Repo: repo}
}

func (s *PermissionService) List(ctx context.Context) ([]models.Permission, error) {
	return s.Repo.List(ctx)
}

// ByRole rejects unknown roles up front so a typo reads as a client error,
// not an empty permission set.
func (s *PermissionService) ByRole(ctx context.Context, role string) ([]models.Permission, error) {
	known := false
	for _, r := range models.UserRoles {
		if role == r {
			known = true
			break
		}
	}
	if !known {
		return nil, apperr.BadRequest("unknown role: %s", role)
	}
	return s.Repo.ByRole(ctx, role)
}
