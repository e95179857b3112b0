package user

import (
	"context"

	"github.com/BruksfildServices01/client-tracker/internal/audit"
	domain "github.com/BruksfildServices01/client-tracker/internal/domain/user"
	"github.com/BruksfildServices01/client-tracker/internal/httperr"
	"github.com/BruksfildServices01/client-tracker/internal/models"
	"github.com/BruksfildServices01/client-tracker/internal/session"
)

type BootstrapAdmin struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewBootstrapAdmin(repo domain.Repository, rec audit.Recorder) *BootstrapAdmin {
	return &BootstrapAdmin{repo: repo, audit: rec}
}

// Execute cria admin/123456 uma única vez. created=false quando já existe.
func (uc *BootstrapAdmin) Execute(ctx context.Context) (bool, error) {
	_, err := uc.repo.GetByUsername(ctx, domain.BootstrapUsername)
	if err == nil {
		return false, nil
	}
	if !httperr.IsBusiness(err, httperr.CodeNotFound) {
		return false, err
	}

	hash, err := domain.HashPassword(domain.BootstrapPassword)
	if err != nil {
		return false, err
	}

	admin := &models.User{
		Username:     domain.BootstrapUsername,
		PasswordHash: hash,
		EmployeeID:   domain.BootstrapEmployeeID,
		Role:         session.RoleAdmin.String(),
	}
	if err := uc.repo.Create(ctx, admin); err != nil {
		// corrida com outra requisição: o admin já foi criado
		if httperr.IsBusiness(err, httperr.CodeConflict) {
			return false, nil
		}
		return false, err
	}

	record(ctx, uc.audit, audit.Event{
		Action:   audit.ActionAdminCreated,
		Entity:   audit.EntityUser,
		EntityID: &admin.ID,
	})

	return true, nil
}
