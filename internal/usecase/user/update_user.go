package user

import (
	"context"

	"github.com/BruksfildServices01/client-tracker/internal/audit"
	domain "github.com/BruksfildServices01/client-tracker/internal/domain/user"
	"github.com/BruksfildServices01/client-tracker/internal/httperr"
	"github.com/BruksfildServices01/client-tracker/internal/models"
	"github.com/BruksfildServices01/client-tracker/internal/session"
)

type UpdateUser struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateUser(repo domain.Repository, rec audit.Recorder) *UpdateUser {
	return &UpdateUser{repo: repo, audit: rec}
}

func (uc *UpdateUser) Execute(
	ctx context.Context,
	s session.Session,
	id uint,
	in UserInput,
) (*models.User, error) {

	if err := requireAdmin(s); err != nil {
		return nil, err
	}

	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p, err := parseInput(in)
	if err != nil {
		return nil, err
	}

	exists, err := uc.repo.ExistsUsername(ctx, p.Username, u.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrConflict
	}

	u.Username = p.Username
	u.EmployeeID = p.EmployeeID
	u.Role = p.Role.String()

	// senha só muda se vier preenchida
	rotated := false
	if p.Password != "" {
		hash, err := domain.HashPassword(p.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
		rotated = true
	}

	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	record(ctx, uc.audit, audit.Event{
		UserID:   &s.UserID,
		Action:   audit.ActionUserUpdated,
		Entity:   audit.EntityUser,
		EntityID: &u.ID,
		Metadata: map[string]any{"role": u.Role, "password_rotated": rotated},
	})

	return u, nil
}
