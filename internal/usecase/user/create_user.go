package user

import (
	"context"

	"github.com/BruksfildServices01/client-tracker/internal/audit"
	domain "github.com/BruksfildServices01/client-tracker/internal/domain/user"
	"github.com/BruksfildServices01/client-tracker/internal/httperr"
	"github.com/BruksfildServices01/client-tracker/internal/models"
	"github.com/BruksfildServices01/client-tracker/internal/session"
)

type CreateUser struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCreateUser(repo domain.Repository, rec audit.Recorder) *CreateUser {
	return &CreateUser{repo: repo, audit: rec}
}

func (uc *CreateUser) Execute(
	ctx context.Context,
	s session.Session,
	in UserInput,
) (*models.User, error) {

	if err := requireAdmin(s); err != nil {
		return nil, err
	}

	p, err := parseInput(in)
	if err != nil {
		return nil, err
	}
	if p.Password == "" {
		return nil, httperr.ErrValidation
	}

	exists, err := uc.repo.ExistsUsername(ctx, p.Username, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrConflict
	}

	hash, err := domain.HashPassword(p.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Username:     p.Username,
		PasswordHash: hash,
		EmployeeID:   p.EmployeeID,
		Role:         p.Role.String(),
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	record(ctx, uc.audit, audit.Event{
		UserID:   &s.UserID,
		Action:   audit.ActionUserCreated,
		Entity:   audit.EntityUser,
		EntityID: &u.ID,
		Metadata: map[string]string{"username": u.Username, "role": u.Role},
	})

	return u, nil
}
