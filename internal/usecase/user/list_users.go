package user

import (
	"context"

	domain "github.com/BruksfildServices01/client-tracker/internal/domain/user"
	"github.com/BruksfildServices01/client-tracker/internal/models"
	"github.com/BruksfildServices01/client-tracker/internal/session"
)

type ListUsers struct {
	repo domain.Repository
}

func NewListUsers(repo domain.Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

func (uc *ListUsers) Execute(ctx context.Context, s session.Session) ([]models.User, error) {
	if err := requireAdmin(s); err != nil {
		return nil, err
	}
	return uc.repo.List(ctx)
}

type GetUser struct {
	repo domain.Repository
}

func NewGetUser(repo domain.Repository) *GetUser {
	return &GetUser{repo: repo}
}

func (uc *GetUser) Execute(ctx context.Context, s session.Session, id uint) (*models.User, error) {
	if err := requireAdmin(s); err != nil {
		return nil, err
	}
	return uc.repo.GetByID(ctx, id)
}
