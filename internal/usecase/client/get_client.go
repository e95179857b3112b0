package client

import (
	"context"

	domain "github.com/BruksfildServices01/client-tracker/internal/domain/client"
	"github.com/BruksfildServices01/client-tracker/internal/httperr"
	"github.com/BruksfildServices01/client-tracker/internal/models"
	"github.com/BruksfildServices01/client-tracker/internal/session"
)

type GetClient struct {
	repo domain.Repository
}

func NewGetClient(repo domain.Repository) *GetClient {
	return &GetClient{repo: repo}
}

func (uc *GetClient) Execute(
	ctx context.Context,
	s session.Session,
	id uint,
) (*models.Client, error) {

	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.CanAccess(c.UserID) {
		return nil, httperr.ErrForbidden
	}
	return c, nil
}
