package client

import (
	"context"

	"github.com/BruksfildServices01/client-tracker/internal/audit"
	domain "github.com/BruksfildServices01/client-tracker/internal/domain/client"
	"github.com/BruksfildServices01/client-tracker/internal/httperr"
	"github.com/BruksfildServices01/client-tracker/internal/session"
)

type DeleteClient struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDeleteClient(repo domain.Repository, rec audit.Recorder) *DeleteClient {
	return &DeleteClient{repo: repo, audit: rec}
}

func (uc *DeleteClient) Execute(
	ctx context.Context,
	s session.Session,
	id uint,
) error {

	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.CanAccess(c.UserID) {
		return httperr.ErrForbidden
	}

	if err := uc.repo.Delete(ctx, c.ID); err != nil {
		return err
	}

	record(ctx, uc.audit, audit.Event{
		UserID:   &s.UserID,
		Action:   audit.ActionClientDeleted,
		Entity:   audit.EntityClient,
		EntityID: &c.ID,
		Metadata: map[string]string{"name": c.Name},
	})

	return nil
}
