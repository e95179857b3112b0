package client

import (
	"context"
	"time"

	"github.com/BruksfildServices01/client-tracker/internal/audit"
	domain "github.com/BruksfildServices01/client-tracker/internal/domain/client"
	"github.com/BruksfildServices01/client-tracker/internal/httperr"
	"github.com/BruksfildServices01/client-tracker/internal/models"
	"github.com/BruksfildServices01/client-tracker/internal/session"
)

type UpdateClient struct {
	repo  domain.Repository
	audit audit.Recorder
	loc   *time.Location
}

func NewUpdateClient(
	repo domain.Repository,
	rec audit.Recorder,
	loc *time.Location,
) *UpdateClient {
	return &UpdateClient{
		repo:  repo,
		audit: rec,
		loc:   loc,
	}
}

func (uc *UpdateClient) Execute(
	ctx context.Context,
	s session.Session,
	id uint,
	in ClientInput,
) (*models.Client, error) {

	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.CanAccess(c.UserID) {
		return nil, httperr.ErrForbidden
	}

	// vazio mantém a data atual
	next, ok, err := domain.ParseFollowDate(in.NextFollow, uc.loc)
	if err != nil {
		return nil, err
	}
	if ok {
		c.NextFollow = next
	}

	if err := domain.Apply(c, in.Name, in.HouseAddress, in.RegisterAddress, in.Notes); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	record(ctx, uc.audit, audit.Event{
		UserID:   &s.UserID,
		Action:   audit.ActionClientUpdated,
		Entity:   audit.EntityClient,
		EntityID: &c.ID,
	})

	return c, nil
}
