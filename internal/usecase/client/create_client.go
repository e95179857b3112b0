package client

import (
	"context"
	"time"

	"github.com/BruksfildServices01/client-tracker/internal/audit"
	domain "github.com/BruksfildServices01/client-tracker/internal/domain/client"
	"github.com/BruksfildServices01/client-tracker/internal/models"
	"github.com/BruksfildServices01/client-tracker/internal/session"
)

type CreateClient struct {
	repo  domain.Repository
	audit audit.Recorder
	loc   *time.Location
	now   func() time.Time
}

func NewCreateClient(
	repo domain.Repository,
	rec audit.Recorder,
	loc *time.Location,
) *CreateClient {
	return &CreateClient{
		repo:  repo,
		audit: rec,
		loc:   loc,
		now:   clockIn(loc),
	}
}

func (uc *CreateClient) Execute(
	ctx context.Context,
	s session.Session,
	in ClientInput,
) (*models.Client, error) {

	// --------------------------------------------------
	// 1️⃣ Próximo contato (padrão: +14 dias)
	// --------------------------------------------------
	now := uc.now()

	next, ok, err := domain.ParseFollowDate(in.NextFollow, uc.loc)
	if err != nil {
		return nil, err
	}
	if !ok {
		next = domain.DefaultNextFollow(now)
	}

	// --------------------------------------------------
	// 2️⃣ Criação (dono = quem cadastrou)
	// --------------------------------------------------
	c := &models.Client{
		UserID:       s.UserID,
		FirstContact: now,
		NextFollow:   next,
	}
	if err := domain.Apply(c, in.Name, in.HouseAddress, in.RegisterAddress, in.Notes); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Auditoria
	// --------------------------------------------------
	record(ctx, uc.audit, audit.Event{
		UserID:   &s.UserID,
		Action:   audit.ActionClientCreated,
		Entity:   audit.EntityClient,
		EntityID: &c.ID,
	})

	return c, nil
}
